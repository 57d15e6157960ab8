//go:build !ebiten

package app

import "testing"

func TestHeadlessGame(t *testing.T) {
	var g Game
	if err := g.Update(); err == nil {
		t.Fatal("headless Update must report the missing build tag")
	}
	if w, h := g.Layout(640, 480); w != 0 || h != 0 {
		t.Fatalf("Layout() = %d, %d, want 0, 0", w, h)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("New must panic without the ebiten tag")
		}
	}()
	New(nil, 1, 0, 1)
}
