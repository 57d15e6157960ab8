package lattice

import (
	"fmt"
	"testing"

	"hyperlife/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeFor(t *testing.T) {
	tests := []struct {
		h, w, ticks int
		want        int
	}{
		{5, 5, 3, 17},
		{8, 3, 6, 32},
		{1, 1, 0, 1},
		{2, 7, 1, 11},
		{3, 3, -2, 3},
	}
	for _, tt := range tests {
		if got := EdgeFor(tt.h, tt.w, tt.ticks); got != tt.want {
			t.Errorf("EdgeFor(%d, %d, %d) = %d, want %d", tt.h, tt.w, tt.ticks, got, tt.want)
		}
	}
}

func TestEmbedCentresPattern(t *testing.T) {
	l, err := FromPattern(gliderRows, 3)
	require.NoError(t, err)

	mid := l.Mid()
	require.Equal(t, 8, mid)
	for _, c := range []Coord{
		{X: 7, Y: 6, Z: mid, W: mid},
		{X: 8, Y: 7, Z: mid, W: mid},
		{X: 6, Y: 8, Z: mid, W: mid},
		{X: 7, Y: 8, Z: mid, W: mid},
		{X: 8, Y: 8, Z: mid, W: mid},
	} {
		assert.True(t, l.MustGet(c), "expected %+v alive", c)
	}
	assert.Equal(t, 5, l.CountAlive())
	assert.Equal(t, 5, l.Slice(mid, mid).Count())
}

func TestEmbedRejectsOversizedPattern(t *testing.T) {
	l, err := New(2)
	require.NoError(t, err)
	err = Embed(l, [][]bool{{true, true, true}})
	require.ErrorIs(t, err, ErrPatternTooLarge)
	assert.Equal(t, 0, l.CountAlive())
}

func TestFromPatternEmpty(t *testing.T) {
	_, err := FromPattern(nil, 0)
	require.ErrorIs(t, err, ErrInvalidEdge)
}

func TestSizingPreventsBoundaryContact(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 4D run")
	}
	line := [][]bool{{true, true, true}}
	rng := core.NewRNG(5)
	random := make([][]bool, 3)
	for y := range random {
		random[y] = make([]bool, 4)
		for x := range random[y] {
			random[y][x] = rng.Chance(0.5)
		}
	}
	block := [][]bool{{true, true}, {true, true}}

	for name, rows := range map[string][][]bool{"glider": gliderRows, "line": line, "random": random, "block": block} {
		for _, ticks := range []int{2, 3} {
			t.Run(fmt.Sprintf("%s/%d", name, ticks), func(t *testing.T) {
				l, err := FromPattern(rows, ticks)
				require.NoError(t, err)
				for i := 0; i < ticks; i++ {
					l.Tick()
					require.Zero(t, l.BoundaryAlive(), "boundary reached after tick %d", i+1)
				}
			})
		}
	}
}
