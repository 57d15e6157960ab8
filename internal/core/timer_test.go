package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs := NewFixedStep(4)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("Interval() = %v, want 250ms", fs.Interval())
	}
	now := time.Unix(100, 0)
	if !fs.ShouldStep(now) {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep(now.Add(100 * time.Millisecond)) {
		t.Fatal("should not step before the interval elapses")
	}
	if !fs.ShouldStep(now.Add(260 * time.Millisecond)) {
		t.Fatal("should step once the interval elapses")
	}
}

func TestFixedStepNoBurstAfterStall(t *testing.T) {
	fs := NewFixedStep(10)
	now := time.Unix(0, 0)
	fs.ShouldStep(now)

	now = now.Add(5 * time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep(now) {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("stall produced %d steps in a single instant, want at most 2", steps)
	}
}

func TestFixedStepRateFallback(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second {
		t.Fatalf("Interval() = %v, want 1s", fs.Interval())
	}
	fs.SetRate(20)
	if fs.Interval() != 50*time.Millisecond {
		t.Fatalf("Interval() = %v, want 50ms", fs.Interval())
	}
}
