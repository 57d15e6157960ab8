package core

import "time"

// FixedStep paces generation advances independently of the frame rate.
// The caller supplies the current time, which keeps it deterministic in tests.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep targeting the given steps per second.
func NewFixedStep(perSecond int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(perSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to one per second.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 1
	}
	f.step = time.Second / time.Duration(perSecond)
}

// Interval returns the duration between two steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a step is due at now. At most one step is
// reported per call; a long stall does not produce a burst of steps.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
