package ecs

import "time"

// TimerMode selects whether a Timer stops or wraps around when it finishes.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

func (m TimerMode) String() string {
	if m == TimerRepeating {
		return "repeating"
	}
	return "once"
}

// Timer counts elapsed time toward Duration. It is a plain value meant to live
// inside components and be advanced with Tick once per frame.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	finished      bool
	timesThisTick int
}

// NewTimer returns a Timer of the given duration and mode.
func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// TimerFromSeconds is NewTimer with the duration expressed in seconds.
func TimerFromSeconds(seconds float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick advances the timer by delta.
// A repeating timer wraps and counts every completed cycle; a one-shot timer
// clamps at Duration and reports JustFinished only on the tick it got there.
func (t *Timer) Tick(delta time.Duration) {
	t.timesThisTick = 0
	if delta < 0 {
		delta = 0
	}

	if t.Mode == TimerOnce {
		if t.finished {
			return
		}
		t.Elapsed += delta
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.timesThisTick = 1
		}
		return
	}

	t.Elapsed += delta
	t.finished = false
	if t.Duration <= 0 {
		t.Elapsed = 0
		t.finished = true
		t.timesThisTick = 1
		return
	}
	if t.Elapsed >= t.Duration {
		t.timesThisTick = int(t.Elapsed / t.Duration)
		t.Elapsed %= t.Duration
		t.finished = true
	}
}

// JustFinished reports whether the last Tick completed at least one cycle.
func (t *Timer) JustFinished() bool {
	return t.timesThisTick > 0
}

// Finished reports whether the timer has reached its duration. For repeating
// timers this is only true on the tick a cycle completed.
func (t *Timer) Finished() bool {
	return t.finished
}

// TimesFinishedThisTick is the number of cycles completed by the last Tick.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesThisTick
}

// Remaining returns the time left in the current cycle.
func (t *Timer) Remaining() time.Duration {
	return t.Duration - t.Elapsed
}

// Fraction returns Elapsed/Duration in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// Reset rewinds the timer to zero without changing its duration or mode.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.timesThisTick = 0
}
