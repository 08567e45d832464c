// Package timer provides an accumulator-plus-threshold timer with one-shot edge
// detection, advanced explicitly once per tick.
package timer

import (
	"math"
	"time"
)

// Mode selects what happens when a timer reaches its duration.
type Mode int

const (
	// Once latches the timer as finished; it never triggers again until Reset.
	Once Mode = iota
	// Repeating restarts the accumulator from zero on every edge.
	Repeating
)

// Timer accumulates elapsed time and reports the tick on which the accumulated
// value first reaches Duration. Time is kept in whole nanoseconds so that
// repeated fractional steps such as 0.1 or 1/60 add up exactly.
type Timer struct {
	Duration float64 // Seconds
	Mode     Mode

	elapsed      time.Duration
	finished     bool
	justFinished bool
}

// New returns a stopped-at-zero timer.
func New(duration float64, mode Mode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by dt seconds and recomputes the edge flag.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false

	if t.Mode == Once && t.finished {
		return
	}

	threshold := seconds(t.Duration)
	previous := t.elapsed
	t.elapsed += seconds(dt)

	// A non-positive duration completes on every tick (Repeating) or the first one (Once).
	if threshold <= 0 || (previous < threshold && t.elapsed >= threshold) {
		t.justFinished = true
		t.finished = true
		if t.Mode == Repeating {
			t.elapsed = 0
		}
		return
	}

	if t.Mode == Repeating {
		t.finished = false
	}
}

// JustFinished reports whether the last Tick crossed the threshold.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a Once timer has completed, or whether a Repeating
// timer completed on the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// Elapsed returns the accumulated time since the timer started or last repeated.
func (t *Timer) Elapsed() float64 {
	return t.elapsed.Seconds()
}

// Remaining returns the time left before the next edge. It is never negative.
func (t *Timer) Remaining() float64 {
	r := seconds(t.Duration) - t.elapsed
	if r < 0 {
		return 0
	}
	return r.Seconds()
}

// Fraction returns elapsed/Duration clamped to [0, 1].
func (t *Timer) Fraction() float64 {
	if seconds(t.Duration) <= 0 {
		return 1
	}
	f := float64(t.elapsed) / float64(seconds(t.Duration))
	if f > 1 {
		return 1
	}
	return f
}

// Reset clears the accumulator and both flags.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}

// seconds rounds s to the nearest nanosecond
func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
