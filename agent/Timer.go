package agent

import "fmt"

// Timer accumulates simulated time up to a fixed length
type Timer struct {
	length  float64
	elapsed float64
}

// NewTimer returns a new Timer of the given length. If finished is
// true, the Timer starts out finished. NewTimer panics if length is not
// positive.
func NewTimer(length float64, finished bool) *Timer {
	if length <= 0 {
		panic(fmt.Sprintf("newTimer: length must be positive (have %v)",
			length))
	}

	t := &Timer{length: length}
	if finished {
		t.elapsed = length
	}
	return t
}

// Update advances the timer by dt. Elapsed time never exceeds the
// length of the timer.
func (t *Timer) Update(dt float64) {
	t.elapsed += dt
	if t.Finished() {
		t.elapsed = t.length
	}
}

// Finished returns whether the full length of the timer has elapsed
func (t *Timer) Finished() bool {
	return t.elapsed >= t.length
}

// Progress returns the fraction of the timer that has elapsed
func (t *Timer) Progress() float64 {
	return t.elapsed / t.length
}

// Reset sets the elapsed time to 0
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Length returns the length of the timer
func (t *Timer) Length() float64 {
	return t.length
}
