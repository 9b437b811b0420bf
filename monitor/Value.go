// Package monitor implements running statistics over a stream of values
package monitor

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// DefaultWindow is the number of recent values averaged by a Value
// monitor when no window is given
const DefaultWindow int = 100

// Value monitors a stream of values. It keeps the cumulative average,
// sum and count of all values seen, as well as the average of the most
// recent values.
type Value struct {
	window []float64 // ring buffer of recent values
	next   int       // index of the next write into window
	full   bool

	average float64
	sum     float64
	count   int
}

// NewValue returns a new Value monitor averaging the last window
// values. NewValue panics if window is not positive.
func NewValue(window int) *Value {
	if window <= 0 {
		panic(fmt.Sprintf("newValue: window must be positive (have %d)",
			window))
	}
	return &Value{window: make([]float64, 0, window)}
}

// Update records a new value
func (v *Value) Update(value float64) {
	if !v.full {
		v.window = append(v.window, value)
		v.full = len(v.window) == cap(v.window)
	} else {
		v.window[v.next] = value
	}
	v.next = (v.next + 1) % cap(v.window)

	v.count++
	v.average += (value - v.average) / float64(v.count)
	v.sum += value
}

// RecentAverage returns the average of the most recent values, or 0
// if no value has been recorded
func (v *Value) RecentAverage() float64 {
	if len(v.window) == 0 {
		return 0
	}
	return stat.Mean(v.window, nil)
}

// CumulativeAverage returns the average of all values recorded
func (v *Value) CumulativeAverage() float64 {
	return v.average
}

// Sum returns the sum of all values recorded
func (v *Value) Sum() float64 {
	return v.sum
}

// Count returns the number of values recorded
func (v *Value) Count() int {
	return v.count
}

func (v *Value) String() string {
	return fmt.Sprintf("Value Monitor | Count: %v  |  Sum: %.2f  |  "+
		"Average: %.4f  |  Recent: %.4f", v.count, v.sum, v.average,
		v.RecentAverage())
}
