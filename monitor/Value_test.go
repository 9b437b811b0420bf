package monitor

import (
	"math"
	"testing"
)

func TestEmpty(t *testing.T) {
	v := NewValue(DefaultWindow)
	if v.RecentAverage() != 0 || v.CumulativeAverage() != 0 ||
		v.Sum() != 0 || v.Count() != 0 {
		t.Errorf("empty monitor: %v", v)
	}
}

func TestWindow(t *testing.T) {
	v := NewValue(3)
	for _, value := range []float64{1, 2, 3, 4, 5} {
		v.Update(value)
	}

	if r := v.RecentAverage(); r != 4 {
		t.Errorf("recentAverage: want 4, have %v", r)
	}
	if c := v.CumulativeAverage(); math.Abs(c-3) > 1e-12 {
		t.Errorf("cumulativeAverage: want 3, have %v", c)
	}
	if s := v.Sum(); s != 15 {
		t.Errorf("sum: want 15, have %v", s)
	}
	if n := v.Count(); n != 5 {
		t.Errorf("count: want 5, have %v", n)
	}
}

func TestPartialWindow(t *testing.T) {
	v := NewValue(DefaultWindow)
	v.Update(-2)
	v.Update(4)

	if r := v.RecentAverage(); r != 1 {
		t.Errorf("recentAverage: want 1, have %v", r)
	}
}

func TestNewValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("newValue: expected panic on zero window")
		}
	}()
	NewValue(0)
}
