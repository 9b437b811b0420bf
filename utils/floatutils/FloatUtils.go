// Package floatutils provides utilities for working with floats
package floatutils

import (
	"gonum.org/v1/gonum/floats"
)

// MaxSlice gets the maximum value and the indices of every occurrence
// of the maximum value in a slice of float64.
func MaxSlice(values []float64) (max float64, indices []int) {
	max = floats.Max(values)
	return max, equalTo(values, max)
}

// MinSlice gets the minimum value and the indices of every occurrence
// of the minimum value in a slice of float64.
func MinSlice(values []float64) (min float64, indices []int) {
	min = floats.Min(values)
	return min, equalTo(values, min)
}

// equalTo returns the indices of values equal to v
func equalTo(values []float64, v float64) []int {
	indices := make([]int, 0, 1)
	for i, value := range values {
		if value == v {
			indices = append(indices, i)
		}
	}
	return indices
}
