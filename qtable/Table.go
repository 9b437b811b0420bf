// Package qtable implements dense tabular action-value storage.
//
// A Table stores one value for every (state, action) pair of a discrete
// state space and a discrete action space. The table is stored as a
// single dense tensor whose shape is the state shape followed by the
// action shape, so that all action values of a single state are
// contiguous in memory.
//
// A *Table is a shared handle: any number of controllers may hold the
// same *Table, and a write through any of them is immediately visible
// through all others. Every read and write of the table is serialized,
// so that a Table may also be used by concurrent drivers.
package qtable

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"
)

// State indexes the state dimensions of a Table
type State []int

// Action indexes the action dimensions of a Table
type Action []int

// Table is a dense action-value table
type Table struct {
	mu sync.RWMutex

	values      *tensor.Dense
	data        []float64 // backing slice of values, one row per state
	stateShape  []int
	actionShape []int
	strides     []int
	numActions  int // number of values in a single state's slice
}

// New returns a new zero-initialized Table with the given state and
// action shapes
func New(stateShape, actionShape []int) (*Table, error) {
	if err := validateShape(stateShape, actionShape); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	shape := append(append([]int{}, stateShape...), actionShape...)
	values := tensor.New(tensor.WithShape(shape...), tensor.Of(tensor.Float64))

	return newFromDense(values, stateShape, actionShape), nil
}

// newFromData returns a Table backed by data, which must have exactly
// as many elements as the shape describes
func newFromData(data []float64, stateShape, actionShape []int) (*Table,
	error) {
	if err := validateShape(stateShape, actionShape); err != nil {
		return nil, err
	}

	shape := append(append([]int{}, stateShape...), actionShape...)
	if size := tensor.Shape(shape).TotalSize(); size != len(data) {
		return nil, fmt.Errorf("data length %d does not match shape %v "+
			"of size %d", len(data), shape, size)
	}
	values := tensor.New(tensor.WithShape(shape...), tensor.WithBacking(data))

	return newFromDense(values, stateShape, actionShape), nil
}

func newFromDense(values *tensor.Dense, stateShape,
	actionShape []int) *Table {
	numActions := 1
	for _, dim := range actionShape {
		numActions *= dim
	}

	return &Table{
		values:      values,
		data:        values.Data().([]float64),
		stateShape:  append([]int{}, stateShape...),
		actionShape: append([]int{}, actionShape...),
		strides:     append([]int{}, values.Strides()...),
		numActions:  numActions,
	}
}

// validateShape ensures that a table of the given shape can be built
func validateShape(stateShape, actionShape []int) error {
	if len(actionShape) == 0 {
		return fmt.Errorf("action space must have at least one dimension")
	}
	for i, dim := range stateShape {
		if dim <= 0 {
			return fmt.Errorf("state dimension %d must be positive "+
				"(have %d)", i, dim)
		}
	}
	for i, dim := range actionShape {
		if dim <= 0 {
			return fmt.Errorf("action dimension %d must be positive "+
				"(have %d)", i, dim)
		}
	}
	return nil
}

// StateShape returns the shape of the state space
func (t *Table) StateShape() []int {
	return append([]int{}, t.stateShape...)
}

// ActionShape returns the shape of the action space
func (t *Table) ActionShape() []int {
	return append([]int{}, t.actionShape...)
}

// Shape returns the full shape of the table
func (t *Table) Shape() []int {
	return append(t.StateShape(), t.actionShape...)
}

// NumActions returns the number of distinct actions in each state
func (t *Table) NumActions() int {
	return t.numActions
}

// SameShape returns whether the table has the argument state and
// action shapes
func (t *Table) SameShape(stateShape, actionShape []int) bool {
	return equal(t.stateShape, stateShape) && equal(t.actionShape, actionShape)
}

// Check returns an error if s or a cannot index the table
func (t *Table) Check(s State, a Action) error {
	if err := checkIndex("state", s, t.stateShape); err != nil {
		return err
	}
	return checkIndex("action", a, t.actionShape)
}

func checkIndex(name string, index, shape []int) error {
	if len(index) != len(shape) {
		return fmt.Errorf("%v has %d dimensions, want %d", name, len(index),
			len(shape))
	}
	for i := range index {
		if index[i] < 0 || index[i] >= shape[i] {
			return fmt.Errorf("%v dimension %d out of range: %d not in "+
				"[0, %d)", name, i, index[i], shape[i])
		}
	}
	return nil
}

// offset returns the offset into the backing slice of the first action
// value of state s, so that the values of s form a contiguous row
func (t *Table) offset(s State) int {
	if err := checkIndex("state", s, t.stateShape); err != nil {
		panic(fmt.Sprintf("offset: %v", err))
	}

	offset := 0
	for i, v := range s {
		offset += v * t.strides[i]
	}
	return offset
}

// ActionAt converts a flat index inside a state's slice into a
// structured Action
func (t *Table) ActionAt(i int) Action {
	a := make(Action, len(t.actionShape))
	for j := len(t.actionShape) - 1; j >= 0; j-- {
		a[j] = i % t.actionShape[j]
		i /= t.actionShape[j]
	}
	return a
}

// coords returns the coordinates of (s, a) in the table. coords panics
// if either index is out of range.
func (t *Table) coords(s State, a Action) []int {
	if err := t.Check(s, a); err != nil {
		panic(fmt.Sprintf("coords: %v", err))
	}
	return append(append(make([]int, 0, len(s)+len(a)), s...), a...)
}

// At returns the value of action a in state s. At panics if either
// index is out of range.
func (t *Table) At(s State, a Action) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, err := t.values.At(t.coords(s, a)...)
	if err != nil {
		panic(fmt.Sprintf("at: %v", err))
	}
	return v.(float64)
}

// Set sets the value of action a in state s. Set panics if either
// index is out of range.
func (t *Table) Set(s State, a Action, value float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.values.SetAt(value, t.coords(s, a)...); err != nil {
		panic(fmt.Sprintf("set: %v", err))
	}
}

// Values returns a copy of the values of all actions in state s, in
// row-major action order
func (t *Table) Values(s State) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	start := t.offset(s)
	return append([]float64{}, t.data[start:start+t.numActions]...)
}

// Max returns the maximum action value in state s
func (t *Table) Max(s State) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	start := t.offset(s)
	return floats.Max(t.data[start : start+t.numActions])
}

// CopyFrom copies every value of other into t. Both tables must have
// the same shape.
func (t *Table) CopyFrom(other *Table) error {
	if t == other {
		return nil
	}

	other.mu.RLock()
	defer other.mu.RUnlock()
	if !t.SameShape(other.stateShape, other.actionShape) {
		return fmt.Errorf("copyFrom: shape mismatch: have %v, copying %v",
			t.Shape(), append(append([]int{}, other.stateShape...),
				other.actionShape...))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	copy(t.data, other.data)
	return nil
}

// String returns a short description of the table
func (t *Table) String() string {
	return fmt.Sprintf("Table | State Shape: %v  |  Action Shape: %v",
		t.stateShape, t.actionShape)
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
