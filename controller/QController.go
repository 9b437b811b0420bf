// Package controller implements a tabular Q-learning controller.
//
// A QController owns (or shares) a qtable.Table and selects actions
// from it with an ε-greedy policy. Updates overwrite the table entry
// of the visited state-action pair with its one-step bootstrapped
// target, that is, Q-learning with a learning rate of 1:
//
//	Q(s, a) <- r + γ max_a' Q(s', a')
//
// Several QControllers may be linked to the same table. Linked
// controllers share all values, but each has its own discount,
// exploration probability and greedy direction.
package controller

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/bodyguard/qtable"
	"github.com/samuelfneumann/bodyguard/utils/floatutils"
)

// QController implements ε-greedy action selection and Q-learning
// updates on a tabular action-value function
type QController struct {
	table  *qtable.Table
	config Config

	rng  *rand.Rand
	seed uint64
}

// New creates a new QController with a zero-initialized table of
// shape stateShape followed by actionShape
func New(stateShape, actionShape []int, c Config,
	seed uint64) (*QController, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	table, err := qtable.New(stateShape, actionShape)
	if err != nil {
		return nil, fmt.Errorf("new: could not create table: %w", err)
	}

	return newWithTable(table, c, seed), nil
}

// NewFromFile creates a new QController whose table is loaded from
// filename. The loaded table must have shape stateShape followed by
// actionShape. If the table cannot be loaded, an error is returned and
// the caller is expected to fall back to New.
func NewFromFile(filename string, stateShape, actionShape []int, c Config,
	seed uint64) (*QController, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newFromFile: invalid config: %w", err)
	}

	glog.Infof("Loading Q table from %q...", filename)
	table, err := qtable.Load(filename)
	if err != nil {
		return nil, fmt.Errorf("newFromFile: %w", err)
	}

	if !table.SameShape(stateShape, actionShape) {
		return nil, fmt.Errorf("newFromFile: loaded table has shape %v, "+
			"want %v ++ %v", table.Shape(), stateShape, actionShape)
	}

	return newWithTable(table, c, seed), nil
}

// NewLinked creates a new QController which shares the table of
// linked. Values written through either controller are immediately
// visible through the other.
func NewLinked(linked *QController, o Override,
	seed uint64) (*QController, error) {
	if linked == nil {
		return nil, errors.New("newLinked: cannot link to nil controller")
	}

	c := o.apply(linked.config)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newLinked: invalid config: %w", err)
	}

	return newWithTable(linked.table, c, seed), nil
}

func newWithTable(table *qtable.Table, c Config, seed uint64) *QController {
	return &QController{
		table:  table,
		config: c,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
	}
}

// SelectAction selects an action in state s. With probability equal
// to the exploration probability, each action dimension is sampled
// uniformly at random. Otherwise, an action with the maximum value in s
// is selected if following reward, or an action with the minimum
// value if not. Ties are broken uniformly at random.
func (q *QController) SelectAction(s qtable.State) qtable.Action {
	if q.rng.Float64() < q.config.Exploration {
		return q.randomAction()
	}

	values := q.table.Values(s)

	var indices []int
	if q.config.FollowReward {
		_, indices = floatutils.MaxSlice(values)
	} else {
		_, indices = floatutils.MinSlice(values)
	}

	return q.table.ActionAt(indices[q.rng.Intn(len(indices))])
}

// randomAction samples each action dimension uniformly
func (q *QController) randomAction() qtable.Action {
	shape := q.table.ActionShape()
	a := make(qtable.Action, len(shape))
	for i, dim := range shape {
		a[i] = q.rng.Intn(dim)
	}
	return a
}

// UpdateTrajectory overwrites the value of action a in state s with
// the target r + γ max_a' Q(next, a'). The previous value of (s, a)
// does not influence the new value.
func (q *QController) UpdateTrajectory(s qtable.State, a qtable.Action,
	r float64, next qtable.State) {
	target := r + q.config.Gamma*q.table.Max(next)
	q.table.Set(s, a, target)
}

// TerminateTrajectory overwrites the value of action a in state s with
// the reward r, without bootstrapping
func (q *QController) TerminateTrajectory(s qtable.State, a qtable.Action,
	r float64) {
	q.table.Set(s, a, r)
}

// ActionValues returns a copy of the values of every action in state s
func (q *QController) ActionValues(s qtable.State) []float64 {
	return q.table.Values(s)
}

// Dump saves the table to filename
func (q *QController) Dump(filename string) error {
	glog.Infof("Dumping Q table to %q...", filename)
	if err := q.table.Save(filename); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}

// Load replaces the values of the table with those saved in filename.
// The values are copied into the existing table so that every linked
// controller observes them. On failure the table is left unchanged.
func (q *QController) Load(filename string) error {
	glog.Infof("Loading Q table from %q...", filename)
	loaded, err := qtable.Load(filename)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	if err := q.table.CopyFrom(loaded); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	return nil
}

// Table returns the table shared by the controller
func (q *QController) Table() *qtable.Table {
	return q.table
}

// Linked returns whether q and other share the same table
func (q *QController) Linked(other *QController) bool {
	return other != nil && q.table == other.table
}

// Config returns the configuration of the controller
func (q *QController) Config() Config {
	return q.config
}

// Seed returns the seed of the controller's random number generator
func (q *QController) Seed() uint64 {
	return q.seed
}
