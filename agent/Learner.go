// Package agent implements the agents of a bodyguard world: the VIP,
// and the Guards and Hostiles which learn online with tabular
// Q-learning.
//
// A learning agent waits for its decision timer to finish, then
// observes its state, selects an action, moves, observes the reward of
// the cell it ends up in and reports the transition to its controller.
package agent

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/samuelfneumann/bodyguard/controller"
	"github.com/samuelfneumann/bodyguard/grid"
	"github.com/samuelfneumann/bodyguard/monitor"
	"github.com/samuelfneumann/bodyguard/qtable"
	"github.com/samuelfneumann/bodyguard/reward"
	ts "github.com/samuelfneumann/bodyguard/timestep"
)

// Tracker receives every decision of the agents it is registered with
type Tracker interface {
	Track(ts.TimeStep)
}

// Config configures a Learner
type Config struct {
	Controller controller.Config

	// Interval is the simulated time between two decisions
	Interval float64

	// SufferingOffset is subtracted from the reward learned from, if
	// the Kind of the Learner can suffer
	SufferingOffset float64

	// TableFile names a saved table to start from. If empty, or if the
	// table cannot be loaded, the Learner starts from a zero table.
	TableFile string
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive (have %v)", c.Interval)
	}
	return c.Controller.Validate()
}

// Learner is an agent which learns to move with a QController
type Learner struct {
	Body
	name            string
	kind            Kind
	controller      *controller.QController
	timer           *Timer
	monitor         *monitor.Value
	sufferingOffset float64

	trackers []Tracker
}

// New returns a new Learner of the given Kind at cell
func New(name string, g grid.Grid, cell grid.Cell, kind Kind, c Config,
	seed uint64) (*Learner, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}
	if !g.Contains(cell) {
		return nil, fmt.Errorf("new: cell %v outside of grid %dx%d", cell,
			g.W, g.H)
	}

	stateShape, actionShape := StateShape(g), ActionShape()

	var q *controller.QController
	var err error
	if c.TableFile != "" {
		q, err = controller.NewFromFile(c.TableFile, stateShape, actionShape,
			c.Controller, seed)
		if err != nil {
			glog.Warningf("%v: could not load table, starting from a zero "+
				"table: %v", name, err)
		}
	}
	if q == nil {
		q, err = controller.New(stateShape, actionShape, c.Controller, seed)
		if err != nil {
			return nil, fmt.Errorf("new: could not create controller: %w",
				err)
		}
	}

	return newWithController(name, g, cell, kind, q, c), nil
}

func newWithController(name string, g grid.Grid, cell grid.Cell, kind Kind,
	q *controller.QController, c Config) *Learner {
	return &Learner{
		Body:            NewBody(g, cell),
		name:            name,
		kind:            kind,
		controller:      q,
		timer:           NewTimer(c.Interval, false),
		monitor:         monitor.NewValue(monitor.DefaultWindow),
		sufferingOffset: c.SufferingOffset,
	}
}

// CreateGhost returns a new Learner of the same Kind at cell, whose
// controller is linked to the Learner's controller. The ghost decides
// on the same interval, but never reports to the Learner's trackers.
func (l *Learner) CreateGhost(cell grid.Cell, o controller.Override,
	seed uint64) (*Learner, error) {
	q, err := controller.NewLinked(l.controller, o, seed)
	if err != nil {
		return nil, fmt.Errorf("createGhost: %w", err)
	}

	c := Config{
		Controller:      q.Config(),
		Interval:        l.timer.Length(),
		SufferingOffset: l.sufferingOffset,
	}
	return newWithController(l.name+" ghost", l.grid, cell, l.kind, q, c), nil
}

// Register registers a Tracker to receive every decision of the Learner
func (l *Learner) Register(t Tracker) {
	l.trackers = append(l.trackers, t)
}

// Update advances the decision timer by dt, and makes a decision if
// the timer has finished. Update returns whether a decision was made.
func (l *Learner) Update(dt float64) bool {
	l.timer.Update(dt)
	if !l.timer.Finished() {
		return false
	}
	l.timer.Reset()

	s := l.kind.State(l.cell)
	a := l.controller.SelectAction(s)

	// Rejected moves leave the agent in place
	l.MoveTo(l.cell.Add(grid.Direction(a[0]).Delta()), l.kind.CellIsAllowed)

	next := l.kind.State(l.cell)
	r := l.kind.Reward(l.cell)
	l.monitor.Update(r)

	learned := r
	if l.kind.CanSuffer() {
		learned = reward.Suffer(r, l.sufferingOffset)
	}

	stepType := ts.Mid
	if l.monitor.Count() == 1 {
		stepType = ts.First
	}

	if l.kind.IsTerminal(next) {
		l.controller.TerminateTrajectory(s, a, learned)
		stepType = ts.Last
	} else {
		l.controller.UpdateTrajectory(s, a, learned, next)
	}

	if glog.V(2) {
		glog.Infof("%v: %v --%v--> %v (reward %.3f)", l.name, s,
			grid.Direction(a[0]), l.cell, r)
	}

	l.track(ts.New(stepType, l.name, s, a, next, r,
		l.monitor.RecentAverage(), l.monitor.Count()))
	return true
}

func (l *Learner) track(t ts.TimeStep) {
	for _, tracker := range l.trackers {
		tracker.Track(t)
	}
}

// Name returns the name of the Learner
func (l *Learner) Name() string {
	return l.name
}

// Kind returns the Kind of the Learner
func (l *Learner) Kind() Kind {
	return l.kind
}

// Controller returns the controller of the Learner
func (l *Learner) Controller() *controller.QController {
	return l.controller
}

// ActionValuesAt returns the values of every action in the state that
// the Learner would be in if it stood at cell
func (l *Learner) ActionValuesAt(cell grid.Cell) []float64 {
	return l.controller.ActionValues(l.kind.State(cell))
}

// State returns the current state of the Learner
func (l *Learner) State() qtable.State {
	return l.kind.State(l.cell)
}

// AverageReward returns the average of the most recent rewards
func (l *Learner) AverageReward() float64 {
	return l.monitor.RecentAverage()
}

// IterationCount returns the number of decisions made
func (l *Learner) IterationCount() int {
	return l.monitor.Count()
}

// Monitor returns the reward monitor of the Learner
func (l *Learner) Monitor() *monitor.Value {
	return l.monitor
}

// Dump saves the table of the Learner to filename
func (l *Learner) Dump(filename string) error {
	if err := l.controller.Dump(filename); err != nil {
		return fmt.Errorf("%v: %w", l.name, err)
	}
	return nil
}

func (l *Learner) String() string {
	return fmt.Sprintf("%v | Cell: %v  |  Decisions: %v  |  Average "+
		"Reward: %.3f", l.name, l.cell, l.IterationCount(),
		l.AverageReward())
}
