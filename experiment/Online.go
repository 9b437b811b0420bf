package experiment

import (
	"errors"
	"fmt"
	"io"

	"github.com/samuelfneumann/bodyguard/experiment/checkpointer"
	"github.com/samuelfneumann/bodyguard/experiment/tracker"
	ts "github.com/samuelfneumann/bodyguard/timestep"
	"github.com/samuelfneumann/bodyguard/utils/progressbar"
	"github.com/samuelfneumann/bodyguard/world"
)

// progressWidth is the width of the progress bar in characters
const progressWidth = 50

// Online is an Experiment that runs a world online, learning on every
// decision of every agent. Only the decisions of the canonical Guard
// and Hostile are tracked.
type Online struct {
	world         *world.World
	maxTicks      int
	currentTicks  int
	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer
	err           error

	progress *progressbar.ManualProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// world. The maxTicks parameter determines how many ticks the
// experiment is run for at most, 0 runs until the world is done. The
// t parameter is a slice of tracker.Tracker which determine what data
// is saved, and check is a slice of checkpointer.Checkpointer which
// are given every decision of the Guard.
func NewOnline(w *world.World, maxTicks int, t []tracker.Tracker,
	check []checkpointer.Checkpointer) *Online {
	o := &Online{
		world:         w,
		maxTicks:      maxTicks,
		trackers:      t,
		checkpointers: check,
	}

	w.Guard().Register(o)
	w.Hostile().Register(o)
	return o
}

// ShowProgress prints a progress bar to out while the experiment runs
func (o *Online) ShowProgress(out io.Writer) {
	total := o.world.Config().IterationMax
	if total == 0 {
		total = o.maxTicks
	}
	o.progress = progressbar.NewManualProgressBar(out, progressWidth, total)
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Track sends a decision to all Trackers. Decisions of the Guard are
// also sent to all Checkpointers.
func (o *Online) Track(step ts.TimeStep) {
	for _, t := range o.trackers {
		t.Track(step)
	}

	if step.Agent != o.world.Guard().Name() {
		return
	}

	for _, c := range o.checkpointers {
		if err := c.Checkpoint(step); err != nil && o.err == nil {
			o.err = err
		}
	}

	if o.progress != nil && o.world.Config().IterationMax > 0 {
		o.progress.Increment()
	}
}

// RunTick runs a single tick of the experiment and returns whether the
// experiment has finished
func (o *Online) RunTick() bool {
	o.currentTicks++
	done := o.world.Update(o.world.Config().TickDelta)

	if o.progress != nil {
		if o.world.Config().IterationMax == 0 {
			o.progress.Increment()
		}
		o.progress.Display()
	}

	return done || (o.maxTicks > 0 && o.currentTicks >= o.maxTicks)
}

// Run runs the experiment until the world is done or the maximum
// number of ticks is reached. Run returns the first error that occurred
// while checkpointing.
func (o *Online) Run() error {
	if o.maxTicks <= 0 && o.world.Config().IterationMax <= 0 {
		return errors.New("run: experiment would never end, set an " +
			"iteration max or a tick limit")
	}

	for !o.RunTick() {
		if o.err != nil {
			break
		}
	}

	if o.progress != nil {
		o.progress.Finish()
	}
	if o.err != nil {
		return fmt.Errorf("run: %w", o.err)
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// Close closes the world of the experiment
func (o *Online) Close() (world.Stats, error) {
	return o.world.Close()
}

// World returns the world of the experiment
func (o *Online) World() *world.World {
	return o.world
}
