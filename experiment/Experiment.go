// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/bodyguard/config"
	"github.com/samuelfneumann/bodyguard/experiment/checkpointer"
	"github.com/samuelfneumann/bodyguard/experiment/tracker"
	"github.com/samuelfneumann/bodyguard/world"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track the decisions of the agents of a world,
// caching data in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run the world until it is done, or some other ending condition is
// reached. The RunTick() function will run a single tick.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments will
// send each decision to Trackers using the Tracker's Track() method.
// The Tracker then determines which data from the decision it caches
// and saves. New Trackers can be registered with an Experiment through
// the constructor or through an Experiment's Register() function.
type Experiment interface {
	Run() error
	RunTick() bool // Returns whether or not the experiment finished

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)

	// Close ends the experiment and returns the statistics of its world
	Close() (world.Stats, error)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	MaxTicks int // 0 runs until the world is done
	World    config.Config
}

// CreateExp creates the experiment described by the Config
func (c Config) CreateExp(t []tracker.Tracker,
	check []checkpointer.Checkpointer) (Experiment, error) {
	w, err := world.New(c.World)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create world: %w", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(w, c.MaxTicks, t, check), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
