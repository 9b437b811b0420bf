// Package checkpointer implements Checkpointers, which periodically
// save learned tables during an experiment
package checkpointer

import (
	ts "github.com/samuelfneumann/bodyguard/timestep"
)

// Dumper is an object that can be saved to a file
type Dumper interface {
	Dump(filename string) error
}

// Checkpointer checkpoints/saves Dumpers based on timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}
