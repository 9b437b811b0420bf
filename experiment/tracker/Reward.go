package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/bodyguard/timestep"
)

// Reward tracks and saves the reward of every decision in an
// experiment. Register a Reward with a single agent to track the
// rewards of that agent only.
type Reward struct {
	rewards  []float64
	filename string
}

// NewReward returns a new Reward Tracker which will save its data at
// the specified location filename
func NewReward(filename string) *Reward {
	return &Reward{filename: filename}
}

// Track caches the reward of the decision
func (r *Reward) Track(step ts.TimeStep) {
	r.rewards = append(r.rewards, step.Reward)
}

// Data returns the rewards tracked so far
func (r *Reward) Data() []float64 {
	return append([]float64{}, r.rewards...)
}

// Save saves the data tracked by the Reward Tracker to disk.
func (r *Reward) Save() error {
	if err := saveData(r.filename, r.rewards); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
