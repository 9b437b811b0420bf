package tracker

import (
	ts "github.com/samuelfneumann/bodyguard/timestep"
)

// registeredTracker registers an agent with some Tracker so that the
// Tracker tracks data from the registered agent only.
// registeredTracker itself is a Tracker.
//
// The Track() and Save() methods of a register call those of the
// embedded Tracker. The only difference is that registeredTracker
// drops every TimeStep of agents other than the registered one.
//
// This may be useful if a Tracker is registered with every agent of a
// world, but only the decisions of the Guard are needed.
type registeredTracker struct {
	Tracker
	agent string
}

// Register registers a new Tracker with an agent, to track data from
// the registered agent only. Register returns a copy of the argument
// Tracker that is registered with the argument agent name.
//
// Note: the underlying concrete type of the registered Tracker is
// lost when registering an agent with a Tracker.
func Register(t Tracker, agent string) Tracker {
	return &registeredTracker{t, agent}
}

// Track calls Track() on the embedded Tracker if the TimeStep was
// produced by the registered agent
func (r *registeredTracker) Track(step ts.TimeStep) {
	if step.Agent == r.agent {
		r.Tracker.Track(step)
	}
}
