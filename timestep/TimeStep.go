// Package timestep implements records of completed agent decisions
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first decision of an agent, a middle decision, or a decision that
// reached a terminal state
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single completed decision of an agent:
// the state it decided in, the action it took, the state it reached and
// the reward it observed
type TimeStep struct {
	stepType StepType
	Agent    string // name of the deciding agent
	State    []int
	Action   []int
	Next     []int
	Reward   float64

	// AverageReward is the recent average reward of the agent after
	// this decision
	AverageReward float64
	Number        int
}

// New returns a new TimeStep
func New(t StepType, agent string, s, a, next []int, r, avg float64,
	n int) TimeStep {
	return TimeStep{
		stepType:      t,
		Agent:         agent,
		State:         s,
		Action:        a,
		Next:          next,
		Reward:        r,
		AverageReward: avg,
		Number:        n,
	}
}

// First returns whether a TimeStep is the first decision of an agent
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle decision
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep reached a terminal state
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Agent: %v  |  Type: %v  |  Action: %v  |  " +
		"Reward: %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.Agent, t.stepType, t.Action, t.Reward, t.Number)
}
