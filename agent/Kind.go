package agent

import (
	"github.com/samuelfneumann/bodyguard/grid"
	"github.com/samuelfneumann/bodyguard/qtable"
	"github.com/samuelfneumann/bodyguard/reward"
)

// Kind describes what a learning agent observes and is rewarded for.
// Every method takes the cell of the agent, so that a single Kind may
// be shared between an agent and all of its ghosts.
type Kind interface {
	// Name returns the name of the kind of agent
	Name() string

	// State returns the state of an agent at cell
	State(cell grid.Cell) qtable.State

	// Reward returns the reward of an agent at cell
	Reward(cell grid.Cell) float64

	// CellIsAllowed returns whether an agent may move to cell
	CellIsAllowed(cell grid.Cell) bool

	// IsTerminal returns whether s ends a trajectory
	IsTerminal(s qtable.State) bool

	// CanSuffer returns whether the reward learned from is adjusted by
	// the suffering offset
	CanSuffer() bool
}

// StateShape returns the shape of the states of Guards and Hostiles on
// g: the cell of the agent, the cell of the VIP and the cell of the
// opponent
func StateShape(g grid.Grid) []int {
	return []int{g.W, g.H, g.W, g.H, g.W, g.H}
}

// ActionShape returns the shape of the actions of Guards and Hostiles
func ActionShape() []int {
	return []int{grid.NumDirections}
}

// state concatenates cells into a state
func state(cells ...grid.Cell) qtable.State {
	s := make(qtable.State, 0, 2*len(cells))
	for _, c := range cells {
		s = append(s, c.X, c.Y)
	}
	return s
}

// Guard is the Kind of agents that protect the VIP from the Hostile.
// The Hostile may be set after construction, but must be set before
// the first decision.
type Guard struct {
	VIP     Positioner
	Hostile Positioner
}

func (g *Guard) Name() string {
	return "Guard"
}

func (g *Guard) State(cell grid.Cell) qtable.State {
	return state(cell, g.VIP.Cell(), g.Hostile.Cell())
}

func (g *Guard) Reward(cell grid.Cell) float64 {
	return reward.Guard(g.VIP.Cell(), cell, g.Hostile.Cell())
}

func (g *Guard) CellIsAllowed(grid.Cell) bool {
	return true
}

func (g *Guard) IsTerminal(qtable.State) bool {
	return false
}

func (g *Guard) CanSuffer() bool {
	return true
}

// Hostile is the Kind of agents that threaten the VIP. A Hostile may
// never come closer to the VIP than a squared distance of ClosestDst2.
type Hostile struct {
	VIP         Positioner
	Guard       Positioner
	ClosestDst2 float64
}

func (h *Hostile) Name() string {
	return "Hostile"
}

func (h *Hostile) State(cell grid.Cell) qtable.State {
	return state(cell, h.VIP.Cell(), h.Guard.Cell())
}

func (h *Hostile) Reward(cell grid.Cell) float64 {
	return reward.Hostile(h.VIP.Cell(), h.Guard.Cell(), cell)
}

func (h *Hostile) CellIsAllowed(cell grid.Cell) bool {
	return grid.Dst2(cell, h.VIP.Cell()) > h.ClosestDst2
}

func (h *Hostile) IsTerminal(qtable.State) bool {
	return false
}

func (h *Hostile) CanSuffer() bool {
	return false
}
