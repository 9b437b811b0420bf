package world

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/samuelfneumann/bodyguard/agent"
	"github.com/samuelfneumann/bodyguard/controller"
)

// SetGhostCount sets the number of ghost Guards and ghost Hostiles. A
// negative count is treated as 0. New ghosts start at random cells,
// ghost Hostiles only at cells they are allowed in. If no cell is
// allowed for a ghost Hostile, no further ghosts are added and an error
// is returned. Removing ghosts
// removes the most recently added ones and never changes the tables
// they learned into.
func (w *World) SetGhostCount(count int) error {
	if count < 0 {
		count = 0
	}
	current := w.GhostCount()

	if count < current {
		for i := count; i < current; i++ {
			w.guardGhosts[i] = nil
			w.hostileGhosts[i] = nil
		}
		w.guardGhosts = w.guardGhosts[:count]
		w.hostileGhosts = w.hostileGhosts[:count]
	}

	exploration := w.config.GhostExploration
	o := controller.Override{
		Exploration:  &exploration,
		FollowReward: w.config.GhostFollowReward,
	}

	for i := current; i < count; i++ {
		cell, ok := w.starter.StartWhere(w.hostileKind.CellIsAllowed)
		if !ok {
			return fmt.Errorf("setGhostCount: no cell is allowed for a "+
				"ghost hostile (closest squared distance %v)",
				w.hostileKind.ClosestDst2)
		}

		guard, err := w.guard.CreateGhost(w.starter.Start(), o,
			w.nextGhostSeed())
		if err != nil {
			return fmt.Errorf("setGhostCount: %w", err)
		}

		hostile, err := w.hostile.CreateGhost(cell, o, w.nextGhostSeed())
		if err != nil {
			return fmt.Errorf("setGhostCount: %w", err)
		}

		w.guardGhosts = append(w.guardGhosts, guard)
		w.hostileGhosts = append(w.hostileGhosts, hostile)
	}

	if count != current {
		glog.V(1).Infof("Ghost count %d -> %d", current, count)
	}
	return nil
}

// SetGhostPreset sets the ghost count to the preset selected by digit
func (w *World) SetGhostPreset(digit int) error {
	if digit < 0 || digit > 9 {
		return fmt.Errorf("setGhostPreset: preset must be a digit (have %d)",
			digit)
	}
	return w.SetGhostCount(w.config.GhostPreset(digit))
}

func (w *World) nextGhostSeed() uint64 {
	seed := w.config.Seed + ghostSeed + w.ghostSeeds
	w.ghostSeeds++
	return seed
}

// GhostCount returns the number of ghost Guards, which equals the
// number of ghost Hostiles
func (w *World) GhostCount() int {
	return len(w.guardGhosts)
}

// GuardGhosts returns the ghost Guards
func (w *World) GuardGhosts() []*agent.Learner {
	return append([]*agent.Learner{}, w.guardGhosts...)
}

// HostileGhosts returns the ghost Hostiles
func (w *World) HostileGhosts() []*agent.Learner {
	return append([]*agent.Learner{}, w.hostileGhosts...)
}
