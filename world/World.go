// Package world implements a bodyguard world: a VIP, a Guard that
// learns to protect it, a Hostile that learns to threaten it, and any
// number of ghost Guards and Hostiles which learn into the tables of
// the canonical agents.
package world

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/samuelfneumann/bodyguard/agent"
	"github.com/samuelfneumann/bodyguard/config"
	"github.com/samuelfneumann/bodyguard/controller"
	"github.com/samuelfneumann/bodyguard/grid"
)

// Seed offsets of the random number generators of a world
const (
	vipSeed uint64 = iota
	guardSeed
	hostileSeed
	starterSeed
	ghostSeed
)

// World is a single bodyguard simulation
type World struct {
	config config.Config
	grid   grid.Grid

	vip         *agent.VIP
	guard       *agent.Learner
	hostile     *agent.Learner
	hostileKind *agent.Hostile

	guardGhosts   []*agent.Learner
	hostileGhosts []*agent.Learner
	starter       *grid.Starter
	ghostSeeds    uint64 // number of ghost seeds used
}

// New returns a new World configured by c. The VIP starts at the
// center of the grid, the Guard at the origin and the Hostile at the
// opposite corner.
func New(c config.Config) (*World, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	g, err := grid.New(c.GridW, c.GridH)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	vip, err := agent.NewVIP(g, g.Center(), c.VIPMode,
		c.VIPEpisode*c.DecisionInterval, c.Seed+vipSeed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create VIP: %w", err)
	}

	// The Hostile is given to the Guard once it exists
	guardKind := &agent.Guard{VIP: vip}
	guard, err := agent.New("Guard", g, grid.Cell{}, guardKind,
		learnerConfig(c, c.Guard, c.GuardTableFile), c.Seed+guardSeed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create guard: %w", err)
	}

	hostileKind := &agent.Hostile{
		VIP:         vip,
		Guard:       guard,
		ClosestDst2: c.HostileClosestDst2,
	}
	hostile, err := agent.New("Hostile", g, g.Corner(), hostileKind,
		learnerConfig(c, c.Hostile, c.HostileTableFile), c.Seed+hostileSeed)
	if err != nil {
		return nil, fmt.Errorf("new: could not create hostile: %w", err)
	}
	guardKind.Hostile = hostile

	w := &World{
		config:      c,
		grid:        g,
		vip:         vip,
		guard:       guard,
		hostile:     hostile,
		hostileKind: hostileKind,
		starter:     grid.NewStarter(g, c.Seed+starterSeed),
	}

	if err := w.SetGhostCount(c.GhostCount); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	glog.Infof("Created %dx%d world with %d ghosts", g.W, g.H, c.GhostCount)
	return w, nil
}

// learnerConfig returns the configuration of a canonical learner
func learnerConfig(c config.Config, q controller.Config,
	tableFile string) agent.Config {
	lc := agent.Config{
		Controller:      q,
		Interval:        c.DecisionInterval,
		SufferingOffset: c.SufferingOffset(),
	}
	if c.UseSavedData {
		lc.TableFile = tableFile
	}
	return lc
}

// Update advances the world by dt. Hostile ghosts are updated first,
// then Guard ghosts, then the Hostile, the Guard and finally the VIP.
// Update returns whether the Guard has reached the maximum number of
// decisions.
func (w *World) Update(dt float64) bool {
	for _, ghost := range w.hostileGhosts {
		ghost.Update(dt)
	}
	for _, ghost := range w.guardGhosts {
		ghost.Update(dt)
	}

	w.hostile.Update(dt)
	w.guard.Update(dt)
	w.vip.Update(dt)

	return w.Done()
}

// Done returns whether the Guard has reached the maximum number of
// decisions
func (w *World) Done() bool {
	limit := w.config.IterationMax
	return limit > 0 && w.guard.IterationCount() >= limit
}

// Close ends the world. The statistics of the world are logged and
// returned. If the world uses saved data, the tables of the Hostile and
// then the Guard are saved.
func (w *World) Close() (Stats, error) {
	stats := w.Stats()
	glog.Info(stats.String())

	if !w.config.UseSavedData {
		return stats, nil
	}

	if err := w.hostile.Dump(w.config.HostileTableFile); err != nil {
		return stats, fmt.Errorf("close: %w", err)
	}
	if err := w.guard.Dump(w.config.GuardTableFile); err != nil {
		return stats, fmt.Errorf("close: %w", err)
	}
	return stats, nil
}

// Fitness returns the cumulative average reward of the Guard
func (w *World) Fitness() float64 {
	return w.guard.Monitor().CumulativeAverage()
}

// CellText returns the values of the Guard's actions if it stood at
// cell, one per line in Up, Down, Left, Right order
func (w *World) CellText(cell grid.Cell) string {
	qs := w.guard.ActionValuesAt(cell)
	return fmt.Sprintf("%.3g\n%.3g\n%.3g\n%.3g\n", qs[grid.Up],
		qs[grid.Down], qs[grid.Left], qs[grid.Right])
}

// SetVIPTarget sets the cell the VIP moves to when in Target mode
func (w *World) SetVIPTarget(cell grid.Cell) {
	w.vip.SetTarget(cell)
}

// NextVIPMode cycles the mode of the VIP
func (w *World) NextVIPMode() config.VIPMode {
	return w.vip.NextMode()
}

// Config returns the configuration of the world
func (w *World) Config() config.Config {
	return w.config
}

// Grid returns the grid of the world
func (w *World) Grid() grid.Grid {
	return w.grid
}

// VIP returns the VIP
func (w *World) VIP() *agent.VIP {
	return w.vip
}

// Guard returns the canonical Guard
func (w *World) Guard() *agent.Learner {
	return w.guard
}

// Hostile returns the canonical Hostile
func (w *World) Hostile() *agent.Learner {
	return w.hostile
}
