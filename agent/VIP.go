package agent

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/samuelfneumann/bodyguard/config"
	"github.com/samuelfneumann/bodyguard/grid"
)

// VIP is the agent protected by the Guard. The VIP does not learn: it
// either stays where it is, moves to a target cell, or takes random
// steps, depending on its mode.
type VIP struct {
	Body
	mode    config.VIPMode
	timer   *Timer
	stepper *grid.Stepper
	target  *grid.Cell
}

// NewVIP returns a new VIP at cell. In Auto mode, the VIP takes a
// random step every interval.
func NewVIP(g grid.Grid, cell grid.Cell, mode config.VIPMode,
	interval float64, seed uint64) (*VIP, error) {
	if !g.Contains(cell) {
		return nil, fmt.Errorf("newVIP: cell %v outside of grid %dx%d", cell,
			g.W, g.H)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("newVIP: interval must be positive (have %v)",
			interval)
	}
	if !validMode(mode) {
		return nil, fmt.Errorf("newVIP: no such mode %q", mode)
	}

	return &VIP{
		Body:    NewBody(g, cell),
		mode:    mode,
		timer:   NewTimer(interval, false),
		stepper: grid.NewStepper(seed),
	}, nil
}

func validMode(mode config.VIPMode) bool {
	switch mode {
	case config.Fixed, config.Target, config.Auto:
		return true
	}
	return false
}

// Update advances the VIP by dt
func (v *VIP) Update(dt float64) {
	v.timer.Update(dt)

	switch v.mode {
	case config.Target:
		if v.target != nil {
			v.MoveTo(*v.target, nil)
			v.target = nil
		}

	case config.Auto:
		if v.timer.Finished() {
			v.timer.Reset()
			v.MoveTo(v.cell.Add(v.stepper.Step()), nil)
		}
	}
}

// SetTarget sets the cell that the VIP moves to on its next update.
// The target is ignored unless the VIP is in Target mode.
func (v *VIP) SetTarget(cell grid.Cell) {
	if v.mode != config.Target {
		return
	}
	v.target = &cell
}

// Mode returns the mode of the VIP
func (v *VIP) Mode() config.VIPMode {
	return v.mode
}

// SetMode sets the mode of the VIP
func (v *VIP) SetMode(mode config.VIPMode) error {
	if !validMode(mode) {
		return fmt.Errorf("setMode: no such mode %q", mode)
	}
	v.mode = mode
	v.target = nil
	return nil
}

// NextMode cycles the mode of the VIP through Fixed, Target and Auto
// and returns the new mode
func (v *VIP) NextMode() config.VIPMode {
	switch v.mode {
	case config.Fixed:
		v.mode = config.Target
	case config.Target:
		v.mode = config.Auto
	default:
		v.mode = config.Fixed
	}
	v.target = nil

	glog.Infof("VIP mode is now %v", v.mode)
	return v.mode
}
