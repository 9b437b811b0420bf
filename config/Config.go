// Package config provides the configuration of a bodyguard run.
// Configurations are plain values: they are JSON serializable and are
// passed explicitly to every component that needs them, so that a
// parameter sweep can build many worlds from modified copies of a
// single Config.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samuelfneumann/bodyguard/controller"
	"github.com/samuelfneumann/bodyguard/reward"
)

// VIPMode determines how the VIP moves
type VIPMode string

// Modes available for the VIP
const (
	Fixed  VIPMode = "Fixed"  // the VIP stays where it is
	Target VIPMode = "Target" // the VIP moves to an externally given cell
	Auto   VIPMode = "Auto"   // the VIP takes random steps
)

// Default values of a Config
const (
	DefaultGridW              = 10
	DefaultGridH              = 10
	DefaultDecisionInterval   = 0.1
	DefaultVIPEpisode         = 10.0
	DefaultHostileClosestDst2 = 2.0
	DefaultGhostCountInterval = 10
	DefaultGhostExploration   = 0.5
	DefaultSuffering          = reward.SufferingBaseline
	DefaultTickDelta          = 10.0
	DefaultIterationMax       = 1000
	DefaultGuardTableFile     = "guard.q"
	DefaultHostileTableFile   = "hostile.q"
)

// Config is the configuration of a single world
type Config struct {
	GridW int
	GridH int

	// DecisionInterval is the simulated time between two decisions of
	// a learning agent
	DecisionInterval float64

	// VIPEpisode is the number of decision intervals between two random
	// steps of the VIP in Auto mode
	VIPEpisode float64
	VIPMode    VIPMode

	Guard   controller.Config
	Hostile controller.Config

	// HostileClosestDst2 is the squared distance to the VIP that the
	// Hostile must always exceed
	HostileClosestDst2 float64

	GhostCount         int
	GhostCountInterval int // ghost count per preset digit
	GhostExploration   float64
	GhostFollowReward  bool

	// Suffering adjusts the reward that the Guard learns from by
	// Suffering - 26. The Guard's statistics are never adjusted.
	Suffering float64

	// IterationMax is the number of Guard decisions after which a world
	// is done. A world with IterationMax 0 never finishes on its own.
	IterationMax int

	// TickDelta is the simulated time that passes on each tick of a
	// headless run
	TickDelta float64

	UseSavedData     bool
	GuardTableFile   string
	HostileTableFile string

	// CheckpointEvery is the number of Guard decisions between
	// checkpoints of the canonical tables, 0 disables checkpointing
	CheckpointEvery int

	Seed uint64
}

// Default returns the default Config
func Default() Config {
	return Config{
		GridW:            DefaultGridW,
		GridH:            DefaultGridH,
		DecisionInterval: DefaultDecisionInterval,
		VIPEpisode:       DefaultVIPEpisode,
		VIPMode:          Fixed,
		Guard: controller.Config{
			Gamma:        0.2,
			Exploration:  0,
			FollowReward: true,
		},
		Hostile: controller.Config{
			Gamma:        0.8,
			Exploration:  0.4,
			FollowReward: true,
		},
		HostileClosestDst2: DefaultHostileClosestDst2,
		GhostCountInterval: DefaultGhostCountInterval,
		GhostExploration:   DefaultGhostExploration,
		GhostFollowReward:  true,
		Suffering:          DefaultSuffering,
		IterationMax:       DefaultIterationMax,
		TickDelta:          DefaultTickDelta,
		GuardTableFile:     DefaultGuardTableFile,
		HostileTableFile:   DefaultHostileTableFile,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.GridW <= 0 || c.GridH <= 0 {
		return fmt.Errorf("grid dimensions must be positive (have %d x %d)",
			c.GridW, c.GridH)
	}
	if c.DecisionInterval <= 0 {
		return fmt.Errorf("decision interval must be positive (have %v)",
			c.DecisionInterval)
	}
	if c.VIPEpisode <= 0 {
		return fmt.Errorf("vip episode must be positive (have %v)",
			c.VIPEpisode)
	}
	switch c.VIPMode {
	case Fixed, Target, Auto:
	default:
		return fmt.Errorf("no such vip mode %q", c.VIPMode)
	}

	if err := c.Guard.Validate(); err != nil {
		return fmt.Errorf("guard: %w", err)
	}
	if err := c.Hostile.Validate(); err != nil {
		return fmt.Errorf("hostile: %w", err)
	}

	if c.GhostCount < 0 {
		return fmt.Errorf("ghost count must be non-negative (have %d)",
			c.GhostCount)
	}
	if c.GhostCountInterval < 0 {
		return fmt.Errorf("ghost count interval must be non-negative "+
			"(have %d)", c.GhostCountInterval)
	}
	if c.GhostExploration < 0 || c.GhostExploration > 1 {
		return fmt.Errorf("ghost exploration must be in [0, 1] (have %v)",
			c.GhostExploration)
	}
	if c.IterationMax < 0 {
		return fmt.Errorf("iteration max must be non-negative (have %d)",
			c.IterationMax)
	}
	if c.TickDelta <= 0 {
		return fmt.Errorf("tick delta must be positive (have %v)",
			c.TickDelta)
	}
	if c.CheckpointEvery < 0 {
		return fmt.Errorf("checkpoint interval must be non-negative "+
			"(have %d)", c.CheckpointEvery)
	}
	if (c.UseSavedData || c.CheckpointEvery > 0) &&
		(c.GuardTableFile == "" || c.HostileTableFile == "") {
		return fmt.Errorf("table files must be named to save tables")
	}
	return nil
}

// SufferingOffset returns the amount subtracted from the reward that
// the Guard learns from
func (c Config) SufferingOffset() float64 {
	return reward.SufferingOffset(c.Suffering)
}

// GhostPreset returns the ghost count selected by preset digit n
func (c Config) GhostPreset(n int) int {
	return n * c.GhostCountInterval
}

// Load loads a Config from a JSON file. Fields missing from the file
// keep their default values.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("load: %w", err)
	}
	return c, nil
}

// Save saves the Config to a JSON file
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not encode config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("save: could not write config: %w", err)
	}
	return nil
}
