package controller

import "fmt"

const (
	// DefaultGamma is the discount used when none is configured
	DefaultGamma float64 = 0.1

	// DefaultExploration is the exploration probability used when none
	// is configured
	DefaultExploration float64 = 0.1
)

// Config represents a configuration for a QController
type Config struct {
	Gamma       float64 // discount factor
	Exploration float64 // probability of selecting a random action

	// FollowReward determines whether the greedy action maximizes
	// (true) or minimizes (false) the action values
	FollowReward bool
}

// DefaultConfig returns the default QController configuration
func DefaultConfig() Config {
	return Config{
		Gamma:        DefaultGamma,
		Exploration:  DefaultExploration,
		FollowReward: true,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0, 1] (have %v)", c.Gamma)
	}
	if c.Exploration < 0 || c.Exploration > 1 {
		return fmt.Errorf("exploration must be in [0, 1] (have %v)",
			c.Exploration)
	}
	return nil
}

// Override configures a QController that is linked to another
// QController's table. A nil Gamma or Exploration is inherited from the
// linked controller. FollowReward is always set explicitly.
type Override struct {
	Gamma        *float64
	Exploration  *float64
	FollowReward bool
}

// apply returns the Config resulting from overriding base
func (o Override) apply(base Config) Config {
	c := base
	if o.Gamma != nil {
		c.Gamma = *o.Gamma
	}
	if o.Exploration != nil {
		c.Exploration = *o.Exploration
	}
	c.FollowReward = o.FollowReward
	return c
}
