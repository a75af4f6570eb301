// Package config provides YAML-based game configuration loading for the
// blocks platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// minBoardSide is the smallest board edge that fits a 4x4 shape box.
const minBoardSide = 4

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the playfield size. It is read once when a game is
// constructed; a running game never changes size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines how often the platform steps the simulation.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Simulation ticks per second
}

// DisplayConfig toggles optional render hints.
type DisplayConfig struct {
	Ghost   bool `yaml:"ghost"`   // Draw where the piece would land
	Preview bool `yaml:"preview"` // Draw the next piece panel
}

// Validate checks that the config describes a playable game.
func (c BlocksConfig) Validate() error {
	if c.Board.Rows < minBoardSide || c.Board.Cols < minBoardSide {
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, minBoardSide, minBoardSide, c.Board.Rows, c.Board.Cols)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d",
			ErrInvalidConfig, c.Timing.TickRate)
	}
	return nil
}
