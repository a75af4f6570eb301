package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default configuration: the classic 20x10
// playfield stepped at 60 ticks per second.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Display: DisplayConfig{
			Ghost:   true,
			Preview: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlocksYAML
}
