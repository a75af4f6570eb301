package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

// loadConfig resolves the effective configuration: the config file search
// order first, then any board or tick rate flags set on the command line.
func loadConfig(cmd *cobra.Command) (config.BlocksConfig, error) {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Board.Cols = flagCols
	}
	if flags.Changed("fps") {
		cfg.Timing.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
