package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/A, Right/D   - Move
  Down/S            - Soft drop
  Up/W/X, Z         - Rotate clockwise, counter-clockwise
  Space             - Hard drop
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Examples:
  blocks play
  blocks play --seed 42 --fps 30
  blocks play --config ./my-blocks.yaml --log-file blocks.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Error("config rejected", "path", flagConfig, "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	blocks.SetConfig(cfg)

	game, err := registry.Create(blocks.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	if err := tui.Run(game, runCfg, logger); err != nil {
		logger.Error("game stopped", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
