package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	path := writeConfig(t, "board:\n  rows: 18\n  cols: 8\n")

	if err := rootCmd.ParseFlags([]string{"--config", path, "--cols", "12", "--fps", "30"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	t.Cleanup(func() {
		flagConfig, flagCols, flagFPS = "", 0, 60
		for _, name := range []string{"config", "cols", "fps"} {
			rootCmd.Flags().Lookup(name).Changed = false
		}
	})

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Board.Rows != 18 {
		t.Errorf("Expected rows from file (18), got %d", cfg.Board.Rows)
	}
	if cfg.Board.Cols != 12 {
		t.Errorf("Expected cols from flag (12), got %d", cfg.Board.Cols)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("Expected tick rate from flag (30), got %d", cfg.Timing.TickRate)
	}
}

func TestLoadConfigRejectsBadOverride(t *testing.T) {
	path := writeConfig(t, "timing:\n  tick_rate: 50\n")

	if err := rootCmd.ParseFlags([]string{"--config", path, "--rows", "2"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	t.Cleanup(func() {
		flagConfig, flagRows = "", 0
		for _, name := range []string{"config", "rows"} {
			rootCmd.Flags().Lookup(name).Changed = false
		}
	})

	_, err := loadConfig(rootCmd)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
