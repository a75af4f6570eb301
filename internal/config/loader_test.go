package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultBlocksConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBlocksConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  rows: 24\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Board.Rows != 24 {
		t.Errorf("Rows = %d, expected 24", cfg.Board.Rows)
	}
	if cfg.Board.Cols != 10 {
		t.Errorf("Cols = %d, expected default 10", cfg.Board.Cols)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", cfg.Timing.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *BlocksConfig)
		wantErr bool
	}{
		{"defaults", func(*BlocksConfig) {}, false},
		{"zero rows", func(c *BlocksConfig) { c.Board.Rows = 0 }, true},
		{"negative cols", func(c *BlocksConfig) { c.Board.Cols = -3 }, true},
		{"too narrow", func(c *BlocksConfig) { c.Board.Cols = 3 }, true},
		{"smallest board", func(c *BlocksConfig) { c.Board.Rows, c.Board.Cols = 4, 4 }, false},
		{"zero tick rate", func(c *BlocksConfig) { c.Timing.TickRate = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadBlocksCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("board:\n  rows: 16\n  cols: 8\ndisplay:\n  ghost: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Board.Rows != 16 || cfg.Board.Cols != 8 {
		t.Errorf("board = %dx%d, expected 16x8", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Display.Ghost {
		t.Error("ghost should be disabled by the custom file")
	}
	if !cfg.Display.Preview {
		t.Error("preview should keep its default")
	}
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlocks(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBlocks(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := Marshal(DefaultBlocksConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, key := range []string{"rows: 20", "cols: 10", "tick_rate: 60", "ghost: true"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("Marshal() output missing %q:\n%s", key, data)
		}
	}
}
