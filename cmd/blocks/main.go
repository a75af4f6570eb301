// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks                   - Play (same as "blocks play")
//	blocks play              - Play
//	blocks list              - List registered games
//	blocks config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Load configuration from a YAML file
//	--rows, --cols <n>    - Override the board size
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagRows     int
	flagCols     int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks is a falling-block puzzle game that runs in your terminal.
Complete rows to clear them; the game ends when the stack reaches the top.

Available commands:
  play     - Start a game (default)
  list     - Show registered games
  config   - Print the effective configuration

Examples:
  blocks
  blocks play --seed 42
  blocks play --rows 24 --cols 12
  blocks config --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.IntVar(&flagRows, "rows", 0, "Board rows (overrides config)")
	flags.IntVar(&flagCols, "cols", 0, "Board columns (overrides config)")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
