package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, after the config
file search and command line overrides, as YAML.

Config files are searched in this order:
  --config <path>
  ~/.blocks/configs/blocks.yaml
  ./configs/blocks.yaml
  built-in defaults

Examples:
  blocks config
  blocks config --rows 24 > ~/.blocks/configs/blocks.yaml
  blocks config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagShowDefaults {
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
