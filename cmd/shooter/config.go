package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Prints the configuration the game would run with, after the config
search order and the difficulty preset are applied.

Search order:
  1. --config <path>
  2. ~/.tui-shooter/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. built-in defaults

Examples:
  shooter config
  shooter config --difficulty hard
  shooter config > ~/.tui-shooter/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
