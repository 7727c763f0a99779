// shooter is a top-down arcade shooter played in the terminal.
//
// Usage:
//
//	shooter                  - Play the game
//	shooter play             - Play the game
//	shooter list             - List available games
//	shooter config           - Print the effective game configuration
//	shooter assets           - Report which sprites and sounds were found
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--assets <dir>        - Asset directory (default: assets)
//	--mute                - Disable sound
//	--log <path>          - Write logs to a file
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagMute       bool
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Top-down arcade shooter in your terminal",
	Long: `Fly a ship along the bottom of the screen and shoot down descending
enemies while dodging their shots and falling asteroids. Destroy 50
enemies to win.

Available commands:
  play     - Play the game (default)
  list     - Show all available games
  config   - Print the effective configuration as YAML
  assets   - Report which sprites and sounds were found

Examples:
  shooter
  shooter --difficulty hard
  shooter --assets ./my-assets --mute
  shooter config --difficulty easy > shooter.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagAssets, "assets", "assets", "Directory holding sprites and sounds")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound")
	flags.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	flags.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(assetsCmd)
}
