package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games and their difficulty phases",
	Long: `Shows the registered games and the difficulty phases the current
configuration and --difficulty preset would play through.

Examples:
  shooter list
  shooter list --difficulty fixed`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, g := range games {
		fmt.Printf("%s (%s)\n", g.Title, g.ID)
	}
	fmt.Printf("Win at %d kills, %d health, %s difficulty\n\n",
		cfg.World.WinKills, cfg.Player.MaxHealth, presetName(flagDifficulty))

	printPhases(os.Stdout, cfg)

	fmt.Println()
	fmt.Println("Run 'shooter play' to start.")
}

// printPhases prints the phase table as the game selects it from kills.
func printPhases(w io.Writer, cfg config.ShooterConfig) {
	table := config.NewPhaseTable(cfg)

	maxNameLen := len("Phase")
	for _, ph := range cfg.Phases {
		maxNameLen = max(maxNameLen, len(ph.Name))
	}

	fmt.Fprintf(w, "  %-*s  %-9s  %5s  %8s  %5s  %10s\n", maxNameLen, "Phase", "Kills", "Speed", "Asteroid", "Spawn", "Shot 1-in")
	fmt.Fprintf(w, "  %-*s  %-9s  %5s  %8s  %5s  %10s\n", maxNameLen, "-----", "-----", "-----", "--------", "-----", "---------")

	if !cfg.Difficulty.Progression {
		ph := table.For(0)
		fmt.Fprintf(w, "  %-*s  %-9s  %5d  %8d  %5d  %10d\n", maxNameLen, ph.Name, "all",
			ph.EnemySpeed, table.AsteroidSpeed(ph), ph.SpawnInterval, ph.ShotChance+1)
		return
	}

	low := 0
	for i, ph := range cfg.Phases {
		kills := fmt.Sprintf("%d-%d", low, ph.MaxKills)
		if i == len(cfg.Phases)-1 {
			kills = fmt.Sprintf("%d+", low)
		}
		fmt.Fprintf(w, "  %-*s  %-9s  %5d  %8d  %5d  %10d\n", maxNameLen, ph.Name, kills,
			ph.EnemySpeed, table.AsteroidSpeed(ph), ph.SpawnInterval, ph.ShotChance+1)
		low = ph.MaxKills + 1
	}
}

func presetName(preset string) string {
	if preset == "" {
		return "config"
	}
	return preset
}
