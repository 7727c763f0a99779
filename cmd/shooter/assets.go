package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/audio"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Report which sprites and sounds were found",
	Long: `Loads every sprite and sound from the asset directory and reports
which ones will be used and which fall back to built-in shapes and tones.

Sprites: player.txt enemy.txt asteroid.txt shot.txt enemy_shot.txt
         health.txt background.txt
Sounds:  shoot.wav hit.wav lose.wav victory.wav`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	quiet := log.New(io.Discard)
	sprites := assets.Load(flagAssets, quiet)
	bank := audio.LoadBank(flagAssets, quiet)

	fmt.Printf("Asset directory: %s\n\n", flagAssets)
	printReport("Sprites", sprites.Report(), "fallback shape")
	fmt.Println()
	printReport("Sounds", bank.Report(), "synthesized tone")
}

func printReport(title string, report []assets.Status, fallback string) {
	fmt.Println(title + ":")

	maxNameLen := 4
	for _, s := range report {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	for _, s := range report {
		if s.Loaded {
			fmt.Printf("  %-*s  ok\n", maxNameLen, s.Name)
			continue
		}
		fmt.Printf("  %-*s  %s (%v)\n", maxNameLen, s.Name, fallback, s.Err)
	}
}
