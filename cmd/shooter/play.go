package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

const gameID = "shooter"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Arrows/WASD  - Move
  Space/F      - Fire
  Enter/Click  - Start / continue
  Esc/P        - Pause and resume
  R            - Restart (paused or after the run ended)
  B            - Back to title (paused)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health and faster fire
  normal - Default tuning with phase progression
  hard   - Less health and harder asteroids
  fixed  - No progression, stays in the first phase

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --seed 42 --fps 30
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// loadConfig loads the game config and applies the difficulty preset.
func loadConfig() (config.ShooterConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.ShooterConfig{}, err
	}
	if err := config.Validate(cfg); err != nil {
		return config.ShooterConfig{}, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sprites := assets.Load(flagAssets, logger)

	var player audio.Player = audio.Silent{}
	if !flagMute {
		player, _ = audio.Open(flagAssets, logger)
	}
	defer player.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID, registry.Options{Config: gameCfg, Sprites: sprites})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "difficulty", flagDifficulty, "assets", flagAssets, "size", fmt.Sprintf("%dx%d", width, height))
	quietForTUI(logger)

	runErr := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		HoldTicks: gameCfg.Input.HoldTicks,
		Player:    player,
		Logger:    logger,
	})

	if runErr != nil {
		player.Close()
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
