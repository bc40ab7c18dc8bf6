package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/games/doodle"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Enter      - Start
  P                - Pause
  R                - Restart
  I                - Log the platform odds
  Esc/B            - Scores (while paused or after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Platform odds shift every 1000 points
  normal - Platform odds shift every 500 points
  hard   - Platform odds shift every 250 points
  fixed  - Odds never change

Examples:
  doodle play
  doodle play --difficulty easy
  doodle play --seed 42 --fps 30
  doodle play --config ./my-doodle.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands the game flags to the doodle package before creation.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	doodle.SetConfigPath(flagConfig)
	doodle.SetDifficultyPreset(flagDifficulty)
	return setupHighScore()
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("doodle")
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
