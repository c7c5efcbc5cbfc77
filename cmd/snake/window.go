package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/checker-snake/internal/app"
	"github.com/vovakirdan/checker-snake/internal/core"
	"github.com/vovakirdan/checker-snake/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 600x600 window and play.

The snake moves ten times per second. Closing the window or pressing a
quit key ends the game at once. After a crash the final score is shown
for two seconds before the window closes.

Examples:
  snake window
  snake window --seed 42`,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closeLog, err := app.NewLogger(s.Config.Log, os.Stderr, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	keys, skipped := gui.NewKeyMap(s.Config.Controls)
	for _, name := range skipped {
		logger.Warn("key has no window equivalent", "key", name)
	}
	logger.Debug("config loaded", "source", s.Source)

	opts := gui.DefaultOptions()
	if s.Config.Window.Title != "" {
		opts.Title = s.Config.Window.Title
	}
	opts.Theme = s.Theme
	opts.Keys = keys
	opts.Logger = logger
	status, err := gui.Run(core.RuntimeConfig{Seed: flagSeed}, opts)
	if err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("game ended", "score", status.Score, "game_over", status.GameOver)
	return nil
}
