package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/checker-snake/internal/app"
	"github.com/vovakirdan/checker-snake/internal/core"
	"github.com/vovakirdan/checker-snake/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Each board cell is two characters wide, so the
terminal needs at least 40x21 characters. A smaller terminal pauses the
game until it is resized.

Logs go to log.file from the config; without one they are discarded.

Examples:
  snake term
  snake term --seed 42`,
	RunE: runTerm,
}

func runTerm(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	// The alt screen owns the terminal, so only a log file gets output
	logger, closeLog, err := app.NewLogger(s.Config.Log, io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size early for the size check
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if cfg.ScreenW < core.BoardCols || cfg.ScreenH < core.BoardRows+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n",
			cfg.ScreenW, cfg.ScreenH, core.BoardCols, core.BoardRows+1)
	}
	opts := tui.Options{
		Theme:  s.Theme,
		Keys:   tui.NewKeyMap(s.Config.Controls),
		Logger: logger,
	}

	status, err := tui.Run(cfg, opts)
	if err != nil {
		logger.Error("game failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	fmt.Printf("Score: %d\n", status.Score)
	return nil
}
