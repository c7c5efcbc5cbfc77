// Package app turns the config file and command-line overrides into what the
// frontends run with.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/checker-snake/internal/config"
	"github.com/vovakirdan/checker-snake/internal/games/snake"
)

// Settings is everything a frontend needs from the config file and flags.
type Settings struct {
	Config config.Config
	Source string // Where the config was loaded from
	Theme  snake.Theme
}

// Overrides are command-line values that win over the config file.
type Overrides struct {
	ConfigPath string
	LogLevel   string
}

// Load loads the config and applies the overrides.
func Load(o Overrides) (Settings, error) {
	cfg, source, err := config.Load(o.ConfigPath)
	if err != nil {
		return Settings{}, fmt.Errorf("load config: %w", err)
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}

	theme, err := snake.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return Settings{}, err
	}
	return Settings{Config: cfg, Source: source, Theme: theme}, nil
}

// NewLogger creates a logger writing to log.file when set, otherwise to
// fallback. The returned close function releases the log file.
func NewLogger(lc config.LogConfig, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", lc.Level, err)
	}

	w := fallback
	closeFn := func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
