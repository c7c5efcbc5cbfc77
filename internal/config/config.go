// Package config provides YAML-based configuration loading for the game:
// window title, colors, key bindings, logging and the SSH server.
package config

import (
	"errors"
	"time"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full configuration file.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Theme    ThemeConfig    `yaml:"theme"`
	Controls ControlsConfig `yaml:"controls"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
}

// WindowConfig defines the graphics window.
type WindowConfig struct {
	Title string `yaml:"title"`
}

// ThemeConfig holds colors as "#rrggbb" strings.
type ThemeConfig struct {
	BoardLight string `yaml:"board_light"`
	BoardDark  string `yaml:"board_dark"`
	Snake      string `yaml:"snake"`
	Food       string `yaml:"food"`
	Text       string `yaml:"text"`
}

// ControlsConfig lists key names per action.
type ControlsConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty: stderr (window, serve) or discarded (term)
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty: ~/.snake/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
