package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/snake.yaml and backs up the embedded file.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title: "Snake",
		},
		Theme: ThemeConfig{
			BoardLight: "#ffc0cb",
			BoardDark:  "#ff69b4",
			Snake:      "#000000",
			Food:       "#99ff33",
			Text:       "#000000",
		},
		Controls: ControlsConfig{
			Up:    []string{"up"},
			Down:  []string{"down"},
			Left:  []string{"left"},
			Right: []string{"right"},
			Quit:  []string{"q", "esc", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
