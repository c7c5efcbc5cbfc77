package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/checker-snake/internal/core"
)

// Source names reported by Load for the embedded defaults.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// It returns the config and the path it came from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory.
	// A broken file here is an error rather than a silent fallback.
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// DataDir returns ~/.snake, the directory for the default host key.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".snake"), nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "fatal": true}

// Validate checks colors, key bindings and the log level.
func (c Config) Validate() error {
	colors := map[string]string{
		"board_light": c.Theme.BoardLight,
		"board_dark":  c.Theme.BoardDark,
		"snake":       c.Theme.Snake,
		"food":        c.Theme.Food,
		"text":        c.Theme.Text,
	}
	for name, hex := range colors {
		if _, err := core.ParseHex(hex); err != nil {
			return fmt.Errorf("%w: theme.%s: %w", ErrInvalidConfig, name, err)
		}
	}

	bound := make(map[string]string)
	for action, keys := range c.Controls.ByAction() {
		if len(keys) == 0 {
			return fmt.Errorf("%w: controls.%s has no keys", ErrInvalidConfig, action)
		}
		for _, k := range keys {
			k = NormalizeKey(k)
			if k == "" {
				return fmt.Errorf("%w: controls.%s has an empty key name", ErrInvalidConfig, action)
			}
			if other, dup := bound[k]; dup && other != action {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, k, other, action)
			}
			bound[k] = action
		}
	}

	if !logLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ByAction returns the key lists keyed by action name.
func (c ControlsConfig) ByAction() map[string][]string {
	return map[string][]string{
		"up":    c.Up,
		"down":  c.Down,
		"left":  c.Left,
		"right": c.Right,
		"quit":  c.Quit,
	}
}

// NormalizeKey lowercases a key name and trims spaces.
func NormalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
