package snake

import (
	"fmt"

	"github.com/vovakirdan/checker-snake/internal/config"
	"github.com/vovakirdan/checker-snake/internal/core"
)

// ThemeFromConfig parses the configured hex colors into a Theme.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	var theme Theme
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"board_light", tc.BoardLight, &theme.BoardLight},
		{"board_dark", tc.BoardDark, &theme.BoardDark},
		{"snake", tc.Snake, &theme.Snake},
		{"food", tc.Food, &theme.Food},
		{"text", tc.Text, &theme.Text},
	}
	for _, f := range fields {
		c, err := core.ParseHex(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("snake: theme.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return theme, nil
}
