package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/checker-snake/internal/config"
	"github.com/vovakirdan/checker-snake/internal/core"
)

func TestThemeFromDefaultConfig(t *testing.T) {
	theme, err := ThemeFromConfig(config.Default().Theme)
	if err != nil {
		t.Fatalf("ThemeFromConfig() failed: %v", err)
	}
	if theme != DefaultTheme() {
		t.Errorf("theme = %+v, expected %+v", theme, DefaultTheme())
	}
}

func TestThemeFromConfigBadColor(t *testing.T) {
	tc := config.Default().Theme
	tc.Food = "green"

	_, err := ThemeFromConfig(tc)
	if !errors.Is(err, core.ErrInvalidColor) {
		t.Errorf("error = %v, expected ErrInvalidColor", err)
	}
}
