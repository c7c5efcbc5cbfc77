package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/checker-snake/internal/config"
	"github.com/vovakirdan/checker-snake/internal/core"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"up", core.ActionUp},
		{"down", core.ActionDown},
		{"left", core.ActionLeft},
		{"right", core.ActionRight},
		{"q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"w", core.ActionNone},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tc.key)); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	controls := config.Default().Controls
	controls.Up = []string{"up", "W"}
	controls.Quit = []string{"Space"}
	km := NewKeyMap(controls)

	if got := km.MapKey(keyMsg("w")); got != core.ActionUp {
		t.Errorf("MapKey(w) = %v, expected Up", got)
	}
	if got := km.MapKey(keyMsg(" ")); got != core.ActionQuit {
		t.Errorf("MapKey(space) = %v, expected Quit", got)
	}
	if got := km.MapKey(keyMsg("q")); got != core.ActionNone {
		t.Errorf("MapKey(q) = %v, expected None after rebinding quit", got)
	}

	if h := km.Up.Help(); h.Key != "↑/w" || h.Desc != "up" {
		t.Errorf("Up help = %+v, expected ↑/w up", h)
	}
}
