package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/checker-snake/internal/config"
	"github.com/vovakirdan/checker-snake/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Controls)
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		Up:    binding(c.Up, "up"),
		Down:  binding(c.Down, "down"),
		Left:  binding(c.Left, "left"),
		Right: binding(c.Right, "right"),
		Quit:  binding(c.Quit, "quit"),
	}
}

// binding translates config key names to Bubble Tea key strings.
func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names))
	labels := make([]string, 0, len(names))
	for _, n := range names {
		k := teaKeyName(n)
		keys = append(keys, k)
		labels = append(labels, keyLabel(k))
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// teaKeyName maps a config key name to the string tea.KeyMsg reports.
func teaKeyName(name string) string {
	n := config.NormalizeKey(name)
	if n == "space" {
		return " "
	}
	return n
}

var arrowLabels = map[string]string{
	"up":    "↑",
	"down":  "↓",
	"left":  "←",
	"right": "→",
	" ":     "space",
}

func keyLabel(k string) string {
	if l, ok := arrowLabels[k]; ok {
		return l
	}
	return k
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
