// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
// It handles the tick loop, input mapping and drawing the board with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/checker-snake/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// holdDoneMsg ends the game-over display.
type holdDoneMsg struct{}

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(core.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdCmd fires once the game-over screen has been shown long enough.
func holdCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return holdDoneMsg{}
	})
}
