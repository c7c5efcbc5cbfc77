package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/checker-snake/internal/core"
)

// glyphStyle is the part of a glyph that decides its styling.
type glyphStyle struct {
	fg, bg core.Color
	bold   bool
}

func (gs glyphStyle) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(gs.fg.Hex())).
		Background(lipgloss.Color(gs.bg.Hex())).
		Bold(gs.bold)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[glyphStyle]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			g := s.GetGlyph(x, y)
			start := glyphStyle{fg: g.Fg, bg: g.Bg, bold: g.Bold}

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				g = s.GetGlyph(x, y)
				if (glyphStyle{fg: g.Fg, bg: g.Bg, bold: g.Bold}) != start {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			st, ok := styles[start]
			if !ok {
				st = start.style()
				styles[start] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}
