package core

import (
	"strings"
)

// Glyph is one character cell of a Screen.
type Glyph struct {
	Rune rune
	Fg   Color
	Bg   Color
	Bold bool
}

// blank is the glyph a cleared screen is filled with.
var blank = Glyph{Rune: ' ', Fg: ColorWhite, Bg: ColorBlack}

// Screen is a 2D character buffer for rendering in a terminal.
// It decouples game rendering from the terminal, allowing drawing with
// simple rune and color operations while the platform handles display.
type Screen struct {
	width  int
	height int
	cells  [][]Glyph
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Glyph, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Glyph, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with blank glyphs.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetGlyph replaces the whole glyph at the given position.
func (s *Screen) SetGlyph(x, y int, g Glyph) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = g
}

// GetGlyph returns the glyph at the given position.
// Returns a blank glyph for out-of-bounds coordinates.
func (s *Screen) GetGlyph(x, y int) Glyph {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawStyledText writes text with a foreground color, keeping the background.
func (s *Screen) DrawStyledText(x, y int, text string, fg Color, bold bool) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			g := &s.cells[y][x+i]
			g.Rune = r
			g.Fg = fg
			g.Bold = bold
		}
		i++
	}
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, g := range s.cells[y] {
		sb.WriteRune(g.Rune)
	}
	return sb.String()
}
