package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(BoardCols, BoardRows)

	if s.Width() != BoardCols || s.Height() != BoardRows {
		t.Errorf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), BoardCols, BoardRows)
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if g := s.GetGlyph(x, y); g != blank {
				t.Fatalf("glyph (%d, %d) = %+v, expected blank", x, y, g)
			}
		}
	}
}

func TestScreenGlyphs(t *testing.T) {
	s := NewScreen(4, 2)
	g := Glyph{Rune: '#', Fg: ColorBlack, Bg: ColorPink, Bold: true}
	s.SetGlyph(1, 1, g)

	if got := s.GetGlyph(1, 1); got != g {
		t.Errorf("GetGlyph(1, 1) = %+v, expected %+v", got, g)
	}

	// Out of bounds writes are dropped and reads come back blank
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetGlyph(p[0], p[1], g)
		if got := s.GetGlyph(p[0], p[1]); got != blank {
			t.Errorf("GetGlyph(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(3, 3)
	for y := range 3 {
		for x := range 3 {
			s.SetGlyph(x, y, Glyph{Rune: ' ', Bg: ColorLime})
		}
	}

	s.Clear()

	for y := range 3 {
		for x := range 3 {
			if g := s.GetGlyph(x, y); g.Bg != ColorBlack {
				t.Errorf("glyph (%d, %d) bg = %v after Clear, expected %v", x, y, g.Bg, ColorBlack)
			}
		}
	}
}

func TestScreenDrawStyledText(t *testing.T) {
	s := NewScreen(10, 1)
	s.SetGlyph(2, 0, Glyph{Rune: ' ', Bg: ColorDarkPink})
	s.DrawStyledText(2, 0, "ab", ColorBlack, true)

	g := s.GetGlyph(2, 0)
	if g.Rune != 'a' || g.Fg != ColorBlack || !g.Bold {
		t.Errorf("DrawStyledText glyph = %+v", g)
	}
	if g.Bg != ColorDarkPink {
		t.Errorf("DrawStyledText should keep background %v, got %v", ColorDarkPink, g.Bg)
	}
	if s.Row(0) != "  ab      " {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "  ab      ")
	}
}

func TestScreenDrawStyledTextClips(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawStyledText(3, 1, "Score", ColorBlack, false)
	s.DrawStyledText(-2, 0, "GAME", ColorBlack, false)

	tests := []struct {
		y        int
		expected string
	}{
		{0, "ME   "},
		{1, "   Sc"},
		{-1, "     "}, // out of range rows read as blank
		{2, "     "},
	}
	for _, tc := range tests {
		if got := s.Row(tc.y); got != tc.expected {
			t.Errorf("Row(%d) = %q, expected %q", tc.y, got, tc.expected)
		}
	}
}
