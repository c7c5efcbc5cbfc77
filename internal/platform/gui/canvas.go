package gui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/vovakirdan/checker-snake/internal/core"
)

// Fonts holds the faces for every core.FontSize.
type Fonts struct {
	score  *text.GoTextFace
	banner *text.GoTextFace
}

// LoadFonts parses the bundled Go Bold font.
func LoadFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}
	return &Fonts{
		score:  &text.GoTextFace{Source: src, Size: core.FontScore.Points()},
		banner: &text.GoTextFace{Source: src, Size: core.FontBanner.Points()},
	}, nil
}

func (f *Fonts) face(size core.FontSize) *text.GoTextFace {
	if size == core.FontBanner {
		return f.banner
	}
	return f.score
}

// Canvas draws onto an Ebitengine image.
type Canvas struct {
	dst   *ebiten.Image
	fonts *Fonts
}

// NewCanvas wraps dst for one frame.
func NewCanvas(dst *ebiten.Image, fonts *Fonts) *Canvas {
	return &Canvas{dst: dst, fonts: fonts}
}

// FillRect fills r with a solid color. Cells are pixel aligned, so no
// antialiasing is needed.
func (c *Canvas) FillRect(r core.Rect, clr core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, size core.FontSize, clr core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.fonts.face(size), op)
}

// DrawTextCentered centers text horizontally on the playfield.
func (c *Canvas) DrawTextCentered(y int, s string, size core.FontSize, clr core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(core.ScreenWidth)/2, float64(y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(c.dst, s, c.fonts.face(size), op)
}
