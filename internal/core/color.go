package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a hex color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque 24-bit RGB color.
// It implements image/color.Color so frontends can hand it straight to
// graphics APIs, and Hex() for terminal styling.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements image/color.Color. Alpha is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses "#rrggbb" or "#rgb", with or without the leading '#'.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 3 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// Palette colors of the default theme.
var (
	ColorPink     = RGB(255, 192, 203)
	ColorDarkPink = RGB(255, 105, 180)
	ColorLime     = RGB(153, 255, 51)
	ColorBlack    = RGB(0, 0, 0)
	ColorWhite    = RGB(255, 255, 255)
)
