package core

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		ok       bool
	}{
		{"#ffc0cb", ColorPink, true},
		{"FF69B4", ColorDarkPink, true},
		{" #99ff33 ", ColorLime, true},
		{"#fff", ColorWhite, true},
		{"000", ColorBlack, true},
		{"#gggggg", Color{}, false},
		{"#ffc0cbff", Color{}, false},
		{"#ffff", Color{}, false},
		{"", Color{}, false},
	}

	for _, tc := range tests {
		got, err := ParseHex(tc.in)
		if tc.ok {
			if err != nil || got != tc.expected {
				t.Errorf("ParseHex(%q) = %v, %v, expected %v", tc.in, got, err, tc.expected)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, expected ErrInvalidColor", tc.in, err)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = ColorDarkPink
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0x6969 || b != 0xb4b4 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
	if ColorDarkPink.Hex() != "#ff69b4" {
		t.Errorf("Hex() = %s, expected #ff69b4", ColorDarkPink.Hex())
	}
}
