package blurview

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"f008", color.NRGBA{255, 0, 0, 136}},
		{"#336699", color.NRGBA{0x33, 0x66, 0x99, 255}},
		{"FFFFFF80", color.NRGBA{255, 255, 255, 0x80}},
		{"00000000", color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got := c.Color().(color.NRGBA); got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "12", "12345", "#ggg", "zz0000"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) expected error", in)
		}
	}
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %v, want Black", got)
	}
}

func TestIsTransparent(t *testing.T) {
	tests := []struct {
		c    RGBA
		want bool
	}{
		{Transparent, true},
		{RGBA{R: 1, A: 0.001}, true},
		{RGBA{A: 0.01}, false},
		{White, false},
	}
	for _, tt := range tests {
		if got := tt.c.IsTransparent(); got != tt.want {
			t.Errorf("%+v.IsTransparent() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 128, B: 0, A: 128})
	if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G-128.0/255) > 1e-9 || c.B != 0 || math.Abs(c.A-128.0/255) > 1e-9 {
		t.Errorf("FromColor = %+v", c)
	}
}
