package blurview

import (
	"fmt"
	"image/color"
)

// RGBA represents a straight-alpha color with components in [0, 1].
// It is used for overlay tints and frame-clear colors.
type RGBA struct {
	R, G, B, A float64
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// NRGBA8 creates a color from 8-bit straight-alpha components.
func NRGBA8(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Color converts c to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// IsTransparent reports whether c has zero alpha once quantized to 8 bits.
func (c RGBA) IsTransparent() bool {
	return uint8(clamp255(c.A*255+0.5)) == 0
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NRGBA8(n.R, n.G, n.B, n.A)
}

// ParseHex parses a color from a hex string.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an
// optional leading '#'.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint32
	v[3] = 255

	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGBA{}, fmt.Errorf("blurview: invalid hex color %q", hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, fmt.Errorf("blurview: invalid hex color %q", hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return RGBA{}, fmt.Errorf("blurview: invalid hex color %q", hex)
	}

	return NRGBA8(uint8(v[0]), uint8(v[1]), uint8(v[2]), uint8(v[3])), nil
}

// Hex is like ParseHex but returns opaque black for malformed input.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
