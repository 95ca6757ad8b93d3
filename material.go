package blurview

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownMaterial is returned by ParseMaterial for unrecognized names.
var ErrUnknownMaterial = errors.New("blurview: unknown material")

// Thickness is how strongly a material obscures the content behind it.
type Thickness int

// Material thicknesses. The zero value is the system thickness; Chrome is
// meant for bars.
const (
	ThicknessSystem Thickness = iota
	ThicknessUltraThin
	ThicknessThin
	ThicknessThick
	ThicknessChrome
)

var thicknessNames = [...]string{
	ThicknessSystem:    "system",
	ThicknessUltraThin: "ultrathin",
	ThicknessThin:      "thin",
	ThicknessThick:     "thick",
	ThicknessChrome:    "chrome",
}

func (t Thickness) String() string {
	if t < 0 || int(t) >= len(thicknessNames) {
		return fmt.Sprintf("Thickness(%d)", int(t))
	}
	return thicknessNames[t]
}

// Variant selects the tint of a material.
type Variant int

const (
	// VariantLight tints with white.
	VariantLight Variant = iota

	// VariantDark tints with dark gray.
	VariantDark

	// VariantDynamic follows the host's light or dark theme.
	VariantDynamic
)

var variantNames = [...]string{
	VariantLight:   "light",
	VariantDark:    "dark",
	VariantDynamic: "dynamic",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Material is a blur preset: a thickness that picks the downsampling ratio
// and overlay opacity, and a variant that picks the overlay tint.
// The zero Material is the light system material.
type Material struct {
	Thickness Thickness
	Variant   Variant
}

// materialPresets holds scale factor and overlay alpha per thickness.
var materialPresets = map[Thickness]struct {
	scale float64
	alpha float64
}{
	ThicknessUltraThin: {5, 0.50},
	ThicknessThin:      {10, 0.633},
	ThicknessSystem:    {15, 0.766},
	ThicknessThick:     {20, 0.90},
	ThicknessChrome:    {15, 0.80},
}

// darkGray is the dark variant's tint, #A9A9A9.
var darkGray = NRGBA8(169, 169, 169, 255)

func (m Material) preset() (scale, alpha float64) {
	p, ok := materialPresets[m.Thickness]
	if !ok {
		p = materialPresets[ThicknessSystem]
	}
	return p.scale, p.alpha
}

// ScaleFactor returns the downsampling ratio of the material.
// Unknown thicknesses use the system preset.
func (m Material) ScaleFactor() float64 {
	scale, _ := m.preset()
	return scale
}

// IsDark reports whether the material uses the dark tint under the given
// host theme.
func (m Material) IsDark(darkTheme bool) bool {
	switch m.Variant {
	case VariantDark:
		return true
	case VariantDynamic:
		return darkTheme
	default:
		return false
	}
}

// OverlayColor returns the overlay tint of the material. darkTheme is the
// host's current theme and only matters for VariantDynamic.
func (m Material) OverlayColor(darkTheme bool) RGBA {
	_, alpha := m.preset()
	c := White
	if m.IsDark(darkTheme) {
		c = darkGray
	}
	c.A = alpha
	return c
}

func (m Material) String() string {
	return m.Thickness.String() + "-" + m.Variant.String()
}

// ParseMaterial parses "<thickness>" or "<thickness>-<variant>", for
// example "thin" or "chrome-dynamic". Names are case-insensitive and the
// variant defaults to light.
func ParseMaterial(s string) (Material, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	thick, variant, _ := strings.Cut(name, "-")

	var m Material
	ti := slices.Index(thicknessNames[:], thick)
	if ti < 0 {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
	}
	m.Thickness = Thickness(ti)

	if variant != "" {
		vi := slices.Index(variantNames[:], variant)
		if vi < 0 {
			return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
		}
		m.Variant = Variant(vi)
	}
	return m, nil
}
