package blurview

import (
	"fmt"
	"math"
)

// DefaultAlignment is the default multiple snapshot buffer widths are
// rounded up to. Native blur APIs commonly require row strides divisible by
// 16; some drivers require 64.
const DefaultAlignment = 64

// Size is a downscaled snapshot buffer size.
type Size struct {
	Width  int
	Height int

	// ScaleFactor is the horizontal scale actually applied after rounding
	// the width up to the alignment: view width / Width.
	ScaleFactor float64
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d@%g", s.Width, s.Height, s.ScaleFactor)
}

// SizeScaler computes snapshot buffer sizes from view sizes.
type SizeScaler struct {
	ScaleFactor float64
	Alignment   int
}

// NewSizeScaler returns a scaler with the given scale factor and alignment.
// An alignment below 1 is treated as 1.
func NewSizeScaler(scaleFactor float64, alignment int) SizeScaler {
	if alignment < 1 {
		alignment = 1
	}
	return SizeScaler{ScaleFactor: scaleFactor, Alignment: alignment}
}

// IsZeroSized reports whether either dimension downscales to zero.
func (s SizeScaler) IsZeroSized(width, height int) bool {
	return s.downscale(width) <= 0 || s.downscale(height) <= 0
}

// Scale returns the buffer size for a width x height view.
// Only the width is aligned; the height is derived from the rounding-
// corrected scale factor and rounded up so no empty rows are left at the
// bottom of the view.
func (s SizeScaler) Scale(width, height int) Size {
	scaledWidth := s.roundUp(s.downscale(width))
	actual := float64(width) / float64(scaledWidth)
	scaledHeight := int(math.Ceil(float64(height) / actual))
	return Size{Width: scaledWidth, Height: scaledHeight, ScaleFactor: actual}
}

func (s SizeScaler) downscale(v int) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(float64(v) / s.ScaleFactor))
}

func (s SizeScaler) roundUp(v int) int {
	a := s.Alignment
	if a < 1 {
		a = 1
	}
	if v%a == 0 {
		return v
	}
	return v - v%a + a
}
