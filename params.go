package blurview

import "math"

// Radius limits accepted by native blur APIs.
const (
	MinRadius     = 1.0
	MaxRadius     = 25.0
	DefaultRadius = 16.0

	// DefaultScaleFactor downsamples nothing; primitives usually supply
	// their own preference through Primitive.ScaleFactor.
	DefaultScaleFactor = 1.0
)

// Params holds the tunable blur parameters of a compositor.
type Params struct {
	// Radius is the blur radius, always within [MinRadius, MaxRadius].
	Radius float64

	// ScaleFactor is the downsampling ratio; always > 0.
	ScaleFactor float64

	// OverlayColor is painted over the blurred content when its alpha
	// is non-zero.
	OverlayColor RGBA

	// AutoUpdate keeps the compositor registered for per-frame refreshes.
	AutoUpdate bool
}

// DefaultParams returns the parameters a compositor starts with.
func DefaultParams() Params {
	return Params{
		Radius:       DefaultRadius,
		ScaleFactor:  DefaultScaleFactor,
		OverlayColor: Transparent,
		AutoUpdate:   true,
	}
}

// ClampRadius coerces r into [MinRadius, MaxRadius]. NaN maps to MinRadius.
func ClampRadius(r float64) float64 {
	if math.IsNaN(r) || r < MinRadius {
		return MinRadius
	}
	if r > MaxRadius {
		return MaxRadius
	}
	return r
}

// validScaleFactor reports whether f can be used as a scale factor.
func validScaleFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
