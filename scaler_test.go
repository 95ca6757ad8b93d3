package blurview

import (
	"math"
	"testing"
)

func TestSizeScalerScale(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		scale         float64
		alignment     int
		want          Size
	}{
		{"reference 400x300 by 15", 400, 300, 15, 64, Size{Width: 64, Height: 48, ScaleFactor: 6.25}},
		{"exact multiple", 256, 128, 4, 64, Size{Width: 64, Height: 32, ScaleFactor: 4}},
		{"no alignment", 400, 300, 15, 1, Size{Width: 27, Height: 21, ScaleFactor: 400.0 / 27}},
		{"alignment 16", 100, 50, 3, 16, Size{Width: 48, Height: 24, ScaleFactor: 100.0 / 48}},
		{"scale 1", 10, 10, 1, 64, Size{Width: 64, Height: 64, ScaleFactor: 10.0 / 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSizeScaler(tt.scale, tt.alignment).Scale(tt.width, tt.height)
			if got.Width != tt.want.Width || got.Height != tt.want.Height {
				t.Errorf("Scale(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
			if math.Abs(got.ScaleFactor-tt.want.ScaleFactor) > 1e-9 {
				t.Errorf("ScaleFactor = %v, want %v", got.ScaleFactor, tt.want.ScaleFactor)
			}
		})
	}
}

func TestSizeScalerProperties(t *testing.T) {
	for _, alignment := range []int{1, 16, 64} {
		for _, scale := range []float64{0.5, 1, 2.5, 8, 15, 33} {
			for _, w := range []int{1, 7, 64, 333, 1080} {
				for _, h := range []int{1, 9, 300, 1920} {
					s := NewSizeScaler(scale, alignment)
					if s.IsZeroSized(w, h) {
						t.Fatalf("IsZeroSized(%d, %d) with scale %v", w, h, scale)
					}
					got := s.Scale(w, h)
					if got.Width%alignment != 0 {
						t.Errorf("width %d not a multiple of %d (w=%d scale=%v)", got.Width, alignment, w, scale)
					}
					ideal := float64(h) / (float64(w) / float64(got.Width))
					if math.Abs(float64(got.Height)-ideal) > 1 {
						t.Errorf("height %d not within 1px of %v (w=%d h=%d scale=%v)", got.Height, ideal, w, h, scale)
					}
					// Scaling back up covers the view with no gaps.
					if float64(got.Height)*got.ScaleFactor < float64(h)-1e-6 {
						t.Errorf("height %d * %v does not cover %d", got.Height, got.ScaleFactor, h)
					}
				}
			}
		}
	}
}

func TestSizeScalerIsZeroSized(t *testing.T) {
	s := NewSizeScaler(15, 64)
	tests := []struct {
		w, h int
		want bool
	}{
		{0, 300, true},
		{400, 0, true},
		{0, 0, true},
		{-5, 10, true},
		{1, 1, false},
		{400, 300, false},
	}
	for _, tt := range tests {
		if got := s.IsZeroSized(tt.w, tt.h); got != tt.want {
			t.Errorf("IsZeroSized(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestNewSizeScalerAlignmentFloor(t *testing.T) {
	if got := NewSizeScaler(2, 0).Alignment; got != 1 {
		t.Errorf("Alignment = %d, want 1", got)
	}
}
