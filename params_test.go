package blurview

import (
	"math"
	"testing"
)

func TestClampRadius(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{40, 25},
		{25, 25},
		{16, 16},
		{1, 1},
		{0.5, 1},
		{0, 1},
		{-3, 1},
		{math.Inf(1), 25},
		{math.NaN(), 1},
	}
	for _, tt := range tests {
		if got := ClampRadius(tt.in); got != tt.want {
			t.Errorf("ClampRadius(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Radius != DefaultRadius || p.ScaleFactor != DefaultScaleFactor || !p.AutoUpdate {
		t.Errorf("DefaultParams() = %+v", p)
	}
	if !p.OverlayColor.IsTransparent() {
		t.Error("default overlay should be transparent")
	}
}

func TestValidScaleFactor(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if validScaleFactor(f) {
			t.Errorf("validScaleFactor(%v) = true", f)
		}
	}
	for _, f := range []float64{0.1, 1, 15} {
		if !validScaleFactor(f) {
			t.Errorf("validScaleFactor(%v) = false", f)
		}
	}
}
