package blur

import (
	"image"

	"github.com/gogpu/blurview"
)

// Passthrough leaves snapshots untouched.
type Passthrough struct{}

// Blur returns buf unchanged.
func (Passthrough) Blur(buf *image.RGBA, _ float64) *image.RGBA { return buf }

// Render draws buf onto dst.
func (Passthrough) Render(dst *blurview.Surface, buf *image.RGBA) { dst.DrawImage(buf) }

// Destroy is a no-op.
func (Passthrough) Destroy() {}

// ScaleFactor returns blurview.DefaultScaleFactor.
func (Passthrough) ScaleFactor() float64 { return blurview.DefaultScaleFactor }

var (
	_ blurview.Primitive = Passthrough{}
	_ blurview.Primitive = (*Gaussian)(nil)
	_ blurview.Primitive = (*Box)(nil)
	_ blurview.Primitive = (*Deferred)(nil)
)
