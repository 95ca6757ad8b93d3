package blur

import (
	"image"

	bildblur "github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/blurview"
)

// Box blurs snapshots with a box kernel, writing the result back into the
// buffer it was given. Cheaper than Gaussian at large radii.
type Box struct {
	scale float64
}

// NewBox returns a Box primitive preferring the given scale factor.
func NewBox(scaleFactor float64) *Box {
	if scaleFactor <= 0 {
		scaleFactor = blurview.DefaultScaleFactor
	}
	return &Box{scale: scaleFactor}
}

// Blur blurs buf in place and returns it.
func (b *Box) Blur(buf *image.RGBA, radius float64) *image.RGBA {
	out := bildblur.Box(buf, radius)
	copy(buf.Pix, out.Pix)
	return buf
}

// Render draws buf onto dst.
func (b *Box) Render(dst *blurview.Surface, buf *image.RGBA) {
	dst.DrawImage(buf)
}

// Destroy is a no-op.
func (b *Box) Destroy() {}

// ScaleFactor returns the preferred downsampling ratio.
func (b *Box) ScaleFactor() float64 { return b.scale }
