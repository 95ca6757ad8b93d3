package blur

import (
	"image"

	bildblur "github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/blurview"
)

// Gaussian blurs snapshots with a Gaussian kernel and hands back a new
// buffer each frame.
type Gaussian struct {
	scale float64
}

// NewGaussian returns a Gaussian primitive preferring the given scale
// factor. Non-positive values select blurview.DefaultScaleFactor.
func NewGaussian(scaleFactor float64) *Gaussian {
	if scaleFactor <= 0 {
		scaleFactor = blurview.DefaultScaleFactor
	}
	return &Gaussian{scale: scaleFactor}
}

// Blur returns a blurred copy of buf.
func (g *Gaussian) Blur(buf *image.RGBA, radius float64) *image.RGBA {
	return bildblur.Gaussian(buf, radius)
}

// Render draws buf onto dst.
func (g *Gaussian) Render(dst *blurview.Surface, buf *image.RGBA) {
	dst.DrawImage(buf)
}

// Destroy is a no-op; Gaussian holds no resources.
func (g *Gaussian) Destroy() {}

// ScaleFactor returns the preferred downsampling ratio.
func (g *Gaussian) ScaleFactor() float64 { return g.scale }
