package blur

import (
	"image"
	"log/slog"

	bildblur "github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"

	"github.com/gogpu/blurview"
)

// Deferred records each snapshot together with the requested radius and
// only blurs when the snapshot is rendered. Blur returns the snapshot
// unmodified.
//
// A blurred node is computed at most once per recorded snapshot no matter
// how many surfaces it is rendered onto.
type Deferred struct {
	scale  float64
	log    *slog.Logger
	node   *image.RGBA
	radius float64

	blurred *image.RGBA
	dirty   bool
}

// NewDeferred returns a Deferred primitive preferring the given scale
// factor.
func NewDeferred(scaleFactor float64) *Deferred {
	if scaleFactor <= 0 {
		scaleFactor = blurview.DefaultScaleFactor
	}
	return &Deferred{scale: scaleFactor, log: blurview.Logger(), radius: blurview.MinRadius}
}

// Blur records buf and radius for the next Render and returns buf.
func (d *Deferred) Blur(buf *image.RGBA, radius float64) *image.RGBA {
	d.radius = radius
	if d.node != nil && d.node.Rect == buf.Rect {
		copy(d.node.Pix, buf.Pix)
	} else {
		d.node = clone.AsRGBA(buf)
	}
	d.dirty = true
	return buf
}

// Render draws the blurred node onto dst. Without a recorded node it
// blurs buf directly.
func (d *Deferred) Render(dst *blurview.Surface, buf *image.RGBA) {
	if d.node == nil {
		d.log.Debug("blur: deferred render without recorded node, blurring directly")
		dst.DrawImage(bildblur.Gaussian(buf, d.radius))
		return
	}
	if d.dirty || d.blurred == nil {
		d.blurred = bildblur.Gaussian(d.node, d.radius)
		d.dirty = false
	}
	dst.DrawImage(d.blurred)
}

// Destroy discards the recorded node.
func (d *Deferred) Destroy() {
	d.node = nil
	d.blurred = nil
	d.dirty = false
}

// ScaleFactor returns the preferred downsampling ratio.
func (d *Deferred) ScaleFactor() float64 { return d.scale }

// SetLogger implements the logger hook used by blurview.New.
func (d *Deferred) SetLogger(l *slog.Logger) { d.log = l }
