package blurview

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// ID identifies a Compositor. The zero ID is never assigned.
type ID uint64

// Tag marks a Surface as the snapshot surface of a compositor.
// Draw compares tags instead of inspecting surface types to recognize its
// own buffer and the buffers of sibling blur views.
type Tag struct {
	// Compositor owns the snapshot buffer the surface draws into.
	Compositor ID

	// View is the destination view of the owning compositor.
	View View
}

// Surface is a drawing target over an RGBA image with an affine matrix
// stack, in the manner of a canvas: Save and Restore bracket transform
// changes, and every drawing call maps user space through the current
// matrix.
//
// Surface is not safe for concurrent use.
type Surface struct {
	img    *image.RGBA
	tag    Tag
	matrix Matrix
	stack  []Matrix
}

// NewSurface returns an untagged surface drawing into img.
func NewSurface(img *image.RGBA) *Surface {
	return &Surface{img: img, matrix: Identity()}
}

// newSnapshotSurface returns a surface tagged as the snapshot surface of a
// compositor.
func newSnapshotSurface(img *image.RGBA, tag Tag) *Surface {
	return &Surface{img: img, tag: tag, matrix: Identity()}
}

// Image returns the image the surface draws into.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Tag returns the compositor tag and whether the surface carries one.
func (s *Surface) Tag() (Tag, bool) {
	return s.tag, s.tag.Compositor != 0
}

// Width returns the width of the backing image in pixels.
func (s *Surface) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the height of the backing image in pixels.
func (s *Surface) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

// bind rebinds the surface to a new backing image, keeping its tag.
func (s *Surface) bind(img *image.RGBA) {
	s.img = img
}

// Matrix returns the current transformation matrix.
func (s *Surface) Matrix() Matrix {
	return s.matrix
}

// SetMatrix replaces the current transformation matrix.
func (s *Surface) SetMatrix(m Matrix) {
	s.matrix = m
}

// Save pushes the current matrix onto the stack.
func (s *Surface) Save() {
	s.stack = append(s.stack, s.matrix)
}

// Restore pops the matrix saved by the matching Save.
// Restore without a matching Save resets to the identity.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		s.matrix = Identity()
		return
	}
	s.matrix = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

// SaveCount returns the depth of the matrix stack.
func (s *Surface) SaveCount() int {
	return len(s.stack)
}

// Concat pre-multiplies the current matrix by m, so m is applied to user
// coordinates before the existing transform.
func (s *Surface) Concat(m Matrix) {
	s.matrix = s.matrix.Multiply(m)
}

// Translate applies a translation to the current matrix.
func (s *Surface) Translate(x, y float64) {
	s.Concat(Translate(x, y))
}

// Scale applies a scale to the current matrix.
func (s *Surface) Scale(sx, sy float64) {
	s.Concat(Scale(sx, sy))
}

// Clear replaces every pixel with c, ignoring the current matrix.
func (s *Surface) Clear(c RGBA) {
	if s.img == nil {
		return
	}
	if c.IsTransparent() {
		clear(s.img.Pix)
		return
	}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// DrawImage composites src with its bounds' origin at the user-space
// origin, through the current matrix.
func (s *Surface) DrawImage(src image.Image) {
	if s.img == nil || src == nil {
		return
	}
	sr := src.Bounds()
	m := s.matrix.Multiply(Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))

	if off, ok := integerTranslation(m); ok {
		dr := sr.Sub(sr.Min).Add(off)
		draw.Draw(s.img, dr, src, sr.Min, draw.Over)
		return
	}
	draw.ApproxBiLinear.Transform(s.img, m.Aff3(), src, sr, draw.Over, nil)
}

// FillRect composites a rectangle of color c given in user space.
func (s *Surface) FillRect(r image.Rectangle, c RGBA) {
	if s.img == nil || r.Empty() || c.IsTransparent() {
		return
	}
	src := image.NewUniform(c.Color())

	m := s.matrix
	if m.B == 0 && m.D == 0 {
		p0 := m.TransformPoint(Point{X: float64(r.Min.X), Y: float64(r.Min.Y)})
		p1 := m.TransformPoint(Point{X: float64(r.Max.X), Y: float64(r.Max.Y)})
		dr := image.Rect(
			int(math.Round(p0.X)), int(math.Round(p0.Y)),
			int(math.Round(p1.X)), int(math.Round(p1.Y)),
		)
		draw.Draw(s.img, dr, src, image.Point{}, draw.Over)
		return
	}
	draw.NearestNeighbor.Transform(s.img, m.Aff3(), src, r, draw.Over, nil)
}

// integerTranslation reports whether m is a translation by whole pixels.
func integerTranslation(m Matrix) (image.Point, bool) {
	if m.A != 1 || m.B != 0 || m.D != 0 || m.E != 1 {
		return image.Point{}, false
	}
	if m.C != math.Trunc(m.C) || m.F != math.Trunc(m.F) {
		return image.Point{}, false
	}
	return image.Pt(int(m.C), int(m.F)), true
}
