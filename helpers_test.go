package blurview

import (
	"errors"
	"image"
)

// fakeView is a hand-built view tree node.
type fakeView struct {
	name     string
	rect     image.Rectangle // screen coordinates
	hidden   bool
	parent   *fakeView
	children []*fakeView
}

func newFakeView(name string, rect image.Rectangle) *fakeView {
	return &fakeView{name: name, rect: rect}
}

func (v *fakeView) add(children ...*fakeView) *fakeView {
	for _, ch := range children {
		ch.parent = v
		v.children = append(v.children, ch)
	}
	return v
}

func (v *fakeView) String() string              { return v.name }
func (v *fakeView) ScreenRect() image.Rectangle { return v.rect }
func (v *fakeView) Visible() bool               { return !v.hidden }

func (v *fakeView) Parent() View {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

func (v *fakeView) ChildIndex(child View) int {
	for i, ch := range v.children {
		if View(ch) == child {
			return i
		}
	}
	return -1
}

// fakeSource fills its whole area with a color, optionally painting a
// second color over a screen-space rectangle.
type fakeSource struct {
	rect     image.Rectangle
	fill     RGBA
	spot     image.Rectangle
	spotFill RGBA
	err      error
	panicMsg string
	calls    int
	matrices []Matrix
}

func (s *fakeSource) ScreenLocation() image.Point { return s.rect.Min }

func (s *fakeSource) MeasuredSize() (int, int) { return s.rect.Dx(), s.rect.Dy() }

func (s *fakeSource) RenderInto(dst *Surface, m Matrix) error {
	s.calls++
	s.matrices = append(s.matrices, m)
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	dst.FillRect(image.Rectangle{Max: s.rect.Size()}, s.fill)
	if s.err != nil {
		return s.err
	}
	if !s.spot.Empty() {
		dst.FillRect(s.spot.Sub(s.rect.Min), s.spotFill)
	}
	return nil
}

// fakePrimitive blurs nothing and records calls. With swap set, Blur
// returns a copy instead of the input buffer.
type fakePrimitive struct {
	scale    float64
	swap     bool
	blurs    int
	radii    []float64
	renders  int
	destroys int
	onRender func(dst *Surface)
}

func (p *fakePrimitive) Blur(buf *image.RGBA, radius float64) *image.RGBA {
	p.blurs++
	p.radii = append(p.radii, radius)
	if p.swap {
		out := image.NewRGBA(buf.Rect)
		copy(out.Pix, buf.Pix)
		return out
	}
	return buf
}

func (p *fakePrimitive) Render(dst *Surface, buf *image.RGBA) {
	p.renders++
	if p.onRender != nil {
		p.onRender(dst)
	}
	dst.DrawImage(buf)
}

func (p *fakePrimitive) Destroy() { p.destroys++ }

func (p *fakePrimitive) ScaleFactor() float64 { return p.scale }

// fakeHook records registered listeners.
type fakeHook struct {
	listeners map[PreDrawListener]bool
	adds      int
	removes   int
}

func newFakeHook() *fakeHook {
	return &fakeHook{listeners: make(map[PreDrawListener]bool)}
}

func (h *fakeHook) AddPreDrawListener(l PreDrawListener) {
	h.adds++
	h.listeners[l] = true
}

func (h *fakeHook) RemovePreDrawListener(l PreDrawListener) {
	h.removes++
	delete(h.listeners, l)
}

func (h *fakeHook) tick() {
	for l := range h.listeners {
		l.OnPreDraw()
	}
}

var errSnapshot = errors.New("snapshot failed")
