package viewtree

import (
	"image"
	"slices"

	"github.com/gogpu/blurview"
)

// FrameLoop drives frames for a tree: every Frame first notifies pre-draw
// listeners, then paints the tree onto a screen image.
//
// FrameLoop implements blurview.FrameHook. Like the tree, it is used from
// a single goroutine.
type FrameLoop struct {
	root       *Node
	listeners  []blurview.PreDrawListener
	background blurview.RGBA
	screen     *image.RGBA
	frames     int
}

// NewFrameLoop returns a frame loop painting root onto a screen sized to
// root's screen rectangle.
func NewFrameLoop(root *Node) *FrameLoop {
	return &FrameLoop{
		root:       root,
		background: blurview.Black,
		screen:     image.NewRGBA(root.ScreenRect()),
	}
}

// SetBackground sets the color the screen is cleared to each frame.
func (f *FrameLoop) SetBackground(c blurview.RGBA) { f.background = c }

// AddPreDrawListener implements blurview.FrameHook. Adding a listener
// twice has no effect.
func (f *FrameLoop) AddPreDrawListener(l blurview.PreDrawListener) {
	if slices.Contains(f.listeners, l) {
		return
	}
	f.listeners = append(f.listeners, l)
}

// RemovePreDrawListener implements blurview.FrameHook.
func (f *FrameLoop) RemovePreDrawListener(l blurview.PreDrawListener) {
	if i := slices.Index(f.listeners, l); i >= 0 {
		f.listeners = slices.Delete(f.listeners, i, i+1)
	}
}

// Listeners returns the number of registered pre-draw listeners.
func (f *FrameLoop) Listeners() int { return len(f.listeners) }

// Frames returns the number of completed frames.
func (f *FrameLoop) Frames() int { return f.frames }

// Screen returns the screen image of the last frame.
func (f *FrameLoop) Screen() *image.RGBA { return f.screen }

// Frame runs one pre-draw and paint pass and returns the screen image.
func (f *FrameLoop) Frame() (*image.RGBA, error) {
	// Listeners may unregister themselves while being notified.
	for _, l := range slices.Clone(f.listeners) {
		l.OnPreDraw()
	}

	if r := f.root.ScreenRect(); r != f.screen.Rect {
		f.screen = image.NewRGBA(r)
	}
	s := blurview.NewSurface(f.screen)
	s.Clear(f.background)

	// The screen image is addressed in screen coordinates, so the root's
	// own offset lands it at its screen position.
	if err := f.root.Paint(s); err != nil {
		return f.screen, err
	}
	f.frames++
	return f.screen, nil
}

var _ blurview.FrameHook = (*FrameLoop)(nil)
