package blurview

import "image"

// SnapshotSource is the view subtree whose pixels are copied for blurring.
type SnapshotSource interface {
	// ScreenLocation returns the source's origin in screen coordinates.
	ScreenLocation() image.Point

	// MeasuredSize returns the source's laid-out size.
	MeasuredSize() (width, height int)

	// RenderInto paints the subtree into dst with user space mapped through m.
	// Blur views inside the subtree are expected to call Compositor.Draw
	// with dst so recursion guards apply.
	RenderInto(dst *Surface, m Matrix) error
}

// Primitive is the platform blur operation.
//
// Blur either mutates buf in place and returns it, or returns a different
// buffer of the same size that replaces it. Primitives that defer the blur
// to render time return buf unchanged and apply the effect in Render.
type Primitive interface {
	Blur(buf *image.RGBA, radius float64) *image.RGBA

	// Render draws buf onto dst at the user-space origin.
	Render(dst *Surface, buf *image.RGBA)

	// Destroy frees resources held by the primitive.
	Destroy()

	// ScaleFactor is the downsampling ratio the primitive prefers.
	ScaleFactor() float64
}

// PreDrawListener is notified once before each frame is drawn.
type PreDrawListener interface {
	OnPreDraw()
}

// FrameHook is the host's pre-draw registration mechanism.
type FrameHook interface {
	AddPreDrawListener(l PreDrawListener)
	RemovePreDrawListener(l PreDrawListener)
}
