package blurview

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/gogpu/blurview/internal/bufpool"
)

// State is the lifecycle state of a Compositor.
type State int

const (
	// StateUninitialized means no snapshot buffer is allocated, either
	// because Configure was not called yet or the view downscales to zero.
	StateUninitialized State = iota

	// StateInitialized means a snapshot buffer is allocated and drawable.
	StateInitialized

	// StateDestroyed is terminal.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var lastID atomic.Uint64

// Compositor renders a blurred copy of a snapshot source behind a
// destination view.
//
// Once per frame, before the host paints, RefreshSnapshot renders the
// source into a downscaled offscreen buffer and blurs it. During the paint
// pass the destination view calls Draw, which scales the buffer back up
// onto the destination surface and tints it with the overlay color.
//
// Draw refuses to paint into the compositor's own snapshot surface and
// skips sibling snapshot surfaces it cannot visibly affect, so blur views
// sharing a tree never recurse into each other.
//
// A Compositor is used from the host's UI thread only.
type Compositor struct {
	id        ID
	view      View
	source    SnapshotSource
	primitive Primitive
	hook      FrameHook
	log       *slog.Logger
	pool      *bufpool.Pool

	alignment          int
	minRefreshInterval time.Duration
	now                func() time.Time
	limiter            *rate.Limiter // nil when refreshes are not rate limited

	params     Params
	clearColor RGBA
	enabled    bool

	state       State
	configured  bool
	registered  bool
	willNotDraw bool
	size        Size

	// front holds the latest blurred snapshot; back is the render target
	// for the next refresh. A failed refresh leaves front untouched.
	front   *image.RGBA
	back    *image.RGBA
	surface *Surface

	drawing    bool
	refreshing bool
}

// New creates a compositor drawing the blurred content of source behind
// view. hook may be nil, in which case the caller drives RefreshSnapshot.
//
// The compositor starts uninitialized; call Configure (or Resize) once the
// view has a size.
func New(view View, source SnapshotSource, p Primitive, hook FrameHook, opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	scale := o.scaleFactor
	if scale == 0 {
		scale = p.ScaleFactor()
	}
	if !validScaleFactor(scale) {
		scale = DefaultScaleFactor
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	pool := bufpool.Default()
	if o.maxPixels > 0 {
		pool = bufpool.New(2, o.maxPixels)
	}

	c := &Compositor{
		id:                 ID(lastID.Add(1)),
		view:               view,
		source:             source,
		primitive:          p,
		hook:               hook,
		pool:               pool,
		alignment:          o.alignment,
		minRefreshInterval: o.minRefreshInterval,
		now:                o.now,
		params: Params{
			Radius:       ClampRadius(o.radius),
			ScaleFactor:  scale,
			OverlayColor: o.overlay,
			AutoUpdate:   o.autoUpdate,
		},
		clearColor:  o.clearColor,
		enabled:     true,
		willNotDraw: true,
	}
	c.log = log.With("compositor", uint64(c.id))
	c.surface = newSnapshotSurface(nil, Tag{Compositor: c.id, View: view})
	propagateLogger(p, c.log)
	return c
}

// ID returns the compositor's identity, as carried by its surface tag.
func (c *Compositor) ID() ID { return c.id }

// View returns the destination view.
func (c *Compositor) View() View { return c.view }

// Surface returns the compositor's snapshot surface.
func (c *Compositor) Surface() *Surface { return c.surface }

// Buffer returns the latest blurred snapshot, or nil when uninitialized.
func (c *Compositor) Buffer() *image.RGBA { return c.front }

// State returns the lifecycle state.
func (c *Compositor) State() State { return c.state }

// WillNotDraw reports whether the host may skip drawing the destination
// view because no snapshot buffer is allocated.
func (c *Compositor) WillNotDraw() bool { return c.willNotDraw }

// BufferSize returns the current snapshot buffer size.
func (c *Compositor) BufferSize() Size { return c.size }

// Params returns a copy of the current blur parameters.
func (c *Compositor) Params() Params { return c.params }

// Configure sizes the snapshot buffer for a width x height destination
// view downscaled by scaleFactor.
//
// If either dimension downscales to zero the buffer is released, drawing is
// disabled and Configure returns nil; the compositor becomes drawable on a
// later Configure with a real size. A failed allocation returns an error
// wrapping ErrAllocation and leaves the compositor uninitialized.
func (c *Compositor) Configure(width, height int, scaleFactor float64) error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	if !validScaleFactor(scaleFactor) {
		return fmt.Errorf("%w: %v", ErrInvalidScaleFactor, scaleFactor)
	}
	c.params.ScaleFactor = scaleFactor
	c.configured = true
	c.syncAutoUpdate()

	scaler := NewSizeScaler(scaleFactor, c.alignment)
	if scaler.IsZeroSized(width, height) {
		c.release()
		c.willNotDraw = true
		c.log.Debug("blurview: zero-sized view, drawing disabled", "width", width, "height", height)
		return nil
	}

	size := scaler.Scale(width, height)
	c.release()

	front, err := c.pool.Get(size.Width, size.Height)
	if err != nil {
		c.willNotDraw = true
		c.log.Warn("blurview: snapshot buffer allocation failed", "size", size.String(), "err", err)
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	c.front = front
	c.size = size
	c.surface.bind(front)
	c.state = StateInitialized
	c.willNotDraw = false
	c.resetLimiter()
	c.log.Info("blurview: snapshot buffer allocated", "size", size.String(), "view", fmt.Sprintf("%dx%d", width, height))

	// The pre-draw hook may belong to a different window than the view,
	// so do not wait for it to produce the first snapshot.
	c.RefreshSnapshot()
	return nil
}

// Resize reconfigures the compositor from the destination view's current
// size. Hosts call it when the view's size changes.
func (c *Compositor) Resize() error {
	r := c.view.ScreenRect()
	return c.Configure(r.Dx(), r.Dy(), c.params.ScaleFactor)
}

// OnPreDraw implements PreDrawListener.
func (c *Compositor) OnPreDraw() {
	c.RefreshSnapshot()
}

// RefreshSnapshot renders the snapshot source into the offscreen buffer
// and blurs it. It is a no-op unless the compositor is initialized and
// enabled and the source has a non-zero size.
//
// Errors and panics from the source are logged and the frame is skipped;
// the previous blurred snapshot stays in place.
func (c *Compositor) RefreshSnapshot() {
	if c.state != StateInitialized || !c.enabled || c.refreshing {
		return
	}
	if w, h := c.source.MeasuredSize(); w <= 0 || h <= 0 {
		return
	}
	vr := c.view.ScreenRect()
	if vr.Empty() {
		return
	}

	if c.limiter != nil && !c.limiter.AllowN(c.now(), 1) {
		c.log.Debug("blurview: refresh throttled", "interval", c.minRefreshInterval)
		return
	}

	c.refreshing = true
	defer func() { c.refreshing = false }()

	target, err := c.backBuffer()
	if err != nil {
		c.log.Warn("blurview: refresh skipped", "err", err)
		return
	}

	c.surface.bind(target)
	c.surface.Clear(c.clearColor)

	origin := c.source.ScreenLocation()
	left := float64(vr.Min.X - origin.X)
	top := float64(vr.Min.Y - origin.Y)
	sx := float64(vr.Dx()) / float64(target.Rect.Dx())
	sy := float64(vr.Dy()) / float64(target.Rect.Dy())
	m := Translate(-left/sx, -top/sy).Multiply(Scale(1/sx, 1/sy))

	c.surface.Save()
	c.surface.SetMatrix(m)
	err = c.renderSource(m)
	c.surface.Restore()

	if err != nil {
		c.surface.bind(c.front)
		c.log.Warn("blurview: snapshot render failed, keeping previous frame", "err", err)
		return
	}

	c.blurAndSwap(target)
}

// resetLimiter starts a fresh refresh budget, so the first refresh after a
// (re)configuration always runs.
func (c *Compositor) resetLimiter() {
	if c.minRefreshInterval <= 0 {
		c.limiter = nil
		return
	}
	c.limiter = rate.NewLimiter(rate.Every(c.minRefreshInterval), 1)
}

// renderSource runs the source render, turning panics into errors.
// Topology violations are programming errors and keep unwinding.
func (c *Compositor) renderSource(m Matrix) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if te, ok := r.(*TopologyError); ok {
			panic(te)
		}
		err = fmt.Errorf("blurview: snapshot source panicked: %v", r)
	}()
	return c.source.RenderInto(c.surface, m)
}

// backBuffer returns the render target for the next refresh.
func (c *Compositor) backBuffer() (*image.RGBA, error) {
	if c.back != nil {
		return c.back, nil
	}
	buf, err := c.pool.Get(c.size.Width, c.size.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	c.back = buf
	return buf, nil
}

// blurAndSwap blurs the freshly rendered target and promotes the result to
// the front buffer.
func (c *Compositor) blurAndSwap(target *image.RGBA) {
	out := c.primitive.Blur(target, c.params.Radius)
	if out == nil || out.Rect != target.Rect {
		c.log.Warn("blurview: primitive returned unusable buffer, keeping previous frame")
		c.surface.bind(c.front)
		return
	}

	if out != target {
		// The primitive swapped buffers; target is no longer referenced.
		c.pool.Put(target)
	}
	c.back = c.front
	c.front = out
	c.surface.bind(c.front)
}

// Draw paints the blurred snapshot, scaled to the destination view's size,
// onto dst at the current user-space origin, followed by the overlay tint.
//
// It returns false when the destination view must not be painted into dst:
// dst is this compositor's own snapshot surface, dst is a sibling snapshot
// surface whose view does not overlap this one or is painted above it, or
// a Draw is already in progress. It returns true otherwise, including when
// the compositor is not initialized or disabled, in which case nothing is
// drawn and the caller paints its content directly.
//
// Draw panics with a *TopologyError if the two views meeting in a sibling
// snapshot do not share a root.
func (c *Compositor) Draw(dst *Surface) bool {
	if dst == nil || c.drawing {
		return false
	}

	tag, tagged := dst.Tag()
	if tagged && tag.Compositor == c.id {
		return false
	}
	if c.state != StateInitialized || !c.enabled {
		return true
	}

	if tagged {
		if !Overlaps(c.view, tag.View) {
			c.log.Debug("blurview: skipped draw, views do not overlap", "target", uint64(tag.Compositor))
			return false
		}
		above, err := PaintedAbove(tag.View, c.view)
		if err != nil {
			panic(err)
		}
		if above {
			c.log.Debug("blurview: skipped draw, target is painted above", "target", uint64(tag.Compositor))
			return false
		}
	}

	c.drawing = true
	defer func() { c.drawing = false }()

	vr := c.view.ScreenRect()
	sx := float64(vr.Dx()) / float64(c.front.Rect.Dx())
	sy := float64(vr.Dy()) / float64(c.front.Rect.Dy())

	dst.Save()
	dst.Scale(sx, sy)
	c.primitive.Render(dst, c.front)
	dst.Restore()

	if !c.params.OverlayColor.IsTransparent() {
		dst.FillRect(image.Rect(0, 0, vr.Dx(), vr.Dy()), c.params.OverlayColor)
	}
	return true
}

// Destroy releases the snapshot buffers, unregisters from the frame hook
// and destroys the primitive. It is idempotent.
func (c *Compositor) Destroy() {
	if c.state == StateDestroyed {
		return
	}
	c.state = StateDestroyed
	c.syncAutoUpdate()
	c.primitive.Destroy()
	c.release()
	c.willNotDraw = true
	c.log.Debug("blurview: destroyed")
}

// release returns both buffers to the pool and leaves the compositor
// uninitialized unless it is destroyed.
func (c *Compositor) release() {
	if c.front != nil || c.back != nil {
		c.log.Info("blurview: snapshot buffer released", "size", c.size.String())
	}
	c.pool.Put(c.front)
	c.pool.Put(c.back)
	c.front = nil
	c.back = nil
	c.size = Size{}
	c.surface.bind(nil)
	if c.state != StateDestroyed {
		c.state = StateUninitialized
	}
}

// SetRadius sets the blur radius, clamped to [MinRadius, MaxRadius].
// It takes effect on the next refresh.
func (c *Compositor) SetRadius(r float64) {
	c.params.Radius = ClampRadius(r)
}

// SetOverlayColor sets the tint painted over the blurred content.
func (c *Compositor) SetOverlayColor(col RGBA) {
	c.params.OverlayColor = col
}

// SetFrameClearColor sets the color the snapshot buffer is cleared to
// before each refresh.
func (c *Compositor) SetFrameClearColor(col RGBA) {
	c.clearColor = col
}

// SetScaleFactor changes the downsampling ratio and reallocates the
// snapshot buffer if the compositor has been configured.
func (c *Compositor) SetScaleFactor(f float64) error {
	if !validScaleFactor(f) {
		return fmt.Errorf("%w: %v", ErrInvalidScaleFactor, f)
	}
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	if f == c.params.ScaleFactor {
		return nil
	}
	c.params.ScaleFactor = f
	if !c.configured {
		return nil
	}
	return c.Resize()
}

// SetMaterial applies a material preset, reallocating the snapshot buffer
// if the scale factor changes. Hosts call it again with the new theme when
// a dynamic material's theme switches.
func (c *Compositor) SetMaterial(m Material, darkTheme bool) error {
	if err := c.SetScaleFactor(m.ScaleFactor()); err != nil {
		return err
	}
	c.params.OverlayColor = m.OverlayColor(darkTheme)
	return nil
}

// SetAutoUpdate controls per-frame refreshes through the frame hook.
func (c *Compositor) SetAutoUpdate(enabled bool) {
	c.params.AutoUpdate = enabled
	c.syncAutoUpdate()
}

// SetEnabled turns blurring on or off. A disabled compositor neither
// refreshes nor draws, and Draw returns true so the view paints normally.
func (c *Compositor) SetEnabled(enabled bool) {
	c.enabled = enabled
	c.syncAutoUpdate()
}

// Enabled reports whether blurring is enabled.
func (c *Compositor) Enabled() bool { return c.enabled }

// syncAutoUpdate registers or unregisters the pre-draw listener to match
// the current settings.
func (c *Compositor) syncAutoUpdate() {
	if c.hook == nil {
		return
	}
	want := c.configured && c.enabled && c.params.AutoUpdate && c.state != StateDestroyed
	switch {
	case want && !c.registered:
		c.hook.AddPreDrawListener(c)
		c.registered = true
	case !want && c.registered:
		c.hook.RemovePreDrawListener(c)
		c.registered = false
	}
}
