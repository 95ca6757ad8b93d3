package blurview

import (
	"log/slog"
	"time"
)

// Option configures a Compositor during creation.
//
// Example:
//
//	c := blurview.New(view, root, blur.NewGaussian(8), loop,
//	    blurview.WithRadius(20),
//	    blurview.WithOverlayColor(blurview.Hex("#ffffff66")),
//	)
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	logger             *slog.Logger
	alignment          int
	maxPixels          int
	minRefreshInterval time.Duration
	now                func() time.Time
	radius             float64
	scaleFactor        float64
	overlay            RGBA
	clearColor         RGBA
	autoUpdate         bool
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		alignment:  DefaultAlignment,
		now:        time.Now,
		radius:     DefaultRadius,
		overlay:    Transparent,
		clearColor: Transparent,
		autoUpdate: true,
	}
}

// WithLogger sets the logger for a single compositor, overriding the
// package-wide logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithAlignment sets the multiple buffer widths are rounded up to.
// Values below 1 disable alignment.
func WithAlignment(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.alignment = n
	}
}

// WithMaxBufferPixels gives the compositor a private buffer pool that
// refuses snapshot buffers larger than n pixels. Configure fails with
// ErrAllocation when a view would need more.
func WithMaxBufferPixels(n int) Option {
	return func(o *options) {
		o.maxPixels = n
	}
}

// WithMinRefreshInterval rate-limits RefreshSnapshot: a refresh requested
// less than d after the last one that ran is skipped.
func WithMinRefreshInterval(d time.Duration) Option {
	return func(o *options) {
		o.minRefreshInterval = d
	}
}

// WithClock replaces time.Now for refresh rate limiting.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRadius sets the initial blur radius. It is clamped like SetRadius.
func WithRadius(r float64) Option {
	return func(o *options) {
		o.radius = r
	}
}

// WithScaleFactor sets the initial scale factor, overriding the primitive's
// preference. Non-positive values are ignored.
func WithScaleFactor(f float64) Option {
	return func(o *options) {
		if validScaleFactor(f) {
			o.scaleFactor = f
		}
	}
}

// WithMaterial applies a material preset: its scale factor and the overlay
// tint for the given host theme. Later WithScaleFactor or WithOverlayColor
// options override the preset.
func WithMaterial(m Material, darkTheme bool) Option {
	return func(o *options) {
		o.scaleFactor = m.ScaleFactor()
		o.overlay = m.OverlayColor(darkTheme)
	}
}

// WithOverlayColor sets the initial overlay tint.
func WithOverlayColor(c RGBA) Option {
	return func(o *options) {
		o.overlay = c
	}
}

// WithFrameClearColor sets the color the snapshot buffer is cleared to
// before each refresh.
func WithFrameClearColor(c RGBA) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithAutoUpdate controls whether the compositor registers for per-frame
// refreshes once configured.
func WithAutoUpdate(enabled bool) Option {
	return func(o *options) {
		o.autoUpdate = enabled
	}
}
