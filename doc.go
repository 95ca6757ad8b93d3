// Package blurview composites a frosted-glass blur behind a view.
//
// # Overview
//
// A Compositor belongs to one destination view (the "blur view"). Once per
// frame, before the host paints, it renders a snapshot source (usually the
// root of the view tree) into a downscaled offscreen buffer and blurs it
// with a Primitive. When the host paints the destination view, Draw scales
// the blurred buffer back up onto the destination surface and covers it
// with an overlay tint.
//
// # Quick Start
//
//	c := blurview.New(glass, root, blur.NewGaussian(8), frameLoop,
//	    blurview.WithRadius(16),
//	    blurview.WithOverlayColor(blurview.Hex("#ffffff40")),
//	)
//	if err := c.Resize(); err != nil {
//	    return err
//	}
//	defer c.Destroy()
//
//	// In the destination view's paint method:
//	if !c.Draw(surface) {
//	    return // skip the view's content
//	}
//
// # Snapshot Buffer
//
// The buffer is the view size divided by the scale factor, with the width
// rounded up to the alignment (DefaultAlignment unless WithAlignment is
// given). The height follows from the scale factor actually applied after
// rounding, so the buffer covers the view exactly when scaled back up.
//
// # Sibling Blur Views
//
// While a compositor renders its snapshot, the snapshot source paints the
// whole tree, including the compositor's own view and other blur views.
// Every snapshot surface carries a Tag, and Draw uses it to refuse drawing
// into its own buffer, to skip buffers of views it does not overlap and to
// skip buffers of views painted above it. Views meeting this way must
// share a root; otherwise Draw panics with a *TopologyError.
//
// # Logging
//
// The package is silent by default. SetLogger installs a log/slog logger
// for all compositors; WithLogger overrides it for one.
package blurview
