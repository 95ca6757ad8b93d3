package viewtree

import (
	"errors"

	"github.com/gogpu/blurview"
)

// ErrAlreadyBlurred is returned when attaching a compositor to a node that
// already has one.
var ErrAlreadyBlurred = errors.New("viewtree: node already has a blur compositor")

// AttachBlur turns n into a blur view showing the blurred content of
// source behind it. The compositor is configured from n's current size and
// registers with hook for per-frame refreshes.
//
// Source is passed explicitly; it is usually the tree root, but any node
// containing n works.
func (n *Node) AttachBlur(source blurview.SnapshotSource, p blurview.Primitive, hook blurview.FrameHook, opts ...blurview.Option) (*blurview.Compositor, error) {
	if n.blur != nil {
		return nil, ErrAlreadyBlurred
	}
	c := blurview.New(n, source, p, hook, opts...)
	n.blur = c
	if err := c.Resize(); err != nil {
		return c, err
	}
	return c, nil
}

// DetachBlur destroys n's compositor, if any, and makes n a plain node.
func (n *Node) DetachBlur() {
	if n.blur == nil {
		return
	}
	n.blur.Destroy()
	n.blur = nil
}

// Blur returns n's compositor, or nil.
func (n *Node) Blur() *blurview.Compositor { return n.blur }
