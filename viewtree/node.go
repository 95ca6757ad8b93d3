// Package viewtree is a minimal retained view tree that hosts blurview
// compositors.
//
// It supplies what a UI framework would: nodes with positions, paint order
// and visibility (blurview.View), a subtree renderer (blurview.SnapshotSource)
// and a frame loop that runs pre-draw listeners before each paint pass
// (blurview.FrameHook). It has no layout; nodes are placed explicitly.
package viewtree

import (
	"fmt"
	"image"

	"github.com/gogpu/blurview"
)

// PaintFunc paints custom node content in node-local coordinates.
type PaintFunc func(s *blurview.Surface, size image.Point) error

// Node is a rectangle in a view tree. Children paint after, and on top of,
// their parent, in the order they were added.
type Node struct {
	name     string
	offset   image.Point // relative to the parent
	size     image.Point
	fill     blurview.RGBA
	painter  PaintFunc
	visible  bool
	parent   *Node
	children []*Node

	blur *blurview.Compositor
}

// New creates a visible node occupying rect in its parent's coordinates.
func New(name string, rect image.Rectangle, fill blurview.RGBA) *Node {
	rect = rect.Canon()
	return &Node{
		name:    name,
		offset:  rect.Min,
		size:    rect.Size(),
		fill:    fill,
		visible: true,
	}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

func (n *Node) String() string { return n.name }

// Add appends children and returns n. A child already attached elsewhere
// is moved.
func (n *Node) Add(children ...*Node) *Node {
	for _, ch := range children {
		if ch.parent != nil {
			ch.parent.Remove(ch)
		}
		ch.parent = n
		n.children = append(n.children, ch)
	}
	return n
}

// Remove detaches child from n. It reports whether child was found.
func (n *Node) Remove(child *Node) bool {
	for i, ch := range n.children {
		if ch == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the children in paint order.
func (n *Node) Children() []*Node { return n.children }

// SetPainter installs custom content painted after the fill.
func (n *Node) SetPainter(p PaintFunc) { n.painter = p }

// SetFill changes the background fill.
func (n *Node) SetFill(c blurview.RGBA) { n.fill = c }

// SetVisible shows or hides the node and its subtree.
func (n *Node) SetVisible(v bool) { n.visible = v }

// Rect returns the node's bounds in its parent's coordinates.
func (n *Node) Rect() image.Rectangle {
	return image.Rectangle{Min: n.offset, Max: n.offset.Add(n.size)}
}

// SetRect moves and resizes the node. A blur node whose size changes
// reconfigures its compositor.
func (n *Node) SetRect(rect image.Rectangle) error {
	rect = rect.Canon()
	resized := rect.Size() != n.size
	n.offset = rect.Min
	n.size = rect.Size()
	if resized && n.blur != nil {
		return n.blur.Resize()
	}
	return nil
}

// ScreenRect implements blurview.View.
func (n *Node) ScreenRect() image.Rectangle {
	origin := n.offset
	for p := n.parent; p != nil; p = p.parent {
		origin = origin.Add(p.offset)
	}
	return image.Rectangle{Min: origin, Max: origin.Add(n.size)}
}

// Visible implements blurview.View.
func (n *Node) Visible() bool { return n.visible }

// Parent implements blurview.View.
func (n *Node) Parent() blurview.View {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ChildIndex implements blurview.View.
func (n *Node) ChildIndex(child blurview.View) int {
	for i, ch := range n.children {
		if blurview.View(ch) == child {
			return i
		}
	}
	return -1
}

// ScreenLocation implements blurview.SnapshotSource.
func (n *Node) ScreenLocation() image.Point {
	return n.ScreenRect().Min
}

// MeasuredSize implements blurview.SnapshotSource.
func (n *Node) MeasuredSize() (int, int) {
	return n.size.X, n.size.Y
}

// RenderInto implements blurview.SnapshotSource. The node's own origin maps
// to the user-space origin of m.
func (n *Node) RenderInto(dst *blurview.Surface, m blurview.Matrix) error {
	dst.Save()
	defer dst.Restore()
	dst.SetMatrix(m)
	return n.paintContent(dst)
}

// Paint paints the subtree onto s, positioned by the node's offset.
func (n *Node) Paint(s *blurview.Surface) error {
	if !n.visible {
		return nil
	}
	s.Save()
	defer s.Restore()
	s.Translate(float64(n.offset.X), float64(n.offset.Y))

	if n.blur != nil && !n.blur.Draw(s) {
		return nil
	}
	return n.paintContent(s)
}

func (n *Node) paintContent(s *blurview.Surface) error {
	s.FillRect(image.Rectangle{Max: n.size}, n.fill)
	if n.painter != nil {
		if err := n.painter(s, n.size); err != nil {
			return fmt.Errorf("viewtree: paint %s: %w", n.name, err)
		}
	}
	for _, ch := range n.children {
		if err := ch.Paint(s); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ blurview.View           = (*Node)(nil)
	_ blurview.SnapshotSource = (*Node)(nil)
)
