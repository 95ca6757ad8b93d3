package blurview

import "image"

// View is a non-owning handle to a node of the host's retained view tree.
//
// Views are compared with ==, so implementations must have comparable
// dynamic types, typically pointers. A struct value holding a slice or map
// makes PaintedAbove and the Draw guards panic.
type View interface {
	// ScreenRect returns the view's bounds in screen coordinates.
	ScreenRect() image.Rectangle

	// Visible reports whether the view is shown.
	Visible() bool

	// Parent returns the logical parent, or nil for a root.
	Parent() View

	// ChildIndex returns the paint-order index of child among this view's
	// children (later paints on top), or -1 if child is not a child.
	ChildIndex(child View) int
}

// maxTreeDepth bounds ancestor walks so a parent cycle cannot hang a paint pass.
const maxTreeDepth = 1 << 12

// Overlaps reports whether a and b are both visible and their screen
// rectangles share a non-empty area.
func Overlaps(a, b View) bool {
	if a == nil || b == nil || !a.Visible() || !b.Visible() {
		return false
	}
	return a.ScreenRect().Overlaps(b.ScreenRect())
}

// PaintedAbove reports whether a is painted after, and therefore on top
// of, b. Both ancestor chains are walked from the shared root down to the
// first point where they diverge, and the sibling indices there decide.
// A view paints before its descendants, so a descendant is above its
// ancestors. Views that do not share a root yield ErrNoCommonRoot.
func PaintedAbove(a, b View) (bool, error) {
	if a == b {
		return false, nil
	}
	ca := ancestry(a)
	cb := ancestry(b)
	if len(ca) == 0 || len(cb) == 0 || ca[0] != cb[0] {
		return false, &TopologyError{A: a, B: b}
	}

	i := 1
	for i < len(ca) && i < len(cb) && ca[i] == cb[i] {
		i++
	}
	switch {
	case i == len(ca):
		// a is an ancestor of b
		return false, nil
	case i == len(cb):
		return true, nil
	}

	parent := ca[i-1]
	ia := parent.ChildIndex(ca[i])
	ib := parent.ChildIndex(cb[i])
	if ia < 0 || ib < 0 {
		return false, &TopologyError{A: a, B: b}
	}
	return ia > ib, nil
}

// ancestry returns the root-first chain of views ending with v.
func ancestry(v View) []View {
	var chain []View
	for n := v; n != nil && len(chain) < maxTreeDepth; n = n.Parent() {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
