package blurview

import (
	"errors"
	"fmt"
)

// Errors returned by compositor operations.
var (
	// ErrInvalidScaleFactor is returned when a scale factor is not a positive finite number.
	ErrInvalidScaleFactor = errors.New("blurview: scale factor must be positive")

	// ErrAllocation is returned when the snapshot buffer cannot be allocated.
	ErrAllocation = errors.New("blurview: snapshot buffer allocation failed")

	// ErrDestroyed is returned by operations on a destroyed compositor.
	ErrDestroyed = errors.New("blurview: compositor destroyed")

	// ErrNoCommonRoot is reported when two views being ordered do not share a root.
	ErrNoCommonRoot = errors.New("blurview: views do not share a common root")
)

// TopologyError describes a view tree that cannot be ordered.
// A Compositor panics with a *TopologyError when two blur views that meet
// during a paint pass are not part of the same tree.
type TopologyError struct {
	A, B View
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("%v: %v and %v", ErrNoCommonRoot, e.A, e.B)
}

// Unwrap returns ErrNoCommonRoot.
func (e *TopologyError) Unwrap() error {
	return ErrNoCommonRoot
}
