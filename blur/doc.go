// Package blur provides Blur Primitives for blurview compositors.
//
// The kernels themselves come from github.com/anthonynsimon/bild; this
// package adapts them to the three buffer contracts a compositor supports:
//
//   - Gaussian returns a new buffer that replaces the snapshot (swap)
//   - Box blurs the snapshot in place
//   - Deferred records the snapshot and applies the blur at render time,
//     like a render node carrying a blur effect
//
// Passthrough performs no blur and is useful when blurring is disabled or
// in tests.
package blur
