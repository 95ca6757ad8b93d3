// Package bufpool manages the RGBA pixel buffers backing snapshot surfaces.
//
// Every snapshot buffer a compositor holds is obtained with [Pool.Get] and
// handed back with [Pool.Put]; there is no other allocation or release path.
package bufpool

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// Common errors for buffer allocation.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("bufpool: invalid dimensions")

	// ErrBudgetExceeded is returned when a buffer would exceed the pixel budget.
	ErrBudgetExceeded = errors.New("bufpool: pixel budget exceeded")
)

// DefaultMaxPixels bounds a single buffer to a 4096x4096 surface.
const DefaultMaxPixels = 4096 * 4096

// Pool is a thread-safe pool for reusing RGBA buffers.
//
// Pool groups buffers by their dimensions, so a compositor that is resized
// back and forth between the same sizes reuses its previous allocation.
type Pool struct {
	mu        sync.Mutex
	buckets   map[poolKey][]*image.RGBA
	maxSize   int // max buffers per bucket
	maxPixels int
}

// poolKey identifies a bucket of identically sized buffers.
type poolKey struct {
	width  int
	height int
}

// New creates a pool retaining at most maxPerBucket buffers of each size
// and refusing buffers larger than maxPixels. A maxPerBucket of 0 means
// unlimited; a maxPixels of 0 means DefaultMaxPixels.
func New(maxPerBucket, maxPixels int) *Pool {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Pool{
		buckets:   make(map[poolKey][]*image.RGBA),
		maxSize:   maxPerBucket,
		maxPixels: maxPixels,
	}
}

// MaxPixels returns the per-buffer pixel budget.
func (p *Pool) MaxPixels() int {
	return p.maxPixels
}

// Get returns a cleared width x height buffer, reusing a pooled one when
// available.
func (p *Pool) Get(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > p.maxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d > %d pixels", ErrBudgetExceeded, width, height, p.maxPixels)
	}

	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		clear(buf.Pix)
		return buf, nil
	}
	p.mu.Unlock()

	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// Put returns a buffer to the pool for reuse.
// Buffers that are nil, not anchored at the origin, or whose bucket is full
// are discarded.
func (p *Pool) Put(buf *image.RGBA) {
	if buf == nil || buf.Rect.Min != (image.Point{}) || buf.Rect.Empty() {
		return
	}

	key := poolKey{width: buf.Rect.Dx(), height: buf.Rect.Dy()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers of the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}

// defaultPool is the package-level pool shared by compositors that are not
// given their own.
var defaultPool = New(4, DefaultMaxPixels)

// Default returns the package-level pool.
func Default() *Pool {
	return defaultPool
}
