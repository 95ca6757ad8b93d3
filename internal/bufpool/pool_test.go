package bufpool

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		maxPerBucket  int
		maxPixels     int
		wantMaxPixels int
	}{
		{"defaults", 0, 0, DefaultMaxPixels},
		{"explicit budget", 2, 100, 100},
		{"negative budget uses default", 1, -5, DefaultMaxPixels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.maxPerBucket, tt.maxPixels)
			if p.MaxPixels() != tt.wantMaxPixels {
				t.Errorf("MaxPixels() = %d, want %d", p.MaxPixels(), tt.wantMaxPixels)
			}
		})
	}
}

func TestPool_GetInvalid(t *testing.T) {
	p := New(1, 0)
	for _, d := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := p.Get(d.w, d.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Get(%d, %d) error = %v, want ErrInvalidDimensions", d.w, d.h, err)
		}
	}
}

func TestPool_GetBudget(t *testing.T) {
	p := New(1, 64*64)
	if _, err := p.Get(64, 64); err != nil {
		t.Fatalf("Get(64, 64) at budget: %v", err)
	}
	if _, err := p.Get(64, 65); !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("Get(64, 65) error = %v, want ErrBudgetExceeded", err)
	}
}

func TestPool_ReuseClears(t *testing.T) {
	p := New(2, 0)

	buf, err := p.Get(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	buf.Set(1, 1, color.RGBA{R: 255, A: 255})
	p.Put(buf)

	if got := p.Len(8, 4); got != 1 {
		t.Fatalf("Len after Put = %d, want 1", got)
	}

	again, err := p.Get(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if again != buf {
		t.Error("Get did not reuse the pooled buffer")
	}
	for i, v := range again.Pix {
		if v != 0 {
			t.Fatalf("reused buffer not cleared at %d: %d", i, v)
		}
	}
	if got := p.Len(8, 4); got != 0 {
		t.Errorf("Len after reuse = %d, want 0", got)
	}
}

func TestPool_PutBucketLimit(t *testing.T) {
	p := New(1, 0)
	p.Put(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	p.Put(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if got := p.Len(4, 4); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestPool_PutIgnoresForeignBuffers(t *testing.T) {
	p := New(0, 0)
	p.Put(nil)
	p.Put(image.NewRGBA(image.Rect(2, 2, 6, 6)))
	if got := p.Len(4, 4); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := New(0, 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				buf, err := p.Get(16, 16)
				if err != nil {
					t.Error(err)
					return
				}
				p.Put(buf)
			}
		}()
	}
	wg.Wait()
}
