// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake region and allocator implementations for testing.

package fake

import (
	"errors"
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// ErrReleased is returned by a second Region.Release.
var ErrReleased = errors.New("fake: region already released")

// Region is a fake implementation of api.Region.
type Region struct {
	mu         sync.Mutex
	data       []byte
	released   bool
	releaseErr error
	releases   int
}

// NewRegion creates a fake region of size zeroed bytes.
func NewRegion(size int) *Region {
	return &Region{data: make([]byte, size)}
}

// Bytes returns the region memory, nil after Release.
func (r *Region) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil
	}
	return r.data
}

// Len returns the region size; zero after Release.
func (r *Region) Len() int {
	return len(r.Bytes())
}

// Backend reports "fake".
func (r *Region) Backend() string { return "fake" }

// FailRelease makes every later Release return err.
func (r *Region) FailRelease(err error) {
	r.mu.Lock()
	r.releaseErr = err
	r.mu.Unlock()
}

// Release marks the region released.
func (r *Region) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releases++
	if r.releaseErr != nil {
		return r.releaseErr
	}
	if r.released {
		return ErrReleased
	}
	r.released = true
	return nil
}

// Released reports whether Release succeeded.
func (r *Region) Released() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}

// Releases returns how many times Release was called.
func (r *Region) Releases() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.releases
}

// Allocator hands out fake regions and remembers them.
type Allocator struct {
	mu         sync.Mutex
	Regions    []*Region
	AllocErr   error
	ReleaseErr error
	// Empty makes Alloc hand out zero-length regions regardless of size.
	Empty bool
}

// Alloc returns a new fake region, or AllocErr if set.
func (a *Allocator) Alloc(size int) (api.Region, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.AllocErr != nil {
		return nil, a.AllocErr
	}
	if a.Empty {
		size = 0
	}
	r := NewRegion(size)
	if a.ReleaseErr != nil {
		r.FailRelease(a.ReleaseErr)
	}
	a.Regions = append(a.Regions, r)
	return r, nil
}

// Backend reports "fake".
func (a *Allocator) Backend() string { return "fake" }

var (
	_ api.Region    = (*Region)(nil)
	_ api.Allocator = (*Allocator)(nil)
)
