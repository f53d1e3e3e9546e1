// File: pool/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral region allocators. OS page allocation is provided by
// build-tagged files; failures fall back to the Go heap.

package pool

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

// Backend names a memory source for regions.
type Backend string

const (
	BackendHeap Backend = "heap"
	BackendMmap Backend = "mmap"
)

var (
	// ErrRegionReleased is returned by a second Region.Release.
	ErrRegionReleased = errors.New("pool: region already released")
	// ErrPoolClosed is returned by Get on a closed RegionPool.
	ErrPoolClosed = errors.New("pool: region pool is closed")

	errPagesUnsupported = errors.New("pool: OS page allocation not supported on this platform")
)

// ParseBackend maps a configuration string to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendHeap, BackendMmap:
		return b, nil
	case "":
		return BackendHeap, nil
	default:
		return "", fmt.Errorf("pool: unknown backend %q: %w", s, api.ErrInvalidArgument)
	}
}

type options struct {
	logger *zap.Logger
}

// Option configures allocators and pools.
type Option func(*options)

// WithLogger sets the logger used for allocation fallbacks and pool events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// NewAllocator returns an allocator for backend b.
func NewAllocator(b Backend, opts ...Option) (api.Allocator, error) {
	o := applyOptions(opts)
	switch b {
	case BackendHeap, "":
		return heapAllocator{}, nil
	case BackendMmap:
		return &pageAllocator{logger: o.logger.Named("pool")}, nil
	default:
		return nil, fmt.Errorf("pool: unknown backend %q: %w", string(b), api.ErrInvalidArgument)
	}
}

// region implements api.Region.
type region struct {
	mu       sync.Mutex
	data     []byte
	backend  Backend
	free     func([]byte) error
	released bool
}

// Bytes returns the region memory, nil after Release.
func (r *region) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

func (r *region) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

func (r *region) Backend() string { return string(r.backend) }

// Release frees the memory exactly once.
func (r *region) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return ErrRegionReleased
	}
	r.released = true
	data := r.data
	r.data = nil
	if r.free == nil {
		return nil
	}
	if err := r.free(data); err != nil {
		return fmt.Errorf("pool: release %s region: %w", r.backend, err)
	}
	return nil
}

func checkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("pool: region size %d: %w", size, api.ErrInvalidArgument)
	}
	return nil
}

// heapAllocator hands out GC-managed slices.
type heapAllocator struct{}

func (heapAllocator) Backend() string { return string(BackendHeap) }

func (heapAllocator) Alloc(size int) (api.Region, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &region{data: make([]byte, size), backend: BackendHeap}, nil
}

// pageAllocator maps anonymous private pages, falling back to the heap.
type pageAllocator struct {
	logger *zap.Logger
}

func (*pageAllocator) Backend() string { return string(BackendMmap) }

func (a *pageAllocator) Alloc(size int) (api.Region, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	data, err := pageAlloc(size)
	if err != nil {
		a.logger.Warn("page allocation failed, using heap",
			zap.Int("size", size), zap.Error(err))
		return &region{data: make([]byte, size), backend: BackendHeap}, nil
	}
	return &region{data: data, backend: BackendMmap, free: pageFree}, nil
}
