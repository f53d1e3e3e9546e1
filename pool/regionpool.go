// File: pool/regionpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RegionPool recycles fixed-size regions through a FIFO free list.
// Safe for concurrent use; the rings built on its regions are not.

package pool

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
)

const defaultMaxIdle = 16

// RegionPool hands out regions of one size and keeps at most maxIdle of
// them for reuse.
type RegionPool struct {
	mu      sync.Mutex
	alloc   api.Allocator
	size    int
	maxIdle int
	idle    *queue.Queue
	out     map[api.Region]struct{} // handed out by Get, not yet Put
	closed  bool
	stats   api.RegionPoolStats
	logger  *zap.Logger
}

// NewRegionPool creates a pool of size-byte regions drawn from alloc.
// maxIdle <= 0 selects the default bound.
func NewRegionPool(alloc api.Allocator, size, maxIdle int, opts ...Option) (*RegionPool, error) {
	if alloc == nil {
		return nil, fmt.Errorf("pool: nil allocator: %w", api.ErrInvalidArgument)
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}
	o := applyOptions(opts)
	return &RegionPool{
		alloc:   alloc,
		size:    size,
		maxIdle: maxIdle,
		idle:    queue.New(),
		out:     make(map[api.Region]struct{}),
		logger:  o.logger.Named("regionpool"),
	}, nil
}

// Size returns the region size served by the pool.
func (p *RegionPool) Size() int { return p.size }

// Get returns an idle region, zeroed, or allocates a new one.
func (p *RegionPool) Get() (api.Region, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrPoolClosed
	}
	if p.idle.Length() > 0 {
		reg := p.idle.Remove().(api.Region)
		p.stats.Idle = int64(p.idle.Length())
		p.stats.InUse++
		p.out[reg] = struct{}{}
		clear(reg.Bytes())
		return reg, nil
	}
	reg, err := p.alloc.Alloc(p.size)
	if err != nil {
		return nil, fmt.Errorf("pool: allocate %d bytes: %w", p.size, err)
	}
	p.stats.TotalAlloc++
	p.stats.InUse++
	p.out[reg] = struct{}{}
	return reg, nil
}

// Put returns reg to the pool. Only regions currently handed out by Get are
// accepted, each once. Regions beyond the idle bound, or returned after
// Close, are released to the allocator.
func (p *RegionPool) Put(reg api.Region) error {
	if reg == nil {
		return fmt.Errorf("pool: put nil region: %w", api.ErrInvalidArgument)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.out[reg]; !ok {
		return fmt.Errorf("pool: put region not handed out by this pool: %w", api.ErrInvalidArgument)
	}
	delete(p.out, reg)
	p.stats.InUse--
	// A region resized or released by its holder cannot be reused.
	if n := reg.Len(); n != p.size {
		return fmt.Errorf("pool: put region of %d bytes into %d-byte pool: %w",
			n, p.size, api.ErrInvalidArgument)
	}
	if p.closed || p.idle.Length() >= p.maxIdle {
		p.stats.TotalFree++
		return reg.Release()
	}
	p.idle.Add(reg)
	p.stats.Idle = int64(p.idle.Length())
	return nil
}

// Stats returns allocation counters.
func (p *RegionPool) Stats() api.RegionPoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Close releases every idle region. Regions still in use are released when
// they are Put back.
func (p *RegionPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	var result *multierror.Error
	for p.idle.Length() > 0 {
		reg := p.idle.Remove().(api.Region)
		p.stats.TotalFree++
		if err := reg.Release(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	p.stats.Idle = 0
	p.logger.Debug("region pool closed",
		zap.Int64("allocated", p.stats.TotalAlloc),
		zap.Int64("in_use", p.stats.InUse))
	return result.ErrorOrNil()
}
