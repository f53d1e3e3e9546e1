// File: facade/buffer.go
// Unified facade over one storage region and one ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer owns the region it allocates (or borrows from a RegionPool) and the
// ring bound to it. Close releases the ring first, then hands the region back
// to its owner.

package facade

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/core/ring"
	"github.com/momentics/hioload-ring/pool"
)

type options struct {
	logger *zap.Logger
	pool   *pool.RegionPool
	alloc  api.Allocator
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the facade logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPool draws storage from p instead of a fresh allocation.
// p must serve regions of the configured capacity.
func WithPool(p *pool.RegionPool) Option {
	return func(o *options) { o.pool = p }
}

// WithAllocator draws storage from a instead of the configured backend.
// Ignored when a pool is set.
func WithAllocator(a api.Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// Buffer bundles a ring with the storage it borrows.
type Buffer struct {
	ring   *ring.Ring
	region api.Region
	pool   *pool.RegionPool
	probes *control.DebugProbes
	logger *zap.Logger
	closed bool
}

// NewPool builds a RegionPool sized for cfg.
func NewPool(cfg *control.Config, logger *zap.Logger) (*pool.RegionPool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, err := pool.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	alloc, err := pool.NewAllocator(b, pool.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return pool.NewRegionPool(alloc, cfg.Capacity, cfg.MaxIdle, pool.WithLogger(logger))
}

// Open allocates storage for cfg and binds a ring to it.
func Open(cfg *control.Config, opts ...Option) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	logger := o.logger.Named("facade")

	region, err := acquire(cfg, o)
	if err != nil {
		return nil, err
	}
	r, err := ring.NewFromRegion(region)
	if err != nil {
		result := multierror.Append(nil, fmt.Errorf("facade: bind ring: %w", err))
		if rerr := giveBack(region, o.pool); rerr != nil {
			result = multierror.Append(result, rerr)
		}
		return nil, result.ErrorOrNil()
	}

	b := &Buffer{
		ring:   r,
		region: region,
		pool:   o.pool,
		probes: control.NewDebugProbes(),
		logger: logger,
	}
	b.probes.RegisterRing("ring", r)
	b.probes.RegisterProbe("backend", func() any { return region.Backend() })
	logger.Debug("ring opened",
		zap.Int("capacity", r.Cap()),
		zap.String("backend", region.Backend()),
		zap.Bool("pooled", o.pool != nil))
	return b, nil
}

func acquire(cfg *control.Config, o options) (api.Region, error) {
	if o.pool != nil {
		if o.pool.Size() != cfg.Capacity {
			return nil, fmt.Errorf("facade: pool serves %d-byte regions, capacity is %d: %w",
				o.pool.Size(), cfg.Capacity, api.ErrInvalidArgument)
		}
		return o.pool.Get()
	}
	if o.alloc != nil {
		return o.alloc.Alloc(cfg.Capacity)
	}
	backend, err := pool.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	alloc, err := pool.NewAllocator(backend, pool.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	return alloc.Alloc(cfg.Capacity)
}

func giveBack(region api.Region, p *pool.RegionPool) error {
	if p != nil {
		return p.Put(region)
	}
	return region.Release()
}

// Ring returns the engine. It is invalid after Close.
func (b *Buffer) Ring() *ring.Ring { return b.ring }

// Region returns the backing storage.
func (b *Buffer) Region() api.Region { return b.region }

// DumpState returns the debug probe output.
func (b *Buffer) DumpState() map[string]any { return b.probes.DumpState() }

// Close releases the ring, then returns the region to its pool or
// allocator. A second Close is a no-op.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	var result *multierror.Error
	if err := b.ring.Release(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := giveBack(b.region, b.pool); err != nil {
		result = multierror.Append(result, err)
	}
	b.logger.Debug("ring closed", zap.Bool("pooled", b.pool != nil))
	return result.ErrorOrNil()
}
