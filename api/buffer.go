// Package api
// Author: momentics
//
// Storage regions handed to byte rings. A region is owned by whoever
// allocated it; rings only borrow its bytes.

package api

// Region is a fixed-size memory region backing a ring.
type Region interface {
	// Bytes returns the region memory. The slice is valid until Release.
	Bytes() []byte

	// Len returns the region size in bytes.
	Len() int

	// Backend names the allocator that produced the region.
	Backend() string

	// Release returns the memory to its allocator. It fails on a second call.
	Release() error
}

// Allocator produces storage regions.
type Allocator interface {
	// Alloc returns a zeroed region of exactly size bytes.
	Alloc(size int) (Region, error)

	// Backend names the memory source.
	Backend() string
}

// RegionPoolStats aggregates region allocation/reuse stats.
type RegionPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	Idle       int64
}
