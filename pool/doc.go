// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage regions for byte rings. Regions come from the Go heap or from
// anonymous OS pages (mmap on Linux/Darwin, VirtualAlloc on Windows), and a
// RegionPool recycles fixed-size regions so rings can be rebuilt without new
// allocations.
//
// Regions are owned by their allocator; rings only borrow Region.Bytes.
// See region.go, regionpool.go for implementation details.
package pool
