//go:build !linux && !darwin && !windows

// File: pool/region_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub page allocator for unsupported platforms; callers fall back to heap.

package pool

func pageAlloc(int) ([]byte, error) {
	return nil, errPagesUnsupported
}

func pageFree([]byte) error { return nil }
