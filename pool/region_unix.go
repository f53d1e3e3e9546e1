//go:build linux || darwin

// File: pool/region_unix.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous private mappings via mmap(2).

package pool

import "golang.org/x/sys/unix"

func pageAlloc(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return data[:size:size], nil
}

func pageFree(data []byte) error {
	return unix.Munmap(data)
}
