//go:build windows

// File: pool/region_windows.go
// Author: momentics <momentics@gmail.com>
//
// Committed read/write pages via VirtualAlloc.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func pageAlloc(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func pageFree(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&data[0])), 0, windows.MEM_RELEASE)
}
