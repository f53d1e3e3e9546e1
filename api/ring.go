// Package api
// Author: momentics@gmail.com
//
// Byte ring contract over caller-owned storage.

package api

// ByteRing is a fixed-capacity FIFO of bytes. Implementations are not safe
// for concurrent use; callers needing shared access wrap the ring in their own
// lock.
type ByteRing interface {
	// IsEmpty reports whether no bytes are buffered.
	IsEmpty() bool
	// IsFull reports whether Len equals Cap.
	IsFull() bool
	// Len returns the number of buffered bytes.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Free returns Cap minus Len.
	Free() int

	// PutByte appends one byte, or fails with StatusNotEnoughSpace.
	PutByte(b byte) error
	// GetByte removes the oldest byte, or fails with StatusNoData.
	GetByte() (byte, error)
	// Write appends all of p or nothing.
	Write(p []byte) error
	// ReadFull removes exactly len(p) bytes into p or nothing.
	ReadFull(p []byte) error
	// PeekFull copies the len(p) oldest bytes into p without removing them.
	PeekFull(p []byte) error

	// Reset empties the ring without touching storage.
	Reset() error
	// Release detaches the ring from its storage.
	Release() error

	// Snapshot returns the current cursor state.
	Snapshot() RingState
}

// RingState is a point-in-time view of a ring's control block.
type RingState struct {
	Head     int
	Tail     int
	Full     bool
	Len      int
	Capacity int
}
