// File: core/ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a single-owner circular byte buffer bound to borrowed storage.
// Implements api.ByteRing.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Ring)(nil)

// Preallocated single-byte failures keep PutByte/GetByte allocation free.
var (
	errPutNil   = api.OpError(api.StatusNullPointer, "ring: put byte")
	errPutSpace = api.OpError(api.StatusNotEnoughSpace, "ring: put byte")
	errGetNil   = api.OpError(api.StatusNullPointer, "ring: get byte")
	errGetEmpty = api.OpError(api.StatusNoData, "ring: get byte")
)

// Ring is the control block. storage is borrowed from the caller.
type Ring struct {
	storage []byte
	size    int
	head    int // next slot to write
	tail    int // next slot to read
	full    bool
}

// New binds a ring to the first capacity bytes of storage.
// storage must be non-empty and capacity must be in (0, len(storage)].
func New(storage []byte, capacity int) (*Ring, error) {
	if len(storage) == 0 || capacity <= 0 {
		return nil, api.OpError(api.StatusNullPointer, "ring: new").
			WithContext("storage", len(storage)).
			WithContext("capacity", capacity)
	}
	if capacity > len(storage) {
		return nil, fmt.Errorf("ring: capacity %d exceeds storage of %d bytes: %w",
			capacity, len(storage), api.ErrInvalidArgument)
	}
	r := &Ring{
		storage: storage[:capacity:capacity],
		size:    capacity,
	}
	r.reset()
	return r, nil
}

// NewFromRegion binds a ring to the whole of reg.
func NewFromRegion(reg api.Region) (*Ring, error) {
	if reg == nil {
		return nil, api.OpError(api.StatusNullPointer, "ring: new")
	}
	return New(reg.Bytes(), reg.Len())
}

func (r *Ring) valid() bool {
	return r != nil && r.storage != nil
}

func (r *Ring) reset() {
	r.head = 0
	r.tail = 0
	r.full = false
}

// length is the occupied byte count.
func (r *Ring) length() int {
	switch {
	case r.full:
		return r.size
	case r.head >= r.tail:
		return r.head - r.tail
	default:
		return r.size + r.head - r.tail
	}
}

func (r *Ring) advanceHead() {
	// Unreachable: every caller checks free space first. This is not an
	// overwrite-oldest policy.
	if r.full {
		r.tail = (r.tail + 1) % r.size
	}
	r.head = (r.head + 1) % r.size
	r.full = r.head == r.tail
}

func (r *Ring) advanceTail() {
	r.full = false
	r.tail = (r.tail + 1) % r.size
}

// Release detaches the ring from its storage. The storage itself is left
// untouched; every later call on r reports api.StatusNullPointer.
func (r *Ring) Release() error {
	if !r.valid() {
		return api.OpError(api.StatusNullPointer, "ring: release")
	}
	r.storage = nil
	r.size = 0
	r.reset()
	return nil
}

// Reset empties the ring. Idempotent.
func (r *Ring) Reset() error {
	if !r.valid() {
		return api.OpError(api.StatusNullPointer, "ring: reset")
	}
	r.reset()
	return nil
}

// IsEmpty reports whether no bytes are buffered. False for a nil or
// released ring.
func (r *Ring) IsEmpty() bool {
	return r.valid() && !r.full && r.head == r.tail
}

// IsFull reports whether the ring holds Cap bytes. False for a nil or
// released ring.
func (r *Ring) IsFull() bool {
	return r.valid() && r.full
}

// Len returns the buffered byte count.
func (r *Ring) Len() int {
	if !r.valid() {
		return 0
	}
	return r.length()
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int {
	if !r.valid() {
		return 0
	}
	return r.size
}

// Free returns the number of bytes that can be written.
func (r *Ring) Free() int {
	if !r.valid() {
		return 0
	}
	return r.size - r.length()
}

// PutByte appends b. It fails without side effects when the ring is full.
func (r *Ring) PutByte(b byte) error {
	if !r.valid() {
		return errPutNil
	}
	if r.size-r.length() == 0 {
		return errPutSpace
	}
	r.storage[r.head] = b
	r.advanceHead()
	return nil
}

// WriteByte implements io.ByteWriter.
func (r *Ring) WriteByte(c byte) error {
	return r.PutByte(c)
}

// GetByte removes and returns the oldest byte.
func (r *Ring) GetByte() (byte, error) {
	if !r.valid() {
		return 0, errGetNil
	}
	if !r.full && r.head == r.tail {
		return 0, errGetEmpty
	}
	b := r.storage[r.tail]
	r.advanceTail()
	return b, nil
}

// ReadByte implements io.ByteReader.
func (r *Ring) ReadByte() (byte, error) {
	return r.GetByte()
}

// Write appends all of p, or nothing if p does not fit in Free.
// A nil p reports api.StatusNullPointer; an empty p is a no-op.
func (r *Ring) Write(p []byte) error {
	const op = "ring: write"
	if !r.valid() || p == nil {
		return api.OpError(api.StatusNullPointer, op)
	}
	free := r.size - r.length()
	if free < len(p) {
		return api.OpError(api.StatusNotEnoughSpace, op).
			WithContext("requested", len(p)).
			WithContext("free", free)
	}
	if len(p) == 0 {
		return nil
	}
	// At most two spans: head..end, then 0..rest.
	n := copy(r.storage[r.head:], p)
	copy(r.storage, p[n:])
	r.head = (r.head + len(p)) % r.size
	r.full = r.head == r.tail
	return nil
}

// ReadFull removes exactly len(p) bytes into p in FIFO order, or nothing if
// fewer are buffered.
func (r *Ring) ReadFull(p []byte) error {
	if err := r.copyOut(p, "ring: read"); err != nil {
		return err
	}
	if len(p) > 0 {
		r.tail = (r.tail + len(p)) % r.size
		r.full = false
	}
	return nil
}

// Read removes and returns the n oldest bytes.
func (r *Ring) Read(n int) ([]byte, error) {
	if err := r.checkCount(n, "ring: read"); err != nil {
		return nil, err
	}
	p := make([]byte, n)
	if err := r.ReadFull(p); err != nil {
		return nil, err
	}
	return p, nil
}

// PeekFull copies the len(p) oldest bytes into p without consuming them.
func (r *Ring) PeekFull(p []byte) error {
	return r.copyOut(p, "ring: peek")
}

// Peek returns a copy of the n oldest bytes without consuming them.
func (r *Ring) Peek(n int) ([]byte, error) {
	if err := r.checkCount(n, "ring: peek"); err != nil {
		return nil, err
	}
	p := make([]byte, n)
	if err := r.PeekFull(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Discard drops the n oldest bytes, or nothing if fewer are buffered.
func (r *Ring) Discard(n int) error {
	const op = "ring: discard"
	if err := r.checkCount(n, op); err != nil {
		return err
	}
	if avail := r.length(); avail < n {
		return api.OpError(api.StatusInsufficientData, op).
			WithContext("requested", n).
			WithContext("available", avail)
	}
	if n > 0 {
		r.tail = (r.tail + n) % r.size
		r.full = false
	}
	return nil
}

// Snapshot returns the current cursor state. Zero for a nil or released ring.
func (r *Ring) Snapshot() api.RingState {
	if !r.valid() {
		return api.RingState{}
	}
	return api.RingState{
		Head:     r.head,
		Tail:     r.tail,
		Full:     r.full,
		Len:      r.length(),
		Capacity: r.size,
	}
}

// copyOut fills p from tail using a local cursor; cursors are not moved.
func (r *Ring) copyOut(p []byte, op string) error {
	if !r.valid() || p == nil {
		return api.OpError(api.StatusNullPointer, op)
	}
	if avail := r.length(); avail < len(p) {
		return api.OpError(api.StatusInsufficientData, op).
			WithContext("requested", len(p)).
			WithContext("available", avail)
	}
	if len(p) == 0 {
		return nil
	}
	n := copy(p, r.storage[r.tail:])
	if n < len(p) {
		copy(p[n:], r.storage)
	}
	return nil
}

func (r *Ring) checkCount(n int, op string) error {
	if !r.valid() {
		return api.OpError(api.StatusNullPointer, op)
	}
	if n < 0 {
		return fmt.Errorf("%s: negative count %d: %w", op, n, api.ErrInvalidArgument)
	}
	return nil
}
