// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go: randomized invariant checks against a slice model.
package ring

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRingPropertyBased drives random single and bulk operations and checks
// FIFO order and the occupancy invariants after every step.
func TestRingPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		capacity := 1 + rng.Intn(64)
		r := newRing(t, capacity)
		model := []byte{}

		for i := 0; i < 5000; i++ {
			switch rng.Intn(5) {
			case 0:
				b := byte(rng.Intn(256))
				if err := r.PutByte(b); err == nil {
					model = append(model, b)
				} else {
					require.Len(t, model, capacity)
				}
			case 1:
				b, err := r.GetByte()
				if len(model) == 0 {
					require.Error(t, err)
					break
				}
				require.NoError(t, err)
				require.Equal(t, model[0], b)
				model = model[1:]
			case 2:
				p := make([]byte, rng.Intn(capacity+1))
				rng.Read(p)
				if err := r.Write(p); err == nil {
					model = append(model, p...)
				} else {
					require.Greater(t, len(p), capacity-len(model))
				}
			case 3:
				n := rng.Intn(capacity + 1)
				got, err := r.Read(n)
				if n > len(model) {
					require.Error(t, err)
					break
				}
				require.NoError(t, err)
				require.True(t, bytes.Equal(model[:n], got), "read %d: want %v got %v", n, model[:n], got)
				model = model[n:]
			case 4:
				n := rng.Intn(len(model) + 1)
				a, err := r.Peek(n)
				require.NoError(t, err)
				b, err := r.Peek(n)
				require.NoError(t, err)
				require.True(t, bytes.Equal(a, b), "peek not repeatable")
				require.True(t, bytes.Equal(model[:n], a), "peek %d: want %v got %v", n, model[:n], a)
			}

			require.Equal(t, len(model), r.Len())
			require.Equal(t, capacity, r.Len()+r.Free())
			require.Equal(t, len(model) == 0, r.IsEmpty())
			require.Equal(t, len(model) == capacity, r.IsFull())
			s := r.Snapshot()
			require.True(t, s.Head >= 0 && s.Head < capacity)
			require.True(t, s.Tail >= 0 && s.Tail < capacity)
		}
	}
}

// TestRing_BulkMatchesByteLoop checks that span copies leave the same
// cursors as the byte-at-a-time path.
func TestRing_BulkMatchesByteLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		capacity := 1 + rng.Intn(32)
		bulk := newRing(t, capacity)
		single := newRing(t, capacity)

		pre := rng.Intn(capacity + 1)
		require.NoError(t, bulk.Write(make([]byte, pre)))
		require.NoError(t, bulk.Discard(pre))
		for j := 0; j < pre; j++ {
			require.NoError(t, single.PutByte(0))
			_, err := single.GetByte()
			require.NoError(t, err)
		}

		p := make([]byte, rng.Intn(capacity+1))
		rng.Read(p)
		require.NoError(t, bulk.Write(p))
		for _, b := range p {
			require.NoError(t, single.PutByte(b))
		}
		require.Equal(t, single.Snapshot(), bulk.Snapshot())

		n := rng.Intn(len(p) + 1)
		require.NoError(t, bulk.ReadFull(make([]byte, n)))
		for j := 0; j < n; j++ {
			_, err := single.GetByte()
			require.NoError(t, err)
		}
		require.Equal(t, single.Snapshot(), bulk.Snapshot())
	}
}
