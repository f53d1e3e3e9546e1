// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probes over ring state.

package control

import (
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/momentics/hioload-ring/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// RegisterRing adds a probe that reports RingDump(r).
func (dp *DebugProbes) RegisterRing(name string, r api.ByteRing) {
	dp.RegisterProbe(name, func() any { return RingDump(r) })
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RingDump renders a ring's cursor state for logs and diagnostics.
func RingDump(r api.ByteRing) map[string]any {
	if r == nil {
		return map[string]any{"valid": false}
	}
	s := r.Snapshot()
	return map[string]any{
		"valid":    s.Capacity > 0,
		"capacity": humanize.IBytes(uint64(s.Capacity)),
		"used":     humanize.IBytes(uint64(s.Len)),
		"free":     humanize.IBytes(uint64(s.Capacity - s.Len)),
		"head":     s.Head,
		"tail":     s.Tail,
		"full":     s.Full,
	}
}
