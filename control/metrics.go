// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Outcome counters keyed by operation and status.

package control

import (
	"sort"
	"sync"
	"time"

	"github.com/momentics/hioload-ring/api"
)

// MetricsRegistry counts operation outcomes.
type MetricsRegistry struct {
	mu      sync.RWMutex
	counts  map[string]map[api.Status]uint64
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counts: make(map[string]map[api.Status]uint64),
	}
}

// Record counts the status of err for op and returns err unchanged.
func (mr *MetricsRegistry) Record(op string, err error) error {
	st := api.StatusOf(err)
	mr.mu.Lock()
	m, ok := mr.counts[op]
	if !ok {
		m = make(map[api.Status]uint64)
		mr.counts[op] = m
	}
	m[st]++
	mr.updated = time.Now()
	mr.mu.Unlock()
	return err
}

// Count returns how often op finished with st.
func (mr *MetricsRegistry) Count(op string, st api.Status) uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counts[op][st]
}

// GetSnapshot returns "op/status" -> count.
func (mr *MetricsRegistry) GetSnapshot() map[string]uint64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]uint64)
	for op, m := range mr.counts {
		for st, n := range m {
			out[op+"/"+st.String()] = n
		}
	}
	return out
}

// Ops returns recorded operation names in sorted order.
func (mr *MetricsRegistry) Ops() []string {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	ops := make([]string, 0, len(mr.counts))
	for op := range mr.counts {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Updated returns the time of the last Record.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
