// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/ring"
)

func TestDebugProbes_RingDump(t *testing.T) {
	r, err := ring.New(make([]byte, 2048), 2048)
	require.NoError(t, err)
	require.NoError(t, r.Write(make([]byte, 1024)))

	dp := NewDebugProbes()
	dp.RegisterRing("rx", r)
	dp.RegisterProbe("static", func() any { return 7 })

	state := dp.DumpState()
	assert.Equal(t, 7, state["static"])
	dump, ok := state["rx"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2.0 KiB", dump["capacity"])
	assert.Equal(t, "1.0 KiB", dump["used"])
	assert.Equal(t, "1.0 KiB", dump["free"])
	assert.Equal(t, 1024, dump["head"])
	assert.Equal(t, 0, dump["tail"])
	assert.Equal(t, false, dump["full"])
	assert.Equal(t, true, dump["valid"])

	require.NoError(t, r.Release())
	assert.Equal(t, false, RingDump(r)["valid"])
	assert.Equal(t, false, RingDump(nil)["valid"])
}

func TestMetricsRegistry(t *testing.T) {
	mr := NewMetricsRegistry()
	assert.NoError(t, mr.Record("put", nil))
	assert.NoError(t, mr.Record("put", nil))
	assert.ErrorIs(t, mr.Record("put", api.ErrNotEnoughSpace), api.ErrNotEnoughSpace)
	_ = mr.Record("get", api.ErrNoData)

	assert.Equal(t, uint64(2), mr.Count("put", api.StatusOK))
	assert.Equal(t, uint64(1), mr.Count("put", api.StatusNotEnoughSpace))
	assert.Equal(t, []string{"get", "put"}, mr.Ops())
	assert.Equal(t, map[string]uint64{
		"put/ok":               2,
		"put/not enough space": 1,
		"get/no data":          1,
	}, mr.GetSnapshot())
	assert.False(t, mr.Updated().IsZero())
}
