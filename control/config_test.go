// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 128, cfg.Capacity)
	assert.Equal(t, "heap", cfg.Backend)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("capacity: 5\nbackend: mmap\npooled: true\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, "mmap", cfg.Backend)
	assert.True(t, cfg.Pooled)
	assert.Equal(t, 4, cfg.MaxIdle)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "capacity: 8\nsize: 9\n",
		"zero capacity": "capacity: 0\n",
		"bad backend":   "backend: tape\n",
		"bad level":     "log_level: loud\n",
		"negative idle": "max_idle: -1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
	_, err := Parse([]byte("capacity: -4\n"))
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("capacity: 64\nlog_level: debug\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Capacity)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
