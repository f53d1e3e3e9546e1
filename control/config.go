// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Ring configuration: defaults, YAML file loading and validation.

package control

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/pool"
)

// Config describes one ring and its storage.
type Config struct {
	Capacity int    `yaml:"capacity"`  // Ring capacity in bytes
	Backend  string `yaml:"backend"`   // Storage backend: heap or mmap
	Pooled   bool   `yaml:"pooled"`    // Draw storage from a RegionPool
	MaxIdle  int    `yaml:"max_idle"`  // Idle regions kept by the pool
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Capacity: 128,
		Backend:  string(pool.BackendHeap),
		Pooled:   false,
		MaxIdle:  4,
		LogLevel: "info",
	}
}

// Validate reports the first unusable field.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("control: nil config: %w", api.ErrInvalidArgument)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("control: capacity must be positive, got %d: %w", c.Capacity, api.ErrInvalidArgument)
	}
	if _, err := pool.ParseBackend(c.Backend); err != nil {
		return fmt.Errorf("control: %w", err)
	}
	if c.MaxIdle < 0 {
		return fmt.Errorf("control: max_idle must not be negative, got %d: %w", c.MaxIdle, api.ErrInvalidArgument)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("control: unknown log level %q: %w", c.LogLevel, api.ErrInvalidArgument)
	}
	return nil
}

// LoadFile reads a YAML config from path on top of DefaultConfig.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("control: read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("control: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
