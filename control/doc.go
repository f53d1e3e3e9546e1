// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, debug introspection and outcome metrics for byte rings.
//
// Provides:
//   - Typed configuration with defaults, validation and YAML loading
//   - Debug probes that snapshot ring cursor state
//   - Per-operation status counters
package control
