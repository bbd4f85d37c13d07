// SPDX-License-Identifier: MIT
// Package: zplane/cmap
//
// options.go - functional options for MapLines.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input; the
//     mapping functions themselves never panic on their own account.
//   • Defaults are deterministic: one worker, i.e. sequential mapping.

package cmap

// Option customizes MapLines.
type Option func(*config)

// config holds the resolved MapLines knobs.
type config struct {
	workers int // ≥1; 1 means sequential
}

// defaultWorkers keeps mapping sequential unless asked otherwise.
const defaultWorkers = 1

// newConfig applies opts over the defaults in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{workers: defaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers sets how many lines may be mapped concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("cmap: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
