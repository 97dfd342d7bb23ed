// SPDX-License-Identifier: MIT
// Package: aak
//
// options.go - functional options for Generate.
//
// Contract:
//   - Option constructors PANIC on meaningless values (zero workers, nil
//     evaluator); Generate itself never panics on user input.
//   - Zero-valued knobs resolve to documented defaults in newConfig.

package aak

import (
	"runtime"

	"github.com/KwintenF/FastEMRIWaveforms/bessel"
)

// Defaults.
const (
	// DefaultStrategy is the scheduling model used when none is given.
	DefaultStrategy = Grid

	// DefaultThreads is the number of goroutines per Grid block.
	DefaultThreads = 32

	// DefaultChunk is the number of consecutive samples per Host task.
	DefaultChunk = 4096
)

// Option customises Generate.
type Option func(*config)

type config struct {
	strategy Strategy
	blocks   int // 0 ⇒ GOMAXPROCS
	threads  int
	workers  int // 0 ⇒ GOMAXPROCS
	chunk    int
	j        bessel.J
}

func newConfig(opts ...Option) config {
	cfg := config{
		strategy: DefaultStrategy,
		threads:  DefaultThreads,
		chunk:    DefaultChunk,
		j:        bessel.Std{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.blocks == 0 {
		cfg.blocks = runtime.GOMAXPROCS(0)
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	return cfg
}

// WithStrategy selects Grid or Host scheduling. Panics on unknown values.
func WithStrategy(s Strategy) Option {
	if s != Grid && s != Host {
		panic("aak: WithStrategy(unknown)")
	}
	return func(c *config) {
		c.strategy = s
	}
}

// WithGrid sets the Grid shape: blocks (each with its own staged arena) ×
// threads per block. Panics unless both are ≥ 1.
func WithGrid(blocks, threads int) Option {
	if blocks < 1 || threads < 1 {
		panic("aak: WithGrid(blocks<1 || threads<1)")
	}
	return func(c *config) {
		c.blocks, c.threads = blocks, threads
	}
}

// WithWorkers bounds the Host worker pool. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("aak: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithChunk sets the Host task size in samples. Panics if n < 1.
func WithChunk(n int) Option {
	if n < 1 {
		panic("aak: WithChunk(n<1)")
	}
	return func(c *config) {
		c.chunk = n
	}
}

// WithBessel replaces the Bessel evaluator. Panics on nil.
func WithBessel(j bessel.J) Option {
	if j == nil {
		panic("aak: WithBessel(nil)")
	}
	return func(c *config) {
		c.j = j
	}
}
