// SPDX-License-Identifier: MIT
// Package: pathmx/builder
//
// config.go - internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • seed          = wall clock at config time (pass WithSeed to reproduce)
//   • workers       = min(NumCPU, 8)
//   • weight range  = [1, 10]
//   • distinctPairs = false (independent endpoints, parallel edges allowed)

package builder

import (
	"time"

	"github.com/katalvlaran/pathmx/internal/workers"
)

// Weight bounds used when WithWeightRange is not given.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 10
)

// DefaultGenerateWorkers bounds the generator pool when WithWorkers is unset.
const DefaultGenerateWorkers = 8

// MaxDensity is the largest accepted density percentage.
const MaxDensity = 100

// builderConfig aggregates all knobs used by Generate.
// It is passed by value (immutable to callers).
type builderConfig struct {
	seed          int64 // base seed; worker w draws from seed+w
	seeded        bool  // seed came from WithSeed
	workers       int   // generator pool size; 0 selects the default
	minWeight     int64 // inclusive
	maxWeight     int64 // inclusive
	distinctPairs bool  // sample (from,to) without replacement, no self-loops
}

// newBuilderConfig returns defaults overridden by opts, in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.seeded {
		cfg.seed = time.Now().UnixNano()
	}
	if cfg.workers == 0 {
		cfg.workers = workers.Default(DefaultGenerateWorkers)
	}

	return cfg
}
