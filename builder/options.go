// SPDX-License-Identifier: MIT
// Package: pathmx/builder
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • Determinism is explicit: the same seed and worker count reproduce the
//     same edge sequence.

package builder

// Option customizes Generate by mutating a builderConfig before sampling.
type Option func(*builderConfig)

// WithSeed fixes the base seed. Worker w seeds its private source with
// seed+w, so the output also depends on the worker count.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.seed, c.seeded = seed, true
	}
}

// WithWorkers sets the generator pool size (clamped to workers.MaxWorkers).
// Zero restores the default. Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("builder: WithWorkers(n<0)")
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}

// WithWeightRange draws weights uniformly from [min, max].
// Panics unless 1 <= min <= max: a zero weight would read as "no edge".
func WithWeightRange(min, max int64) Option {
	if min < 1 || max < min {
		panic("builder: WithWeightRange requires 1 <= min <= max")
	}
	return func(c *builderConfig) {
		c.minWeight, c.maxWeight = min, max
	}
}

// WithDistinctPairs samples (from, to) pairs without replacement and without
// self-loops, so every matrix cell holds at most one edge. Both shortest-path
// engines then agree on every distance.
func WithDistinctPairs() Option {
	return func(c *builderConfig) {
		c.distinctPairs = true
	}
}
