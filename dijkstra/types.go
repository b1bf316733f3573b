// Package dijkstra defines core types and configuration options
// for the pathmx shortest-path engines.
//
// Options:
//
//	– Workers:       pool size for the matrix engine rounds (0 = min(NumCPU, 4)).
//	– IndexBySource: list engine scans g.Outgoing(u) instead of the full edge sequence.
//	– OnVisit:       hook called each time a vertex's distance becomes final.
//	– Stats:         optional sink for run counters.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrUnknownEngine     if ParseEngine receives an unsupported name.
//	– core.ErrVertexOutOfRange if source or target is not a vertex of the graph.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Infinity is the distance sentinel for "no known finite distance".
// Unreachable vertices keep it in the returned vector.
const Infinity int64 = math.MaxInt64

// DefaultMatrixWorkers bounds the matrix engine pool when Workers is unset.
const DefaultMatrixWorkers = 4

// Sentinel errors returned by the engines.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownEngine indicates that ParseEngine received an unsupported name.
	ErrUnknownEngine = errors.New("dijkstra: unknown engine")
)

// Engine selects a shortest-path variant.
type Engine int

const (
	// MatrixEngine is the parallel adjacency-matrix variant.
	MatrixEngine Engine = iota

	// ListEngine is the priority-queue edge-list variant.
	ListEngine
)

// String returns the engine name accepted by ParseEngine.
func (e Engine) String() string {
	switch e {
	case MatrixEngine:
		return "matrix"
	case ListEngine:
		return "list"
	default:
		return fmt.Sprintf("Engine(%d)", int(e))
	}
}

// ParseEngine maps "matrix" or "list" (case-insensitive) to an Engine.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "matrix":
		return MatrixEngine, nil
	case "list":
		return ListEngine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEngine, s)
	}
}

// Engines lists every variant in a stable order.
func Engines() []Engine { return []Engine{MatrixEngine, ListEngine} }

// IsInfinite reports whether d is the Infinity sentinel.
func IsInfinite(d int64) bool { return d == Infinity }

// Stats collects counters of one run. Fields not meaningful for an engine
// stay zero (Rounds for the list engine, Pushes/Pops for the matrix engine).
type Stats struct {
	Engine      Engine // variant that produced the counters
	Workers     int    // pool size (1 for the list engine)
	Rounds      int    // frontier-selection rounds started
	Settled     int    // vertices whose distance became final
	Relaxations int64  // successful distance decreases
	Pushes      int    // priority-queue pushes
	Pops        int    // priority-queue pops, stale ones included
	Stale       int    // pops discarded by lazy deletion
}

// Options configures the engines.
type Options struct {
	Workers       int                  // matrix pool size; 0 selects the default
	IndexBySource bool                 // list engine: use the per-source index
	OnVisit       func(v int, d int64) // called by the coordinator, never concurrently
	Stats         *Stats               // filled when non-nil
}

// Option represents a functional option for configuring the engines.
type Option func(*Options)

// WithWorkers sets the matrix engine pool size. Values above
// workers.MaxWorkers are clamped. Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("dijkstra: WithWorkers(n<0)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithSourceIndex makes the list engine read outgoing edges from the
// per-source index. The edges and their order are the same as with the
// linear scan, so distances are unaffected.
func WithSourceIndex() Option {
	return func(o *Options) {
		o.IndexBySource = true
	}
}

// WithOnVisit registers a callback for every settled vertex, in settling order.
// The matrix engine stops after V-1 rounds, so it does not report the last
// vertex of a fully reachable graph; its distance is final all the same.
func WithOnVisit(fn func(v int, d int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithStats asks the engine to fill s with run counters.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns Options with no hooks, default pool size and the
// linear edge scan.
func DefaultOptions() Options {
	return Options{
		Workers: 0,
		OnVisit: func(int, int64) {},
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
