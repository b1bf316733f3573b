// Package workers provides the bounded worker pool used for per-round
// fan-out in pathmx.
//
// A Pool has a fixed size. Run starts exactly Size() tasks, one per worker
// index, on an errgroup.Group limited to that size and blocks until all of
// them return. The return of Run is the round barrier: every write made by a
// task happens-before Run returns, so the caller may read shared state
// without further synchronization before starting the next round.
package workers

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxWorkers caps every pool regardless of the machine size.
const MaxWorkers = 8

// Default returns min(runtime.NumCPU(), limit), clamped to [1, MaxWorkers].
func Default(limit int) int {
	n := runtime.NumCPU()
	if limit > 0 && n > limit {
		n = limit
	}

	return clamp(n)
}

// clamp bounds n to [1, MaxWorkers].
func clamp(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxWorkers {
		return MaxWorkers
	}

	return n
}

// Pool is a reusable fan-out/join helper of fixed size.
// The zero value is not usable; call New.
type Pool struct {
	size int
}

// New returns a Pool of the given size clamped to [1, MaxWorkers].
func New(size int) *Pool {
	return &Pool{size: clamp(size)}
}

// Size returns the number of tasks Run starts.
func (p *Pool) Size() int { return p.size }

// Run calls fn(worker) for worker = 0..Size()-1 concurrently and waits for
// all calls to return. It returns the first non-nil error, after every task
// has finished.
func (p *Pool) Run(fn func(worker int) error) error {
	var g errgroup.Group
	g.SetLimit(p.size)
	for w := 0; w < p.size; w++ {
		w := w
		g.Go(func() error { return fn(w) })
	}

	return g.Wait()
}

// Stride calls fn(i) for every i in [0, n) with i ≡ worker (mod size).
// It is the stride partition used by frontier selection and relaxation.
func Stride(worker, size, n int, fn func(i int)) {
	for i := worker; i < n; i += size {
		fn(i)
	}
}

// Span returns the half-open range [start, end) of n items owned by worker
// when they are split into size contiguous chunks of n/size items, the last
// worker taking the remainder.
func Span(worker, size, n int) (start, end int) {
	per := n / size
	start = worker * per
	end = start + per
	if worker == size-1 {
		end = n
	}

	return start, end
}
