// SPDX-License-Identifier: MIT
// Package: pathmx/builder
//
// generate.go - implementation of Generate(vertexCount, densityPercent).
//
// Model:
//   - edgeCount = V·(V-1)·density/200, integer arithmetic.
//   - Default: every edge draws from, to uniformly in [0,V) and a weight
//     uniformly in [min,max]. Self-loops and parallel edges may occur.
//   - WithDistinctPairs: (from,to) pairs are drawn without replacement from
//     the V·(V-1) ordered pairs with from != to.
//
// Concurrency:
//   - The edge slice is split into contiguous spans, one per worker; the last
//     worker takes the remainder. Each worker writes only its own span and
//     draws from a private source seeded with seed+worker.
//   - Workers never touch the matrix. core.New fills it after the join, in
//     edge-index order, so the later of two parallel edges owns the cell.
//
// Complexity:
//   - Time:  O(E/P) per worker plus O(V² + E) for core.New.
//   - Space: O(E) edges (plus O(E) pair bookkeeping with WithDistinctPairs).

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathmx/core"
	"github.com/katalvlaran/pathmx/internal/workers"
)

const methodGenerate = "Generate"

// EdgeCount returns the number of edges Generate produces for the given
// inputs, or 0 for degenerate ones. It saturates at math.MaxInt when
// V·(V-1) does not fit in an int.
func EdgeCount(vertexCount, densityPercent int) int {
	if vertexCount <= 1 || densityPercent <= 0 {
		return 0
	}
	if densityPercent > MaxDensity {
		densityPercent = MaxDensity
	}
	if vertexCount-1 > math.MaxInt/vertexCount {
		return math.MaxInt
	}

	// pairs·d/200 split as (200q+r)·d/200 = q·d + r·d/200, exact and
	// overflow free for d <= 100.
	pairs := vertexCount * (vertexCount - 1)
	q, r := pairs/200, pairs%200

	return q*densityPercent + r*densityPercent/200
}

// Generate builds a random directed graph with vertexCount vertices and
// EdgeCount(vertexCount, densityPercent) edges.
//
// Validation:
//   - vertexCount < 0       → ErrTooFewVertices.
//   - vertexCount > core.MaxVertices → core.ErrTooManyVertices.
//   - densityPercent > 100  → ErrInvalidDensity.
//   - vertexCount <= 1 or densityPercent <= 0 → a graph with no edges.
func Generate(vertexCount, densityPercent int, opts ...Option) (*core.Graph, error) {
	// 1) Validate parameters before any allocation.
	if vertexCount < 0 {
		return nil, fmt.Errorf("%s: vertexCount=%d < 0: %w", methodGenerate, vertexCount, ErrTooFewVertices)
	}
	if vertexCount > core.MaxVertices {
		return nil, fmt.Errorf("%s: vertexCount=%d > %d: %w", methodGenerate, vertexCount, core.MaxVertices, core.ErrTooManyVertices)
	}
	if densityPercent > MaxDensity {
		return nil, fmt.Errorf("%s: density=%d > %d: %w", methodGenerate, densityPercent, MaxDensity, ErrInvalidDensity)
	}

	cfg := newBuilderConfig(opts...)
	edges := make([]core.Edge, EdgeCount(vertexCount, densityPercent))

	// 2) Endpoints without replacement are drawn up front from one source;
	//    workers then only draw weights.
	var pairs []int
	if cfg.distinctPairs {
		pairs = samplePairs(rand.New(rand.NewSource(cfg.seed)), vertexCount*(vertexCount-1), len(edges))
	}

	// 3) Fill spans in parallel; Run returns after every worker is done.
	pool := workers.New(cfg.workers)
	_ = pool.Run(func(w int) error {
		rng := rand.New(rand.NewSource(cfg.seed + int64(w)))
		start, end := workers.Span(w, pool.Size(), len(edges))
		for i := start; i < end; i++ {
			if pairs != nil {
				edges[i].From, edges[i].To = pairFromIndex(pairs[i], vertexCount)
			} else {
				edges[i].From = rng.Intn(vertexCount)
				edges[i].To = rng.Intn(vertexCount)
			}
			edges[i].Weight = cfg.minWeight + rng.Int63n(cfg.maxWeight-cfg.minWeight+1)
		}

		return nil
	})

	// 4) Single-threaded matrix fill in edge order.
	g, err := core.New(vertexCount, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return g, nil
}

// samplePairs returns k distinct indices of [0, total) with a partial
// Fisher–Yates shuffle over a sparse swap map.
func samplePairs(rng *rand.Rand, total, k int) []int {
	out := make([]int, k)
	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(total-i)
		out[i] = at(j)
		swapped[j] = at(i)
	}

	return out
}

// pairFromIndex maps k in [0, n·(n-1)) to the k-th ordered pair (from, to)
// with from != to, row-major.
func pairFromIndex(k, n int) (from, to int) {
	from, to = k/(n-1), k%(n-1)
	if to >= from {
		to++
	}

	return from, to
}
