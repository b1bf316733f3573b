package dijkstra

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/pathmx/core"
	"github.com/katalvlaran/pathmx/internal/workers"
)

// matrixRunner holds the mutable state for a single matrix-engine execution.
//
// Ownership per round:
//   - dist: every worker may load any cell; a cell is stored only by the
//     worker whose stride contains it.
//   - visited: written by the coordinator between rounds only.
//   - best*: the shared frontier slot, guarded by mu.
type matrixRunner struct {
	g       *core.Graph
	options Options
	pool    *workers.Pool
	dist    distances
	visited []bool

	mu         sync.Mutex
	bestVertex int
	bestDist   int64

	relaxed atomic.Int64
}

// newMatrixRunner prepares the arena and the pool.
func newMatrixRunner(g *core.Graph, source int, cfg Options) *matrixRunner {
	size := cfg.Workers
	if size == 0 {
		size = workers.Default(DefaultMatrixWorkers)
	}

	return &matrixRunner{
		g:       g,
		options: cfg,
		pool:    workers.New(size),
		dist:    newDistances(g.VertexCount(), source),
		visited: make([]bool, g.VertexCount()),
	}
}

// run executes at most V-1 rounds of select → mark → relax and returns a
// snapshot of the distance vector.
//
// Loop termination conditions:
//
//   - V-1 rounds elapsed (the last vertex needs no relaxation of its own).
//   - No unvisited vertex has a finite distance.
func (r *matrixRunner) run() []int64 {
	n := r.g.VertexCount()
	rounds, settled := 0, 0
	var u int
	for rounds < n-1 {
		rounds++

		// 1) Frontier selection (parallel).
		u = r.selectFrontier()

		// 2) Nothing finite left: every remaining vertex is unreachable.
		if u < 0 {
			break
		}

		// 3) Mark visited; single writer, no other goroutine is running.
		r.visited[u] = true
		settled++
		r.options.OnVisit(u, r.dist.load(u))

		// 4) Relaxation (parallel).
		r.relax(u)
	}

	if s := r.options.Stats; s != nil {
		*s = Stats{
			Engine:      MatrixEngine,
			Workers:     r.pool.Size(),
			Rounds:      rounds,
			Settled:     settled,
			Relaxations: r.relaxed.Load(),
		}
	}

	return r.dist.snapshot()
}

// selectFrontier returns the unvisited vertex with the smallest finite
// distance, or -1 when there is none.
//
// Each worker scans its stride for a local minimum, then offers it to the
// shared slot. Both comparisons are strict, so an equal distance never
// displaces a candidate that is already there: among ties the winner is the
// first one observed, which depends on scheduling. Final distances do not.
func (r *matrixRunner) selectFrontier() int {
	r.bestVertex, r.bestDist = -1, Infinity
	n, size := r.g.VertexCount(), r.pool.Size()

	_ = r.pool.Run(func(w int) error {
		local, localDist := -1, Infinity
		workers.Stride(w, size, n, func(v int) {
			if r.visited[v] {
				return
			}
			if d := r.dist.load(v); d < localDist {
				local, localDist = v, d
			}
		})
		if local < 0 {
			return nil
		}

		// Lock held only for compare-and-maybe-update.
		r.mu.Lock()
		if localDist < r.bestDist {
			r.bestVertex, r.bestDist = local, localDist
		}
		r.mu.Unlock()

		return nil
	})

	return r.bestVertex
}

// relax lowers dist[v] for every unvisited v with a matrix edge u→v.
// dist[u] is final and read-only for the round; each v belongs to exactly
// one worker's stride, so no cell has two writers.
func (r *matrixRunner) relax(u int) {
	n, size := r.g.VertexCount(), r.pool.Size()
	du := r.dist.load(u)
	row := r.g.Matrix().RowView(u)

	_ = r.pool.Run(func(w int) error {
		var count int64
		workers.Stride(w, size, n, func(v int) {
			if r.visited[v] || row[v] == core.NoEdge {
				return
			}
			if cand := extend(du, row[v]); cand < r.dist.load(v) {
				r.dist.store(v, cand)
				count++
			}
		})
		r.relaxed.Add(count)

		return nil
	})
}
