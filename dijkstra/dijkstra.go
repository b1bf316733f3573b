package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathmx/core"
)

// Run computes the distance vector from source with the selected engine.
// The returned slice has one entry per vertex; unreachable vertices hold
// Infinity.
//
// Preconditions and validation (in order, before any engine work):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.VertexCount()) (core.ErrVertexOutOfRange).
//  3. engine must be MatrixEngine or ListEngine (ErrUnknownEngine).
func Run(g *core.Graph, source int, engine Engine, opts ...Option) ([]int64, error) {
	if err := validate(g, source); err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts)

	switch engine {
	case MatrixEngine:
		return newMatrixRunner(g, source, cfg).run(), nil
	case ListEngine:
		return newListRunner(g, source, cfg).run(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, engine)
	}
}

// Matrix runs the parallel adjacency-matrix engine from source.
//
// Complexity:
//   - Time:  O(V²/P) per run with P workers, plus 2(V-1) join barriers.
//   - Space: O(V).
func Matrix(g *core.Graph, source int, opts ...Option) ([]int64, error) {
	return Run(g, source, MatrixEngine, opts...)
}

// List runs the priority-queue edge-list engine from source.
//
// Complexity:
//   - Time:  O(V·E + E log E) with the linear scan,
//     O((V + E) log E) with WithSourceIndex.
//   - Space: O(V + E).
func List(g *core.Graph, source int, opts ...Option) ([]int64, error) {
	return Run(g, source, ListEngine, opts...)
}

// ShortestPath returns the distance from source to target, or Infinity if
// target is unreachable. Both vertex IDs are checked before the engine runs.
func ShortestPath(g *core.Graph, source, target int, engine Engine, opts ...Option) (int64, error) {
	if err := validate(g, source); err != nil {
		return 0, err
	}
	if err := g.CheckVertex(target); err != nil {
		return 0, fmt.Errorf("dijkstra: target: %w", err)
	}

	dist, err := Run(g, source, engine, opts...)
	if err != nil {
		return 0, err
	}

	return dist[target], nil
}

// validate checks the graph pointer and the source vertex.
func validate(g *core.Graph, source int) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := g.CheckVertex(source); err != nil {
		return fmt.Errorf("dijkstra: source: %w", err)
	}

	return nil
}
