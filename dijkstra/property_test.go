package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmx/builder"
	"github.com/katalvlaran/pathmx/dijkstra"
	"github.com/katalvlaran/pathmx/matrix"
)

// TestEngines_AgreeAllPairs compares every engine configuration against the
// matrix engine with one worker, from every source, on generated graphs
// without parallel edges.
func TestEngines_AgreeAllPairs(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		for _, density := range []int{5, 20, 60, 100} {
			g, err := builder.Generate(24, density, builder.WithSeed(seed), builder.WithDistinctPairs())
			require.NoError(t, err)

			for s := 0; s < g.VertexCount(); s++ {
				want, err := dijkstra.Matrix(g, s, dijkstra.WithWorkers(1))
				require.NoError(t, err)
				for _, tc := range engineCases {
					got, err := dijkstra.Run(g, s, tc.engine, tc.opts...)
					require.NoError(t, err)
					require.Equal(t, want, got, "seed=%d d=%d s=%d %s", seed, density, s, tc.name)
				}
			}
		}
	}
}

// TestEngines_Properties checks the invariants of a distance vector:
// dist[s]=0, no negative entry, and no edge can still be relaxed.
func TestEngines_Properties(t *testing.T) {
	g, err := builder.Generate(60, 15, builder.WithSeed(9), builder.WithDistinctPairs())
	require.NoError(t, err)

	for _, tc := range engineCases {
		for _, s := range []int{0, 17, 59} {
			dist, err := dijkstra.Run(g, s, tc.engine, tc.opts...)
			require.NoError(t, err)
			require.Len(t, dist, g.VertexCount())
			assert.Equal(t, int64(0), dist[s])

			for _, d := range dist {
				assert.GreaterOrEqual(t, d, int64(0))
			}
			for _, e := range g.Edges() {
				if dijkstra.IsInfinite(dist[e.From]) {
					continue
				}
				assert.LessOrEqual(t, dist[e.To], dist[e.From]+e.Weight, "%s edge %+v", tc.name, e)
			}
		}
	}
}

// TestEngines_ParallelEdges: on a multigraph the matrix sees only the last
// parallel edge while the list engine relaxes all of them.
func TestEngines_ParallelEdges(t *testing.T) {
	g := newGraph(t, 2, e(0, 1, 2), e(0, 1, 9))

	m, err := dijkstra.ShortestPath(g, 0, 1, dijkstra.MatrixEngine)
	require.NoError(t, err)
	l, err := dijkstra.ShortestPath(g, 0, 1, dijkstra.ListEngine)
	require.NoError(t, err)

	assert.Equal(t, int64(9), m)
	assert.Equal(t, int64(2), l)
}

// TestMatrix_FloydWarshallOracle checks the matrix engine from every source
// against an all-pairs Floyd–Warshall closure of the same weight matrix.
// Parallel edges are allowed: both sides read only the matrix.
func TestMatrix_FloydWarshallOracle(t *testing.T) {
	for _, density := range []int{10, 40, 100} {
		g, err := builder.Generate(30, density, builder.WithSeed(int64(density)))
		require.NoError(t, err)

		all, err := matrix.FloydWarshall(g.Matrix(), dijkstra.Infinity)
		require.NoError(t, err)

		for s := 0; s < g.VertexCount(); s++ {
			got, err := dijkstra.Matrix(g, s, dijkstra.WithWorkers(3))
			require.NoError(t, err)
			want, err := all.Row(s)
			require.NoError(t, err)
			require.Equal(t, want, got, "d=%d s=%d", density, s)
		}
	}
}

// TestMatrix_Concurrent runs many matrix searches at once on one graph; the
// graph is read-only, so runs must not interfere.
func TestMatrix_Concurrent(t *testing.T) {
	g, err := builder.Generate(80, 30, builder.WithSeed(4), builder.WithDistinctPairs())
	require.NoError(t, err)
	want, err := dijkstra.List(g, 0)
	require.NoError(t, err)

	done := make(chan []int64)
	for i := 0; i < 16; i++ {
		go func() {
			d, _ := dijkstra.Matrix(g, 0, dijkstra.WithWorkers(4))
			done <- d
		}()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, want, <-done)
	}
}
