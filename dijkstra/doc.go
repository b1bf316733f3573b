// Package dijkstra provides two single-source shortest-path engines over a
// core.Graph with non-negative integer weights.
//
// Overview:
//
//   - MatrixEngine: Dijkstra over the dense adjacency matrix, parallelized
//     inside each round. A bounded worker pool (min(NumCPU, 4) by default)
//     splits the vertex IDs by stride; every round is a parallel frontier
//     selection followed by a parallel relaxation, each ended by a join
//     barrier.
//   - ListEngine: lazy-deletion Dijkstra over the edge sequence with one
//     mutex-guarded min-priority queue keyed by (distance, vertex).
//
// Both engines return the full distance vector; ShortestPath picks one entry.
// Unreachable vertices keep the Infinity sentinel. Distances never increase
// during a run and are never negative.
//
// Concurrency model (matrix engine):
//
//   - Distance cells are atomic.Int64, one per vertex, owned by the run.
//   - Frontier selection: workers scan their stride without locks and take a
//     sync.Mutex only to compare their local minimum with the shared slot.
//     Ties are broken with a strict "<": an equal distance never replaces a
//     candidate already in the slot, so among equal minima the winner depends
//     on scheduling. Traversal order may differ from run to run; final
//     distances do not.
//   - The coordinator marks the chosen vertex visited between rounds.
//   - Relaxation: each vertex cell is stored only by the worker owning its
//     stride, and dist[u] of the chosen vertex is read-only for the round, so
//     relaxation needs no lock.
//   - There is no cancellation: a run always completes.
//
// Graph conventions:
//
//   - A matrix cell of 0 means "no edge". Zero-weight edges of the edge
//     sequence are skipped by the list engine too, so both engines see the
//     same edge set.
//   - Parallel edges: the matrix holds the last one, while the list engine
//     relaxes every one of them. On graphs whose parallel edges disagree in
//     weight the engines may therefore differ; on every other graph they
//     agree on all distances.
//
// Complexity:
//
//   - MatrixEngine: O(V²) work split over P workers, 2(V-1) barriers.
//   - ListEngine:   O(V·E + E log E) with the linear edge scan,
//     O((V + E) log E) with WithSourceIndex.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: the graph pointer is nil.
//   - core.ErrVertexOutOfRange: source or target outside [0, VertexCount);
//     reported before any engine work starts.
//   - ErrUnknownEngine: unsupported engine value or name.
//
// Example:
//
//	d, err := dijkstra.ShortestPath(g, 0, 3, dijkstra.MatrixEngine)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if dijkstra.IsInfinite(d) {
//	    fmt.Println("unreachable")
//	}
package dijkstra
