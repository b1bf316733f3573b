// Package builder generates random weighted directed graphs for benchmarking
// the shortest-path engines.
//
// The package offers:
//
//   - Generate(vertexCount, densityPercent, opts...): a parallel sampler that
//     produces vertexCount·(vertexCount-1)·density/200 edges.
//   - EdgeCount: the edge count Generate would produce.
//   - Options:
//     – WithSeed:          reproducible output for a fixed seed and pool size.
//     – WithWorkers:       generator pool size (default min(NumCPU, 8)).
//     – WithWeightRange:   inclusive weight bounds (default [1, 10]).
//     – WithDistinctPairs: no parallel edges and no self-loops.
//
// Guarantees:
//
//   - Every weight is in the configured range, so no edge reads as "no edge".
//   - Degenerate inputs (fewer than two vertices, non-positive density) give
//     an edgeless graph rather than an error.
//   - Vertex counts above core.MaxVertices return core.ErrTooManyVertices.
//   - Invalid inputs return ErrTooFewVertices or ErrInvalidDensity wrapped
//     with the method name; option constructors panic on nonsense values.
//
// Example:
//
//	g, err := builder.Generate(1000, 25, builder.WithSeed(7))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.EdgeCount()) // 124875
package builder
