// Package pathmx measures single-source shortest paths on weighted directed
// graphs with two interchangeable Dijkstra engines: a parallel engine that
// scans a dense adjacency matrix, and a sequential engine driven by a binary
// heap over the edge list.
//
// Layout:
//
//	core/       immutable Graph: vertex count, edge list, weight matrix
//	matrix/     int64 Dense storage and a Floyd–Warshall reference
//	builder/    parallel random graph generator (vertex count + density)
//	dijkstra/   Run, Matrix, List and ShortestPath; options and stats
//	graphio/    plain-text load/save ("E V" header, "from to weight" lines)
//	report/     styled terminal output for graphs, distances and timings
//	config/     TOML file, .env and PATHMX_* environment settings
//	cmd/pathmx  cobra CLI with an interactive menu
//
// Conventions shared by every package:
//
//   - Vertices are dense indices in [0, V).
//   - Weights are non-negative int64; a zero matrix cell means "no edge".
//   - Unreachable vertices report dijkstra.Infinity (math.MaxInt64).
//   - Errors are sentinels wrapped with context; match them with errors.Is.
//
// Quick start:
//
//	g, _ := builder.Generate(1000, 25, builder.WithSeed(7))
//	d, _ := dijkstra.ShortestPath(g, 0, 999, dijkstra.MatrixEngine)
//
//	go install github.com/katalvlaran/pathmx/cmd/pathmx@latest
package pathmx
