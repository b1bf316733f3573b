// Package core provides the immutable Graph model shared by every pathmx
// package.
//
// The Graph G = (V,E) is directed and integer-weighted:
//
//   - Vertices are the dense IDs 0..V-1; there is no vertex table.
//   - Edges form an ordered sequence (insertion order = load/generation
//     order). Parallel edges and self-loops are allowed.
//   - A V×V adjacency matrix (matrix.Dense) is derived from the sequence;
//     cell (u,v) holds the weight of the LAST edge u→v, 0 meaning "no edge".
//   - A per-source index gives the outgoing edges of each vertex in
//     insertion order (the adjacency-list view).
//
// Why immutable?
//
//   - The shortest-path engines read the graph from many goroutines at once;
//     without mutators no locking is needed.
//   - A build either succeeds completely or returns an error; callers never
//     observe a half-built graph.
//
// Limitations:
//
//   - A zero-weight edge is indistinguishable from "no edge" in the matrix.
//     It stays in the edge sequence (and is written back on save) but both
//     engines ignore it.
//
// Complexity:
//
//   - New:      O(V² + E) time and memory.
//   - Weight:   O(1).
//   - Outgoing: O(deg⁺(v)).
//   - Edges:    O(E) (copy).
//
// Example:
//
//	g, err := core.New(3, []core.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, _ := g.Weight(0, 1) // 2
package core
