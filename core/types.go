// Package core defines the central Graph and Edge types of pathmx.
//
// A Graph is built exactly once by New and is read-only afterwards: there are
// no mutators, so any number of goroutines may query it concurrently without
// locks. Every build path (text load, random generation, tests) goes through
// New, which validates the edges and derives the adjacency matrix and the
// per-source adjacency index from the edge sequence.
//
// Errors:
//
//	ErrNegativeVertexCount - vertex count below zero.
//	ErrVertexOutOfRange    - vertex ID outside [0, VertexCount).
//	ErrNegativeWeight      - edge weight below zero.
package core

import (
	"errors"

	"github.com/katalvlaran/pathmx/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates that New received a vertex count below zero.
	ErrNegativeVertexCount = errors.New("core: vertex count is negative")

	// ErrTooManyVertices indicates a vertex count above MaxVertices.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrVertexOutOfRange indicates a vertex ID outside [0, VertexCount).
	// Shortest-path queries return it before doing any work.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// MaxVertices is the largest vertex count New accepts; its square fits in
// matrix.MaxCells.
const MaxVertices = 1 << 14

// NoEdge is the matrix value meaning "no edge from u to v".
// As a consequence a genuine zero-weight edge cannot be represented:
// it is kept in the edge sequence but treated as absent by the engines.
const NoEdge int64 = 0

// Edge is a directed, weighted connection From→To.
// Parallel edges are allowed; the later one wins in the matrix.
type Edge struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Graph is the immutable in-memory graph.
//
// edges keeps insertion order (the order of the text file or of generation);
// weights is the vertexCount×vertexCount adjacency matrix; out[v] lists the
// indices into edges of the edges leaving v, in insertion order.
type Graph struct {
	vertexCount int
	edges       []Edge
	weights     *matrix.Dense
	out         [][]int
}
