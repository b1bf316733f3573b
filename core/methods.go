// Package core: Graph construction and read-only queries.
//
// New is the single constructor. It validates every edge, then derives the
// adjacency matrix and the per-source index in one pass over the edge
// sequence, so the later of two parallel edges always wins in the matrix.

package core

import (
	"fmt"

	"github.com/katalvlaran/pathmx/matrix"
)

// New builds a Graph over vertexCount vertices (IDs 0..vertexCount-1) from
// edges, which are copied. Edges are validated in order; the first violation
// is returned and no Graph is produced.
//
// Errors:
//   - ErrNegativeVertexCount if vertexCount < 0.
//   - ErrTooManyVertices if vertexCount > MaxVertices.
//   - ErrVertexOutOfRange if an endpoint is outside [0, vertexCount).
//   - ErrNegativeWeight if an edge weight is below zero.
//
// Complexity: O(V² + E) time and memory.
func New(vertexCount int, edges []Edge) (*Graph, error) {
	// 1) Validate vertex count.
	if vertexCount < 0 {
		return nil, fmt.Errorf("New(%d): %w", vertexCount, ErrNegativeVertexCount)
	}
	if vertexCount > MaxVertices {
		return nil, fmt.Errorf("New(%d): limit %d: %w", vertexCount, MaxVertices, ErrTooManyVertices)
	}

	// 2) Allocate the square weight matrix (0×0 for the empty graph).
	weights, err := matrix.NewSquare(vertexCount)
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", vertexCount, err)
	}

	g := &Graph{
		vertexCount: vertexCount,
		edges:       make([]Edge, len(edges)),
		weights:     weights,
		out:         make([][]int, vertexCount),
	}
	copy(g.edges, edges)

	// 3) Validate and index every edge in insertion order.
	var e Edge
	for i := range g.edges {
		e = g.edges[i]
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			return nil, fmt.Errorf("New: edge #%d %d→%d with %d vertices: %w",
				i, e.From, e.To, vertexCount, ErrVertexOutOfRange)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("New: edge #%d %d→%d weight=%d: %w",
				i, e.From, e.To, e.Weight, ErrNegativeWeight)
		}
		// Last write wins for parallel edges. Bounds already checked above.
		_ = g.weights.Set(e.From, e.To, e.Weight)
		g.out[e.From] = append(g.out[e.From], i)
	}

	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges in the edge sequence,
// including parallel and zero-weight edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasVertex reports whether id lies in [0, VertexCount).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < g.vertexCount
}

// CheckVertex returns ErrVertexOutOfRange (wrapped with the offending ID)
// when id is not a vertex of g.
func (g *Graph) CheckVertex(id int) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", id, g.vertexCount, ErrVertexOutOfRange)
	}

	return nil
}

// Edges returns a copy of the edge sequence in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeAt returns the i-th edge of the sequence.
// It panics when i is out of range, like a slice index.
func (g *Graph) EdgeAt(i int) Edge { return g.edges[i] }

// Outgoing returns the edges leaving v in insertion order.
// Returns ErrVertexOutOfRange for an invalid v.
// Complexity: O(deg⁺(v)).
func (g *Graph) Outgoing(v int) ([]Edge, error) {
	if err := g.CheckVertex(v); err != nil {
		return nil, err
	}
	idx := g.out[v]
	out := make([]Edge, len(idx))
	for i, k := range idx {
		out[i] = g.edges[k]
	}

	return out, nil
}

// Weight returns the matrix cell (from,to); NoEdge means no usable edge.
func (g *Graph) Weight(from, to int) (int64, error) {
	if err := g.CheckVertex(from); err != nil {
		return 0, err
	}
	if err := g.CheckVertex(to); err != nil {
		return 0, err
	}

	return g.weights.At(from, to)
}

// Matrix returns the adjacency matrix. The result is shared with g and must
// be treated as read-only; use Clone for a private copy.
func (g *Graph) Matrix() *matrix.Dense { return g.weights }

// Density returns EdgeCount / (V*(V-1)/2) * 100, i.e. the share of unordered
// vertex pairs realized as edges, in percent. It is 0 for V ≤ 1.
// Parallel edges count individually, so the value may exceed 100.
func (g *Graph) Density() float64 {
	if g.vertexCount <= 1 {
		return 0
	}
	pairs := float64(g.vertexCount) * float64(g.vertexCount-1) / 2

	return float64(len(g.edges)) / pairs * 100
}

// Equal reports whether g and o have the same vertex count, the same edge
// sequence and therefore the same matrix.
func (g *Graph) Equal(o *Graph) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.vertexCount != o.vertexCount || len(g.edges) != len(o.edges) {
		return false
	}
	for i := range g.edges {
		if g.edges[i] != o.edges[i] {
			return false
		}
	}

	return g.weights.Equal(o.weights)
}

// MaxEdges returns V*(V-1)/2, the edge count of a 100% dense graph.
func MaxEdges(vertexCount int) int {
	if vertexCount <= 1 {
		return 0
	}

	return vertexCount * (vertexCount - 1) / 2
}
