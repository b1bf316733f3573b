// Package report renders graphs and shortest-path results for humans.
//
// A Printer wraps an io.Writer and a lipgloss renderer bound to it, so
// styling degrades to plain text when the writer is not a terminal (files,
// pipes, test buffers). Large counts are grouped with go-humanize.
//
// Sections:
//
//   - Summary:   vertex count, density and edge count.
//   - Edges:     one table row per edge, in insertion order.
//   - Matrix:    every cell of the adjacency matrix.
//   - Adjacency: outgoing (to, weight) pairs per vertex.
//   - Graph:     all of the above.
//   - Distance:  one query result; Infinity reads "unreachable".
//   - Vector:    a full distance vector.
//   - Stats:     engine counters.
//   - Elapsed:   how long an operation took, in microseconds.
package report
