// Package graphio reads and writes graphs in the plain text edge-list format.
//
// Format:
//
//	<edgeCount> <vertexCount>
//	<from> <to> <weight>      (edgeCount lines)
//
// Tokens are separated by any whitespace, so line breaks are not
// significant. Tokens after the declared edges are ignored.
//
// Guarantees:
//
//   - Save writes the edge sequence in insertion order, one edge per line,
//     so Load(Save(g)) rebuilds an equal graph (same edges, same matrix).
//   - Load returns no graph on failure.
//
// Errors (sentinel):
//
//   - ErrFormat:   malformed, truncated or out-of-range content.
//   - ErrIO:       the underlying reader, writer or file failed.
//   - ErrNilGraph: Save was given a nil graph.
//
// File variants wrap the os error as well, so errors.Is(err, fs.ErrNotExist)
// also works on LoadFile.
package graphio
