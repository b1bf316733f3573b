package graphio

import "errors"

// Sentinel errors returned by Load and Save.
var (
	// ErrFormat indicates malformed or truncated graph text.
	ErrFormat = errors.New("graphio: bad format")

	// ErrIO indicates a failing reader, writer or file.
	ErrIO = errors.New("graphio: i/o failure")

	// ErrNilGraph indicates that Save received a nil graph.
	ErrNilGraph = errors.New("graphio: graph is nil")
)
