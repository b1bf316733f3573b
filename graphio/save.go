package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathmx/core"
)

// Save writes g to w: the header "<edgeCount> <vertexCount>", then one
// "<from> <to> <weight>" line per edge in insertion order.
func Save(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.EdgeCount(), g.VertexCount()); err != nil {
		return fmt.Errorf("%w: header: %w", ErrIO, err)
	}
	var e core.Edge
	for i, m := 0, g.EdgeCount(); i < m; i++ {
		e = g.EdgeAt(i)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("%w: edge #%d: %w", ErrIO, i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrIO, err)
	}

	return nil
}

// SaveFile creates (or truncates) path and writes g to it.
func SaveFile(path string, g *core.Graph) (err error) {
	if g == nil {
		return ErrNilGraph
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIO, path, cerr)
		}
	}()

	if err = Save(f, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
