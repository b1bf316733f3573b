package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/pathmx/core"
)

// maxPrealloc bounds the edge slice capacity reserved from the header, so a
// huge declared count cannot force a huge allocation before any edge is read.
const maxPrealloc = 1 << 16

// tokenizer yields whitespace-separated integers from a stream.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

// next parses the next token as an int64. what names the field in errors.
func (t *tokenizer) next(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %w", ErrIO, what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input at %s", ErrFormat, what)
	}
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrFormat, what, t.sc.Text())
	}

	return v, nil
}

// nextVertex parses the next token as a vertex ID in [0, n).
func (t *tokenizer) nextVertex(what string, n int) (int, error) {
	v, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= int64(n) {
		return 0, fmt.Errorf("%w: %s=%d not in [0,%d)", ErrFormat, what, v, n)
	}

	return int(v), nil
}

// Load reads a graph from r.
//
// Steps:
//  1. Header: edge count and vertex count, both non-negative; the vertex
//     count is at most core.MaxVertices.
//  2. Exactly edgeCount triples (from, to, weight); endpoints must be
//     vertices and weights non-negative.
//  3. core.New builds the matrix in edge order (later duplicates win).
func Load(r io.Reader) (*core.Graph, error) {
	t := newTokenizer(r)

	// 1) Header.
	edgeCount, err := t.next("edge count")
	if err != nil {
		return nil, err
	}
	vertexCount, err := t.next("vertex count")
	if err != nil {
		return nil, err
	}
	if edgeCount < 0 || vertexCount < 0 {
		return nil, fmt.Errorf("%w: negative header %d %d", ErrFormat, edgeCount, vertexCount)
	}
	if vertexCount > core.MaxVertices || edgeCount > math.MaxInt {
		return nil, fmt.Errorf("%w: header %d %d too large (at most %d vertices)",
			ErrFormat, edgeCount, vertexCount, core.MaxVertices)
	}
	n := int(vertexCount)

	// 2) Edges.
	edges := make([]core.Edge, 0, min(int(edgeCount), maxPrealloc))
	var e core.Edge
	for i := int64(0); i < edgeCount; i++ {
		if e.From, err = t.nextVertex(fmt.Sprintf("edge #%d from", i), n); err != nil {
			return nil, err
		}
		if e.To, err = t.nextVertex(fmt.Sprintf("edge #%d to", i), n); err != nil {
			return nil, err
		}
		if e.Weight, err = t.next(fmt.Sprintf("edge #%d weight", i)); err != nil {
			return nil, err
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge #%d weight=%d is negative", ErrFormat, i, e.Weight)
		}
		edges = append(edges, e)
	}

	// 3) Build.
	g, err := core.New(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return g, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
