package dijkstra

import "sync/atomic"

// distances is the per-run arena of distance cells, one per vertex.
// Cells are atomics so that workers may read any cell while others store to
// their own cells within the same round.
type distances []atomic.Int64

// newDistances returns n cells set to Infinity except source, set to 0.
func newDistances(n, source int) distances {
	d := make(distances, n)
	for i := range d {
		d[i].Store(Infinity)
	}
	d[source].Store(0)

	return d
}

func (d distances) load(v int) int64 { return d[v].Load() }

func (d distances) store(v int, x int64) { d[v].Store(x) }

// snapshot copies the cells into a plain slice for the caller.
func (d distances) snapshot() []int64 {
	out := make([]int64, len(d))
	for i := range d {
		out[i] = d[i].Load()
	}

	return out
}

// extend returns du+w, or Infinity when the sum would not fit in int64.
func extend(du, w int64) int64 {
	if du == Infinity || w > Infinity-du {
		return Infinity
	}

	return du + w
}
