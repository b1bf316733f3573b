package dijkstra

import (
	"sync"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/pathmx/core"
)

// queueItem is a (distance, vertex) entry of the list engine's queue.
type queueItem struct {
	dist   int64
	vertex int
}

// byDistance orders queue items by distance, then by vertex ID.
func byDistance(a, b interface{}) int {
	x, y := a.(queueItem), b.(queueItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.vertex < y.vertex:
		return -1
	case x.vertex > y.vertex:
		return 1
	default:
		return 0
	}
}

// listRunner holds the mutable state for a single list-engine execution.
// The queue is shared state: every push and pop happens under mu.
type listRunner struct {
	g       *core.Graph
	options Options
	source  int
	dist    distances

	mu    sync.Mutex
	queue *priorityqueue.Queue

	stats Stats
}

// newListRunner prepares the arena and an empty queue.
func newListRunner(g *core.Graph, source int, cfg Options) *listRunner {
	return &listRunner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    newDistances(g.VertexCount(), source),
		queue:   priorityqueue.NewWith(byDistance),
		stats:   Stats{Engine: ListEngine, Workers: 1},
	}
}

func (r *listRunner) push(it queueItem) {
	r.mu.Lock()
	r.queue.Enqueue(it)
	r.mu.Unlock()
	r.stats.Pushes++
}

func (r *listRunner) pop() (queueItem, bool) {
	r.mu.Lock()
	v, ok := r.queue.Dequeue()
	r.mu.Unlock()
	if !ok {
		return queueItem{}, false
	}
	r.stats.Pops++

	return v.(queueItem), true
}

// run is the lazy-deletion Dijkstra loop: pop the minimum, skip it if a
// better distance was recorded after it was pushed, otherwise relax its
// outgoing edges. It stops when the queue is empty.
func (r *listRunner) run() []int64 {
	// 1) Seed the queue with the source at distance 0.
	r.push(queueItem{dist: 0, vertex: r.source})

	for {
		// 2) Pop the smallest entry.
		it, ok := r.pop()
		if !ok {
			break
		}

		// 3) Stale entry: a shorter distance was found after this push.
		if it.dist > r.dist.load(it.vertex) {
			r.stats.Stale++
			continue
		}

		// 4) it.dist is final.
		r.stats.Settled++
		r.options.OnVisit(it.vertex, it.dist)

		// 5) Relax every edge leaving it.vertex.
		r.relax(it)
	}

	if s := r.options.Stats; s != nil {
		*s = r.stats
	}

	return r.dist.snapshot()
}

// relax scans the outgoing edges of it.vertex and pushes improved neighbours.
// By default the whole edge sequence is scanned once per settled vertex;
// with IndexBySource only the vertex's own edges are visited, in the same
// order.
func (r *listRunner) relax(it queueItem) {
	if r.options.IndexBySource {
		out, _ := r.g.Outgoing(it.vertex)
		for _, e := range out {
			r.relaxEdge(it.dist, e)
		}
		return
	}

	var e core.Edge
	for i, m := 0, r.g.EdgeCount(); i < m; i++ {
		e = r.g.EdgeAt(i)
		if e.From != it.vertex {
			continue
		}
		r.relaxEdge(it.dist, e)
	}
}

// relaxEdge applies one edge e=u→v with dist[u]=du.
// Zero-weight edges are "no edge", as in the matrix.
func (r *listRunner) relaxEdge(du int64, e core.Edge) {
	if e.Weight == core.NoEdge {
		return
	}
	cand := extend(du, e.Weight)
	if cand >= r.dist.load(e.To) {
		return
	}
	r.dist.store(e.To, cand)
	r.stats.Relaxations++
	r.push(queueItem{dist: cand, vertex: e.To})
}
