package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Dijkstra computes step distances from the Source cell to every cell of g.
//
// Returns:
//
//   - dist: one entry per cell; math.MaxInt if unreachable, a barrier, or
//     beyond MaxDistance.
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means one shortest route to v steps from u. The source
//     and unreached cells have no entry.
//   - err:  ErrBadMaxDistance, ErrNoSource, ErrNilGrid or ErrBadSource.
func Dijkstra(g *gridgraph.Grid, opts ...Option) (map[gridgraph.Position]int, map[gridgraph.Position]gridgraph.Position, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}

	// 2) Validate grid and source
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !g.InBounds(cfg.Source) || g.IsBarrier(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrBadSource, cfg.Source)
	}

	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[gridgraph.Position]int, n),
		visited: make(map[gridgraph.Position]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.Position]gridgraph.Position, n)
	}

	// 3) Initialize and run the main loop
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *gridgraph.Grid
	options Options
	dist    map[gridgraph.Position]int
	prev    map[gridgraph.Position]gridgraph.Position // nil unless ReturnPath
	visited map[gridgraph.Position]bool               // distance finalized
	pq      nodePQ
}

// init sets every distance to +∞ and pushes the source at 0.
func (r *runner) init() {
	for i := 0; i < r.g.Size(); i++ {
		r.dist[r.g.Coordinate(i)] = math.MaxInt
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{pos: r.options.Source, dist: 0})
}

// process pops cells in distance order until the heap empties or the next
// distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.pos

		// stale entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax offers dist[u]+1 to each neighbor of u and pushes strict improvements.
func (r *runner) relax(u gridgraph.Position) {
	next := r.dist[u] + 1
	if next > r.options.MaxDistance {
		return
	}
	for _, v := range r.g.NeighborsOf(u) {
		if next >= r.dist[v] {
			continue
		}
		r.dist[v] = next
		if r.prev != nil {
			r.prev[v] = u
		}
		// lazy decrease-key: older entries for v are skipped via visited
		heap.Push(&r.pq, &nodeItem{pos: v, dist: next})
	}
}

// nodeItem is one heap entry.
type nodeItem struct {
	pos  gridgraph.Position
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
