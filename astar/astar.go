// Package astar implements A* search over a gridgraph.Grid.
//
// Every step costs 1, orthogonal or diagonal, and the heuristic is the
// Manhattan distance to the goal. The frontier is a min-heap ordered by
// (fScore, insertion sequence), so equal scores pop in discovery order and
// runs are fully deterministic.
//
// Notes on implementation choices:
//
//   - No decrease-key: a cell already on the frontier keeps its old heap
//     entry when its gScore improves. Membership is tracked in a set and the
//     gScore map always holds the latest value, so relaxation stays correct.
//   - No closed set: a popped cell can be pushed again if a strictly cheaper
//     path to it turns up later.
//   - Cancellation is cooperative, sampled at the top of each iteration.
package astar

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b gridgraph.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Run searches g for a shortest path from start to goal.
// The grid's neighbor lists must already reflect its barriers
// (see gridgraph.Grid.RefreshNeighbors); Run does not verify this and never
// mutates the grid.
//
// Preconditions and validation (in order, before any state is created):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start != goal, both in bounds, neither a barrier (ErrInvalidEndpoints).
//
// NoPath and Cancelled are reported through Result.Status, not as errors.
//
// Complexity:
//
//   - Time:  O(N log N) heap work for N = rows × cols in the common case.
//   - Space: O(N) for scores, predecessors, and the frontier.
func Run(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := validateEndpoints(g, start, goal); err != nil {
		return Result{}, err
	}

	r := &runner{
		grid:   g,
		start:  start,
		goal:   goal,
		opts:   cfg,
		gScore: make(map[gridgraph.Position]int, g.Size()),
		prev:   make(map[gridgraph.Position]gridgraph.Position, g.Size()),
		inOpen: make(map[gridgraph.Position]struct{}, g.Size()),
		open:   make(frontier, 0, g.Size()),
	}
	runID := uuid.New().String()
	log := cfg.Logger.With("run_id", runID)
	log.Debug("search started",
		"start", start.String(),
		"goal", goal.String(),
		"rows", g.Rows(),
		"cols", g.Cols(),
		"conn", g.Conn().String(),
		"pace", cfg.Pace,
	)

	_, span := cfg.tracer().Start(cfg.Ctx, "astar.Run",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.String("start", start.String()),
			attribute.String("goal", goal.String()),
			attribute.String("conn", g.Conn().String()),
		),
	)
	defer span.End()

	// 3) Initialize state and run the main loop.
	began := time.Now()
	r.init()
	status := r.process()
	elapsed := time.Since(began)

	res := Result{
		RunID:    runID,
		Status:   status,
		Goal:     goal,
		Expanded: r.expanded,
	}
	if status == StatusFound {
		res.Predecessor = r.prev
		res.Cost = r.gScore[goal]
	}

	log.Info("search finished",
		"status", status.String(),
		"expanded", r.expanded,
		"cost", res.Cost,
		"duration", elapsed,
	)
	if cfg.Metrics != nil {
		cfg.Metrics.observe(status, r.expanded, elapsed)
	}
	span.SetAttributes(
		attribute.String("status", status.String()),
		attribute.Int("expanded", r.expanded),
		attribute.Int("cost", res.Cost),
	)
	if status == StatusFound {
		span.SetStatus(codes.Ok, "goal reached")
	}

	return res, nil
}

// validateEndpoints rejects endpoint pairs that cannot form a search.
func validateEndpoints(g *gridgraph.Grid, start, goal gridgraph.Position) error {
	switch {
	case start == goal:
		return fmt.Errorf("%w: start and goal are both %s", ErrInvalidEndpoints, start)
	case !g.InBounds(start):
		return fmt.Errorf("%w: start %s outside %d×%d grid", ErrInvalidEndpoints, start, g.Rows(), g.Cols())
	case !g.InBounds(goal):
		return fmt.Errorf("%w: goal %s outside %d×%d grid", ErrInvalidEndpoints, goal, g.Rows(), g.Cols())
	case g.IsBarrier(start):
		return fmt.Errorf("%w: start %s is a barrier", ErrInvalidEndpoints, start)
	case g.IsBarrier(goal):
		return fmt.Errorf("%w: goal %s is a barrier", ErrInvalidEndpoints, goal)
	}
	return nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid     *gridgraph.Grid                           // read-only within Run
	start    gridgraph.Position                        // search origin
	goal     gridgraph.Position                        // search target
	opts     Options                                   // hooks, pacing, context
	gScore   map[gridgraph.Position]int                // absent means +∞
	prev     map[gridgraph.Position]gridgraph.Position // expansion parent
	inOpen   map[gridgraph.Position]struct{}           // mirrors frontier contents
	open     frontier                                  // min-heap on (f, seq)
	seq      uint64                                    // last insertion sequence
	expanded int                                       // OnExpand calls
}

// init seeds the frontier with the start cell at sequence 0.
func (r *runner) init() {
	r.gScore[r.start] = 0
	heap.Init(&r.open)
	heap.Push(&r.open, &frontierItem{
		pos: r.start,
		f:   Manhattan(r.start, r.goal),
		seq: 0,
	})
	r.inOpen[r.start] = struct{}{}
}

// process pops cells until the goal is reached, the frontier empties, or the
// context is done.
func (r *runner) process() Status {
	ctx := r.opts.Ctx
	for r.open.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-ctx.Done():
			return StatusCancelled
		default:
		}

		r.wait()

		item := heap.Pop(&r.open).(*frontierItem)
		current := item.pos
		delete(r.inOpen, current)

		if current == r.goal {
			return StatusFound
		}

		r.relax(current)

		r.expanded++
		r.opts.OnExpand(current)
	}

	return StatusNoPath
}

// wait sleeps for the configured pace. Cancellation wakes it early; the
// iteration still completes and the next loop top reports the cancellation.
func (r *runner) wait() {
	if r.opts.Pace <= 0 {
		return
	}
	t := time.NewTimer(r.opts.Pace)
	defer t.Stop()
	select {
	case <-t.C:
	case <-r.opts.Ctx.Done():
	}
}

// relax offers current+1 to every neighbor of current. Only a strict
// improvement replaces a neighbor's parent; ties keep the first parent.
func (r *runner) relax(current gridgraph.Position) {
	tentative := r.g(current) + 1
	for _, n := range r.grid.NeighborsOf(current) {
		if tentative >= r.g(n) {
			continue
		}
		r.prev[n] = current
		r.gScore[n] = tentative

		if _, pending := r.inOpen[n]; pending {
			// stale key stays in the heap
			continue
		}
		r.seq++
		heap.Push(&r.open, &frontierItem{
			pos: n,
			f:   tentative + Manhattan(n, r.goal),
			seq: r.seq,
		})
		r.inOpen[n] = struct{}{}
		r.opts.OnOpen(n)
	}
}

// g returns the best known cost to p, or math.MaxInt if p was never reached.
func (r *runner) g(p gridgraph.Position) int {
	if v, ok := r.gScore[p]; ok {
		return v
	}
	return math.MaxInt
}

// frontierItem is one heap entry. seq is unique per push, which makes
// (f, seq) a strict total order.
type frontierItem struct {
	pos gridgraph.Position
	f   int
	seq uint64
}

// frontier is a min-heap of *frontierItem ordered by (f, seq) ascending.
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by fScore, then by insertion sequence (first inserted wins).
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
