// Package astar provides an animated, cancellable A* search over a
// gridgraph.Grid.
//
// Overview:
//
//   - Run computes a shortest path (in steps) from start to goal. Every edge
//     costs 1, diagonal or not, and the heuristic is the Manhattan distance.
//   - The frontier is a min-heap keyed by (fScore, insertion sequence): equal
//     scores pop in discovery order, so two runs over the same grid produce
//     the same predecessor map and the same hook call order.
//   - Hooks let a renderer follow the search: OnOpen when a cell joins the
//     frontier, OnExpand once per expanded cell after its neighbors are relaxed.
//   - WithPace / WithFPS slow the loop down for animation. Pacing changes
//     speed only, never results.
//
// Outcomes:
//
//   - StatusFound:     Result.Predecessor holds the search tree; use Walk,
//     Reconstruct, or Path to read the route.
//   - StatusNoPath:    the frontier emptied; the goal is unreachable.
//   - StatusCancelled: the context was done at the top of an iteration. This
//     says nothing about whether a path exists.
//
// Heuristic note:
//
//   - With diagonal moves enabled, a diagonal step lowers the Manhattan
//     estimate by two while costing one. The estimate is kept as is; on open
//     grids the search still returns Chebyshev-length routes, but around
//     obstacles a Conn8 route may be longer than the true shortest one.
//     Conn4 routes are always shortest (compare dijkstra.Dijkstra).
//
// Cancellation:
//
//   - Cooperative only. The context is sampled once per iteration, before the
//     pop, including the very first one. A hook may cancel the context; the
//     run stops at the next iteration. A goal popped in the same iteration
//     still wins.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrInvalidEndpoints, ErrOptionViolation. They are returned
//     before any search state is created.
//
// Observability:
//
//   - WithLogger(*slog.Logger): a debug record when a run starts and an info
//     record when it finishes, tagged with the run's UUID.
//   - WithMetrics(NewMetrics(reg)): run counts by status, expansions, and
//     durations as Prometheus collectors.
//   - WithTracerProvider(tp): one "astar.Run" span per run, carrying the
//     endpoints, status, cost and expansion count. otel's global provider
//     is used when none is given.
//
// Thread safety:
//
//   - Run never mutates the grid, but the grid must not be edited while a run
//     is in progress. Independent runs on distinct grids may proceed in parallel.
//
// Example usage:
//
//	g, _ := gridgraph.NewGrid(5, 5, gridgraph.GridOptions{Conn: gridgraph.Conn4})
//	g.RefreshNeighbors()
//	res, err := astar.Run(g, gridgraph.Pos(0, 0), gridgraph.Pos(4, 4),
//	    astar.WithOnExpand(func(p gridgraph.Position) { draw(p) }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res.Path())
//	}
package astar
