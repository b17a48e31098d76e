// Package pathgrid is an A* pathfinder for rectangular grids, with an
// interactive board model and a terminal driver built on top.
//
// 🚀 What is pathgrid?
//
//	A small library for searching grids where cells are open or blocked:
//		• Grid model: bounds, barriers, 4- or 8-connected neighbor lists
//		• A* search: Manhattan heuristic, deterministic tie-breaking, hooks
//		• Reference search: uniform-cost distances for checking results
//		• Board: start/end/barrier placement, random mazes, ASCII frames
//
// ✨ Highlights:
//
//   - Deterministic: equal f-scores pop in insertion order
//   - Animatable: pacing and OnOpen/OnExpand hooks drive a renderer
//   - Cancellable: a context stops a run at the next loop iteration
//   - Observable: slog records, Prometheus metrics, OpenTelemetry spans
//
// Packages:
//
//	gridgraph/    Grid, Position, Connectivity, neighbor lists, components
//	astar/        Run, Result, options, predecessor walk, metrics
//	dijkstra/     exact step distances from one source
//	board/        display states, click rules, maze generation, Solve
//	cmd/gridpath/ cobra/viper terminal driver
//	examples/     runnable scenario
//
// Quick start:
//
//	g, _ := gridgraph.NewGrid(20, 40, gridgraph.DefaultGridOptions())
//	_ = g.SetBarrier(gridgraph.Pos(5, 5))
//	g.RefreshNeighbors()
//	res, err := astar.Run(g, gridgraph.Pos(0, 0), gridgraph.Pos(19, 39))
//	if err == nil && res.Found() {
//		fmt.Println(res.Cost, res.Path())
//	}
package pathgrid
