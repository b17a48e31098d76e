package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ExampleRun finds a route around a wall on a 4-connected grid.
//
//	. . . .
//	. # # .
//	. . # .
func ExampleRun() {
	g, _ := gridgraph.NewGrid(3, 4, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	for _, p := range []gridgraph.Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}} {
		_ = g.SetBarrier(p)
	}
	g.RefreshNeighbors()

	res, err := astar.Run(g, gridgraph.Pos(2, 0), gridgraph.Pos(2, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("status:", res.Status)
	fmt.Println("cost:  ", res.Cost)
	fmt.Println("path:  ", res.Path())

	// Output:
	// status: found
	// cost:   7
	// path:   [(2,0) (1,0) (0,0) (0,1) (0,2) (0,3) (1,3) (2,3)]
}

// ExampleReconstruct marks path cells the way a renderer would: goal's parent
// first, start last.
func ExampleReconstruct() {
	g, _ := gridgraph.NewGrid(1, 4, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	g.RefreshNeighbors()

	res, _ := astar.Run(g, gridgraph.Pos(0, 0), gridgraph.Pos(0, 3))
	astar.Reconstruct(res.Predecessor, res.Goal, func(p gridgraph.Position) {
		fmt.Println("path cell", p)
	})

	// Output:
	// path cell (0,2)
	// path cell (0,1)
	// path cell (0,0)
}

// ExampleWithContext stops a search from inside the expansion hook.
func ExampleWithContext() {
	g, _ := gridgraph.NewGrid(10, 10, gridgraph.DefaultGridOptions())
	g.RefreshNeighbors()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, _ := astar.Run(g, gridgraph.Pos(0, 0), gridgraph.Pos(9, 9),
		astar.WithContext(ctx),
		astar.WithOnExpand(func(gridgraph.Position) { cancel() }),
	)
	fmt.Println(res.Status, res.Expanded)

	// Output:
	// cancelled 1
}
