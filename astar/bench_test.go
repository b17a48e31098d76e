package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// BenchmarkRun_Open measures a corner-to-corner search on an open 200×200 Conn8 grid.
func BenchmarkRun_Open(b *testing.B) {
	g := openGrid(b, 200, 200, gridgraph.Conn8)
	start, goal := gridgraph.Pos(0, 0), gridgraph.Pos(199, 199)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Run(g, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Cluttered measures a search on a 200×200 Conn4 grid with ~30% barriers.
func BenchmarkRun_Cluttered(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	g, err := gridgraph.NewGrid(200, 200, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	if err != nil {
		b.Fatal(err)
	}
	for r := 0; r < 200; r++ {
		for c := 0; c < 200; c++ {
			if rng.Float64() < 0.3 {
				_ = g.SetBarrier(gridgraph.Pos(r, c))
			}
		}
	}
	start, goal := gridgraph.Pos(0, 0), gridgraph.Pos(199, 199)
	_ = g.ClearBarrier(start)
	_ = g.ClearBarrier(goal)
	g.RefreshNeighbors()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Run(g, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}
