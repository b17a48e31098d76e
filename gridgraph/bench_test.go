package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// randomGrid builds an n×n Conn8 grid with roughly a quarter of the cells blocked.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := gridgraph.NewGrid(n, n, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(4) == 0 {
				_ = g.SetBarrier(gridgraph.Pos(r, c))
			}
		}
	}
	return g
}

// BenchmarkRefreshNeighbors measures a full adjacency rebuild on a 500×500 grid.
// Complexity: O(R×C×d)
func BenchmarkRefreshNeighbors(b *testing.B) {
	g := randomGrid(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.RefreshNeighbors()
	}
}

// BenchmarkConnectedComponents measures region discovery on a 500×500 grid.
// Complexity: O(R×C×d)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 500)
	g.RefreshNeighbors()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
