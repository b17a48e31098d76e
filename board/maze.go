package board

import (
	"math/rand"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// GenerateMaze scatters random barriers: rows/d passes, and in each pass
// every row gets one barrier at a random column. Columns that are already
// barriers, or hold the start or end, are skipped, so the number added is at
// most rows × (rows/d). DensityNone adds nothing.
// Returns the number of barriers added. Neighbor lists are left stale.
func (b *Board) GenerateMaze(d Density, rng *rand.Rand) int {
	if d <= DensityNone {
		return 0
	}
	rows, cols := b.grid.Rows(), b.grid.Cols()
	added := 0
	for pass := 0; pass < rows/int(d); pass++ {
		for r := 0; r < rows; r++ {
			p := gridgraph.Pos(r, rng.Intn(cols))
			if b.states[p] != Empty && !b.states[p].searchState() {
				continue
			}
			_ = b.grid.SetBarrier(p)
			b.states[p] = Barrier
			added++
		}
	}
	return added
}
