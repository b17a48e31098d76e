package gridgraph

// ConnectedComponents finds all regions of open (non-barrier) cells that are
// mutually reachable through the cached neighbor lists. Call RefreshNeighbors
// first; stale lists give stale regions.
// Components are returned in row-major order of their first cell, and each
// component lists its cells in BFS discovery order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position

	for i0 := range g.cells {
		if g.cells[i0].barrier || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Position

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.cells[u].Pos)
			for _, n := range g.cells[u].neighbors {
				vi := g.index(n)
				if !seen[vi] && !g.cells[vi].barrier {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ComponentOf returns the index into ConnectedComponents' result that holds p,
// or -1 if p is a barrier or out of bounds.
func ComponentOf(comps [][]Position, p Position) int {
	for i, comp := range comps {
		for _, q := range comp {
			if q == p {
				return i
			}
		}
	}
	return -1
}
