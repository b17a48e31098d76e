// Package gridgraph provides the grid model read by the search engine:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Barrier flags that block movement into a cell
//   - Cached neighbor lists refreshed in one batch
//   - Connected regions of open cells
package gridgraph

import "fmt"

// orthogonal and diagonal neighbor offsets as (dRow, dCol).
var (
	orthogonalOffsets = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalOffsets   = [][2]int{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
)

// NewGrid allocates a rows × cols grid. Every cell starts open with an empty
// neighbor list; call RefreshNeighbors before searching.
// Returns ErrInvalidDimension if rows ≤ 0 or cols ≤ 0.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(rows, cols int, opts GridOptions) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c].Pos = Position{Row: r, Col: c}
		}
	}
	// Precompute neighbor offsets based on connectivity
	offsets := make([][2]int, 0, 8)
	offsets = append(offsets, orthogonalOffsets...)
	if opts.Conn == Conn8 {
		offsets = append(offsets, diagonalOffsets...)
	}

	return &Grid{
		rows:            rows,
		cols:            cols,
		conn:            opts.Conn,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows × cols.
func (g *Grid) Size() int { return len(g.cells) }

// Conn returns the connectivity the grid was built with.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Cell returns the cell at p, or nil if p is out of bounds.
func (g *Grid) Cell(p Position) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.index(p)]
}

// SetBarrier flags p as a barrier. Neighbor lists are not touched.
func (g *Grid) SetBarrier(p Position) error {
	return g.setBarrier(p, true)
}

// ClearBarrier removes the barrier flag from p. Neighbor lists are not touched.
func (g *Grid) ClearBarrier(p Position) error {
	return g.setBarrier(p, false)
}

func (g *Grid) setBarrier(p Position, on bool) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s in %d×%d grid", ErrOutOfBounds, p, g.rows, g.cols)
	}
	g.cells[g.index(p)].barrier = on
	return nil
}

// IsBarrier reports whether p is a barrier. Out-of-bounds positions report false.
func (g *Grid) IsBarrier(p Position) bool {
	return g.InBounds(p) && g.cells[g.index(p)].barrier
}

// RefreshNeighbors recomputes every cell's neighbor list from the current
// barrier flags. Candidates are bounds-checked and barrier-checked one by one;
// a diagonal is kept even if both orthogonal cells beside it are barriers.
// Complexity: O(R×C×d).
func (g *Grid) RefreshNeighbors() {
	for i := range g.cells {
		cell := &g.cells[i]
		list := cell.neighbors[:0]
		for _, d := range g.neighborOffsets {
			n := Position{Row: cell.Pos.Row + d[0], Col: cell.Pos.Col + d[1]}
			if !g.InBounds(n) || g.cells[g.index(n)].barrier {
				continue
			}
			list = append(list, n)
		}
		cell.neighbors = list
	}
}

// NeighborsOf returns the neighbor list of p as of the last RefreshNeighbors,
// or nil if p is out of bounds. Callers must not modify the returned slice.
func (g *Grid) NeighborsOf(p Position) []Position {
	if !g.InBounds(p) {
		return nil
	}
	return g.cells[g.index(p)].neighbors
}

// Reset clears every barrier and empties every neighbor list.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].barrier = false
		g.cells[i].neighbors = g.cells[i].neighbors[:0]
	}
}

// index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
