// Package gridgraph defines core types and options for the grid model.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: down, up, right, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Position identifies a cell by row and column. It is comparable and used as a map key.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single grid cell with its barrier flag and cached neighbor list.
type Cell struct {
	Pos       Position   // Coordinates within the grid
	barrier   bool       // set and cleared only by the grid owner
	neighbors []Position // as of the last RefreshNeighbors
}

// IsBarrier reports whether the cell blocks movement.
func (c *Cell) IsBarrier() bool { return c.barrier }

// Neighbors returns the cached neighbor list. Callers must not modify it.
func (c *Cell) Neighbors() []Position { return c.neighbors }

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn8 (diagonal moves allowed).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// Grid is a rows × cols matrix of cells. Its dimensions are fixed once built;
// barrier flags are mutable and neighbor lists are refreshed explicitly.
//
// Grid is not safe for concurrent mutation. Barrier edits must not overlap
// with a search that reads the grid.
type Grid struct {
	rows, cols      int
	conn            Connectivity
	cells           []Cell // row-major
	neighborOffsets [][2]int
}
