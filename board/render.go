package board

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Render writes one line per row, one rune per cell (see State.Rune).
func (b *Board) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < b.grid.Rows(); r++ {
		for c := 0; c < b.grid.Cols(); c++ {
			if _, err := bw.WriteRune(b.states[gridgraph.Pos(r, c)].Rune()); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the board to a string.
func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb)
	return sb.String()
}

// Parse builds a board from rendered rows: '.' empty, '#' barrier,
// 'S' start, 'E' end. Any other rune is treated as empty.
// Returns gridgraph.ErrInvalidDimension for no rows or an empty first row;
// short rows are padded with empty cells.
func Parse(opts gridgraph.GridOptions, rows ...string) (*Board, error) {
	width := 0
	if len(rows) > 0 {
		width = len([]rune(rows[0]))
	}
	b, err := New(len(rows), width, opts)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		c := 0
		for _, ch := range line {
			if c >= width {
				break
			}
			p := gridgraph.Pos(r, c)
			switch ch {
			case '#':
				_ = b.grid.SetBarrier(p)
				b.states[p] = Barrier
			case 'S':
				_ = b.SetStart(p)
			case 'E':
				_ = b.SetEnd(p)
			}
			c++
		}
	}
	return b, nil
}
