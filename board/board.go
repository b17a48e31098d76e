// Package board is the interactive side of the pathfinder: it places the
// start, end, and barriers on a gridgraph.Grid, keeps a display state per
// cell, and turns A* callbacks into open/closed/path marks.
//
// The search engine never sees these states. It reads barrier flags through
// the grid's neighbor lists and reports positions; Board decides what each
// report looks like.
package board

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Board pairs a grid with per-cell display states and the chosen endpoints.
// It is not safe for concurrent use.
type Board struct {
	grid   *gridgraph.Grid
	states map[gridgraph.Position]State // absent means Empty

	start, end       gridgraph.Position
	hasStart, hasEnd bool
}

// New builds an empty rows × cols board.
// Returns gridgraph.ErrInvalidDimension for non-positive sizes.
func New(rows, cols int, opts gridgraph.GridOptions) (*Board, error) {
	g, err := gridgraph.NewGrid(rows, cols, opts)
	if err != nil {
		return nil, err
	}
	return &Board{
		grid:   g,
		states: make(map[gridgraph.Position]State),
	}, nil
}

// Grid returns the underlying grid.
func (b *Board) Grid() *gridgraph.Grid { return b.grid }

// State returns the display state of p. Out-of-bounds positions are Empty.
func (b *Board) State(p gridgraph.Position) State { return b.states[p] }

// Start returns the start position, if placed.
func (b *Board) Start() (gridgraph.Position, bool) { return b.start, b.hasStart }

// End returns the end position, if placed.
func (b *Board) End() (gridgraph.Position, bool) { return b.end, b.hasEnd }

// Place applies the primary-click rule at p and returns the resulting state:
// the first placement sets the start, the next sets the end, and every later
// one sets a barrier. Start and end are never overwritten.
func (b *Board) Place(p gridgraph.Position) (State, error) {
	if !b.grid.InBounds(p) {
		return Empty, fmt.Errorf("%w: %s", gridgraph.ErrOutOfBounds, p)
	}
	isStart := b.hasStart && p == b.start
	isEnd := b.hasEnd && p == b.end

	switch {
	case !b.hasStart && !isEnd:
		b.clearBarrier(p)
		b.start, b.hasStart = p, true
		b.states[p] = Start
	case !b.hasEnd && !isStart:
		b.clearBarrier(p)
		b.end, b.hasEnd = p, true
		b.states[p] = End
	case !isStart && !isEnd:
		if err := b.grid.SetBarrier(p); err != nil {
			return Empty, err
		}
		b.states[p] = Barrier
	}
	return b.states[p], nil
}

// SetStart moves the start to p, replacing whatever p showed.
// Placing it on the end forgets the end.
func (b *Board) SetStart(p gridgraph.Position) error {
	if err := b.Erase(p); err != nil {
		return err
	}
	if b.hasStart {
		delete(b.states, b.start)
	}
	b.start, b.hasStart = p, true
	b.states[p] = Start
	return nil
}

// SetEnd moves the end to p, replacing whatever p showed.
// Placing it on the start forgets the start.
func (b *Board) SetEnd(p gridgraph.Position) error {
	if err := b.Erase(p); err != nil {
		return err
	}
	if b.hasEnd {
		delete(b.states, b.end)
	}
	b.end, b.hasEnd = p, true
	b.states[p] = End
	return nil
}

// Erase resets p to Empty, clearing a barrier and forgetting start or end if
// p held one.
func (b *Board) Erase(p gridgraph.Position) error {
	if !b.grid.InBounds(p) {
		return fmt.Errorf("%w: %s", gridgraph.ErrOutOfBounds, p)
	}
	b.clearBarrier(p)
	delete(b.states, p)
	if b.hasStart && p == b.start {
		b.hasStart = false
	}
	if b.hasEnd && p == b.end {
		b.hasEnd = false
	}
	return nil
}

func (b *Board) clearBarrier(p gridgraph.Position) {
	if b.grid.IsBarrier(p) {
		_ = b.grid.ClearBarrier(p)
	}
}

// ClearSearch drops every Open, Closed, and Path mark, keeping endpoints and barriers.
func (b *Board) ClearSearch() {
	for p, s := range b.states {
		if s.searchState() {
			delete(b.states, p)
		}
	}
}

// Clear empties the whole board.
func (b *Board) Clear() {
	b.grid.Reset()
	clear(b.states)
	b.hasStart, b.hasEnd = false, false
}

// Count returns how many cells show s.
func (b *Board) Count(s State) int {
	if s == Empty {
		return b.grid.Size() - len(b.states)
	}
	n := 0
	for _, v := range b.states {
		if v == s {
			n++
		}
	}
	return n
}

// Solve clears old search marks, refreshes the grid's neighbor lists, and
// runs A* from start to end. Cells turn Open when pushed and Closed when
// expanded; on success the route between start and end turns Path.
// onFrame, if non-nil, is called after every mark so a renderer can draw.
//
// Solve installs its own OnOpen and OnExpand hooks; the remaining options
// (context, pace, logger, metrics) are passed through.
// Returns ErrNoEndpoints if start or end is missing.
func (b *Board) Solve(onFrame func(*Board), opts ...astar.Option) (astar.Result, error) {
	if !b.hasStart || !b.hasEnd {
		return astar.Result{}, ErrNoEndpoints
	}
	if onFrame == nil {
		onFrame = func(*Board) {}
	}
	b.ClearSearch()
	b.grid.RefreshNeighbors()

	mark := func(p gridgraph.Position, s State) {
		if p == b.start || p == b.end {
			return
		}
		b.states[p] = s
	}
	hooks := []astar.Option{
		astar.WithOnOpen(func(p gridgraph.Position) { mark(p, Open) }),
		astar.WithOnExpand(func(p gridgraph.Position) {
			mark(p, Closed)
			onFrame(b)
		}),
	}
	res, err := astar.Run(b.grid, b.start, b.end, append(slices.Clone(opts), hooks...)...)
	if err != nil {
		return res, err
	}
	if res.Found() {
		astar.Reconstruct(res.Predecessor, res.Goal, func(p gridgraph.Position) {
			mark(p, Path)
			onFrame(b)
		})
	}
	return res, nil
}
