package astar

import (
	"iter"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Walk returns the predecessor chain of goal: goal's parent first, the start
// last. The goal itself is not yielded. If goal has no predecessor the
// sequence is empty.
//
// The walk is bounded by len(pred) steps, so a malformed map with a cycle
// still terminates.
func Walk(pred map[gridgraph.Position]gridgraph.Position, goal gridgraph.Position) iter.Seq[gridgraph.Position] {
	return func(yield func(gridgraph.Position) bool) {
		current := goal
		for i := 0; i < len(pred); i++ {
			parent, ok := pred[current]
			if !ok {
				return
			}
			if !yield(parent) {
				return
			}
			current = parent
		}
	}
}

// Reconstruct calls onStep for each position of Walk(pred, goal), in order,
// and returns the number of calls. Call it only for a found result; for an
// unreached goal it does nothing.
func Reconstruct(pred map[gridgraph.Position]gridgraph.Position, goal gridgraph.Position, onStep func(gridgraph.Position)) int {
	steps := 0
	for p := range Walk(pred, goal) {
		if onStep != nil {
			onStep(p)
		}
		steps++
	}
	return steps
}

// Path returns the route from start to goal inclusive, or nil if goal has no
// predecessor.
func Path(pred map[gridgraph.Position]gridgraph.Position, goal gridgraph.Position) []gridgraph.Position {
	if _, ok := pred[goal]; !ok {
		return nil
	}
	path := []gridgraph.Position{goal}
	for p := range Walk(pred, goal) {
		path = append(path, p)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
