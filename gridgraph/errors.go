package gridgraph

import "errors"

var (
	// ErrInvalidDimension indicates a grid was requested with rows ≤ 0 or cols ≤ 0.
	ErrInvalidDimension = errors.New("gridgraph: rows and cols must be positive")
	// ErrOutOfBounds indicates a position lies outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)
