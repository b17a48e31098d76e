package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNoSource indicates that no Source option was given.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadSource indicates that the source lies outside the grid or on a barrier.
	ErrBadSource = errors.New("dijkstra: source is outside the grid or a barrier")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a Dijkstra run.
type Options struct {
	Source      gridgraph.Position // starting cell
	ReturnPath  bool               // whether to return the predecessor map
	MaxDistance int                // expansion cap; math.MaxInt means none

	hasSource bool
	err       error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. It must be called.
func Source(p gridgraph.Position) Option {
	return func(o *Options) {
		o.Source = p
		o.hasSource = true
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance stops expansion beyond max steps from the source.
// A negative max is reported by Dijkstra as ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no predecessor map and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt,
	}
}
