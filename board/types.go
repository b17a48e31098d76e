package board

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for board operations.
var (
	// ErrNoEndpoints is returned by Solve when start or end has not been placed.
	ErrNoEndpoints = errors.New("board: start and end must both be placed")

	// ErrUnknownDensity is returned by ParseDensity for an unrecognized name.
	ErrUnknownDensity = errors.New("board: unknown maze density")
)

// State is what a cell shows. Only Barrier affects the search; the rest are
// derived from placement and from search callbacks.
//
//	Empty → Start | End | Barrier
//	Empty → Open → Closed → Path (during and after a search)
type State int

const (
	Empty   State = iota // nothing on the cell
	Start                // search origin
	End                  // search target
	Barrier              // blocks movement
	Open                 // on the frontier
	Closed               // expanded
	Path                 // on the reconstructed route
)

var stateNames = [...]string{"empty", "start", "end", "barrier", "open", "closed", "path"}

// runes used by Render, indexed by State.
var stateRunes = [...]rune{'.', 'S', 'E', '#', 'o', 'x', '*'}

// String returns the lower-case state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Rune returns the character Render draws for s.
func (s State) Rune() rune {
	if s < 0 || int(s) >= len(stateRunes) {
		return '?'
	}
	return stateRunes[s]
}

// searchState reports whether s was set by a search rather than by the user.
func (s State) searchState() bool {
	return s == Open || s == Closed || s == Path
}

// Density controls how many random barriers GenerateMaze drops: the board
// makes rows/Density passes, one barrier attempt per row per pass. Smaller
// values mean denser mazes.
type Density int

const (
	DensityNone   Density = 0
	DensityHigh   Density = 2
	DensityNormal Density = 4
	DensityLow    Density = 8
)

// String returns "none", "high", "normal", "low", or the numeric divisor.
func (d Density) String() string {
	switch d {
	case DensityNone:
		return "none"
	case DensityHigh:
		return "high"
	case DensityNormal:
		return "normal"
	case DensityLow:
		return "low"
	default:
		return fmt.Sprintf("density(%d)", int(d))
	}
}

// ParseDensity maps "none", "low", "normal", "high" (any case) to a Density.
func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DensityNone, nil
	case "low":
		return DensityLow, nil
	case "normal":
		return DensityNormal, nil
	case "high":
		return DensityHigh, nil
	}
	return DensityNone, fmt.Errorf("%w: %q", ErrUnknownDensity, s)
}
