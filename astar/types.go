// Package astar defines sentinel errors, run statuses, results, and
// functional options for the A* grid search.
//
// Options:
//
//	– Ctx:      cancellation token, sampled once per loop iteration.
//	– Pace:     delay before each pop, for animation; zero means none.
//	– OnExpand: called once per expanded cell, after its neighbors are relaxed.
//	– OnOpen:   called when a cell is pushed onto the frontier.
//	– Logger:   structured logger; discards by default.
//	– Metrics:  optional Prometheus instrumentation.
//	– Tracer:   OpenTelemetry provider; the global one when unset.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrInvalidEndpoints if start equals goal, or either is out of bounds or a barrier.
//	– ErrOptionViolation  if an option was given an invalid value.
package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Run.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoints indicates start and goal cannot form a search:
	// they coincide, lie outside the grid, or sit on a barrier.
	ErrInvalidEndpoints = errors.New("astar: invalid endpoints")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Status is the terminal outcome of a run. None of them is an error.
type Status int

const (
	// StatusFound means the goal was popped from the frontier.
	StatusFound Status = iota
	// StatusNoPath means the frontier emptied without reaching the goal.
	StatusNoPath
	// StatusCancelled means the context was done at the top of an iteration.
	StatusCancelled
)

// String returns "found", "no_path" or "cancelled".
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no_path"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result holds the outcome of a single run.
//   - Predecessor is set only when Status == StatusFound; it maps every
//     reached cell to the cell it was reached from. The start has no entry.
//   - Cost is the number of steps from start to goal when found.
//   - Expanded counts OnExpand invocations (popped cells other than the goal).
type Result struct {
	RunID       string
	Status      Status
	Goal        gridgraph.Position
	Predecessor map[gridgraph.Position]gridgraph.Position
	Cost        int
	Expanded    int
}

// Found reports whether the run reached the goal.
func (r Result) Found() bool { return r.Status == StatusFound }

// Path returns the positions from start to goal inclusive, or nil if the run
// did not reach the goal.
func (r Result) Path() []gridgraph.Position {
	if !r.Found() {
		return nil
	}
	return Path(r.Predecessor, r.Goal)
}

// Option configures Run behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the parameters and hooks of a run.
type Options struct {
	// Ctx cancels the run; checked once per loop iteration.
	Ctx context.Context

	// Pace is the delay before each pop. Zero disables pacing.
	Pace time.Duration

	// OnExpand is called once per expanded cell, after relaxation.
	OnExpand func(p gridgraph.Position)

	// OnOpen is called when a cell is pushed onto the frontier.
	OnOpen func(p gridgraph.Position)

	// Logger receives run start/finish records.
	Logger *slog.Logger

	// Metrics, if non-nil, records run outcomes.
	Metrics *Metrics

	// TracerProvider supplies the span for each run. Nil means otel's global provider.
	TracerProvider trace.TracerProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no pacing
//   - no-op hooks
//   - a logger that discards everything
//   - no metrics
//   - the global tracer provider, resolved per run
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Pace:     0,
		OnExpand: func(gridgraph.Position) {},
		OnOpen:   func(gridgraph.Position) {},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:  nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPace sets the delay before each pop.
//
//	d > 0:  sleep d (cut short by cancellation)
//	d == 0: no delay
//	d < 0:  invalid option → ErrOptionViolation
func WithPace(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: pace cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Pace = d
	}
}

// WithFPS sets the pace to one step per 1/fps seconds.
// fps ≤ 0 is recorded as ErrOptionViolation.
func WithFPS(fps int) Option {
	return func(o *Options) {
		if fps <= 0 {
			o.err = fmt.Errorf("%w: fps must be positive (%d)", ErrOptionViolation, fps)
			return
		}
		o.Pace = time.Second / time.Duration(fps)
	}
}

// WithOnExpand registers the per-expansion hook.
func WithOnExpand(fn func(p gridgraph.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnOpen registers the hook called when a cell joins the frontier.
func WithOnOpen(fn func(p gridgraph.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithLogger sets the logger for run records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithTracerProvider sets the OpenTelemetry provider used for run spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		o.TracerProvider = tp
	}
}

const tracerName = "github.com/katalvlaran/pathgrid/astar"

func (o Options) tracer() trace.Tracer {
	if o.TracerProvider != nil {
		return o.TracerProvider.Tracer(tracerName)
	}
	return otel.Tracer(tracerName)
}
