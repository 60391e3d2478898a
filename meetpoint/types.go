package meetpoint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meetgrid/grid"
	"github.com/rs/zerolog"
)

// NoMeetingPoint is the distance reported when no feasible meeting cell exists.
const NoMeetingPoint = -1

// Sentinel errors for meeting-point computation.
var (
	// ErrNilGrid is returned when SolveGrid receives a nil grid.
	ErrNilGrid = errors.New("meetpoint: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("meetpoint: invalid option supplied")

	// ErrStrategyMismatch is returned when the forced strategy cannot serve the grid.
	ErrStrategyMismatch = errors.New("meetpoint: strategy not applicable to grid")
)

// Strategy selects the algorithm used by the dispatcher.
type Strategy int

const (
	// Auto picks Separable for obstacle-free grids with house transit and
	// Reachability otherwise.
	Auto Strategy = iota
	// Separable is the O(R×C) median/cost-array algorithm; obstacle-free only.
	Separable
	// Reachability is the per-house BFS accumulation; works on any grid.
	Reachability
	// None marks results that were decided without running a solver.
	None
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Separable:
		return "separable"
	case Reachability:
		return "reachability"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "auto", "separable" and "reachability" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "separable":
		return Separable, nil
	case "reachability", "bfs":
		return Reachability, nil
	default:
		return Auto, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Result is the outcome of one computation.
type Result struct {
	// Distance is the minimal total distance, or NoMeetingPoint.
	Distance int
	// Meeting is the chosen empty cell; {-1,-1} when infeasible.
	Meeting grid.Point
	// Strategy is the algorithm that produced the result.
	Strategy Strategy
	// Houses is the number of houses found by the scan.
	Houses int
}

// Feasible reports whether a meeting cell was found.
func (r Result) Feasible() bool {
	return r.Distance != NoMeetingPoint
}

// infeasible builds the NoMeetingPoint result.
func infeasible(s Strategy, houses int) Result {
	return Result{
		Distance: NoMeetingPoint,
		Meeting:  grid.Point{Row: -1, Col: -1},
		Strategy: s,
		Houses:   houses,
	}
}

// Option configures a computation via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation on call.
type Option func(*Options)

// Options holds the knobs of the dispatcher.
type Options struct {
	// Strategy forces an algorithm; Auto lets the scan decide.
	Strategy Strategy

	// Markers is the input encoding used by Compute.
	Markers grid.Markers

	// HouseTransit allows walks to pass through other houses.
	HouseTransit bool

	// Logger receives debug traces of dispatch decisions.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Strategy = Auto
//   - Markers  = grid.DefaultMarkers() (0 empty, 1 house)
//   - HouseTransit = true
//   - Logger   = zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		Strategy:     Auto,
		Markers:      grid.DefaultMarkers(),
		HouseTransit: true,
		Logger:       zerolog.Nop(),
	}
}

// WithStrategy forces the algorithm. Unknown values are an ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Auto, Separable, Reachability:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unsupported strategy %v", ErrOptionViolation, s)
		}
	}
}

// WithMarkers overrides the empty and house markers used by Compute.
func WithMarkers(m grid.Markers) Option {
	return func(o *Options) {
		o.Markers = m
	}
}

// WithHouseTransit controls whether walks may pass through houses.
func WithHouseTransit(allowed bool) Option {
	return func(o *Options) {
		o.HouseTransit = allowed
	}
}

// WithLogger installs a structured logger for dispatch traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
