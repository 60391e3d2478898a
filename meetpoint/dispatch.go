package meetpoint

import (
	"github.com/katalvlaran/meetgrid/grid"
)

// Solve returns the minimal total distance from every house of values to a
// single empty meeting cell, or NoMeetingPoint (-1) when none exists.
// Encoding: 0 = empty, 1 = house, any other value = obstacle.
//
// Solve never fails: malformed (non-rectangular) input is also reported as
// NoMeetingPoint. Use Compute to tell the two apart.
func Solve(values [][]int) int {
	res, err := Compute(values)
	if err != nil {
		return NoMeetingPoint
	}
	return res.Distance
}

// Compute builds a grid from values and solves it.
// Returns grid.ErrNonRectangular or grid.ErrMarkerConflict for malformed
// input, ErrOptionViolation or ErrStrategyMismatch for unusable options.
func Compute(values [][]int, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return infeasible(None, 0), err
	}
	g, err := grid.New(values, grid.WithMarkers(o.Markers))
	if err != nil {
		return infeasible(None, 0), err
	}
	return dispatch(g, o)
}

// SolveGrid solves an already classified grid. Markers in opts are ignored.
func SolveGrid(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return infeasible(None, 0), ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return infeasible(None, 0), err
	}
	return dispatch(g, o)
}

// dispatch scans g once and runs the strategy the scan calls for.
func dispatch(g *grid.Grid, o Options) (Result, error) {
	scan := g.Scan()
	houses := len(scan.Houses)
	log := o.Logger.With().
		Int("rows", g.Rows).
		Int("cols", g.Cols).
		Int("houses", houses).
		Int("empty", scan.Empty).
		Bool("obstacles", scan.HasObstacle).
		Logger()

	// Separable assumes every cell can be crossed.
	if o.Strategy == Separable && (scan.HasObstacle || !o.HouseTransit) {
		return infeasible(None, houses), ErrStrategyMismatch
	}
	if !scan.Feasible() {
		log.Debug().Msg("no houses or no empty cells")
		return infeasible(None, houses), nil
	}

	strategy := o.Strategy
	if strategy == Auto {
		strategy = Separable
		if scan.HasObstacle || !o.HouseTransit {
			strategy = Reachability
		}
	}

	if scan.HasObstacle && !sameRegion(g, scan.Houses) {
		log.Debug().Msg("houses lie in disconnected regions")
		return infeasible(None, houses), nil
	}

	var (
		res Result
		err error
	)
	switch strategy {
	case Separable:
		res = solveSeparable(g, scan.Houses)
	default:
		res, err = solveReachability(g, scan.Houses, o.HouseTransit)
	}
	res.Houses = houses
	if err != nil {
		return res, err
	}

	log.Debug().
		Stringer("strategy", res.Strategy).
		Int("distance", res.Distance).
		Stringer("meeting", res.Meeting).
		Msg("solved")
	return res, nil
}

// sameRegion reports whether every house lies in one 4-connected region of
// non-obstacle cells. Houses in different regions can never share a meeting
// cell, whatever the house-transit policy.
func sameRegion(g *grid.Grid, houses []grid.Point) bool {
	labels := g.ComponentLabels(grid.Traversable)
	first := labels[g.Index(houses[0].Row, houses[0].Col)]
	for _, h := range houses[1:] {
		if labels[g.Index(h.Row, h.Col)] != first {
			return false
		}
	}
	return true
}
