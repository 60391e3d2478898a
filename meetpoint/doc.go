// Package meetpoint finds the empty cell of a grid that minimises the total
// travel distance from every house, the classic "best meeting point" problem
// with obstacles.
//
// What
//
//   - Solve(values) is the single entry point: 0 = empty lot, 1 = house,
//     anything else = obstacle. It returns the minimal total distance, or
//     NoMeetingPoint (-1) when no empty cell is reachable from every house.
//   - Compute/SolveGrid return a full Result (distance, meeting cell,
//     strategy) and surface malformed input as errors.
//
// Strategies
//
//   - Separable: used when the grid has no obstacles. Manhattan distance
//     splits into independent row and column terms; per-axis cost arrays
//     are built in O(R+C+H) and every empty cell is evaluated in O(1).
//     The per-axis medians give a lower bound that is returned immediately
//     when the median cell happens to be empty. Total O(R×C).
//   - Reachability: used when obstacles are present. One breadth-first walk
//     per house accumulates total distance and reach count per cell; the
//     answer is the cheapest empty cell reached by all houses. O(H×R×C).
//
// The dispatcher scans the grid once and short-circuits infeasible inputs
// (no houses, no empty cells, houses split across disconnected regions)
// before running either strategy.
//
// House transit
//
//	By default houses may be walked through, as in the obstacle-free model,
//	so both strategies agree on every obstacle-free grid. WithHouseTransit(false)
//	makes houses impassable except as the origin of their own walk.
//
// Ties
//
//	When several empty cells share the minimal distance, the first one in
//	row-major order is reported.
//
// Errors
//
//   - grid.ErrNonRectangular, grid.ErrMarkerConflict from Compute.
//   - ErrNilGrid             if SolveGrid receives a nil grid.
//   - ErrOptionViolation     for invalid options.
//   - ErrStrategyMismatch    when Separable is forced on a grid with obstacles
//     or with house transit disabled.
//
// Infeasibility is never an error; it is reported as NoMeetingPoint.
package meetpoint
