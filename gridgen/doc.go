// Package gridgen builds input grids for the meeting-point solvers: seeded
// random neighbourhoods for benchmarks and property tests, and small
// deterministic layouts for examples.
//
// Constructors:
//
//   - Random(rows, cols, opts...): a rows×cols grid where a fraction of all
//     cells become houses and then a fraction of the remaining empty cells
//     become obstacles. Both samples are drawn without replacement.
//   - Corners(rows, cols): houses in the top-left and bottom-right corners,
//     every other cell empty.
//
// Determinism:
//
//	Randomness flows only through the *rand.Rand set by WithSeed or WithRand.
//	The same seed and options always produce the same grid. A stochastic
//	draw without a source fails with ErrNeedRandSource instead of silently
//	seeding from the clock.
//
// Encoding matches meetpoint.Solve: 0 empty, 1 house, ObstacleMarker (2)
// obstacle, unless WithMarkers/WithObstacleMarker say otherwise.
package gridgen
