// Package meetgrid finds the best meeting point on a grid of houses, empty
// lots and obstacles: the empty cell with the smallest total walking
// distance from every house.
//
// Under the hood the work is split into small subpackages:
//
//	grid/       Grid, CellKind and Markers; the single-pass Scan; components
//	bfs/        reusable breadth-first walker with visit-generation stamps
//	meetpoint/  Solve, the dispatcher, the separable and reachability solvers
//	gridgen/    seeded random and fixed grid layouts
//
// Quick example:
//
//	H . # . H
//	. . . . .
//	. . H . .
//
//	meetpoint.Solve([][]int{
//	    {1, 0, 2, 0, 1},
//	    {0, 0, 0, 0, 0},
//	    {0, 0, 1, 0, 0},
//	}) // == 7, meeting at (1,2)
//
// The cmd/meetpoint tool wraps Solve for the shell and benchmarks both
// strategies on generated grids.
//
//	go install github.com/katalvlaran/meetgrid/cmd/meetpoint@latest
package meetgrid
