// Package bfs provides a reusable breadth-first walker over a grid.Grid,
// reporting unweighted shortest-path depths from a start cell.
//
// What
//
//   - Explore cells in non-decreasing depth (step count) from a start cell,
//     moving between 4-adjacent cells accepted by the Passable predicate.
//   - The start cell is always visited at depth 0, even when it is not
//     passable itself (a house is a valid origin in a house-blocking walk).
//   - A single Walker can run many walks over the same grid; it allocates its
//     state once and never clears it between runs.
//
// Visit-generation stamps
//
//	Instead of a visited []bool that must be reset before every walk, the
//	walker keeps stamp []uint32 and a generation counter. Each Walk bumps the
//	generation once, and a cell counts as visited iff stamp[idx] == generation.
//	A walk therefore costs O(cells reached) rather than O(R×C) of clearing.
//	On the (theoretical) wrap-around of the counter the stamps are cleared
//	once and counting restarts.
//
// Determinism
//
//	Neighbors are expanded in N, E, S, W order, so visit order is reproducible.
//
// Complexity (R×C = grid size)
//
//   - Time:   O(R×C) per walk in the worst case.
//   - Memory: O(R×C) once per Walker (stamps and queue).
//
// Usage
//
//	w, err := bfs.NewWalker(g,
//	    bfs.WithPassable(func(k grid.CellKind) bool { return k == grid.Empty }),
//	    bfs.WithMaxDepth(10),
//	)
//	if err != nil {
//	    // ErrGridNil or ErrOptionViolation
//	}
//	err = w.Walk(grid.Point{Row: 0, Col: 0}, func(idx, depth int) {
//	    // called once per reached cell, in BFS order
//	})
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrOptionViolation   if an invalid Option was supplied (e.g. negative MaxDepth).
//   - ErrStartOutOfBounds  if the start cell lies outside the grid.
package bfs
