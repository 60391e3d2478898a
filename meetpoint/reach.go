package meetpoint

import (
	"fmt"

	"github.com/katalvlaran/meetgrid/bfs"
	"github.com/katalvlaran/meetgrid/grid"
)

// solveReachability handles grids with obstacles. One breadth-first walk per
// house accumulates, for every empty cell, the total shortest-path distance
// and the number of houses that reached it. The walker reuses its visit
// stamps, so no per-house clearing is paid.
// Complexity: O(H×R×C) time, O(R×C) memory.
func solveReachability(g *grid.Grid, houses []grid.Point, houseTransit bool) (Result, error) {
	passable := grid.Traversable
	if !houseTransit {
		passable = isEmpty
	}
	w, err := bfs.NewWalker(g, bfs.WithPassable(passable))
	if err != nil {
		return infeasible(Reachability, len(houses)), err
	}

	totalDistance := make([]int, g.Size())
	reachCount := make([]int, g.Size())

	for i, h := range houses {
		want := i + 1
		reachedAll := 0
		err = w.Walk(h, func(idx, depth int) {
			if g.KindAt(idx) != grid.Empty {
				return
			}
			totalDistance[idx] += depth
			reachCount[idx]++
			if reachCount[idx] == want {
				reachedAll++
			}
		})
		if err != nil {
			return infeasible(Reachability, len(houses)), fmt.Errorf("meetpoint: walk from house %v: %w", h, err)
		}
		// No empty cell is shared by the houses seen so far; later walks
		// cannot repair that.
		if reachedAll == 0 {
			return infeasible(Reachability, len(houses)), nil
		}
	}

	best := infeasible(Reachability, len(houses))
	for idx := 0; idx < g.Size(); idx++ {
		if g.KindAt(idx) != grid.Empty || reachCount[idx] != len(houses) {
			continue
		}
		if best.Distance == NoMeetingPoint || totalDistance[idx] < best.Distance {
			best.Distance = totalDistance[idx]
			best.Meeting = g.Coordinate(idx)
		}
	}
	return best, nil
}

func isEmpty(k grid.CellKind) bool {
	return k == grid.Empty
}
