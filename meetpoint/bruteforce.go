package meetpoint

import (
	"github.com/katalvlaran/meetgrid/grid"
)

// BruteForce is a reference oracle: it evaluates every empty cell against
// every house independently of the optimised solvers.
//
//   - Obstacle-free grids with house transit use plain Manhattan distances.
//   - All other grids run a fresh breadth-first search per house with its own
//     visited set, honoring the HouseTransit option.
//
// Ties resolve to the first empty cell in row-major order.
// Complexity: O(H×R×C). Intended for tests and cross-checks on small grids.
func BruteForce(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return infeasible(None, 0), ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return infeasible(None, 0), err
	}
	scan := g.Scan()
	if !scan.Feasible() {
		return infeasible(None, len(scan.Houses)), nil
	}

	if !scan.HasObstacle && o.HouseTransit {
		return bruteManhattan(g, scan.Houses), nil
	}
	return bruteWalks(g, scan.Houses, o.HouseTransit), nil
}

func bruteManhattan(g *grid.Grid, houses []grid.Point) Result {
	best := infeasible(Separable, len(houses))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Kind(r, c) != grid.Empty {
				continue
			}
			sum := 0
			for _, h := range houses {
				sum += abs(h.Row-r) + abs(h.Col-c)
			}
			if best.Distance == NoMeetingPoint || sum < best.Distance {
				best.Distance = sum
				best.Meeting = grid.Point{Row: r, Col: c}
			}
		}
	}
	return best
}

func bruteWalks(g *grid.Grid, houses []grid.Point, houseTransit bool) Result {
	dist := make([][]int, len(houses))
	for i, h := range houses {
		dist[i] = distancesFrom(g, h, houseTransit)
	}

	best := infeasible(Reachability, len(houses))
	for idx := 0; idx < g.Size(); idx++ {
		if g.KindAt(idx) != grid.Empty {
			continue
		}
		sum, ok := 0, true
		for i := range houses {
			if dist[i][idx] < 0 {
				ok = false
				break
			}
			sum += dist[i][idx]
		}
		if ok && (best.Distance == NoMeetingPoint || sum < best.Distance) {
			best.Distance = sum
			best.Meeting = g.Coordinate(idx)
		}
	}
	return best
}

// distancesFrom returns BFS step counts from start to every cell, -1 where
// unreachable.
func distancesFrom(g *grid.Grid, start grid.Point, houseTransit bool) []int {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	s := g.Index(start.Row, start.Col)
	dist[s] = 0
	queue := []int{s}
	for qi := 0; qi < len(queue); qi++ {
		p := g.Coordinate(queue[qi])
		for _, d := range g.NeighborOffsets() {
			nr, nc := p.Row+d[0], p.Col+d[1]
			k := g.Kind(nr, nc)
			if k == grid.Obstacle || (k == grid.House && !houseTransit) {
				continue
			}
			ni := g.Index(nr, nc)
			if dist[ni] >= 0 {
				continue
			}
			dist[ni] = dist[queue[qi]] + 1
			queue = append(queue, ni)
		}
	}
	return dist
}
