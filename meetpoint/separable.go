package meetpoint

import (
	"sort"

	"github.com/katalvlaran/meetgrid/grid"
)

// solveSeparable handles obstacle-free grids. Row and column contributions to
// the Manhattan distance are independent, so each axis gets its own cost
// array and every empty cell is evaluated as rowCost[r] + colCost[c].
// Complexity: O(R×C + H) time, O(R + C) extra memory.
func solveSeparable(g *grid.Grid, houses []grid.Point) Result {
	rowCounts := make([]int, g.Rows)
	colCounts := make([]int, g.Cols)
	for _, h := range houses {
		rowCounts[h.Row]++
		colCounts[h.Col]++
	}
	rowCost := axisCosts(rowCounts)
	colCost := axisCosts(colCounts)

	// The lower medians minimise both axes at once; when that cell is empty
	// it is also the row-major first optimum.
	mr, mc := lowerMedian(rowCounts), lowerMedian(colCounts)
	if g.Kind(mr, mc) == grid.Empty {
		return Result{
			Distance: rowCost[mr] + colCost[mc],
			Meeting:  grid.Point{Row: mr, Col: mc},
			Strategy: Separable,
		}
	}

	best := infeasible(Separable, len(houses))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Kind(r, c) != grid.Empty {
				continue
			}
			if d := rowCost[r] + colCost[c]; best.Distance == NoMeetingPoint || d < best.Distance {
				best.Distance = d
				best.Meeting = grid.Point{Row: r, Col: c}
			}
		}
	}
	return best
}

// axisCosts returns cost[v] = Σ counts[u]·|u - v| for every coordinate v of
// one axis, where counts[u] is the number of houses at coordinate u.
// Moving from v-1 to v adds one step for every house at or before v-1 and
// removes one for every house at or after v.
func axisCosts(counts []int) []int {
	cost := make([]int, len(counts))
	if len(counts) == 0 {
		return cost
	}
	total := 0
	for u, n := range counts {
		total += n
		cost[0] += u * n
	}
	before := 0
	for v := 1; v < len(counts); v++ {
		before += counts[v-1]
		cost[v] = cost[v-1] + before - (total - before)
	}
	return cost
}

// lowerMedian returns the lower median coordinate of a per-coordinate count
// histogram, or 0 when the histogram is empty.
func lowerMedian(counts []int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	need := (total + 1) / 2
	seen := 0
	for v, n := range counts {
		seen += n
		if seen >= need && seen > 0 {
			return v
		}
	}
	return 0
}

// AxisMedianCost returns min over integer v of Σ|c - v| for the given
// coordinates of one axis. The minimum is attained at any median; the lower
// median is used. The input slice is not modified.
func AxisMedianCost(coords []int) int {
	if len(coords) == 0 {
		return 0
	}
	sorted := append([]int(nil), coords...)
	sort.Ints(sorted)
	m := sorted[(len(sorted)-1)/2]

	sum := 0
	for _, c := range sorted {
		sum += abs(c - m)
	}
	return sum
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
