package grid

// Components finds all 4-connected regions of cells whose kind satisfies
// passable. Each component is a slice of row-major indices in BFS order;
// components appear in row-major order of their first cell.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Components(passable func(CellKind) bool) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	offsets := g.NeighborOffsets()

	for i0, k := range g.cells {
		if seen[i0] || !passable(k) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			p := g.Coordinate(queue[qi])
			for _, d := range offsets {
				nr, nc := p.Row+d[0], p.Col+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				vi := g.Index(nr, nc)
				if !seen[vi] && passable(g.cells[vi]) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentLabels returns, for each cell, the index of the component it
// belongs to in Components(passable), or -1 for cells that are not passable.
func (g *Grid) ComponentLabels(passable func(CellKind) bool) []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for ci, comp := range g.Components(passable) {
		for _, idx := range comp {
			labels[idx] = ci
		}
	}
	return labels
}

// Traversable is the default passability predicate: empty and house cells.
func Traversable(k CellKind) bool {
	return k != Obstacle
}
