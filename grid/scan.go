package grid

// Scan is the result of a single classification pass over a Grid.
type Scan struct {
	// Houses lists house coordinates in row-major order.
	Houses []Point
	// HasObstacle reports whether any obstacle cell exists.
	HasObstacle bool
	// Empty counts the empty cells (meeting-point candidates).
	Empty int
}

// Feasible reports whether a meeting point can exist at all: there is at
// least one house and at least one empty cell.
func (s Scan) Feasible() bool {
	return len(s.Houses) > 0 && s.Empty > 0
}

// Scan walks the grid once in row-major order and collects houses, obstacle
// presence and the empty-cell count. It never mutates the grid.
// Complexity: O(R×C) time, O(H) memory.
func (g *Grid) Scan() Scan {
	var s Scan
	for idx, k := range g.cells {
		switch k {
		case House:
			s.Houses = append(s.Houses, g.Coordinate(idx))
		case Empty:
			s.Empty++
		default:
			s.HasObstacle = true
		}
	}
	return s
}
