package grid

// New constructs a Grid from a rectangular 2D slice, classifying each value
// through the configured Markers. The input is not retained.
// Returns ErrNonRectangular if any row length differs from the first row,
// ErrMarkerConflict if the empty and house markers are equal.
// A nil or zero-width input yields a valid grid with no cells.
// Complexity: O(R×C) time and memory.
func New(values [][]int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Markers.Empty == o.Markers.House {
		return nil, ErrMarkerConflict
	}

	rows, cols := len(values), 0
	if rows > 0 {
		cols = len(values[0])
	}
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// A zero-width grid has no cells regardless of its row count.
	if cols == 0 {
		rows = 0
	}

	cells := make([]CellKind, rows*cols)
	for r := 0; r < rows; r++ {
		base := r * cols
		for c, v := range values[r] {
			cells[base+c] = o.Markers.Classify(v)
		}
	}

	return &Grid{
		Rows:            rows,
		Cols:            cols,
		cells:           cells,
		neighborOffsets: [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
	}, nil
}

// Size returns the number of cells, Rows×Cols.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Index maps (r,c) to a row-major index: r*Cols + c.
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.Cols + c
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Kind returns the kind of cell (r,c). Out-of-bounds cells report Obstacle.
func (g *Grid) Kind(r, c int) CellKind {
	if !g.InBounds(r, c) {
		return Obstacle
	}
	return g.cells[g.Index(r, c)]
}

// KindAt returns the kind of the cell at row-major index idx.
// idx must be in [0, Size()).
func (g *Grid) KindAt(idx int) CellKind {
	return g.cells[idx]
}

// NeighborOffsets returns the 4-connectivity offsets as {dRow, dCol} pairs in
// N, E, S, W order. Traversals use it to stay branch-free.
func (g *Grid) NeighborOffsets() [4][2]int {
	return g.neighborOffsets
}
