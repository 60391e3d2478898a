package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMarkerConflict indicates the Empty and House markers collide.
	ErrMarkerConflict = errors.New("grid: empty and house markers must differ")
)

// CellKind classifies a single grid cell.
type CellKind uint8

const (
	// Empty is a free lot; the only kind eligible as a meeting point.
	Empty CellKind = iota
	// House is a distance source.
	House
	// Obstacle can be neither crossed nor used as a meeting point.
	Obstacle
)

// String implements fmt.Stringer.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case House:
		return "house"
	case Obstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Markers holds the two recognized integer markers of the input encoding.
// Every other value is treated as an obstacle.
type Markers struct {
	Empty int
	House int
}

// DefaultMarkers returns the standard encoding: 0 = empty, 1 = house.
func DefaultMarkers() Markers {
	return Markers{Empty: 0, House: 1}
}

// Classify maps a raw marker to its CellKind.
func (m Markers) Classify(v int) CellKind {
	switch v {
	case m.Empty:
		return Empty
	case m.House:
		return House
	default:
		return Obstacle
	}
}

// Point is a (row, col) coordinate inside a Grid.
type Point struct {
	Row, Col int
}

// String renders the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Markers selects the empty and house encodings.
	Markers Markers
}

// Option configures New.
type Option func(*Options)

// DefaultOptions returns Options with DefaultMarkers.
func DefaultOptions() Options {
	return Options{Markers: DefaultMarkers()}
}

// WithMarkers overrides the empty and house markers.
func WithMarkers(m Markers) Option {
	return func(o *Options) {
		o.Markers = m
	}
}

// Grid is an immutable, classified view of a rectangular input.
// Rows and Cols define dimensions; cells holds kinds in row-major order.
type Grid struct {
	Rows, Cols      int
	cells           []CellKind
	neighborOffsets [4][2]int
}
