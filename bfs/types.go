package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/meetgrid/grid"
)

// Sentinel errors for walker construction and execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell is outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Walker behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation by NewWalker.
type Option func(*Options)

// Options holds parameters that customize a walk.
type Options struct {
	// Passable decides which cells can be entered from a neighbor.
	Passable func(k grid.CellKind) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Passable = grid.Traversable (empty and house cells)
//   - no depth limit (MaxDepth == 0)
func DefaultOptions() Options {
	return Options{
		Passable: grid.Traversable,
		MaxDepth: 0,
	}
}

// WithPassable sets the predicate for enterable cells. nil is ignored.
func WithPassable(fn func(k grid.CellKind) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
