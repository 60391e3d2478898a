// Package bfs provides breadth-first search over a grid.Grid with
// visit-generation stamps, so a single Walker serves many start cells.
package bfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meetgrid/grid"
)

// queueItem pairs a row-major cell index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// Walker encapsulates reusable BFS state for one grid.
// A Walker is not safe for concurrent use.
type Walker struct {
	grid  *grid.Grid
	opts  Options
	stamp []uint32
	gen   uint32
	queue []queueItem
}

// NewWalker allocates stamps and queue storage for g, applying any number of
// functional Options. Returns ErrGridNil or ErrOptionViolation.
func NewWalker(g *grid.Grid, opts ...Option) (*Walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Walker{
		grid:  g,
		opts:  o,
		stamp: make([]uint32, g.Size()),
		queue: make([]queueItem, 0, g.Size()),
	}, nil
}

// Walk runs one breadth-first search from start and calls visit exactly once
// for every reached cell (start included, at depth 0) in BFS order.
// Returns ErrStartOutOfBounds if start lies outside the grid.
func (w *Walker) Walk(start grid.Point, visit func(idx, depth int)) error {
	if !w.grid.InBounds(start.Row, start.Col) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, w.grid.Rows, w.grid.Cols)
	}
	w.nextGeneration()

	w.queue = w.queue[:0]
	w.enqueue(w.grid.Index(start.Row, start.Col), 0)
	w.loop(visit)

	return nil
}

// Visited reports whether idx was reached by the most recent Walk.
func (w *Walker) Visited(idx int) bool {
	return w.gen != 0 && w.stamp[idx] == w.gen
}

// Generation returns the stamp value of the most recent Walk (0 before any).
func (w *Walker) Generation() uint32 {
	return w.gen
}

// nextGeneration advances the stamp counter, clearing stamps on wrap-around
// so that stale stamps can never alias the new generation.
func (w *Walker) nextGeneration() {
	if w.gen == math.MaxUint32 {
		for i := range w.stamp {
			w.stamp[i] = 0
		}
		w.gen = 0
	}
	w.gen++
}

// enqueue marks idx visited in the current generation and queues it.
func (w *Walker) enqueue(idx, depth int) {
	w.stamp[idx] = w.gen
	w.queue = append(w.queue, queueItem{idx: idx, depth: depth})
}

// loop processes the queue until it is exhausted.
func (w *Walker) loop(visit func(idx, depth int)) {
	g := w.grid
	offsets := g.NeighborOffsets()
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		visit(item.idx, item.depth)

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		p := g.Coordinate(item.idx)
		for _, d := range offsets {
			nr, nc := p.Row+d[0], p.Col+d[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			nbr := g.Index(nr, nc)
			if w.stamp[nbr] == w.gen || !w.opts.Passable(g.KindAt(nbr)) {
				continue
			}
			w.enqueue(nbr, nextDepth)
		}
	}
}
