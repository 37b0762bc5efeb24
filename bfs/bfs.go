// Package bfs provides breadth-first search over the passages of a maze,
// returning passage-count distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell, moving only
// through cleared wall-pairs, with optional hooks, depth limiting, and
// neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	view  grid.View
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on v starting from start,
// applying any number of functional Options.
// Returns ErrViewNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(v grid.View, start grid.Coord, opts ...Option) (*BFSResult, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if _, err := v.CellAt(start.Row, start.Col); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}

	// Prepare walker
	n := v.Rows() * v.Cols()
	w := &walker{
		view:  v,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{pos: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.pos)
		if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors follows every open passage of item, applies filtering
// and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := grid.Passages(w.view, item.pos)
	if err != nil {
		return fmt.Errorf("bfs: passages of %v: %w", item.pos, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.pos, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.pos
		w.queue = append(w.queue, queueItem{pos: nbr, depth: next})
	}
	return nil
}
