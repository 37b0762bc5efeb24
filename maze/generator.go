package maze

import (
	"fmt"
	"time"

	"github.com/katalvlaran/labyrinth/grid"
)

// start is the cell every generation begins from.
var start = grid.Coord{Row: 0, Col: 0}

// Generator carves a perfect maze into a grid with randomized iterative
// depth-first search. It is the grid's single writer; other goroutines may
// read the grid (or snapshots of it) at any time.
//
// A Generator is not safe for concurrent use by multiple goroutines.
type Generator struct {
	grid   *grid.Grid
	opts   Options
	source Source

	current grid.Coord
	stack   []grid.Coord // path from start to current, excluding current
	state   State

	res      Result
	notified bool
}

// NewGenerator prepares a generator over g: the cursor is placed on (0,0)
// and that cell is marked visited. g should be freshly constructed.
func NewGenerator(g *grid.Grid, opts ...Option) (*Generator, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	gen := &Generator{
		grid:    g,
		opts:    o,
		current: start,
		stack:   make([]grid.Coord, 0, g.Size()),
		state:   Exploring,
	}
	switch {
	case o.Source != nil:
		gen.source = o.Source
	case o.seeded:
		seed := o.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		gen.source = NewSource(seed)
		gen.res.Seed = seed
	default:
		seed := clockSeed()
		gen.source = NewSource(seed)
		gen.res.Seed = seed
	}

	if err := g.Visit(start); err != nil {
		return nil, fmt.Errorf("maze: visit start: %w", err)
	}

	return gen, nil
}

// State returns the state reached by the last step.
func (gen *Generator) State() State { return gen.state }

// Current returns the cursor cell.
func (gen *Generator) Current() grid.Coord { return gen.current }

// StackDepth returns the number of cells awaiting backtracking.
func (gen *Generator) StackDepth() int { return len(gen.stack) }

// Path returns a copy of the path stack, bottom (start) first.
func (gen *Generator) Path() []grid.Coord {
	out := make([]grid.Coord, len(gen.stack))
	copy(out, gen.stack)
	return out
}

// Result returns the statistics gathered so far.
func (gen *Generator) Result() Result { return gen.res }

// Step performs one transition of the state machine:
//
//  1. Collect the unvisited neighbours of the current cell.
//  2. If any: pick one at random, clear the wall between them, push the
//     current cell and move to the neighbour, marking it visited (Exploring).
//  3. Else if the path stack is non-empty: pop it into current (Backtracking).
//  4. Else: Done.
//
// Calling Step after Done returns Done without side effects.
func (gen *Generator) Step() (State, error) {
	if gen.state == Done {
		gen.finish()
		return Done, nil
	}

	from := gen.current
	neighbors, err := gen.grid.UnvisitedNeighbors(from)
	if err != nil {
		return gen.state, fmt.Errorf("maze: neighbours of %v: %w", from, err)
	}

	ev := StepEvent{Index: gen.res.Steps, From: from}
	switch {
	case len(neighbors) > 0:
		i := gen.source.Intn(len(neighbors))
		if i < 0 || i >= len(neighbors) {
			return gen.state, fmt.Errorf("%w: got %d for n=%d", ErrSourceRange, i, len(neighbors))
		}
		next := neighbors[i]
		if err = gen.grid.RemoveWallBetween(from, next); err != nil {
			return gen.state, fmt.Errorf("maze: carve %v→%v: %w", from, next, err)
		}
		gen.stack = append(gen.stack, from)
		if err = gen.grid.Visit(next); err != nil {
			return gen.state, fmt.Errorf("maze: visit %v: %w", next, err)
		}
		gen.current = next
		gen.state = Exploring
		gen.res.Carved++
		ev.Carved = true
		if len(gen.stack) > gen.res.MaxStackDepth {
			gen.res.MaxStackDepth = len(gen.stack)
		}

	case len(gen.stack) > 0:
		last := len(gen.stack) - 1
		gen.current = gen.stack[last]
		gen.stack = gen.stack[:last]
		gen.state = Backtracking
		gen.res.Backtracks++

	default:
		gen.state = Done
		gen.res.Done = true
	}
	gen.res.Steps++

	ev.State = gen.state
	ev.To = gen.current
	ev.StackDepth = len(gen.stack)
	if gen.opts.OnStep != nil {
		if err = gen.opts.OnStep(ev); err != nil {
			return gen.state, fmt.Errorf("maze: OnStep hook at step %d: %w", ev.Index, err)
		}
	}
	if gen.state == Done {
		gen.finish()
	}

	return gen.state, nil
}

// finish fires OnDone the first time the generator reaches Done.
func (gen *Generator) finish() {
	if gen.notified {
		return
	}
	gen.notified = true
	gen.opts.Logger.Debug().
		Int("rows", gen.grid.Rows()).
		Int("cols", gen.grid.Cols()).
		Int("steps", gen.res.Steps).
		Int("carved", gen.res.Carved).
		Int("backtracks", gen.res.Backtracks).
		Int("max_stack_depth", gen.res.MaxStackDepth).
		Msg("maze generation finished")
	if gen.opts.OnDone != nil {
		gen.opts.OnDone(gen.res)
	}
}

// Run drives Step until Done, honouring the context and pacing delay
// between steps. On cancellation the grid holds a valid partial maze and
// the context error is returned wrapped, together with the partial Result.
func (gen *Generator) Run() (*Result, error) {
	began := time.Now()
	ctx := gen.opts.Ctx
	gen.opts.Logger.Debug().
		Int("rows", gen.grid.Rows()).
		Int("cols", gen.grid.Cols()).
		Int64("seed", gen.res.Seed).
		Msg("maze generation started")

	var timer *time.Timer
	if gen.opts.Delay > 0 {
		timer = time.NewTimer(gen.opts.Delay)
		defer timer.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return gen.elapsed(began), fmt.Errorf("maze: cancelled after %d steps: %w", gen.res.Steps, ctx.Err())
		default:
		}

		state, err := gen.Step()
		if err != nil {
			return gen.elapsed(began), err
		}
		if state == Done {
			return gen.elapsed(began), nil
		}

		if timer != nil {
			timer.Reset(gen.opts.Delay)
			select {
			case <-ctx.Done():
				return gen.elapsed(began), fmt.Errorf("maze: cancelled after %d steps: %w", gen.res.Steps, ctx.Err())
			case <-timer.C:
			}
		}
	}
}

func (gen *Generator) elapsed(began time.Time) *Result {
	gen.res.Elapsed += time.Since(began)
	res := gen.res
	return &res
}

// Generate builds a rows×cols grid and carves a perfect maze into it.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, *Result, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	gen, err := NewGenerator(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	res, err := gen.Run()
	if err != nil {
		return g, res, err
	}
	return g, res, nil
}
