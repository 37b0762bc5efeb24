package maze_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
)

func c(row, col int) grid.Coord { return grid.Coord{Row: row, Col: col} }

// record runs a generator over a fresh rows×cols grid, collecting every event.
func record(t *testing.T, rows, cols int, opts ...maze.Option) (*grid.Grid, []maze.StepEvent, *maze.Result) {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	var events []maze.StepEvent
	opts = append(opts, maze.WithOnStep(func(ev maze.StepEvent) error {
		events = append(events, ev)
		return nil
	}))
	gen, err := maze.NewGenerator(g, opts...)
	require.NoError(t, err)
	res, err := gen.Run()
	require.NoError(t, err)
	return g, events, res
}

//----------------------------------------------------------------------------//
// Spanning-tree properties
//----------------------------------------------------------------------------//

// TestGenerate_PerfectMaze checks, over many sizes and seeds, that every cell
// is visited, exactly R×C−1 wall-pairs are cleared and a BFS from (0,0)
// reaches every cell exactly once.
func TestGenerate_PerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 5}, {8, 8}, {13, 21}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			rows, cols := sz[0], sz[1]
			t.Run(fmt.Sprintf("%dx%d/seed=%d", rows, cols, seed), func(t *testing.T) {
				g, res, err := maze.Generate(rows, cols, maze.WithSeed(seed))
				require.NoError(t, err)
				assert.True(t, res.Done)
				assert.Equal(t, rows*cols-1, g.RemovedWalls())
				assert.Equal(t, rows*cols-1, res.Carved)
				assert.NoError(t, maze.Validate(g))

				for r := 0; r < rows; r++ {
					for col := 0; col < cols; col++ {
						cell, _ := g.CellAt(r, col)
						assert.True(t, cell.Visited(), "cell %v unvisited", cell.Pos())
					}
				}

				walk, err := bfs.BFS(g, c(0, 0))
				require.NoError(t, err)
				assert.Len(t, walk.Order, rows*cols)
				seen := make(map[grid.Coord]bool, rows*cols)
				for _, pos := range walk.Order {
					assert.False(t, seen[pos], "cell %v reached twice", pos)
					seen[pos] = true
				}
			})
		}
	}
}

// TestGenerate_SingleCell: 1×1 completes in one step with no walls removed.
func TestGenerate_SingleCell(t *testing.T) {
	g, events, res := record(t, 1, 1, maze.WithSeed(3))

	assert.Equal(t, 1, res.Steps)
	assert.Zero(t, res.Carved)
	assert.Zero(t, g.RemovedWalls())
	require.Len(t, events, 1)
	assert.Equal(t, maze.Done, events[0].State)
	cell, _ := g.CellAt(0, 0)
	assert.True(t, cell.Visited())
	assert.Equal(t, [4]bool{true, true, true, true}, cell.Walls())
}

// TestGenerate_SingleRow: a 1×N grid becomes a simple horizontal path.
func TestGenerate_SingleRow(t *testing.T) {
	const n = 9
	g, _, err := maze.Generate(1, n, maze.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, n-1, g.RemovedWalls())
	for col := 0; col < n; col++ {
		cell, _ := g.CellAt(0, col)
		assert.True(t, cell.Wall(grid.Top))
		assert.True(t, cell.Wall(grid.Bottom))
		assert.Equal(t, col == 0, cell.Wall(grid.Left), "left wall of col %d", col)
		assert.Equal(t, col == n-1, cell.Wall(grid.Right), "right wall of col %d", col)
	}
}

// TestGenerate_TwoByTwo: exactly three of the four internal walls are removed.
func TestGenerate_TwoByTwo(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, _, err := maze.Generate(2, 2, maze.WithSeed(seed))
		require.NoError(t, err)
		cleared, err := maze.CheckWalls(g)
		require.NoError(t, err)
		assert.Equal(t, 3, cleared, "seed %d", seed)
		assert.NoError(t, maze.Validate(g))
	}
}

// TestGenerate_WallConsistencyEveryStep samples the grid after every step.
func TestGenerate_WallConsistencyEveryStep(t *testing.T) {
	g, err := grid.New(6, 9)
	require.NoError(t, err)
	steps := 0
	gen, err := maze.NewGenerator(g, maze.WithSeed(42), maze.WithOnStep(func(ev maze.StepEvent) error {
		steps++
		cleared, err := maze.CheckWalls(g)
		if err != nil {
			return err
		}
		if cleared != g.RemovedWalls() {
			return fmt.Errorf("step %d: counted %d cleared walls, grid reports %d", ev.Index, cleared, g.RemovedWalls())
		}
		return nil
	}))
	require.NoError(t, err)

	res, err := gen.Run()
	require.NoError(t, err)
	assert.Equal(t, res.Steps, steps)
	// every cell is entered once and left once, plus the final Done step
	assert.Equal(t, 2*(6*9-1)+1, res.Steps)
	assert.Equal(t, res.Carved, res.Backtracks)
}

//----------------------------------------------------------------------------//
// State machine
//----------------------------------------------------------------------------//

// TestGenerator_Corridor walks a 3×1 corridor: two carves, two pops, done.
func TestGenerator_Corridor(t *testing.T) {
	g, events, res := record(t, 3, 1, maze.WithSeed(7))

	states := make([]maze.State, len(events))
	for i, ev := range events {
		states[i] = ev.State
	}
	assert.Equal(t, []maze.State{maze.Exploring, maze.Exploring, maze.Backtracking, maze.Backtracking, maze.Done}, states)
	assert.Equal(t, c(2, 0), events[1].To)
	assert.Equal(t, c(1, 0), events[2].To)
	assert.Equal(t, c(0, 0), events[3].To)
	assert.Equal(t, 2, res.MaxStackDepth)
	assert.Equal(t, 2, g.RemovedWalls())
}

// TestGenerator_BacktrackResumesFromAncestor forces a 3×3 run into a dead
// end at (2,2) and checks exploration resumes from its parent (2,1).
//
// Forced route: (0,0)→(0,1)→(0,2)→(1,2)→(1,1)→(2,1)→(2,2) dead end,
// pop to (2,1), then (2,1)→(2,0)→(1,0).
func TestGenerator_BacktrackResumesFromAncestor(t *testing.T) {
	src := maze.NewSequence(0, 0, 0, 1, 0, 0, 0, 0)
	g, events, res := record(t, 3, 3, maze.WithSource(src))

	require.Greater(t, len(events), 8)
	deadEnd := events[6]
	assert.Equal(t, maze.StepEvent{Index: 6, State: maze.Backtracking, From: c(2, 2), To: c(2, 1), StackDepth: 5}, deadEnd)
	resume := events[7]
	assert.Equal(t, maze.StepEvent{Index: 7, State: maze.Exploring, From: c(2, 1), To: c(2, 0), Carved: true, StackDepth: 6}, resume)

	dead, _ := g.CellAt(2, 2)
	assert.Equal(t, []grid.Side{grid.Left}, dead.OpenSides())
	parent, _ := g.CellAt(2, 1)
	assert.Equal(t, []grid.Side{grid.Top, grid.Right, grid.Left}, parent.OpenSides())

	assert.Equal(t, 17, res.Steps)
	assert.Equal(t, 8, res.Carved)
	assert.Equal(t, 8, res.Backtracks)
	assert.Equal(t, 7, res.MaxStackDepth)
	assert.Zero(t, res.Seed)
	assert.NoError(t, maze.Validate(g))
}

// TestGenerator_ManualStepping drives Step directly and inspects accessors.
func TestGenerator_ManualStepping(t *testing.T) {
	g, err := grid.New(1, 3)
	require.NoError(t, err)
	gen, err := maze.NewGenerator(g, maze.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, maze.Exploring, gen.State())
	assert.Equal(t, c(0, 0), gen.Current())
	visited, _ := g.Visited(c(0, 0))
	assert.True(t, visited, "start cell is visited before the first step")

	st, err := gen.Step()
	require.NoError(t, err)
	assert.Equal(t, maze.Exploring, st)
	assert.Equal(t, c(0, 1), gen.Current())
	assert.Equal(t, []grid.Coord{c(0, 0)}, gen.Path())
	assert.Equal(t, 1, gen.StackDepth())

	for gen.State() != maze.Done {
		_, err = gen.Step()
		require.NoError(t, err)
	}
	before := gen.Result()
	st, err = gen.Step()
	require.NoError(t, err)
	assert.Equal(t, maze.Done, st)
	assert.Equal(t, before, gen.Result(), "Step after Done must not change state")
}

// TestGenerator_OnDoneOnce fires the completion callback exactly once.
func TestGenerator_OnDoneOnce(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)
	calls := 0
	var final maze.Result
	gen, err := maze.NewGenerator(g, maze.WithSeed(9), maze.WithOnDone(func(r maze.Result) {
		calls++
		final = r
	}))
	require.NoError(t, err)

	res, err := gen.Run()
	require.NoError(t, err)
	_, _ = gen.Step()
	_, _ = gen.Run()

	assert.Equal(t, 1, calls)
	assert.True(t, final.Done)
	assert.Equal(t, res.Steps, final.Steps)
}

// TestGenerator_Deterministic: equal seeds give equal mazes; seed 0 uses the default seed.
func TestGenerator_Deterministic(t *testing.T) {
	a, ra, err := maze.Generate(10, 10, maze.WithSeed(1))
	require.NoError(t, err)
	b, rb, err := maze.Generate(10, 10, maze.WithSeed(0))
	require.NoError(t, err)
	d, _, err := maze.Generate(10, 10, maze.WithSeed(2))
	require.NoError(t, err)

	assert.Equal(t, int64(1), ra.Seed)
	assert.Equal(t, int64(1), rb.Seed, "seed 0 reports the seed actually used")
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	// the reported seed replays the maze
	replay, _, err := maze.Generate(10, 10, maze.WithSeed(rb.Seed))
	require.NoError(t, err)
	assert.Equal(t, b.Snapshot(), replay.Snapshot())
	assert.NotEqual(t, a.Snapshot(), d.Snapshot())
}

// TestGenerator_ClockSeedReported: the default source reports its seed, and
// replaying that seed reproduces the maze.
func TestGenerator_ClockSeedReported(t *testing.T) {
	a, res, err := maze.Generate(6, 6)
	require.NoError(t, err)
	require.NotZero(t, res.Seed)

	b, _, err := maze.Generate(6, 6, maze.WithSeed(res.Seed))
	require.NoError(t, err)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

//----------------------------------------------------------------------------//
// Errors, cancellation, hooks
//----------------------------------------------------------------------------//

// TestNewGenerator_Errors covers invalid arguments and options.
func TestNewGenerator_Errors(t *testing.T) {
	_, err := maze.NewGenerator(nil)
	assert.ErrorIs(t, err, maze.ErrGridNil)

	g, _ := grid.New(2, 2)
	_, err = maze.NewGenerator(g, maze.WithSource(nil))
	assert.ErrorIs(t, err, maze.ErrNilSource)
	_, err = maze.NewGenerator(g, maze.WithDelay(-time.Second))
	assert.ErrorIs(t, err, maze.ErrOptionViolation)

	_, _, err = maze.Generate(0, 4)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestGenerator_SourceRange rejects a source that ignores n.
func TestGenerator_SourceRange(t *testing.T) {
	g, _ := grid.New(2, 2)
	gen, err := maze.NewGenerator(g, maze.WithSource(maze.NewSequence(5)))
	require.NoError(t, err)

	_, err = gen.Step()
	assert.ErrorIs(t, err, maze.ErrSourceRange)
	assert.Zero(t, g.RemovedWalls())
}

// TestGenerator_CancelledBeforeRun returns immediately with a pristine maze.
func TestGenerator_CancelledBeforeRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, res, err := maze.Generate(5, 5, maze.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Steps)
	assert.Zero(t, g.RemovedWalls())
}

// TestGenerator_CancelledMidRun leaves a valid partial maze behind.
func TestGenerator_CancelledMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, err := grid.New(10, 10)
	require.NoError(t, err)
	gen, err := maze.NewGenerator(g, maze.WithSeed(5), maze.WithContext(ctx),
		maze.WithOnStep(func(ev maze.StepEvent) error {
			if ev.Index == 20 {
				cancel()
			}
			return nil
		}))
	require.NoError(t, err)

	res, err := gen.Run()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 21, res.Steps)
	assert.False(t, res.Done)

	cleared, err := maze.CheckWalls(g)
	require.NoError(t, err)
	assert.Equal(t, res.Carved, cleared)
	assert.ErrorIs(t, maze.Validate(g), maze.ErrUnvisited)
}

// TestGenerator_OnStepError aborts Run with the hook's error.
func TestGenerator_OnStepError(t *testing.T) {
	boom := errors.New("boom")
	_, res, err := maze.Generate(4, 4, maze.WithSeed(1), maze.WithOnStep(func(ev maze.StepEvent) error {
		if ev.Index == 3 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, res.Steps)
}

// TestGenerator_Delay paces Run between steps.
func TestGenerator_Delay(t *testing.T) {
	const delay = 2 * time.Millisecond
	_, res, err := maze.Generate(1, 3, maze.WithSeed(1), maze.WithDelay(delay))
	require.NoError(t, err)
	// five steps, four pauses
	assert.GreaterOrEqual(t, res.Elapsed, 4*delay)
}

// TestGenerator_DelayCancelled stops waiting as soon as the context ends.
func TestGenerator_DelayCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	began := time.Now()
	_, _, err := maze.Generate(50, 50, maze.WithContext(ctx), maze.WithDelay(time.Hour))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(began), time.Minute)
}

// TestGenerator_Logger emits start and finish events at debug level.
func TestGenerator_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, _, err := maze.Generate(3, 3, maze.WithSeed(2), maze.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"maze generation started"`)
	assert.Contains(t, out, `"message":"maze generation finished"`)
	assert.Contains(t, out, `"carved":8`)
}

// TestGenerator_ConcurrentReader snapshots the grid while Run carves it.
// Run with -race.
func TestGenerator_ConcurrentReader(t *testing.T) {
	g, err := grid.New(20, 20)
	require.NoError(t, err)
	gen, err := maze.NewGenerator(g, maze.WithSeed(8))
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if _, err := maze.CheckWalls(g.Snapshot()); err != nil {
				t.Errorf("mid-generation snapshot: %v", err)
				return
			}
		}
	}()

	_, err = gen.Run()
	close(stop)
	wg.Wait()
	require.NoError(t, err)
	assert.NoError(t, maze.Validate(g))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "exploring", maze.Exploring.String())
	assert.Equal(t, "backtracking", maze.Backtracking.String())
	assert.Equal(t, "done", maze.Done.String())
	assert.Equal(t, "State(9)", maze.State(9).String())
	text, err := maze.Done.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "done", string(text))

	var st maze.State
	require.NoError(t, st.UnmarshalText([]byte("backtracking")))
	assert.Equal(t, maze.Backtracking, st)
	assert.Error(t, st.UnmarshalText([]byte("resting")))
}
