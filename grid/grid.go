package grid

import (
	"fmt"
	"sync"
)

// Grid is a fixed-size board of cells. Cell state is guarded by mu:
// mutators take the write lock, readers the read lock.
type Grid struct {
	mu      sync.RWMutex
	rows    int
	cols    int
	cells   [][]Cell // indexed [row][col]
	removed int      // cleared wall-pairs
}

// New allocates a rows×cols grid with every cell unvisited and every wall
// present. Returns ErrInvalidDimensions if rows or cols is below 1.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	cells := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = newCell(Coord{Row: r, Col: c})
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns a copy of the cell at (row,col), or ErrOutOfBounds.
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, g.outOfBounds(Coord{Row: row, Col: col})
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[row][col], nil
}

// Visit marks the cell at pos as visited. Visiting twice is a no-op.
func (g *Grid) Visit(pos Coord) error {
	if !g.InBounds(pos.Row, pos.Col) {
		return g.outOfBounds(pos)
	}
	g.mu.Lock()
	g.cells[pos.Row][pos.Col].visited = true
	g.mu.Unlock()

	return nil
}

// Visited reports whether the cell at pos has been visited.
func (g *Grid) Visited(pos Coord) (bool, error) {
	if !g.InBounds(pos.Row, pos.Col) {
		return false, g.outOfBounds(pos)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[pos.Row][pos.Col].visited, nil
}

// Adjacent returns the side of a that faces b, and whether a and b differ by
// exactly one step along exactly one axis.
func (g *Grid) Adjacent(a, b Coord) (Side, bool) {
	for _, s := range Sides {
		if a.Step(s) == b {
			return s, true
		}
	}
	return 0, false
}

// RemoveWallBetween clears the wall-pair shared by a and b: a's wall facing b
// and b's wall facing a, inside one critical section.
// Returns ErrOutOfBounds for coordinates outside the grid and
// ErrInvalidAdjacency when a and b are not orthogonal neighbours.
// Removing an already cleared wall is a no-op.
func (g *Grid) RemoveWallBetween(a, b Coord) error {
	if !g.InBounds(a.Row, a.Col) {
		return g.outOfBounds(a)
	}
	if !g.InBounds(b.Row, b.Col) {
		return g.outOfBounds(b)
	}
	side, ok := g.Adjacent(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrInvalidAdjacency, a, b)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	ca, cb := &g.cells[a.Row][a.Col], &g.cells[b.Row][b.Col]
	if !ca.walls[side] {
		return nil
	}
	ca.walls[side] = false
	cb.walls[side.Opposite()] = false
	g.removed++

	return nil
}

// UnvisitedNeighbors returns the in-bounds, unvisited orthogonal neighbours
// of pos in Top, Right, Bottom, Left order.
func (g *Grid) UnvisitedNeighbors(pos Coord) ([]Coord, error) {
	if !g.InBounds(pos.Row, pos.Col) {
		return nil, g.outOfBounds(pos)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Coord, 0, 4)
	for _, s := range Sides {
		n := pos.Step(s)
		if g.InBounds(n.Row, n.Col) && !g.cells[n.Row][n.Col].visited {
			out = append(out, n)
		}
	}
	return out, nil
}

// RemovedWalls returns how many wall-pairs have been cleared.
func (g *Grid) RemovedWalls() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.removed
}

func (g *Grid) outOfBounds(pos Coord) error {
	return fmt.Errorf("%w: %v not in %d×%d", ErrOutOfBounds, pos, g.rows, g.cols)
}
