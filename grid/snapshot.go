package grid

import "fmt"

// Snapshot is an immutable copy of a grid taken at one instant. It is safe
// to hand to other goroutines while generation continues on the source grid.
type Snapshot struct {
	rows, cols int
	cells      [][]Cell
	removed    int
}

// Snapshot deep-copies the current cell state under the read lock.
// Complexity: O(R×C).
func (g *Grid) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cells := make([][]Cell, g.rows)
	for r := range g.cells {
		cells[r] = make([]Cell, g.cols)
		copy(cells[r], g.cells[r])
	}
	return &Snapshot{rows: g.rows, cols: g.cols, cells: cells, removed: g.removed}
}

// Rows returns the row count.
func (s *Snapshot) Rows() int { return s.rows }

// Cols returns the column count.
func (s *Snapshot) Cols() int { return s.cols }

// RemovedWalls returns the number of cleared wall-pairs at snapshot time.
func (s *Snapshot) RemovedWalls() int { return s.removed }

// CellAt returns the cell at (row,col), or ErrOutOfBounds.
func (s *Snapshot) CellAt(row, col int) (Cell, error) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return Cell{}, fmt.Errorf("%w: (%d,%d) not in %d×%d", ErrOutOfBounds, row, col, s.rows, s.cols)
	}
	return s.cells[row][col], nil
}
