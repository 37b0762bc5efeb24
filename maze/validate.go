package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/grid"
)

// errFound stops Solve's search once the destination is dequeued.
var errFound = errors.New("maze: destination reached")

// CheckWalls verifies the wall-pair invariant: for every pair of adjacent
// cells, the flag on each side facing the other agrees. It returns the
// number of cleared wall-pairs, or ErrWallMismatch naming the first bad pair.
// Complexity: O(R×C).
func CheckWalls(v grid.View) (int, error) {
	if v == nil {
		return 0, ErrGridNil
	}
	cleared := 0
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.CellAt(r, c)
			if err != nil {
				return cleared, err
			}
			for _, side := range [2]grid.Side{grid.Right, grid.Bottom} {
				n := cell.Pos().Step(side)
				if n.Row >= v.Rows() || n.Col >= v.Cols() {
					continue
				}
				other, err := v.CellAt(n.Row, n.Col)
				if err != nil {
					return cleared, err
				}
				if cell.Wall(side) != other.Wall(side.Opposite()) {
					return cleared, fmt.Errorf("%w: %v %s=%t, %v %s=%t", ErrWallMismatch,
						cell.Pos(), side, cell.Wall(side), n, side.Opposite(), other.Wall(side.Opposite()))
				}
				if !cell.Wall(side) {
					cleared++
				}
			}
		}
	}
	return cleared, nil
}

// Validate reports whether v holds a perfect maze: consistent wall-pairs,
// every cell visited, every cell reachable from (0,0) through cleared walls,
// and exactly R×C−1 cleared wall-pairs (a spanning tree).
func Validate(v grid.View) error {
	cleared, err := CheckWalls(v)
	if err != nil {
		return err
	}
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.CellAt(r, c)
			if err != nil {
				return err
			}
			if !cell.Visited() {
				return fmt.Errorf("%w: %v", ErrUnvisited, cell.Pos())
			}
		}
	}

	total := v.Rows() * v.Cols()
	res, err := bfs.BFS(v, start)
	if err != nil {
		return fmt.Errorf("maze: reachability: %w", err)
	}
	if len(res.Order) != total {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, len(res.Order), total)
	}
	if cleared != total-1 {
		return fmt.Errorf("%w: %d cleared wall-pairs for %d cells", ErrCycle, cleared, total)
	}
	return nil
}

// Solve returns the path through cleared walls from `from` to `to`, both
// inclusive. In a perfect maze this path is unique.
func Solve(v grid.View, from, to grid.Coord) ([]grid.Coord, error) {
	if v == nil {
		return nil, ErrGridNil
	}
	if _, err := v.CellAt(to.Row, to.Col); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(v, from, bfs.WithOnVisit(func(pos grid.Coord, _ int) error {
		if pos == to {
			return errFound
		}
		return nil
	}))
	if err != nil && !errors.Is(err, errFound) {
		return nil, err
	}
	return res.PathTo(to)
}

// Farthest returns the cell with the greatest passage distance from `from`
// and that distance. Ties resolve to the first cell in BFS order.
func Farthest(v grid.View, from grid.Coord) (grid.Coord, int, error) {
	if v == nil {
		return grid.Coord{}, 0, ErrGridNil
	}
	res, err := bfs.BFS(v, from)
	if err != nil {
		return grid.Coord{}, 0, err
	}
	best, dist := from, 0
	for _, pos := range res.Order {
		if d := res.Depth[pos]; d > dist {
			best, dist = pos, d
		}
	}
	return best, dist, nil
}

// Exit placements accepted by Exit.
const (
	ExitCorner   = "corner"
	ExitFarthest = "farthest"
)

// Exit picks the exit of a maze entered at (0,0). ExitCorner (or "") is the
// bottom-right cell; ExitFarthest is the cell at the greatest passage
// distance from the entrance, giving the longest possible solution.
func Exit(v grid.View, placement string) (grid.Coord, error) {
	if v == nil {
		return grid.Coord{}, ErrGridNil
	}
	switch placement {
	case "", ExitCorner:
		return grid.Coord{Row: v.Rows() - 1, Col: v.Cols() - 1}, nil
	case ExitFarthest:
		pos, _, err := Farthest(v, start)
		return pos, err
	}
	return grid.Coord{}, fmt.Errorf("%w: exit placement %q", ErrOptionViolation, placement)
}
