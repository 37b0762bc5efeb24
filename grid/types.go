// Package grid defines core types and sentinel errors for maze boards.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a grid with fewer than one row or column.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidAdjacency indicates two cells that do not share a wall.
	ErrInvalidAdjacency = errors.New("grid: cells are not adjacent")
)

// Side names one of the four walls of a cell.
type Side int

const (
	// Top is the wall towards row-1.
	Top Side = iota
	// Right is the wall towards col+1.
	Right
	// Bottom is the wall towards row+1.
	Bottom
	// Left is the wall towards col-1.
	Left
)

// Sides lists every side in wall-index order.
var Sides = [4]Side{Top, Right, Bottom, Left}

// sideDeltas holds (dRow, dCol) per side, indexed by Side.
var sideDeltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Opposite returns the side facing s on the neighbouring cell.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Delta returns the row and column offset of the neighbour behind s.
func (s Side) Delta() (dRow, dCol int) {
	d := sideDeltas[s]
	return d[0], d[1]
}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the coordinate one cell away in direction s.
// The result may lie outside the grid.
func (c Coord) Step(s Side) Coord {
	dr, dc := s.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a value copy of one grid cell. Its coordinates are fixed at grid
// construction and cannot be changed through a Cell.
type Cell struct {
	pos     Coord
	visited bool
	walls   [4]bool
}

// newCell returns an unvisited cell at pos with all four walls present.
func newCell(pos Coord) Cell {
	return Cell{pos: pos, walls: [4]bool{true, true, true, true}}
}

// Pos returns the cell coordinate.
func (c Cell) Pos() Coord { return c.pos }

// Row returns the cell row.
func (c Cell) Row() int { return c.pos.Row }

// Col returns the cell column.
func (c Cell) Col() int { return c.pos.Col }

// Visited reports whether the generator has reached the cell.
func (c Cell) Visited() bool { return c.visited }

// Wall reports whether the wall on side s is present.
func (c Cell) Wall(s Side) bool { return c.walls[s] }

// Walls returns the wall flags in Top, Right, Bottom, Left order.
func (c Cell) Walls() [4]bool { return c.walls }

// OpenSides returns the sides whose walls have been removed.
func (c Cell) OpenSides() []Side {
	var open []Side
	for _, s := range Sides {
		if !c.walls[s] {
			open = append(open, s)
		}
	}
	return open
}

// View is read-only access to a maze board. Renderers and analysers accept
// a View so they never gain write access to the grid.
type View interface {
	Rows() int
	Cols() int
	CellAt(row, col int) (Cell, error)
}
