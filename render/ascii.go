package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Cell contents in text form.
const (
	blank     = "   "
	unvisited = ":::"
	onPath    = " * "
	cursor    = " @ "
)

// ASCII draws v as a box diagram:
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
//
// Cells not yet visited are shaded with ':', path cells carry '*' and the
// cursor cell '@'.
func ASCII(v grid.View, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := WriteASCII(&sb, v, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteASCII streams the ASCII drawing of v to w.
func WriteASCII(w io.Writer, v grid.View, opts ...Option) error {
	if v == nil {
		return ErrViewNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	path := pathSet(o.Path)
	bw := bufio.NewWriter(w)

	for r := 0; r < v.Rows(); r++ {
		// wall line above the row
		bw.WriteByte('+')
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.CellAt(r, c)
			if err != nil {
				return err
			}
			bw.WriteString(horizontal(cell.Wall(grid.Top)))
			bw.WriteByte('+')
		}
		bw.WriteByte('\n')

		// cell line
		for c := 0; c < v.Cols(); c++ {
			cell, err := v.CellAt(r, c)
			if err != nil {
				return err
			}
			bw.WriteByte(vertical(cell.Wall(grid.Left)))
			bw.WriteString(content(cell, path, o))
			if c == v.Cols()-1 {
				bw.WriteByte(vertical(cell.Wall(grid.Right)))
			}
		}
		bw.WriteByte('\n')
	}

	// closing wall line
	bw.WriteByte('+')
	for c := 0; c < v.Cols(); c++ {
		cell, err := v.CellAt(v.Rows()-1, c)
		if err != nil {
			return err
		}
		bw.WriteString(horizontal(cell.Wall(grid.Bottom)))
		bw.WriteByte('+')
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

func horizontal(wall bool) string {
	if wall {
		return "---"
	}
	return blank
}

func vertical(wall bool) byte {
	if wall {
		return '|'
	}
	return ' '
}

func content(cell grid.Cell, path map[grid.Coord]struct{}, o Options) string {
	if o.HasCursor && cell.Pos() == o.Cursor {
		return cursor
	}
	if _, ok := path[cell.Pos()]; ok {
		return onPath
	}
	if !cell.Visited() {
		return unvisited
	}
	return blank
}
