package render_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// ExampleASCII draws a solved corridor.
func ExampleASCII() {
	g, _, _ := maze.Generate(1, 4, maze.WithSeed(1))
	path, _ := maze.Solve(g, grid.Coord{}, grid.Coord{Row: 0, Col: 3})
	out, _ := render.ASCII(g, render.WithPath(path[1:3]))
	fmt.Print(out)
	// Output:
	// +---+---+---+---+
	// |     *   *     |
	// +---+---+---+---+
}
