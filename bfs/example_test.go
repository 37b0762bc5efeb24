package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/grid"
)

// ExampleBFS_shortestPath walks an S-shaped corridor carved into a 2×3 board:
//
//	+---+---+---+
//	| S         |
//	+---+---+   +
//	| E         |
//	+---+---+---+
func ExampleBFS_shortestPath() {
	g, _ := grid.New(2, 3)
	steps := [][2]grid.Coord{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		{{Row: 0, Col: 1}, {Row: 0, Col: 2}},
		{{Row: 0, Col: 2}, {Row: 1, Col: 2}},
		{{Row: 1, Col: 2}, {Row: 1, Col: 1}},
		{{Row: 1, Col: 1}, {Row: 1, Col: 0}},
	}
	for _, s := range steps {
		_ = g.RemoveWallBetween(s[0], s[1])
	}

	res, err := bfs.BFS(g, grid.Coord{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(grid.Coord{Row: 1, Col: 0})
	fmt.Println("distance:", res.Depth[grid.Coord{Row: 1, Col: 0}])
	fmt.Println("path:", path)

	// Output:
	// distance: 5
	// path: [(0,0) (0,1) (0,2) (1,2) (1,1) (1,0)]
}
