// Package labyrinth generates perfect mazes with randomized depth-first
// search and serves them to renderers, terminals and browsers.
//
// What is in the box?
//
//	grid/    the board: cells, wall-pairs, a thread-safe Grid and read-only View
//	maze/    the step-wise DFS generator, seeding, validation and solving
//	bfs/     breadth-first search over carved passages
//	render/  ASCII, PNG and JSON output for any View
//	cmd/     mazegen (CLI) and mazed (HTTP + WebSocket server)
//
// Quick ASCII example (3×3, solved):
//
//	+---+---+---+
//	| *   *   * |
//	+---+---+   +
//	|       | * |
//	+   +---+   +
//	|         * |
//	+---+---+---+
//
// Guarantees:
//
//   - Every run visits every cell and clears exactly R×C−1 wall-pairs, so
//     any two cells are joined by exactly one path.
//   - A wall-pair is cleared on both sides in one critical section; readers
//     never see half a doorway.
//   - Equal seeds and sizes give equal mazes.
//
// Usage:
//
//	g, res, err := maze.Generate(20, 40, maze.WithSeed(7))
//	if err != nil { ... }
//	path, _ := maze.Solve(g, grid.Coord{}, grid.Coord{Row: 19, Col: 39})
//	out, _ := render.ASCII(g, render.WithPath(path))
//	fmt.Print(out, "seed ", res.Seed)
package labyrinth
