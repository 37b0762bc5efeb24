// Package maze carves perfect mazes into a grid.Grid using randomized
// iterative depth-first search with an explicit backtracking stack.
//
// What:
//
//   - Generator: a step-wise state machine (Exploring, Backtracking, Done)
//     that starts at (0,0), repeatedly moves into a random unvisited
//     neighbour while clearing the wall between them, and pops its path
//     stack when stuck.
//   - Generate: one-call construction of a grid plus a full run.
//   - Validate / CheckWalls: verify wall-pair consistency and the spanning
//     tree property (all visited, all reachable, exactly R×C−1 passages).
//   - Solve / Farthest / Exit: path queries over the carved passages.
//
// Why:
//
//   - A perfect maze has exactly one path between any two cells, the
//     property games and puzzles rely on.
//   - Step-wise control lets renderers animate generation: every transition
//     is reported through WithOnStep and the run finishes with WithOnDone.
//
// Randomness:
//
//	Neighbour choice goes through the Source interface (Intn). WithSeed makes
//	runs reproducible; the default source is clock-seeded and its seed is
//	reported in Result.Seed. Sequence forces an exact branch order.
//
// Concurrency:
//
//	The Generator is the grid's only writer. Other goroutines may read the
//	grid or take snapshots at any time; WithContext cancels Run between
//	steps, leaving a valid partial maze.
//
// Complexity:
//
//   - Run:      O(R×C) time (each cell is pushed and popped once), O(R×C) stack.
//   - Validate: O(R×C) time and memory.
//
// Errors:
//
//   - ErrGridNil, ErrNilSource, ErrOptionViolation: bad arguments.
//   - ErrSourceRange: a Source returned an index outside [0,n).
//   - ErrWallMismatch, ErrUnvisited, ErrDisconnected, ErrCycle: Validate.
//   - context errors from a cancelled Run, and wrapped OnStep errors.
package maze
