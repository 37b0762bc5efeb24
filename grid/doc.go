// Package grid models a rectangular maze board: a rows×cols collection of
// cells, each carrying a visited flag and four wall flags.
//
// What:
//
//   - Grid owns the cells and is the only place wall state can change.
//   - RemoveWallBetween clears a wall-pair (one flag on each of two adjacent
//     cells) atomically, so the pairwise wall invariant always holds.
//   - View is the read-only contract handed to renderers and analysers;
//     both *Grid and *Snapshot implement it.
//   - Passages lists the neighbours reachable through cleared walls.
//
// Why:
//
//   - Generators, solvers and renderers share one board without sharing
//     write access: only the generator holds the *Grid.
//   - Readers may sample the board mid-generation; the grid's RWMutex makes
//     every cell read consistent with the last completed mutation.
//
// Coordinates:
//
//	Cells are addressed as (row, col) with (0,0) at the top-left corner.
//	Side order is Top, Right, Bottom, Left; the same order indexes the
//	wall flags returned by Cell.Walls.
//
// Complexity:
//
//   - New:               O(R×C) time and memory.
//   - CellAt, Visit:     O(1).
//   - RemoveWallBetween: O(1).
//   - Snapshot:          O(R×C).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols below 1.
//   - ErrOutOfBounds:       a coordinate outside [0,rows)×[0,cols).
//   - ErrInvalidAdjacency:  two cells that are not orthogonal neighbours.
package grid
