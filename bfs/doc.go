// Package bfs provides breadth-first search over a maze board, moving only
// through cleared walls, and returns passage-count distances, parent links,
// and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (passage count) from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook may abort the search with an error.
//   - Allows filtering of individual passages via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Check that a carved maze reaches every cell (spanning-tree property).
//   - Solve a maze: in a perfect maze the BFS path is the only path.
//   - Measure maze difficulty through the depth of the farthest cell.
//
// Determinism
//
//	grid.Passages yields neighbours in Top, Right, Bottom, Left order and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)   (each cell has at most four passages)
//   - Memory: O(N)   (queue, Depth map, Parent map)
//
// Errors
//
//   - ErrViewNil             if the view is nil.
//   - ErrStartOutOfBounds    if the start cell lies outside the view.
//   - ErrOptionViolation     if an Option is invalid (negative MaxDepth).
//   - ErrNoPath              from PathTo for unreached destinations.
//   - context errors and wrapped OnVisit errors.
package bfs
