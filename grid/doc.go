// Package grid holds the mutable cell lattice shared by maze carving,
// shortest-path search and rendering.
//
// What:
//
//   - Grid is a height×width array of CellState values (Wall, Path, OnShortestPath).
//   - Cells are addressed by Coord{Row, Col}; Row grows downward, Col grows rightward.
//   - New normalizes both dimensions to odd values so that step-2 carving moves
//     always land on a consistent wall lattice.
//   - Open cells (Path or OnShortestPath) form an implicit 4-connected graph:
//     an edge exists only between two axis-adjacent open cells.
//
// Why:
//
//   - A single owner mutates the grid in place (carve), then hands read access
//     to pathfind and render. No locking, no copies on the hot path.
//
// Complexity:
//
//   - New, From2D, Clone:   O(W×H) time and memory.
//   - Get, Set, InBounds:   O(1).
//   - ConnectedComponents:  O(W×H), Memory: O(W×H).
//   - IsPerfect:            O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrOutOfBounds:       a coordinate lies outside the grid.
//   - ErrEmptyGrid:         From2D input has no rows or no columns.
//   - ErrNonRectangular:    From2D rows have differing lengths.
//   - ErrUnknownState:      a CellState outside {Path, Wall, OnShortestPath}.
package grid
