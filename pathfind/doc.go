// Package pathfind computes hop-count shortest paths over the implicit graph
// of open cells in a grid.Grid.
//
// Two cells are adjacent when they are axis neighbors (no diagonals) and both
// are open (Path or OnShortestPath). Every edge has weight 1.
//
// Strategies:
//
//   - BreadthFirst (default): FIFO frontier; O(V) time, O(V) memory.
//   - UniformCost: Dijkstra with a container/heap min-queue and lazy
//     decrease-key; O(V log V). Kept for parity with the classic formulation;
//     with unit weights both strategies produce identical distances.
//
// Result:
//
//   - Dist maps every reachable open cell to its distance from start.
//     Unreachable cells are absent; DistanceTo reports Unreachable for them.
//   - Path follows predecessors back from end and is then reversed. When end
//     is unreachable the chain stops immediately and Path is [end], which does
//     not begin at start; use Reached to tell "no path" from the trivial [start].
//
// ShortestPath never mutates the grid; MarkPath is the explicit annotation step.
//
// Errors:
//
//   - ErrNilGrid:           nil grid.
//   - ErrInvalidCoordinate: start or end outside the grid.
//   - ErrNotAPathCell:      start is a wall, or MarkPath was given a wall cell.
//   - ErrOptionViolation:   unknown Strategy.
package pathfind
