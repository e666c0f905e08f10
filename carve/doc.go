// Package carve turns an all-wall grid.Grid into a perfect maze using
// iterative randomized depth-first carving.
//
// Algorithm:
//
//  1. Open start and push it on an explicit stack. If end is still a Wall,
//     open it immediately so it is always a carving target.
//  2. While the stack is non-empty, peek the top cell and reshuffle the four
//     step-2 moves (+2,0), (-2,0), (0,+2), (0,-2). The first move landing on an
//     in-bounds Wall opens the halfway cell and the target, then pushes the
//     target. If no move is possible the top is popped.
//  3. After the stack drains, if end (≠ start) has no open step-1 neighbor it
//     is joined to the open region by the cheapest run of wall cells
//     (0-1 BFS, random tie-breaks). On the carving lattice (even offsets from
//     start) that run is a single wall, so the maze stays a tree.
//
// The only reproducibility contract is "connects start to end and produces a
// perfect maze". Inject a Source (WithSource, WithSeed) to pin the layout in
// tests.
//
// Complexity:
//
//   - Time:  O(W×H); every lattice cell is pushed and popped once.
//   - Space: O(W×H) for the stack in the worst case.
//
// Errors:
//
//   - ErrNilGrid:           Carve called with a nil grid.
//   - ErrInvalidDimensions: Generate called with non-positive width or height.
//   - ErrInvalidCoordinate: start or end outside the (odd-normalized) grid.
package carve
