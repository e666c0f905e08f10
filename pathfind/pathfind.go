package pathfind

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// ShortestPath computes hop-count distances from start to every reachable
// open cell of g and reconstructs a shortest path to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and end must be in bounds (ErrInvalidCoordinate).
//  4. start must be open (ErrNotAPathCell).
//
// An unreachable end is not an error: the result carries the full distance
// map for start's region, Path == [end] and Reached() == false.
//
// Complexity:
//
//   - BreadthFirst: O(W×H) time and memory.
//   - UniformCost:  O(W×H · log(W×H)) time, O(W×H) memory.
func ShortestPath(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, c := range []grid.Coord{start, end} {
		if !g.InBounds(c) {
			w, h := g.Dimensions()
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrInvalidCoordinate, c, w, h)
		}
	}
	if !g.IsOpen(start) {
		return nil, fmt.Errorf("%w: start %v is a wall", ErrNotAPathCell, start)
	}

	n := g.OpenCount()
	res := &Result{
		Start: start,
		End:   end,
		Dist:  make(map[grid.Coord]int, n),
		Prev:  make(map[grid.Coord]grid.Coord, n),
		Order: make([]grid.Coord, 0, n),
	}

	var err error
	switch o.Strategy {
	case UniformCost:
		err = newRunner(g, o, res).run()
	default:
		err = newWalker(g, o, res).run()
	}
	if err != nil {
		return nil, err
	}
	res.Path = reconstruct(res.Prev, end)
	return res, nil
}

// reconstruct follows predecessors from end until a cell without one,
// then reverses the chain.
func reconstruct(prev map[grid.Coord]grid.Coord, end grid.Coord) []grid.Coord {
	path := []grid.Coord{end}
	for at := end; ; {
		p, ok := prev[at]
		if !ok {
			break
		}
		path = append(path, p)
		at = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// MarkPath annotates every cell of path as OnShortestPath.
// All cells are validated first; on error g is left unchanged.
// Returns ErrInvalidCoordinate for out-of-bounds cells and ErrNotAPathCell
// for walls.
func MarkPath(g *grid.Grid, path []grid.Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, c := range path {
		s, err := g.Get(c)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCoordinate, err)
		}
		if !s.Open() {
			return fmt.Errorf("%w: %v is a wall", ErrNotAPathCell, c)
		}
	}
	for _, c := range path {
		_ = g.Set(c, grid.OnShortestPath)
	}
	return nil
}
