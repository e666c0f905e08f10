package carve

import (
	"container/list"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// steps are the step-2 carving moves as (dRow, dCol).
var steps = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// Generate allocates a Normalize(width)×Normalize(height) all-wall grid and
// carves a maze connecting start to end.
//
// Returns ErrInvalidDimensions (wrapping grid.ErrInvalidDimensions) for
// non-positive dimensions and ErrInvalidCoordinate if start or end lies
// outside the odd-normalized bounds.
func Generate(start, end grid.Coord, width, height int, opts ...Option) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	if err = Carve(g, start, end, opts...); err != nil {
		return nil, err
	}
	return g, nil
}

// Carve mutates g in place into a maze rooted at start that reaches end.
// g is expected to be all Wall; pre-opened cells are treated as already
// carved and are never revisited.
//
// Preconditions (checked before any mutation):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be in bounds (ErrInvalidCoordinate).
//
// start == end is legal and yields a single open cell plus whatever the DFS
// carves around it.
func Carve(g *grid.Grid, start, end grid.Coord, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkCoord(g, "start", start); err != nil {
		return err
	}
	if err := checkCoord(g, "end", end); err != nil {
		return err
	}

	c := &carver{g: g, src: cfg.Source, onCarve: cfg.OnCarve}
	c.open(start)
	if g.IsWall(end) {
		c.open(end)
	}
	c.walk(start)
	if end != start {
		c.connect(end)
	}
	return nil
}

// OnLattice reports whether c sits at even row and column offsets from start,
// i.e. on the cells the DFS itself visits.
func OnLattice(start, c grid.Coord) bool {
	return (c.Row-start.Row)%2 == 0 && (c.Col-start.Col)%2 == 0
}

func checkCoord(g *grid.Grid, name string, c grid.Coord) error {
	if !g.InBounds(c) {
		w, h := g.Dimensions()
		return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidCoordinate, name, c, w, h)
	}
	return nil
}

// carver holds the mutable state of a single Carve call.
type carver struct {
	g       *grid.Grid
	src     Source
	onCarve func(grid.Coord)
}

// open switches c from Wall to Path and reports it. Callers guarantee c is in bounds.
func (c *carver) open(at grid.Coord) {
	if !c.g.IsWall(at) {
		return
	}
	_ = c.g.Set(at, grid.Path)
	c.onCarve(at)
}

// walk runs the stack-based randomized DFS from start.
func (c *carver) walk(start grid.Coord) {
	stack := []grid.Coord{start}
	moves := make([][2]int, len(steps))
	copy(moves, steps[:])

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		// reshuffle every iteration, not once per cell
		shuffleMoves(moves, c.src)

		carved := false
		for _, d := range moves {
			next := cur.Add(d[0], d[1])
			if !c.g.IsWall(next) {
				continue
			}
			c.open(cur.Add(d[0]/2, d[1]/2))
			c.open(next)
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}
}

// connect joins end to the open region when none of its step-1 neighbors is
// open. It runs a 0-1 BFS from end where entering a Wall costs 1 and entering
// an open cell costs 0, stops at the first open cell other than end, and
// opens the walls along that route.
//
// Complexity: O(W×H) time and memory.
func (c *carver) connect(end grid.Coord) {
	for _, n := range c.g.Neighbors4(end) {
		if c.g.IsOpen(n) {
			return
		}
	}

	const inf = int(^uint(0) >> 1)
	dist := make(map[grid.Coord]int)
	prev := make(map[grid.Coord]grid.Coord)
	dist[end] = 0

	dq := list.New()
	dq.PushFront(end)
	offsets := make([][2]int, len(grid.Offsets4))
	copy(offsets, grid.Offsets4[:])

	target, found := grid.Coord{}, false
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(grid.Coord)
		if u != end && c.g.IsOpen(u) {
			target, found = u, true
			break
		}
		shuffleMoves(offsets, c.src)
		for _, d := range offsets {
			v := u.Add(d[0], d[1])
			if !c.g.InBounds(v) {
				continue
			}
			step := 0
			if c.g.IsWall(v) {
				step = 1
			}
			nd := dist[u] + step
			old, seen := dist[v]
			if !seen {
				old = inf
			}
			if nd < old {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if !found {
		return
	}
	for at := prev[target]; at != end; at = prev[at] {
		c.open(at)
	}
}
