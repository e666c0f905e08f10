package pathfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for shortest-path search.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrInvalidCoordinate is returned when start or end lies outside the grid.
	ErrInvalidCoordinate = errors.New("pathfind: coordinate outside grid")

	// ErrNotAPathCell is returned when the search starts from, or a path runs
	// through, a wall cell.
	ErrNotAPathCell = errors.New("pathfind: not a path cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Unreachable is the sentinel distance reported for cells not reached from start.
const Unreachable = math.MaxInt

// Strategy selects the search algorithm.
type Strategy int

const (
	// BreadthFirst expands cells in FIFO order.
	BreadthFirst Strategy = iota
	// UniformCost expands cells from a min-heap keyed by distance.
	UniformCost
)

// String returns the short name used by configuration ("bfs", "ucs").
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case UniformCost:
		return "ucs"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "bfs"/"ucs" (also "dijkstra") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bfs", "":
		return BreadthFirst, nil
	case "ucs", "dijkstra":
		return UniformCost, nil
	default:
		return BreadthFirst, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures ShortestPath via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// Strategy selects BreadthFirst or UniformCost.
	Strategy Strategy

	// OnVisit is called when a cell's distance becomes final.
	// Returning an error aborts the search and propagates it.
	OnVisit func(c grid.Coord, dist int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns BreadthFirst with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Strategy: BreadthFirst,
		OnVisit:  func(grid.Coord, int) error { return nil },
	}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != BreadthFirst && s != UniformCost {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithOnVisit registers a callback run as each cell is finalized.
func WithOnVisit(fn func(c grid.Coord, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of ShortestPath.
type Result struct {
	Start, End grid.Coord

	// Dist holds the hop count from Start for every reachable open cell.
	Dist map[grid.Coord]int

	// Prev[v] is the predecessor of v on a shortest path; Start has none.
	Prev map[grid.Coord]grid.Coord

	// Order lists cells in the order their distance became final.
	Order []grid.Coord

	// Path runs from Start to End inclusive when End is reachable,
	// otherwise it is [End].
	Path []grid.Coord
}

// Reached reports whether End was reached from Start.
func (r *Result) Reached() bool {
	_, ok := r.Dist[r.End]
	return ok && len(r.Path) > 0 && r.Path[0] == r.Start
}

// DistanceTo returns the distance to c, or Unreachable.
func (r *Result) DistanceTo(c grid.Coord) int {
	if d, ok := r.Dist[c]; ok {
		return d
	}
	return Unreachable
}

// Length is the number of moves from Start to End, or Unreachable.
func (r *Result) Length() int {
	return r.DistanceTo(r.End)
}
