package pathfind

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// walker encapsulates mutable breadth-first state.
type walker struct {
	g     *grid.Grid
	opts  Options
	queue []grid.Coord
	res   *Result
}

func newWalker(g *grid.Grid, o Options, res *Result) *walker {
	return &walker{
		g:     g,
		opts:  o,
		queue: make([]grid.Coord, 0, cap(res.Order)),
		res:   res,
	}
}

// run seeds the queue with Start and processes it until empty or a hook fails.
func (w *walker) run() error {
	w.res.Dist[w.res.Start] = 0
	w.queue = append(w.queue, w.res.Start)

	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		d := w.res.Dist[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("pathfind: OnVisit error at %v: %w", u, err)
		}
		w.enqueueNeighbors(u, d)
	}
	return nil
}

// enqueueNeighbors records and enqueues every unseen open neighbor of u.
func (w *walker) enqueueNeighbors(u grid.Coord, d int) {
	for _, off := range grid.Offsets4 {
		v := u.Add(off[0], off[1])
		if !w.g.IsOpen(v) {
			continue
		}
		if _, seen := w.res.Dist[v]; seen {
			continue
		}
		w.res.Dist[v] = d + 1
		w.res.Prev[v] = u
		w.queue = append(w.queue, v)
	}
}
