package pathfind

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// runner holds the mutable state for a single uniform-cost execution.
type runner struct {
	g       *grid.Grid          // read-only within the search
	opts    Options             // hooks
	res     *Result             // Dist and Prev are written in place
	visited map[grid.Coord]bool // finalized cells
	pq      cellPQ              // lazy min-heap
}

func newRunner(g *grid.Grid, o Options, res *Result) *runner {
	return &runner{
		g:       g,
		opts:    o,
		res:     res,
		visited: make(map[grid.Coord]bool, len(res.Dist)),
		pq:      make(cellPQ, 0, 4),
	}
}

// run pops the closest unvisited cell, finalizes it and relaxes its neighbors.
// Stale heap entries (already visited) are skipped.
func (r *runner) run() error {
	r.res.Dist[r.res.Start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{at: r.res.Start, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		if r.visited[item.at] {
			continue
		}
		r.visited[item.at] = true
		r.res.Order = append(r.res.Order, item.at)
		if err := r.opts.OnVisit(item.at, item.dist); err != nil {
			return fmt.Errorf("pathfind: OnVisit error at %v: %w", item.at, err)
		}
		r.relax(item.at, item.dist)
	}
	return nil
}

// relax improves distances of open, unvisited neighbors of u.
func (r *runner) relax(u grid.Coord, d int) {
	for _, off := range grid.Offsets4 {
		v := u.Add(off[0], off[1])
		if !r.g.IsOpen(v) || r.visited[v] {
			continue
		}
		nd := d + 1
		if old, ok := r.res.Dist[v]; ok && nd >= old {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		heap.Push(&r.pq, &cellItem{at: v, dist: nd})
	}
}

// cellItem is a heap entry: a cell and its tentative distance.
type cellItem struct {
	at   grid.Coord
	dist int
}

// cellPQ is a min-heap of *cellItem ordered by dist.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
