package grid

// ConnectedComponents finds all contiguous regions of open cells
// (Path or OnShortestPath) under 4-connectivity.
// Returns a slice of components; each component lists its cells in BFS order
// starting from the component's first cell in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0, s := range g.cells {
		if !s.Open() || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range Offsets4 {
				v := u.Add(d[0], d[1])
				if !g.IsOpen(v) {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ReachableFrom returns the set of open cells reachable from c by step-1
// moves through open cells. Empty if c is not open.
// Complexity: O(W·H).
func (g *Grid) ReachableFrom(c Coord) map[Coord]struct{} {
	out := make(map[Coord]struct{})
	if !g.IsOpen(c) {
		return out
	}
	out[c] = struct{}{}
	queue := []Coord{c}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Offsets4 {
			v := u.Add(d[0], d[1])
			if _, ok := out[v]; ok || !g.IsOpen(v) {
				continue
			}
			out[v] = struct{}{}
			queue = append(queue, v)
		}
	}
	return out
}

// OpenAdjacencies counts unordered pairs of axis-adjacent open cells,
// i.e. the edge count of the implicit path graph.
func (g *Grid) OpenAdjacencies() int {
	pairs := 0
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if !g.cells[r*g.width+c].Open() {
				continue
			}
			// count right and down only, each pair once
			if g.IsOpen(Coord{r, c + 1}) {
				pairs++
			}
			if g.IsOpen(Coord{r + 1, c}) {
				pairs++
			}
		}
	}
	return pairs
}

// IsPerfect reports whether the open cells form a spanning tree:
// a single connected component with exactly open-1 adjacencies.
// A grid with no open cells is not perfect.
func (g *Grid) IsPerfect() bool {
	open := g.OpenCount()
	if open == 0 {
		return false
	}
	if len(g.ConnectedComponents()) != 1 {
		return false
	}
	return open-g.OpenAdjacencies() == 1
}
