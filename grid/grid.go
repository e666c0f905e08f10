package grid

import (
	"fmt"
	"strings"
)

// Normalize rounds n up to the nearest odd value (even n becomes n+1).
// Non-positive n is returned unchanged; callers validate it separately.
func Normalize(n int) int {
	if n > 0 && n%2 == 0 {
		return n + 1
	}
	return n
}

// New allocates a grid of Normalize(width) columns by Normalize(height) rows
// with every cell set to Wall.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	w, h := Normalize(width), Normalize(height)
	cells := make([]CellState, w*h)
	for i := range cells {
		cells[i] = Wall
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice indexed
// [row][col]. It deep-copies the input and does not round dimensions.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrUnknownState if any value is not a defined CellState.
func From2D(values [][]CellState) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]CellState, 0, w*h)
	for r, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for c, s := range row {
			if !s.valid() {
				return nil, fmt.Errorf("%w: %d at %v", ErrUnknownState, s, Coord{r, c})
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Dimensions returns the (odd-normalized) width and height.
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// index converts an in-bounds coordinate to a row-major offset.
func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

// Get returns the state at c, or ErrOutOfBounds.
func (g *Grid) Get(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return Wall, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	return g.cells[g.index(c)], nil
}

// StateAt is the renderer-facing read accessor; identical to Get.
func (g *Grid) StateAt(c Coord) (CellState, error) {
	return g.Get(c)
}

// Set stores s at c. Returns ErrOutOfBounds or ErrUnknownState.
func (g *Grid) Set(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	if !s.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownState, s)
	}
	g.cells[g.index(c)] = s
	return nil
}

// IsOpen reports whether c is in bounds and walkable.
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)].Open()
}

// IsWall reports whether c is in bounds and a Wall.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == Wall
}

// Neighbors4 returns the in-bounds step-1 axis neighbors of c in N, E, S, W order.
func (g *Grid) Neighbors4(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Offsets4 {
		n := c.Add(d[0], d[1])
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Count returns how many cells hold state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, v := range g.cells {
		if v == s {
			n++
		}
	}
	return n
}

// OpenCount returns the number of walkable cells.
func (g *Grid) OpenCount() int {
	return g.Count(Path) + g.Count(OnShortestPath)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Rows returns a deep copy of the cells as [row][col].
func (g *Grid) Rows() [][]CellState {
	out := make([][]CellState, g.height)
	for r := 0; r < g.height; r++ {
		out[r] = make([]CellState, g.width)
		copy(out[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return out
}

// ClearMarks resets every OnShortestPath cell back to Path.
func (g *Grid) ClearMarks() {
	for i, v := range g.cells {
		if v == OnShortestPath {
			g.cells[i] = Path
		}
	}
}

// String renders the raw numeric codes, one row per line, for debugging.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + byte(g.cells[r*g.width+c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
