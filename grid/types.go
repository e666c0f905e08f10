// Package grid defines core types and sentinel errors
// for the grid package of github.com/katalvlaran/labyrinth.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownState indicates a CellState value outside the defined set.
	ErrUnknownState = errors.New("grid: unknown cell state")
)

// CellState is the content of a single cell.
// The numeric values match the classic wall=1 / path=0 / marker=2 encoding
// used by colormap renderers.
type CellState uint8

const (
	// Path is an open, walkable cell.
	Path CellState = 0
	// Wall is a closed cell. Every cell starts as Wall.
	Wall CellState = 1
	// OnShortestPath is an open cell annotated as part of a solved route.
	OnShortestPath CellState = 2
)

// String returns a lowercase name for s.
func (s CellState) String() string {
	switch s {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case OnShortestPath:
		return "shortest-path"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Open reports whether s is walkable (Path or OnShortestPath).
func (s CellState) Open() bool {
	return s == Path || s == OnShortestPath
}

// valid reports whether s is one of the defined states.
func (s CellState) valid() bool {
	return s <= OnShortestPath
}

// Coord addresses a cell by row and column, both zero-based.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offsets4 lists the step-1 axis moves as (dRow, dCol): N, E, S, W.
var Offsets4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a rectangular array of cells stored row-major.
// Width is the number of columns, Height the number of rows.
// The zero value is not usable; construct with New or From2D.
type Grid struct {
	width, height int
	cells         []CellState
}
