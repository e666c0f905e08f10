// File: grid/grid_test.go
package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_OddNormalization checks that even dimensions are bumped by one
// and odd dimensions are kept.
func TestNew_OddNormalization(t *testing.T) {
	cases := []struct {
		w, h         int
		wantW, wantH int
	}{
		{1, 1, 1, 1},
		{2, 2, 3, 3},
		{4, 7, 5, 7},
		{9, 10, 9, 11},
		{20, 20, 21, 21},
	}
	for _, tc := range cases {
		g, err := New(tc.w, tc.h)
		require.NoError(t, err)
		w, h := g.Dimensions()
		assert.Equal(t, tc.wantW, w, "width for %dx%d", tc.w, tc.h)
		assert.Equal(t, tc.wantH, h, "height for %dx%d", tc.w, tc.h)
		assert.Equal(t, w*h, g.Size())
	}
}

// TestNew_AllWalls ensures a fresh grid is entirely Wall.
func TestNew_AllWalls(t *testing.T) {
	g, err := New(6, 4)
	require.NoError(t, err)
	assert.Equal(t, g.Size(), g.Count(Wall))
	assert.Zero(t, g.OpenCount())
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		g, err := New(dims[0], dims[1])
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

// TestGetSet_Bounds covers checked access on every side of the grid.
func TestGetSet_Bounds(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(Coord{1, 2}, Path))
	s, err := g.Get(Coord{1, 2})
	require.NoError(t, err)
	assert.Equal(t, Path, s)

	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := g.Get(c)
		assert.ErrorIs(t, err, ErrOutOfBounds, "Get %v", c)
		assert.ErrorIs(t, g.Set(c, Path), ErrOutOfBounds, "Set %v", c)
		assert.False(t, g.InBounds(c))
		assert.False(t, g.IsOpen(c))
	}

	assert.ErrorIs(t, g.Set(Coord{0, 0}, CellState(7)), ErrUnknownState)
}

func TestStateAt_MatchesGet(t *testing.T) {
	g, _ := New(3, 3)
	_ = g.Set(Coord{2, 1}, OnShortestPath)
	a, errA := g.Get(Coord{2, 1})
	b, errB := g.StateAt(Coord{2, 1})
	assert.NoError(t, errA)
	assert.NoError(t, errB)
	assert.Equal(t, a, b)
	assert.True(t, g.IsOpen(Coord{2, 1}))
}

func TestFrom2D_Errors(t *testing.T) {
	_, err := From2D(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = From2D([][]CellState{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = From2D([][]CellState{{Path, Wall}, {Path}})
	assert.ErrorIs(t, err, ErrNonRectangular)
	_, err = From2D([][]CellState{{Path, 9}})
	assert.ErrorIs(t, err, ErrUnknownState)
}

// TestFrom2D_DeepCopy verifies the grid does not alias its input.
func TestFrom2D_DeepCopy(t *testing.T) {
	src := [][]CellState{{Path, Wall}, {Wall, Path}}
	g, err := From2D(src)
	require.NoError(t, err)
	src[0][0] = Wall
	s, _ := g.Get(Coord{0, 0})
	assert.Equal(t, Path, s)
	assert.Equal(t, [][]CellState{{Path, Wall}, {Wall, Path}}, g.Rows())
}

func TestCloneAndClearMarks(t *testing.T) {
	g, _ := From2D([][]CellState{{Path, OnShortestPath, Wall}})
	c := g.Clone()
	c.ClearMarks()

	s, _ := g.Get(Coord{0, 1})
	assert.Equal(t, OnShortestPath, s, "original must be untouched")
	s, _ = c.Get(Coord{0, 1})
	assert.Equal(t, Path, s)
}

func TestNeighbors4_Corner(t *testing.T) {
	g, _ := New(3, 3)
	assert.Equal(t, []Coord{{0, 1}, {1, 0}}, g.Neighbors4(Coord{0, 0}))
	assert.Len(t, g.Neighbors4(Coord{1, 1}), 4)
}

func TestCoordinateRoundTrip(t *testing.T) {
	g, _ := New(5, 3)
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, i, g.index(g.Coordinate(i)))
	}
}

func TestString(t *testing.T) {
	g, _ := From2D([][]CellState{{Wall, Path}, {OnShortestPath, Wall}})
	assert.Equal(t, "1 0\n2 1\n", g.String())
	assert.Equal(t, "wall", Wall.String())
	assert.Equal(t, "(2,3)", Coord{2, 3}.String())
}
