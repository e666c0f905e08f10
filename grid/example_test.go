// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// ExampleNew shows odd-normalization of requested dimensions.
func ExampleNew() {
	g, _ := grid.New(4, 6)
	w, h := g.Dimensions()
	fmt.Println(w, h, g.Count(grid.Wall))
	// Output:
	// 5 7 35
}

// ExampleGrid_ConnectedComponents lists open regions of a small fixture.
//
//	0 0 1
//	1 1 1
//	0 1 0
func ExampleGrid_ConnectedComponents() {
	g, _ := grid.From2D([][]grid.CellState{
		{grid.Path, grid.Path, grid.Wall},
		{grid.Wall, grid.Wall, grid.Wall},
		{grid.Path, grid.Wall, grid.Path},
	})
	for i, comp := range g.ConnectedComponents() {
		fmt.Println(i, comp)
	}
	// Output:
	// 0 [(0,0) (0,1)]
	// 1 [(2,0)]
	// 2 [(2,2)]
}
