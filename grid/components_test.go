// File: grid/components_test.go
package grid

import (
	"reflect"
	"sort"
	"testing"
)

const (
	o = Path
	X = Wall
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 4×3 grid.
//
// Grid (X = wall, o = path):
//
//	X o o X
//	o o X X
//	X X o o
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	g, err := From2D([][]CellState{
		{X, o, o, X},
		{o, o, X, X},
		{X, X, o, o},
	})
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals ensures corner-touching cells stay apart.
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g, _ := From2D([][]CellState{
		{o, X},
		{X, o},
	})
	if n := len(g.ConnectedComponents()); n != 2 {
		t.Errorf("got %d components; want 2", n)
	}
}

// TestConnectedComponents_MarkersCountAsOpen checks OnShortestPath joins regions.
func TestConnectedComponents_MarkersCountAsOpen(t *testing.T) {
	g, _ := From2D([][]CellState{{o, OnShortestPath, o}})
	if n := len(g.ConnectedComponents()); n != 1 {
		t.Errorf("got %d components; want 1", n)
	}
}

func TestReachableFrom(t *testing.T) {
	g, _ := From2D([][]CellState{
		{o, o, X},
		{X, o, X},
		{o, X, o},
	})
	got := g.ReachableFrom(Coord{0, 0})
	if len(got) != 3 {
		t.Errorf("reachable = %v; want 3 cells", got)
	}
	if len(g.ReachableFrom(Coord{0, 2})) != 0 {
		t.Error("wall start should reach nothing")
	}
}

// TestIsPerfect covers trees, cycles, disconnected regions and empty grids.
//
//	tree:   o o o     cycle:  o o     split: o X o
//	        X o X             o o
func TestIsPerfect(t *testing.T) {
	tree, _ := From2D([][]CellState{{o, o, o}, {X, o, X}})
	if !tree.IsPerfect() {
		t.Error("tree: want perfect")
	}
	if got := tree.OpenAdjacencies(); got != 3 {
		t.Errorf("tree adjacencies = %d; want 3", got)
	}

	cycle, _ := From2D([][]CellState{{o, o}, {o, o}})
	if cycle.IsPerfect() {
		t.Error("cycle: want not perfect")
	}

	split, _ := From2D([][]CellState{{o, X, o}})
	if split.IsPerfect() {
		t.Error("split: want not perfect")
	}

	empty, _ := New(3, 3)
	if empty.IsPerfect() {
		t.Error("all walls: want not perfect")
	}
}
