package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/labyrinth/grid"
)

// BenchmarkConnectedComponents measures flood fill on a random 501×501 grid.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 501
	rnd := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rnd.Intn(2) == 0 {
				_ = g.Set(grid.Coord{Row: r, Col: c}, grid.Path)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
