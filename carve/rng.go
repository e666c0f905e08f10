package carve

import (
	"math/rand"
	"time"
)

// sourceFromSeed returns a *rand.Rand.
// Policy: seed==0 ⇒ time-based seed; otherwise the provided seed verbatim.
//
// math/rand.Rand is NOT goroutine-safe; each Carve call owns its source.
func sourceFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleMoves performs an in-place shuffle of moves using src.
//
// Complexity: O(len(moves)).
func shuffleMoves(moves [][2]int, src Source) {
	if len(moves) <= 1 {
		return
	}
	src.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
}
