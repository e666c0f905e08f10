package carve

import (
	"errors"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for carving.
var (
	// ErrNilGrid is returned when a nil grid is passed to Carve.
	ErrNilGrid = errors.New("carve: grid is nil")

	// ErrInvalidDimensions wraps grid.ErrInvalidDimensions for Generate callers.
	ErrInvalidDimensions = errors.New("carve: invalid maze dimensions")

	// ErrInvalidCoordinate is returned when start or end lies outside the grid.
	ErrInvalidCoordinate = errors.New("carve: coordinate outside grid")
)

// Source is the randomness capability used to order carving directions and
// break ties. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Option configures Carve and Generate via functional arguments.
type Option func(*Options)

// Options holds the carving parameters.
type Options struct {
	// Source drives direction shuffling. Never nil after DefaultOptions.
	Source Source

	// OnCarve is called for every cell switched from Wall to Path,
	// in carving order.
	OnCarve func(c grid.Coord)
}

// DefaultOptions returns Options with a time-seeded Source and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Source:  sourceFromSeed(0),
		OnCarve: func(grid.Coord) {},
	}
}

// WithSource injects a random source. A nil src is ignored.
func WithSource(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Source = src
		}
	}
}

// WithSeed uses a math/rand source seeded with seed.
// seed == 0 selects a time-based seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = sourceFromSeed(seed)
	}
}

// WithOnCarve registers a hook invoked for each newly opened cell.
func WithOnCarve(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}
