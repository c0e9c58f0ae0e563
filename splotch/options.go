package splotch

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/pamsum/rng"
)

var (
	// ErrUnreachableTarget is returned when the seed's connected component
	// holds fewer sites than the column target.
	ErrUnreachableTarget = errors.New("splotch: seed component smaller than target")

	// ErrTopology is returned when a site has more neighbours than cell sides.
	ErrTopology = errors.New("splotch: site degree exceeds cell side count")

	// ErrNilGraph is returned when the adjacency graph is nil.
	ErrNilGraph = errors.New("splotch: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("splotch: invalid option supplied")
)

// Option configures Randomize.
type Option func(*Options)

// Options holds splotch parameters.
type Options struct {
	// CellSides is 4 for square cells or 6 for hexagons.
	CellSides int
	// Workers bounds how many columns are grown concurrently.
	Workers int
	// Seed is the parent seed of the per-column streams.
	Seed int64

	err error
}

// DefaultOptions returns square cells, GOMAXPROCS workers and rng.DefaultSeed.
func DefaultOptions() Options {
	return Options{
		CellSides: 4,
		Workers:   runtime.GOMAXPROCS(0),
		Seed:      rng.DefaultSeed,
	}
}

// WithCellSides sets the cell side count; only 4 and 6 are accepted.
func WithCellSides(n int) Option {
	return func(o *Options) {
		if n != 4 && n != 6 {
			o.err = fmt.Errorf("%w: cell sides must be 4 or 6 (%d)", ErrOptionViolation, n)
			return
		}
		o.CellSides = n
	}
}

// WithWorkers bounds column concurrency; n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSeed sets the parent seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
