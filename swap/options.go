package swap

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pamsum/rng"
)

// Defaults for Options.
const (
	// DefaultIterations is the attempt budget when neither WithIterations nor
	// WithTargetSwaps is given.
	DefaultIterations = 10000

	// DefaultMaxTriesWithoutSwap bounds consecutive fruitless attempts.
	DefaultMaxTriesWithoutSwap = 1000000
)

var (
	// ErrDegenerateMatrix is returned when the matrix has fewer than 2 rows or columns.
	ErrDegenerateMatrix = errors.New("swap: matrix needs at least 2 rows and 2 columns")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("swap: invalid option supplied")
)

// Option configures Randomize.
type Option func(*Options)

// Options holds the swap loop parameters.
type Options struct {
	// Iterations is the attempt budget K.
	Iterations int
	// TargetSwaps, if > 0, stops the loop once that many swaps are performed.
	TargetSwaps int
	// MaxTriesWithoutSwap stops the loop after that many consecutive failures.
	MaxTriesWithoutSwap int
	// Rand is the random source; nil means rng.New(Seed).
	Rand *rand.Rand
	// Seed seeds the default source.
	Seed int64

	iterationsSet bool
	err           error
}

// DefaultOptions returns Options with DefaultIterations, no swap target,
// DefaultMaxTriesWithoutSwap and rng.DefaultSeed.
func DefaultOptions() Options {
	return Options{
		Iterations:          DefaultIterations,
		MaxTriesWithoutSwap: DefaultMaxTriesWithoutSwap,
		Seed:                rng.DefaultSeed,
	}
}

// WithIterations sets the attempt budget K. K == 0 returns an identity copy.
func WithIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: iterations cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.Iterations = k
		o.iterationsSet = true
	}
}

// WithTargetSwaps stops the loop after n swaps. Unless WithIterations is also
// given, the attempt budget is lifted and only MaxTriesWithoutSwap bounds the run.
func WithTargetSwaps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: target swaps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TargetSwaps = n
	}
}

// WithMaxTriesWithoutSwap bounds consecutive fruitless attempts; n must be > 0.
func WithMaxTriesWithoutSwap(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max tries without swap must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTriesWithoutSwap = n
	}
}

// WithRand uses r as the random source. It takes precedence over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed seeds the default random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.TargetSwaps > 0 && !o.iterationsSet {
		o.Iterations = math.MaxInt
	}
	if o.Rand == nil {
		o.Rand = rng.New(o.Seed)
	}
	return o, nil
}
