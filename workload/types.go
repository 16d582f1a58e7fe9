package workload

import (
	"math/rand"

	"github.com/pkg/errors"
)

var (
	// ErrBadSize indicates a negative item count.
	ErrBadSize = errors.New("workload: invalid size")

	// ErrBadRange indicates invalid distribution parameters
	// (lo > hi, negative sigma, NaN or infinite bounds).
	ErrBadRange = errors.New("workload: invalid range")
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed draws from a new deterministic stream seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("workload: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// newConfig applies opts in order; later options override earlier ones.
func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}

	return c
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
