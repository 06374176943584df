package kdsort

import "math/rand/v2"

// Option configures a single Sort call.
type Option func(*config)

type config struct {
	rnd   *rand.Rand
	alloc Allocator
}

// WithRand supplies the random source used to pick quickselect pivots. Only
// adequate uniformity is required to avoid systematic worst cases, not
// cryptographic strength, so math/rand/v2 is sufficient; supply one
// explicitly for reproducible benchmarks (see pointgen, which seeds its own
// generator per distribution).
func WithRand(rnd *rand.Rand) Option {
	return func(c *config) { c.rnd = rnd }
}

// WithAllocator supplies the fallible Allocator used for the node arena, the
// BFS queue, and the scratch buffer. Defaults to DefaultAllocator.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) { c.alloc = alloc }
}

// NewRand builds a *rand.Rand from a single uint64 seed, for callers (such
// as the CLI's sort subcommand) that want a reproducible run from a
// human-typeable seed rather than constructing a rand.Source themselves.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func newConfig(opts []Option) *config {
	c := &config{
		rnd:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		alloc: DefaultAllocator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
