package gridstore

import (
	"math/rand"
	"time"
)

// DefaultMaxSize is the default ceiling for generated grids. It guards
// against pathological allocations, not against a UI limit.
const DefaultMaxSize = 4096

// Option customizes grid generation.
// Option constructors panic on meaningless input; Generate never panics.
type Option func(*generateConfig)

type generateConfig struct {
	rng     *rand.Rand
	maxSize int
}

// newGenerateConfig applies opts over the defaults: a time-seeded RNG and
// DefaultMaxSize.
func newGenerateConfig(opts ...Option) generateConfig {
	cfg := generateConfig{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithRand supplies the random bit source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridstore: WithRand(nil)")
	}
	return func(c *generateConfig) {
		c.rng = r
	}
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *generateConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxSize overrides DefaultMaxSize. Panics if n < 1.
func WithMaxSize(n int) Option {
	if n < 1 {
		panic("gridstore: WithMaxSize(n<1)")
	}
	return func(c *generateConfig) {
		c.maxSize = n
	}
}
