// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Init selects the centroid seeding strategy.
type Init int

const (
	// InitKMeansPlusPlus draws each next centroid with probability proportional
	// to its squared distance from the nearest centroid already chosen.
	InitKMeansPlusPlus Init = iota
	// InitRandom picks k distinct rows uniformly at random.
	InitRandom
)

func (i Init) String() string {
	switch i {
	case InitKMeansPlusPlus:
		return "k-means++"
	case InitRandom:
		return "random"
	default:
		return fmt.Sprintf("Init(%d)", int(i))
	}
}

// Defaults used when the matching option is not supplied.
const (
	DefaultSeed          int64 = 42
	DefaultRestarts            = 10
	DefaultMaxIterations       = 300
)

// Option customizes a Train call. Option constructors panic on meaningless
// values; Train itself only returns errors.
type Option func(*config)

type config struct {
	seed        int64
	restarts    int
	maxIter     int
	init        Init
	parallelism int
	log         logr.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		seed:        DefaultSeed,
		restarts:    DefaultRestarts,
		maxIter:     DefaultMaxIterations,
		init:        InitKMeansPlusPlus,
		parallelism: 1,
		log:         logr.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithSeed fixes the base seed of the per-restart random streams.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRestarts sets how many independently seeded runs are tried. Panics if n < 1.
func WithRestarts(n int) Option {
	if n < 1 {
		panic("kmeans: WithRestarts(n<1)")
	}
	return func(c *config) { c.restarts = n }
}

// WithMaxIterations caps the assignment/update cycles of a single restart. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("kmeans: WithMaxIterations(n<1)")
	}
	return func(c *config) { c.maxIter = n }
}

// WithInit selects the seeding strategy. Panics on an unknown value.
func WithInit(i Init) Option {
	if i != InitKMeansPlusPlus && i != InitRandom {
		panic(fmt.Sprintf("kmeans: WithInit(%d)", int(i)))
	}
	return func(c *config) { c.init = i }
}

// WithParallelism bounds how many restarts run concurrently. Results do not
// depend on this value. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("kmeans: WithParallelism(n<1)")
	}
	return func(c *config) { c.parallelism = n }
}

// WithLogger attaches a logger for per-restart trace output.
func WithLogger(log logr.Logger) Option {
	return func(c *config) { c.log = log }
}
