// SPDX-License-Identifier: MIT

package elbow

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/startupseg/kmeans"
)

// Defaults for the k sweep.
const (
	DefaultKMin = 2
	DefaultKMax = 10
	// DefaultK is chosen when no rate falls below the threshold.
	DefaultK = 4
)

// Option customizes a SelectK call.
type Option func(*config)

type config struct {
	kMin, kMax  int
	parallelism int
	train       []kmeans.Option
	log         logr.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		kMin:        DefaultKMin,
		kMax:        DefaultKMax,
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

// WithRange sets the inclusive k range to sweep. The range is validated by SelectK
// so that user-supplied bounds surface as ErrInvalidRange rather than a panic.
func WithRange(kMin, kMax int) Option {
	return func(c *config) { c.kMin, c.kMax = kMin, kMax }
}

// WithTrainOptions forwards options (seed, restarts, ...) to every kmeans.Train call.
func WithTrainOptions(opts ...kmeans.Option) Option {
	return func(c *config) { c.train = append(c.train, opts...) }
}

// WithParallelism bounds how many k values are trained concurrently. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("elbow: WithParallelism(n<1)")
	}
	return func(c *config) { c.parallelism = n }
}

// WithLogger attaches a logger for per-k debug output.
func WithLogger(log logr.Logger) Option {
	return func(c *config) { c.log = log }
}
