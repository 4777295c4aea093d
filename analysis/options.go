// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/go-logr/logr"
)

// DefaultTopN bounds every ranked table.
const DefaultTopN = 10

// Option customizes Analyze.
type Option func(*config)

type config struct {
	topN int
	log  logr.Logger
}

func newConfig(opts ...Option) config {
	c := config{topN: DefaultTopN, log: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithTopN sets how many entries ranked tables keep. Panics if n < 1.
func WithTopN(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("analysis: WithTopN(%d)", n))
	}
	return func(c *config) { c.topN = n }
}

// WithLogger attaches a logger for debug output.
func WithLogger(log logr.Logger) Option {
	return func(c *config) { c.log = log }
}
