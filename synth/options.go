// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math/rand"
)

// Defaults.
const (
	DefaultSeed        = 42
	DefaultRecords     = 5000
	DefaultEntities    = 150
	DefaultFromYear    = 2015
	DefaultToYear      = 2024
	DefaultMissingRate = 0.02
	DefaultDuplicates  = 50
)

// Option customizes Generate. Constructors panic on meaningless values.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	records     int
	entities    int
	fromYear    int
	toYear      int
	missingRate float64
	duplicates  int
	nameFn      func(int) string
}

func newConfig(opts ...Option) config {
	cfg := config{
		records:     DefaultRecords,
		entities:    DefaultEntities,
		fromYear:    DefaultFromYear,
		toYear:      DefaultToYear,
		missingRate: DefaultMissingRate,
		duplicates:  DefaultDuplicates,
		nameFn:      StartupName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.duplicates > cfg.records {
		cfg.duplicates = cfg.records
	}

	return cfg
}

// WithSeed draws from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRecords sets the number of generated rounds before duplicates are added. Panics if n < 1.
func WithRecords(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("synth: WithRecords(%d)", n))
	}
	return func(c *config) {
		c.records = n
	}
}

// WithEntities sets the size of the startup pool rounds are drawn from. Panics if n < 1.
func WithEntities(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("synth: WithEntities(%d)", n))
	}
	return func(c *config) {
		c.entities = n
	}
}

// WithYears bounds round dates to [from, to]. Panics if from > to or from < 1.
func WithYears(from, to int) Option {
	if from < 1 || from > to {
		panic(fmt.Sprintf("synth: WithYears(%d, %d)", from, to))
	}
	return func(c *config) {
		c.fromYear, c.toYear = from, to
	}
}

// WithMissingRate sets the share of rows with one blanked text field. Panics outside [0,1].
func WithMissingRate(p float64) Option {
	if p < 0 || p > 1 || p != p {
		panic(fmt.Sprintf("synth: WithMissingRate(%v)", p))
	}
	return func(c *config) {
		c.missingRate = p
	}
}

// WithDuplicates sets how many rows are repeated verbatim. Panics if n < 0.
// Values above the record count are capped to it.
func WithDuplicates(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("synth: WithDuplicates(%d)", n))
	}
	return func(c *config) {
		c.duplicates = n
	}
}

// WithNameScheme overrides the startup naming: pool index -> name.
// fn must be deterministic and injective over [0, entities). Panics on nil.
func WithNameScheme(fn func(int) string) Option {
	if fn == nil {
		panic("synth: WithNameScheme(nil)")
	}
	return func(c *config) {
		c.nameFn = fn
	}
}
