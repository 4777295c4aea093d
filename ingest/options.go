// SPDX-License-Identifier: MIT

package ingest

import "github.com/go-logr/logr"

// Unknown replaces a missing category or location.
const Unknown = "Unknown"

// Option customizes Read.
type Option func(*config)

type config struct {
	comma rune
	log   logr.Logger
}

func newConfig(opts ...Option) config {
	c := config{comma: ',', log: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithComma sets the field delimiter. Panics on '\n', '\r' or the Unicode replacement char.
func WithComma(r rune) Option {
	if r == '\n' || r == '\r' || r == 0xFFFD {
		panic("ingest: WithComma(invalid delimiter)")
	}
	return func(c *config) { c.comma = r }
}

// WithLogger attaches a logger for per-row diagnostics.
func WithLogger(log logr.Logger) Option {
	return func(c *config) { c.log = log }
}
