// SPDX-License-Identifier: MIT

// Package synth generates seeded sample funding datasets.
//
// Generate draws funding rounds for a pool of startups with a skewed
// log-normal amount distribution, a uniform date in [FromYear, ToYear],
// a small share of blanked text fields and a handful of exact duplicate
// rows, then shuffles the lot. WriteCSV emits the rows under the column
// names the ingest package recognizes, so a generated file exercises the
// whole cleaning path.
//
// Every draw comes from one *rand.Rand set by WithSeed or WithRand, so the
// same options always produce the same dataset.
package synth
