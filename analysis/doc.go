// SPDX-License-Identifier: MIT

// Package analysis computes the dataset-level tables that accompany a
// clustering run: the funding-amount distribution, funding grouped by
// startup, industry, city, state, year and round, the most active
// investors, a correlation matrix of amount, log amount and year, and
// IQR outliers (below Q1 − 1.5·IQR or above Q3 + 1.5·IQR).
//
// Every table works on cleaned ingest.Row values, one per funding round.
// Percentiles share interpret.Quantile so they agree with the cluster
// thresholds.
package analysis
