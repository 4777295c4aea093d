// SPDX-License-Identifier: MIT
// Package: funding
//
// build.go: aggregation of per-round records into one FeatureVector per entity.
//
// Contract:
//   - len(records) ≥ 1 (else ErrEmptyInput).
//   - Exactly one output vector per distinct EntityID; none is dropped.
//   - Output order is the order in which each EntityID first appears in records.
//   - Pure: no side effects, deterministic for a fixed input order.
//
// Complexity:
//   - Time O(n) over records, Space O(e) over distinct entities.

package funding

import (
	"fmt"
	"math"

	"github.com/katalvlaran/startupseg/matrix"
)

const methodBuild = "Build"

// accumulator carries the running aggregates of one entity.
type accumulator struct {
	sum      float64
	count    int
	minYear  int
	maxYear  int
	category string // first-encountered, never overwritten
	location string // first-encountered, never overwritten
}

// Build aggregates records into feature vectors in a single pass.
func Build(records []Record) ([]FeatureVector, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrEmptyInput)
	}

	order := make([]string, 0)
	acc := make(map[string]*accumulator)
	for _, r := range records {
		a, ok := acc[r.EntityID]
		if !ok {
			a = &accumulator{
				minYear:  r.Year,
				maxYear:  r.Year,
				category: r.Category,
				location: r.Location,
			}
			acc[r.EntityID] = a
			order = append(order, r.EntityID)
		}
		a.sum += r.Amount
		a.count++
		if r.Year < a.minYear {
			a.minYear = r.Year
		}
		if r.Year > a.maxYear {
			a.maxYear = r.Year
		}
	}

	out := make([]FeatureVector, len(order))
	for i, id := range order {
		out[i] = acc[id].vector(id)
	}

	return out, nil
}

// vector finalizes the derived fields. years is max-min+1, which is ≥ 1
// because maxYear ≥ minYear by construction, so the division is always defined.
func (a *accumulator) vector(id string) FeatureVector {
	years := a.maxYear - a.minYear + 1
	avg := a.sum / float64(a.count)

	return FeatureVector{
		EntityID:           id,
		TotalFunding:       a.sum,
		AvgFundingPerRound: avg,
		NumFundingRounds:   a.count,
		YearsActive:        years,
		FundingPerYear:     a.sum / float64(years),
		LogTotalFunding:    math.Log10(a.sum + 1),
		LogAvgFunding:      math.Log10(avg + 1),
		CategoryFirst:      a.category,
		LocationFirst:      a.location,
	}
}

// FeatureMatrix lays out the clustering columns of vectors as a len(vectors)×NumFeatures
// matrix and applies the imputation policy: every non-finite cell becomes 0.
// It returns the number of imputed cells so callers can surface it.
func FeatureMatrix(vectors []FeatureVector) (*matrix.Dense, int, error) {
	data := make([]float64, 0, len(vectors)*NumFeatures)
	for _, v := range vectors {
		data = append(data, v.Values()...)
	}
	X, err := matrix.NewDenseFrom(len(vectors), NumFeatures, data)
	if err != nil {
		return nil, 0, fmt.Errorf("FeatureMatrix: %w", err)
	}
	clean, imputed, err := matrix.ReplaceNonFinite(X, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("FeatureMatrix: %w", err)
	}

	return clean, imputed, nil
}
