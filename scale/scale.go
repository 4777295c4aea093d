// SPDX-License-Identifier: MIT
// Package: scale
//
// scale.go: z-score standardization as pure functions over *matrix.Dense.
//
// Contract:
//   - Fit validates finiteness (ErrNonFinite) and returns a fresh Parameters value.
//   - Transform maps v → (v − mean)/std per column; std == 0 maps every row to 0.
//   - Transform requires X.Cols() == len(p.Means) (matrix.ErrDimensionMismatch).
//   - Nothing is retained between calls; Parameters are reused only when the caller
//     passes them forward explicitly.
//
// Complexity:
//   - Fit O(r*c), Transform O(r*c).

package scale

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/startupseg/matrix"
)

const (
	methodFit          = "Fit"
	methodTransform    = "Transform"
	methodFitTransform = "FitTransform"
)

// Parameters are the per-column scaling moments produced by Fit.
type Parameters struct {
	Means []float64 `yaml:"means" json:"means"`
	Stds  []float64 `yaml:"stds" json:"stds"`
	// Degenerate lists the zero-variance column indices, ascending.
	Degenerate []int `yaml:"degenerate,omitempty" json:"degenerate,omitempty"`
}

// Warnings reports one DegenerateFeature warning per zero-variance column.
func (p Parameters) Warnings() []Warning {
	if len(p.Degenerate) == 0 {
		return nil
	}
	out := make([]Warning, len(p.Degenerate))
	for i, col := range p.Degenerate {
		out[i] = Warning{Kind: DegenerateFeature, Column: col}
	}

	return out
}

// Fit computes column means and population standard deviations of X.
func Fit(X *matrix.Dense) (Parameters, error) {
	if err := checkFinite(methodFit, X); err != nil {
		return Parameters{}, err
	}
	means, stds, err := matrix.ColumnStats(X)
	if err != nil {
		return Parameters{}, fmt.Errorf("%s: %w", methodFit, err)
	}

	p := Parameters{Means: means, Stds: stds}
	for j, s := range stds {
		if s == 0 {
			p.Degenerate = append(p.Degenerate, j)
		}
	}

	return p, nil
}

// Transform returns a new standardized copy of X under p.
func Transform(X *matrix.Dense, p Parameters) (*matrix.Dense, error) {
	if err := checkFinite(methodTransform, X); err != nil {
		return nil, err
	}
	if err := matrix.ValidateCols(X, len(p.Means)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTransform, err)
	}
	if err := matrix.ValidateVecLen(p.Stds, len(p.Means)); err != nil {
		return nil, fmt.Errorf("%s: stds: %w", methodTransform, err)
	}

	r, c := X.Rows(), X.Cols()
	out := make([]float64, 0, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		row := X.RowView(i)
		for j = 0; j < c; j++ {
			if p.Stds[j] == 0 {
				out = append(out, 0) // degenerate column: defined as 0, never NaN
				continue
			}
			out = append(out, (row[j]-p.Means[j])/p.Stds[j])
		}
	}
	Z, err := matrix.NewDenseFrom(r, c, out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTransform, err)
	}

	return Z, nil
}

// FitTransform fits on X and returns X standardized with the fitted parameters.
func FitTransform(X *matrix.Dense) (*matrix.Dense, Parameters, error) {
	p, err := Fit(X)
	if err != nil {
		return nil, Parameters{}, fmt.Errorf("%s: %w", methodFitTransform, err)
	}
	Z, err := Transform(X, p)
	if err != nil {
		return nil, Parameters{}, fmt.Errorf("%s: %w", methodFitTransform, err)
	}

	return Z, p, nil
}

// checkFinite rejects nil input and converts matrix.NonFiniteError into ErrNonFinite
// while keeping the cell location in the message.
func checkFinite(method string, X *matrix.Dense) error {
	err := matrix.ValidateFinite(X)
	if err == nil {
		return nil
	}
	var nf *matrix.NonFiniteError
	if errors.As(err, &nf) {
		return fmt.Errorf("%s: row %d column %d holds %v: %w", method, nf.Row, nf.Col, nf.Value, ErrNonFinite)
	}

	return fmt.Errorf("%s: %w", method, err)
}
