// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics and row kernels used by standardization and clustering.
//
// Exposed API:
//   - ColumnStats(X)           -> (means, stds)   // population moments per column
//   - ReplaceNonFinite(X, v)   -> (Y, replaced)   // imputation of NaN/±Inf cells
//   - SquaredDistance(a, b)    -> float64         // Σ (a_j − b_j)²
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Operates on the row-major flat buffer directly.
//
// AI-Hints:
//   - Sanitize inputs first (ReplaceNonFinite) if NaN/Inf propagation is undesired in
//     downstream statistics; ColumnStats does not re-check finiteness.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opColumnStats      = "ColumnStats"
	opReplaceNonFinite = "ReplaceNonFinite"
)

// ColumnStats computes the per-column mean and population standard deviation
// (denominator r, not r-1).
//
// Behavior highlights:
//   - A column whose values are all identical reports std == 0 exactly, even when
//     floating-point summation would leave a residue of order 1e-17. Downstream
//     scaling relies on that exact zero to detect degenerate features.
//   - Zero rows: means and stds are zero-filled slices of length c.
//
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r) scratch + O(c) output.
func ColumnStats(X *Dense) ([]float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnStats, err)
	}

	r, c := X.r, X.c
	means := make([]float64, c)
	stds := make([]float64, c)
	if r == 0 || c == 0 {
		return means, stds, nil
	}

	col := make([]float64, r) // scratch reused across columns
	var i, j int
	for j = 0; j < c; j++ {
		constant := true
		first := X.data[j]
		for i = 0; i < r; i++ {
			col[i] = X.data[i*c+j]
			if col[i] != first {
				constant = false
			}
		}
		if constant {
			means[j], stds[j] = first, 0
			continue
		}
		means[j], stds[j] = stat.PopMeanStdDev(col, nil)
	}

	return means, stds, nil
}

// ReplaceNonFinite returns a copy of X where every NaN/±Inf cell is replaced by v,
// plus the number of replaced cells.
//
// Complexity: O(r*c).
func ReplaceNonFinite(X *Dense, v float64) (*Dense, int, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, 0, matrixErrorf(opReplaceNonFinite, err)
	}

	out := X.Clone()
	replaced := 0
	for idx, x := range out.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			out.data[idx] = v
			replaced++
		}
	}

	return out, replaced, nil
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// Assumes len(a) == len(b); callers validate shapes once per matrix, not per row.
func SquaredDistance(a, b []float64) float64 {
	var s, d float64
	for j := range a {
		d = a[j] - b[j]
		s += d * d
	}

	return s
}
