// SPDX-License-Identifier: MIT

package scale_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/startupseg/matrix"
	"github.com/katalvlaran/startupseg/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	X, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)

	return X
}

// TestFitTransform_ZeroMeanUnitStd verifies the round-trip property on non-degenerate columns.
func TestFitTransform_ZeroMeanUnitStd(t *testing.T) {
	X := mustRows(t, [][]float64{
		{6.1, 1, 120},
		{7.4, 3, 900},
		{5.0, 2, 15},
		{8.2, 7, 4000},
		{6.6, 1, 333},
	})

	Z, p, err := scale.FitTransform(X)
	require.NoError(t, err)
	require.Empty(t, p.Degenerate)

	for j := 0; j < Z.Cols(); j++ {
		col, err := Z.Col(j)
		require.NoError(t, err)
		var sum, sq float64
		for _, v := range col {
			sum += v
		}
		mean := sum / float64(len(col))
		for _, v := range col {
			sq += (v - mean) * (v - mean)
		}
		std := math.Sqrt(sq / float64(len(col)))
		assert.InDelta(t, 0, mean, 1e-12, "column %d mean", j)
		assert.InDelta(t, 1, std, 1e-12, "column %d std", j)
	}
}

// TestTransform_DegenerateColumnIsZero verifies a constant column maps to zeros, not NaN.
func TestTransform_DegenerateColumnIsZero(t *testing.T) {
	X := mustRows(t, [][]float64{{3, 1}, {3, 2}, {3, 4}})

	Z, p, err := scale.FitTransform(X)
	require.NoError(t, err)
	require.Equal(t, []int{0}, p.Degenerate)
	require.Equal(t, []scale.Warning{{Kind: scale.DegenerateFeature, Column: 0}}, p.Warnings())

	col, err := Z.Col(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, col)
}

// TestFit_NonFiniteIsFatal verifies a NaN reaching the standardizer is reported, not coerced.
func TestFit_NonFiniteIsFatal(t *testing.T) {
	X := mustRows(t, [][]float64{{1, 2}, {math.Inf(-1), 3}})

	_, err := scale.Fit(X)
	require.ErrorIs(t, err, scale.ErrNonFinite)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "row 1 column 0")

	_, _, err = scale.FitTransform(X)
	require.ErrorIs(t, err, scale.ErrNonFinite)

	_, err = scale.Transform(X, scale.Parameters{Means: []float64{0, 0}, Stds: []float64{1, 1}})
	require.ErrorIs(t, err, scale.ErrNonFinite)
}

// TestTransform_ReusesParameters verifies Parameters passed forward are applied as-is.
func TestTransform_ReusesParameters(t *testing.T) {
	train := mustRows(t, [][]float64{{0}, {10}})
	p, err := scale.Fit(train)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, p.Means)
	assert.Equal(t, []float64{5}, p.Stds)

	Z, err := scale.Transform(mustRows(t, [][]float64{{20}}), p)
	require.NoError(t, err)
	v, _ := Z.At(0, 0)
	assert.Equal(t, 3.0, v)

	// Refit on other data yields fresh parameters; p is unchanged.
	_, err = scale.Fit(mustRows(t, [][]float64{{1}, {2}}))
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, p.Means)
}

func TestTransform_ShapeMismatch(t *testing.T) {
	_, err := scale.Transform(mustRows(t, [][]float64{{1, 2}}), scale.Parameters{Means: []float64{0}, Stds: []float64{1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = scale.Fit(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
