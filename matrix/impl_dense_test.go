// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/startupseg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts zero-size shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 5, m.Cols())
}

// TestNewDenseFromCopiesData verifies the wrapped slice is detached from the caller.
func TestNewDenseFromCopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, data)
	require.NoError(t, err)

	data[0] = 99 // mutate the caller's slice
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 3, data) // length 4 != 6
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseRowsRagged ensures ragged input is rejected.
func TestNewDenseRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.NewDenseRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowColClone validates row/column extraction and that Clone is deep.
func TestRowColClone(t *testing.T) {
	m, err := matrix.NewDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	require.Equal(t, []float64{1, 2, 3}, m.RowView(0))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v, "Clone must not share storage")
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())
}
