// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finiteness checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateFinite scans in row-major order and reports the FIRST offending cell.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateCols ensures m has exactly n columns.
// Assumes m is not nil (caller must ensure).
func ValidateCols(m *Dense, n int) error {
	if m.c != n {
		return validatorErrorf("ValidateCols", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// NonFiniteError locates the first NaN/±Inf cell found by ValidateFinite.
// It unwraps to ErrNaNInf.
type NonFiniteError struct {
	Row, Col int
	Value    float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("ValidateFinite: value %v at (%d,%d): %v", e.Value, e.Row, e.Col, ErrNaNInf)
}

func (e *NonFiniteError) Unwrap() error { return ErrNaNInf }

// ValidateFinite ensures every element of m is finite.
// Returns *NonFiniteError (errors.Is → ErrNaNInf) for the first offending cell.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &NonFiniteError{Row: idx / m.c, Col: idx % m.c, Value: v}
		}
	}

	return nil
}
