// SPDX-License-Identifier: MIT

package kmeans

import "errors"

var (
	// ErrInvalidClusterCount indicates k < 1 or k greater than the number of entities.
	ErrInvalidClusterCount = errors.New("kmeans: invalid cluster count")

	// ErrEmptyMatrix indicates a matrix with no rows or no feature columns.
	ErrEmptyMatrix = errors.New("kmeans: empty feature matrix")
)
