// SPDX-License-Identifier: MIT

package interpret

import "errors"

var (
	// ErrEmptyInput indicates no feature vectors were supplied.
	ErrEmptyInput = errors.New("interpret: no feature vectors")

	// ErrMissingAssignment indicates a vector has no cluster, or a negative one, in the assignment.
	ErrMissingAssignment = errors.New("interpret: entity has no cluster assignment")
)
