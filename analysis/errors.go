// SPDX-License-Identifier: MIT

package analysis

import "errors"

// ErrEmptyInput is returned when there are no rows to analyze.
var ErrEmptyInput = errors.New("analysis: no rows")
