// SPDX-License-Identifier: MIT

package funding

import "errors"

// ErrEmptyInput indicates Build received no records: there is nothing to cluster.
// Callers MUST branch on it with errors.Is.
var ErrEmptyInput = errors.New("funding: no records supplied")
