// SPDX-License-Identifier: MIT

package elbow

import "errors"

// ErrInvalidRange indicates kMin < 1 or kMax < kMin.
var ErrInvalidRange = errors.New("elbow: invalid k range")
