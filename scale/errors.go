// SPDX-License-Identifier: MIT

package scale

import (
	"fmt"

	"github.com/katalvlaran/startupseg/matrix"
)

// ErrNonFinite signals that a NaN/±Inf reached the standardizer. Imputation is the
// upstream collaborator's job, so this is a contract violation, not something to coerce.
// It also matches matrix.ErrNaNInf under errors.Is.
var ErrNonFinite = fmt.Errorf("scale: non-finite input, imputation precondition violated: %w", matrix.ErrNaNInf)

// WarningKind classifies non-fatal findings.
type WarningKind string

// DegenerateFeature marks a zero-variance column that Transform maps to all zeros.
const DegenerateFeature WarningKind = "DegenerateFeature"

// Warning is a non-fatal diagnostic produced by Fit.
type Warning struct {
	Kind   WarningKind `yaml:"kind" json:"kind"`
	Column int         `yaml:"column" json:"column"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: column %d has zero variance", w.Kind, w.Column)
}
