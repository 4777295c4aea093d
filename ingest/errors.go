// SPDX-License-Identifier: MIT

package ingest

import "errors"

var (
	// ErrMissingColumn indicates the header lacks an entity, amount or date/year column.
	ErrMissingColumn = errors.New("ingest: required column missing")

	// ErrNoRecords indicates no row survived cleaning.
	ErrNoRecords = errors.New("ingest: no usable records")
)
