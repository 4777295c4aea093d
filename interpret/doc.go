// SPDX-License-Identifier: MIT

// Package interpret turns a partition into labeled, human-readable cluster summaries.
//
// Labels come from a fixed decision list comparing each cluster's mean total
// funding and mean round count against population-wide percentiles
// (ComputeThresholds). Percentiles interpolate linearly between the closest
// ranks. Labels are derived values; nothing here mutates its inputs.
package interpret
