// SPDX-License-Identifier: MIT

// Package kmeans partitions standardized feature rows into k clusters.
//
// Train runs Lloyd's algorithm from several independently seeded starts and
// keeps the one with the lowest inertia (sum of squared distances to the
// assigned centroid).
//
// Determinism:
//   - Restart r draws from its own stream derived from (seed, r), so the
//     result does not depend on WithParallelism or on goroutine scheduling.
//   - Distance ties go to the lowest centroid index; inertia ties go to the
//     earliest restart.
//
// Degenerate cases:
//   - A cluster that loses all members keeps its previous centroid.
//   - Duplicate rows are legal; k-means++ falls back to the lowest-index
//     unused row once every remaining row sits on a chosen centroid.
//
// Defaults: seed 42, 10 restarts, 300 iterations, k-means++ seeding, one
// restart at a time.
package kmeans
