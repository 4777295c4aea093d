// Package elbow picks the number of clusters from the inertia-versus-k curve.
//
// SelectK trains one kmeans model per k in [kMin, kMax] (2..10 by default) and
// hands the inertia curve to Choose. Choose computes the successive percentage
// drops, takes half their mean as the threshold, and returns the k just past the
// first drop (skipping the first one) that falls below it. When no drop does,
// K falls back to DefaultK (4), which may lie outside the swept range.
package elbow
