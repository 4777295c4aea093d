// Package scale standardizes feature matrices to zero mean and unit variance.
//
// Fit returns a fresh Parameters value (column means, population standard
// deviations, and the indices of zero-variance columns); Transform applies
// it; FitTransform composes both. A zero-variance column is scaled to 0 in
// every row and reported as a DegenerateFeature warning.
//
// Input must already be free of NaN/±Inf; Fit and Transform fail with
// ErrNonFinite otherwise.
package scale
