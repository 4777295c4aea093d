// Package matrix offers the dense numeric storage used by the clustering pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and
//     zero-copy RowView for distance kernels.
//   - Validators (ValidateNotNil, ValidateCols, ValidateFinite) returning
//     package sentinels that callers match with errors.Is.
//   - Column statistics (ColumnStats), imputation (ReplaceNonFinite) and the
//     squared Euclidean kernel (SquaredDistance).
//
// Feature matrices in this module are small (entities × 5), so every operation
// favors determinism and clarity over blocking or SIMD tricks.
package matrix
