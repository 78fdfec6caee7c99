// Package matrix provides the dense numeric storage behind abundance tables.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix whose rows are features and whose
//     columns are samples. Storage is a single flat slice for cache-friendly
//     row scans (filters, ancestor division) and predictable column passes
//     (totals, percentiles, ranks).
//   - Row kernels: Row/RowView/SetRow, CompressRows (keep-mask), SelectRows.
//   - Column kernels: Col/SetCol, ColumnSums, SelectCols, NormalizeColumnsL1.
//   - Validators: ValidateNotNil, ValidateVecLen, ValidateFinite.
//
// Every constructor and kernel either returns a fresh *Dense or mutates the
// receiver in place; none of them share backing storage with their inputs
// unless the method name says "View".
//
// Zero-size shapes (0×c after filtering every row away, r×0 after removing
// every sample) are legal: kernels treat them as no-ops.
package matrix
