// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column-wise statistical transforms used by sample normalization.
//
// Exposed API:
//   - ColumnSums(X)         -> sums               // per-column totals
//   - NormalizeColumnsL1(X) -> (Y, sums)          // divide each column by its total (zero columns unchanged)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on row-major flat buffers via gonum/floats.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops.

package matrix

import "gonum.org/v1/gonum/floats"

const (
	opColumnSums         = "ColumnSums"
	opNormalizeColumnsL1 = "NormalizeColumnsL1"
)

// ColumnSums returns the total of every column of X.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Dense fast-path adds each row view into the accumulator; At fallback otherwise.
//
// Returns:
//   - []float64: column totals (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnSums, err)
	}

	r, c := X.Rows(), X.Cols()
	sums := make([]float64, c)
	if r == 0 || c == 0 {
		return sums, nil
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			floats.Add(sums, d.data[i*c:(i+1)*c])
		}

		return sums, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColumnSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}

// NormalizeColumnsL1 divides every column by its total, returning a new matrix.
// Implementation:
//   - Stage 1: Validate X and compute column totals.
//   - Stage 2: Clone X into a Dense buffer.
//   - Stage 3: Scale each column with a non-zero total by 1/total.
//
// Behavior highlights:
//   - Degenerate columns (total == 0) are copied unchanged; no division by zero.
//   - X itself is never mutated.
//
// Returns:
//   - Matrix: normalized copy (r×c).
//   - []float64: the column totals used as divisors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeColumnsL1(X Matrix) (Matrix, []float64, error) {
	sums, err := ColumnSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL1, err)
	}

	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL1, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeColumnsL1, err)
			}
			if sums[j] > 0 {
				v /= sums[j]
			}
			out.data[i*c+j] = v
		}
	}

	return out, sums, nil
}
