// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interface.
// Kernels accept Matrix and unlock a flat-slice fast path when handed a
// *Dense; the interface fallback keeps them usable with wrappers in tests.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows (features).
	Rows() int

	// Cols returns the number of columns (samples).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
