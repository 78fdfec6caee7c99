// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide row/column selection kernels used by table filters and
//     derivative operations (feature subsets, sample removal, stratification).
//
// Determinism & Performance:
//   - Output order always follows input order; no sorting happens here.
//   - Each kernel performs a single allocation for the result.

package matrix

const (
	opCompressRows = "CompressRows"
	opSelectRows   = "SelectRows"
	opSelectCols   = "SelectCols"
)

// CompressRows returns a new Dense holding only the rows whose keep flag is true.
// Implementation:
//   - Stage 1: Validate the mask length against Rows().
//   - Stage 2: Count kept rows and allocate once.
//   - Stage 3: Copy kept rows in order.
//
// Complexity:
//   - Time O(r*c), Space O(k*c) for k kept rows.
func (m *Dense) CompressRows(keep []bool) (*Dense, error) {
	if len(keep) != m.r {
		return nil, matrixErrorf(opCompressRows, ErrDimensionMismatch)
	}

	var kept int
	for _, k := range keep {
		if k {
			kept++
		}
	}

	out := &Dense{r: kept, c: m.c, data: make([]float64, kept*m.c)}
	var i, dst int
	for i = 0; i < m.r; i++ {
		if !keep[i] {
			continue
		}
		copy(out.data[dst*m.c:(dst+1)*m.c], m.data[i*m.c:(i+1)*m.c])
		dst++
	}

	return out, nil
}

// SelectRows returns a new Dense whose rows are m's rows at idx, in idx order.
// Complexity: O(len(idx)*c).
func (m *Dense) SelectRows(idx []int) (*Dense, error) {
	out := &Dense{r: len(idx), c: m.c, data: make([]float64, len(idx)*m.c)}
	for dst, i := range idx {
		if i < 0 || i >= m.r {
			return nil, matrixErrorf(opSelectRows, ErrOutOfRange)
		}
		copy(out.data[dst*m.c:(dst+1)*m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out, nil
}

// SelectCols returns a new Dense whose columns are m's columns at idx, in idx order.
// Complexity: O(r*len(idx)).
func (m *Dense) SelectCols(idx []int) (*Dense, error) {
	for _, j := range idx {
		if j < 0 || j >= m.c {
			return nil, matrixErrorf(opSelectCols, ErrOutOfRange)
		}
	}

	c := len(idx)
	out := &Dense{r: m.r, c: c, data: make([]float64, m.r*c)}
	var i int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for dst, j := range idx {
			out.data[i*c+dst] = m.data[base+j]
		}
	}

	return out, nil
}
