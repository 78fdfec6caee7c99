// Package matrix provides core primitives for array-based abundance storage.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opNewDense         = "NewDense"
	opNewDenseFromRows = "NewDenseFromRows"
	opRow              = "Dense.Row"
	opSetRow           = "Dense.SetRow"
	opCol              = "Dense.Col"
	opSetCol           = "Dense.SetCol"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return matrixErrorf(fmt.Sprintf("Dense.%s(%d,%d)", method, row, col), err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols are non-negative.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
//
// Zero rows or zero columns are accepted: a table filtered down to nothing
// is still a valid table.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a slice of row vectors into a fresh Dense.
// Stage 1 (Validate): cols >= 0, every row has length cols, every value finite.
// Stage 2 (Execute): copy rows into the flat buffer in order.
// Complexity: O(r*c).
//
// cols is explicit so that an empty row set still carries its sample count.
func NewDenseFromRows(rows [][]float64, cols int) (*Dense, error) {
	if cols < 0 {
		return nil, matrixErrorf(opNewDenseFromRows, ErrBadShape)
	}

	d := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	var i int
	for i = 0; i < len(rows); i++ {
		if err := ValidateVecLen(rows[i], cols); err != nil {
			return nil, denseErrorf("FromRows", i, 0, err)
		}
		if err := ValidateFinite(rows[i]); err != nil {
			return nil, denseErrorf("FromRows", i, 0, err)
		}
		copy(d.data[i*cols:(i+1)*cols], rows[i])
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone without the interface conversion.
func (m *Dense) CloneDense() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	v, err := m.RowView(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out, nil
}

// RowView returns row i as a slice sharing the backing storage.
// Writes through the returned slice are visible in the matrix.
// Complexity: O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRow, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// SetRow overwrites row i with v.
// Stage 1 (Validate): bounds, length, finiteness.
// Stage 2 (Execute): copy into the flat buffer.
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(opSetRow, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	if err := ValidateFinite(v); err != nil {
		return matrixErrorf(opSetRow, err)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opCol, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetCol overwrites column j with v.
func (m *Dense) SetCol(j int, v []float64) error {
	if j < 0 || j >= m.c {
		return matrixErrorf(opSetCol, ErrOutOfRange)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return matrixErrorf(opSetCol, err)
	}
	if err := ValidateFinite(v); err != nil {
		return matrixErrorf(opSetCol, err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}

	return nil
}

// Max returns the largest element, or 0 for a zero-size matrix.
// Complexity: O(r*c).
func (m *Dense) Max() float64 {
	if len(m.data) == 0 {
		return 0
	}
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// ToRows returns a copy of the matrix as a slice of row slices.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
