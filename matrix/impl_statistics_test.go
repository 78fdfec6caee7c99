// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/abundance/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// ------------------------------
// ColumnSums
// ------------------------------

func TestColumnSums_FastAndFallback(t *testing.T) {
	t.Parallel()

	X := mustRows(t, 3, []float64{1, 2, 0}, []float64{10, 20, 0})

	fast, err := matrix.ColumnSums(X)
	require.NoError(t, err)
	slow, err := matrix.ColumnSums(hide{X})
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 22, 0}, fast)
	assert.Equal(t, fast, slow)
}

func TestColumnSums_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.ColumnSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense
	_, err = matrix.ColumnSums(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ------------------------------
// NormalizeColumnsL1
// ------------------------------

func TestNormalizeColumnsL1_ZeroColumnUnchanged(t *testing.T) {
	t.Parallel()

	X := mustRows(t, 3, []float64{1, 0, 3}, []float64{3, 0, 1})

	Y, sums, err := matrix.NormalizeColumnsL1(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 4}, sums)

	want := [][]float64{{0.25, 0, 0.75}, {0.75, 0, 0.25}}
	got := Y.(*matrix.Dense).ToRows()
	for i := range want {
		assert.InDeltaSlice(t, want[i], got[i], epsTight)
	}

	// input untouched
	v, _ := X.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestNormalizeColumnsL1_ZeroSize(t *testing.T) {
	t.Parallel()

	X, _ := matrix.NewDense(0, 2)
	Y, sums, err := matrix.NormalizeColumnsL1(X)
	require.NoError(t, err)
	assert.Equal(t, 0, Y.Rows())
	assert.Equal(t, []float64{0, 0}, sums)
}
