package table_test

import (
	"testing"

	"github.com/katalvlaran/abundance/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const eps = 1e-12

func TestNormalizeColumnsBySum(t *testing.T) {
	tb := mustTable(t, []string{"A", "B"}, [][]float64{{1, 3, 0}, {3, 0, 0}})
	require.NoError(t, tb.NormalizeColumnsBySum())

	got := rowsByName(t, tb)
	assert.InDeltaSlice(t, []float64{0.25, 1, 0}, got["A"], eps)
	assert.InDeltaSlice(t, []float64{0.75, 0, 0}, got["B"], eps)
	assert.Equal(t, table.StateNormalized, tb.State())
}

func TestNormalizeColumnsBySum_Guards(t *testing.T) {
	tb := mustTable(t, []string{"A", "B"}, [][]float64{{1, 3}, {3, 1}})
	require.NoError(t, tb.NormalizeColumnsBySum())
	before := tb.ToArray()

	err := tb.NormalizeColumnsBySum()
	require.ErrorIs(t, err, table.ErrAlreadyNormalized)
	assert.True(t, table.IsInvalidTransition(err))
	assert.Equal(t, before, tb.ToArray())

	summed := mustTable(t, []string{"A|B", "A|C"}, [][]float64{{1, 3}, {3, 1}})
	require.NoError(t, summed.SumClades())
	err = summed.NormalizeColumnsBySum()
	require.ErrorIs(t, err, table.ErrSummedTable)
	assert.True(t, table.IsInvalidTransition(err))
	assert.Equal(t, table.StateSummed, summed.State())
}

func TestNormalizeByAncestor_ParentKept(t *testing.T) {
	tb := mustTable(t,
		[]string{"A", "A|B", "A|C"},
		[][]float64{{10, 20}, {4, 6}, {6, 14}},
	)
	require.NoError(t, tb.NormalizeByAncestor())

	got := rowsByName(t, tb)
	assert.InDeltaSlice(t, []float64{1, 1}, got["A"], eps)
	assert.InDeltaSlice(t, []float64{0.4, 0.3}, got["A|B"], eps)
	assert.InDeltaSlice(t, []float64{0.6, 0.7}, got["A|C"], eps)
	assert.Equal(t, table.StateSummedNormalized, tb.State())
}

func TestNormalizeByAncestor_ParentPruned(t *testing.T) {
	tb := mustTable(t, []string{"A", "A|B"}, [][]float64{{10, 20}, {10, 20}})
	require.NoError(t, tb.NormalizeByAncestor())

	assert.Equal(t, []string{"A|B"}, tb.Features())
	assert.InDeltaSlice(t, []float64{1, 1}, rowsByName(t, tb)["A|B"], eps)
}

func TestNormalizeByAncestor_ZeroReference(t *testing.T) {
	tb := mustTable(t, []string{"A|B", "A|C"}, [][]float64{{0, 2}, {0, 3}})
	require.NoError(t, tb.NormalizeByAncestor())

	got := rowsByName(t, tb)
	assert.Equal(t, []float64{0, 1}, got["A"])
	assert.InDeltaSlice(t, []float64{0, 0.4}, got["A|B"], eps)
	assert.InDeltaSlice(t, []float64{0, 0.6}, got["A|C"], eps)
}

func TestNormalizeByAncestor_SeparateRoots(t *testing.T) {
	tb := mustTable(t,
		[]string{"A|x", "A|y", "B|x", "B|y"},
		[][]float64{{1}, {3}, {2}, {2}},
	)
	require.NoError(t, tb.NormalizeByAncestor())

	got := rowsByName(t, tb)
	assert.InDeltaSlice(t, []float64{0.25}, got["A|x"], eps)
	assert.InDeltaSlice(t, []float64{0.75}, got["A|y"], eps)
	assert.InDeltaSlice(t, []float64{0.5}, got["B|x"], eps)
	assert.InDeltaSlice(t, []float64{0.5}, got["B|y"], eps)
}

func TestNormalizeByAncestor_Twice(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tb := mustTable(t, []string{"A|B", "A|C"}, [][]float64{{1, 2}, {3, 4}}, table.WithLogger(zap.New(core)))
	require.NoError(t, tb.NormalizeByAncestor())
	before := tb.ToArray()

	err := tb.NormalizeByAncestor()
	require.ErrorIs(t, err, table.ErrAlreadyNormalized)
	assert.Equal(t, before, tb.ToArray())

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "invalid transition", entry.Message)
	assert.Equal(t, "table.NormalizeByAncestor", entry.ContextMap()["op"])
}

func TestNormalizeColumnsThenAncestor(t *testing.T) {
	tb := mustTable(t, []string{"A", "B"}, [][]float64{{1, 3}, {3, 1}})
	require.NoError(t, tb.NormalizeColumnsBySum())
	require.ErrorIs(t, tb.NormalizeByAncestor(), table.ErrAlreadyNormalized)
}

func TestIsInvalidTransition(t *testing.T) {
	assert.False(t, table.IsInvalidTransition(nil))
	assert.False(t, table.IsInvalidTransition(table.ErrBadParameter))
	assert.True(t, table.IsInvalidTransition(table.ErrNormalizedCounts))
}
