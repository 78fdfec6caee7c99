package table_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/abundance/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustTable builds a table over samples s1..sN from name→row pairs given in
// order, forcing the raw state unless opts override it.
func mustTable(t *testing.T, features []string, rows [][]float64, opts ...table.Option) *table.Table {
	t.Helper()
	var samples []string
	if len(rows) > 0 {
		for j := range rows[0] {
			samples = append(samples, "s"+string(rune('1'+j)))
		}
	}
	opts = append([]table.Option{table.WithState(table.StateRaw)}, opts...)
	tb, err := table.New(samples, features, rows, nil, opts...)
	require.NoError(t, err)

	return tb
}

func TestNew_Validation(t *testing.T) {
	samples := []string{"s1", "s2"}
	cases := []struct {
		name     string
		features []string
		rows     [][]float64
		meta     map[string][]string
		samples  []string
		want     error
	}{
		{"row count", []string{"A", "B"}, [][]float64{{1, 2}}, nil, samples, table.ErrDimensionMismatch},
		{"row length", []string{"A"}, [][]float64{{1}}, nil, samples, table.ErrDimensionMismatch},
		{"duplicate feature", []string{"A", "A"}, [][]float64{{1, 2}, {3, 4}}, nil, samples, table.ErrDuplicateFeature},
		{"duplicate sample", []string{"A"}, [][]float64{{1, 2}}, nil, []string{"s", "s"}, table.ErrDuplicateSample},
		{"negative", []string{"A"}, [][]float64{{1, -2}}, nil, samples, table.ErrInvalidValue},
		{"nan", []string{"A"}, [][]float64{{math.NaN(), 2}}, nil, samples, table.ErrInvalidValue},
		{"metadata length", []string{"A"}, [][]float64{{1, 2}}, map[string][]string{"Group": {"x"}}, samples, table.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.New(tc.samples, tc.features, tc.rows, tc.meta)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_InfersState(t *testing.T) {
	samples := []string{"s1", "s2"}

	raw, err := table.New(samples, []string{"A|B", "A|C"}, [][]float64{{1, 5}, {2, 0}}, nil)
	require.NoError(t, err)
	assert.Equal(t, table.StateRaw, raw.State())

	norm, err := table.New(samples, []string{"A|B", "A|C"}, [][]float64{{0.5, 1}, {0.5, 0}}, nil)
	require.NoError(t, err)
	assert.Equal(t, table.StateNormalized, norm.State())

	summed, err := table.New(samples, []string{"A", "A|B"}, [][]float64{{3, 5}, {3, 5}}, nil)
	require.NoError(t, err)
	assert.Equal(t, table.StateSummed, summed.State())

	both, err := table.New(samples, []string{"A", "A|B"}, [][]float64{{1, 1}, {0.5, 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, table.StateSummedNormalized, both.State())

	forced, err := table.New(samples, []string{"A"}, [][]float64{{0.1, 0.2}}, nil, table.WithState(table.StateRaw))
	require.NoError(t, err)
	assert.Equal(t, table.StateRaw, forced.State())
}

func TestNew_CopiesInputs(t *testing.T) {
	samples := []string{"s1", "s2"}
	features := []string{"A"}
	rows := [][]float64{{1, 2}}
	meta := map[string][]string{"Group": {"x", "y"}, "ID": {"ignored", "too"}}

	tb, err := table.New(samples, features, rows, meta, table.WithName("t.pcl"))
	require.NoError(t, err)

	samples[0], features[0], rows[0][0], meta["Group"][0] = "z", "Z", 99, "q"

	assert.Equal(t, []string{"s1", "s2"}, tb.Samples())
	assert.Equal(t, []string{"A"}, tb.Features())
	assert.Equal(t, [][]float64{{1, 2}}, tb.ToArray())
	assert.Equal(t, []string{"Group"}, tb.MetadataNames())

	ids, ok := tb.Metadata("ID")
	require.True(t, ok)
	assert.Equal(t, []string{"s1", "s2"}, ids)
	assert.Equal(t, 1, tb.OriginalFeatureCount())
	assert.Equal(t, 2, tb.OriginalSampleCount())
}

func TestAccessors(t *testing.T) {
	tb := mustTable(t, []string{"A", "B"}, [][]float64{{1, 2}, {3, 4}})

	row, err := tb.Row("B")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	_, err = tb.Row("nope")
	assert.ErrorIs(t, err, table.ErrUnknownFeature)

	col, err := tb.Sample("s2")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, col)
	_, err = tb.Sample("nope")
	assert.ErrorIs(t, err, table.ErrUnknownSample)

	sum, err := tb.FeatureSum("A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum)

	assert.Equal(t, []float64{1.5, 3.5}, tb.AverageSample())
	assert.True(t, tb.HasFeature("A"))
	assert.Equal(t, "|", tb.FeatureDelimiter())
	assert.Equal(t, "\t", tb.FileDelimiter())
	assert.Equal(t, "ID", tb.IDName())
}

func TestClone_Independent(t *testing.T) {
	tb := mustTable(t, []string{"A|B", "A|C"}, [][]float64{{1, 2}, {3, 4}})
	c := tb.Clone()
	require.NoError(t, c.SumClades())

	assert.Equal(t, []string{"A|B", "A|C"}, tb.Features())
	assert.Equal(t, table.StateRaw, tb.State())
	assert.Equal(t, table.StateSummed, c.State())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { table.WithFeatureDelimiter("") })
	assert.Panics(t, func() { table.WithFileDelimiter("") })
	assert.Panics(t, func() { table.WithIDName("") })
	assert.Panics(t, func() { table.WithState(table.State(42)) })
}

func TestString(t *testing.T) {
	tb := mustTable(t, []string{"A"}, [][]float64{{1, 2}}, table.WithName("t.pcl"))
	s := tb.String()
	assert.Contains(t, s, `"t.pcl"`)
	assert.Contains(t, s, "raw")
}
