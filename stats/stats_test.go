package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/abundance/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile_LinearInterpolation(t *testing.T) {
	v := []float64{4, 1, 3, 2} // sorted: 1 2 3 4

	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{100, 4},
		{50, 2.5},
		{25, 1.75},
		{95, 3.85},
	}
	for _, tc := range cases {
		got, err := stats.Percentile(v, tc.p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "p=%g", tc.p)
	}

	// input must stay in caller order
	assert.Equal(t, []float64{4, 1, 3, 2}, v)
}

func TestPercentile_Errors(t *testing.T) {
	_, err := stats.Percentile(nil, 50)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)

	_, err = stats.Percentile([]float64{1}, 101)
	assert.ErrorIs(t, err, stats.ErrBadPercentile)

	_, err = stats.Percentile([]float64{1}, math.NaN())
	assert.ErrorIs(t, err, stats.ErrBadPercentile)

	one, err := stats.Percentile([]float64{7}, 40)
	require.NoError(t, err)
	assert.Equal(t, 7.0, one)
}

func TestPopStdDev(t *testing.T) {
	assert.Equal(t, 0.0, stats.PopStdDev(nil))
	assert.Equal(t, 0.0, stats.PopStdDev([]float64{3, 3, 3}))
	// population (divide by n): values 2,4,4,4,5,5,7,9 -> sd = 2
	assert.InDelta(t, 2.0, stats.PopStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, stats.Mean(nil))
	assert.InDelta(t, 2.5, stats.Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestAverageRanks(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"three-way tie at the top", []float64{5, 5, 5, 2}, []float64{2, 2, 2, 4}},
		{"no ties", []float64{1, 3, 2}, []float64{3, 1, 2}},
		{"tie at the bottom", []float64{9, 0, 0}, []float64{1, 2.5, 2.5}},
		{"all equal", []float64{1, 1, 1, 1}, []float64{2.5, 2.5, 2.5, 2.5}},
		{"single", []float64{42}, []float64{1}},
		{"empty", nil, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stats.AverageRanks(tc.in))
		})
	}
}
