package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyInput is returned when a kernel needs at least one value.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrBadPercentile is returned for a percentile outside [0,100] or NaN.
	ErrBadPercentile = errors.New("stats: percentile must be within [0,100]")
)

// Percentile returns the value at percentile p (0..100) of v using linear
// interpolation between the two closest ranks (the R-7 estimator, also the
// default of numpy/scipy). v is not modified.
//
// For n values sorted ascending, h = (n-1)*p/100 and the result is
// v[⌊h⌋] + (h-⌊h⌋)*(v[⌊h⌋+1]-v[⌊h⌋]).
func Percentile(v []float64, p float64) (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmptyInput
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, errors.Wrapf(ErrBadPercentile, "p=%g", p)
	}

	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p / 100
	i := int(math.Floor(h))
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}

	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i]), nil
}

// PopStdDev returns the population standard deviation of v (divisor n).
// An empty slice has deviation 0.
func PopStdDev(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return stat.PopStdDev(v, nil)
}

// Mean returns the arithmetic mean of v, or 0 for an empty slice.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return stat.Mean(v, nil)
}

// AverageRanks ranks v in descending order (1 = largest) and resolves ties
// by averaging: a run of k equal values ending at 1-indexed position p gets
// ((p-k+1)+p)/2 for every member. An untied value keeps its ordinal rank.
//
// The result is aligned with v: out[i] is the rank of v[i].
func AverageRanks(v []float64) []float64 {
	n := len(v)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return v[order[a]] > v[order[b]] })

	// start is the 0-indexed position where the current tie run begins.
	start := 0
	for pos := 1; pos <= n; pos++ {
		if pos < n && v[order[pos]] == v[order[start]] {
			continue
		}
		// run occupies 1-indexed positions start+1 .. pos
		rank := float64((start+1)+pos) / 2
		for _, idx := range order[start:pos] {
			out[idx] = rank
		}
		start = pos
	}

	return out
}
