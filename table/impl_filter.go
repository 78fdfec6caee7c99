// SPDX-License-Identifier: MIT
// Package table: row filters.
// Every filter builds a keep-mask over rows and compresses the table in
// place. A filter that changes nothing still records itself in FilterState
// unless its parameters make it a no-op.

package table

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/stats"
	"go.uber.org/zap"
)

// FilterByOccurrence keeps features that reach minValue in at least
// minSamples samples. minValue == 0 or minSamples == 0 is a no-op.
//
// Requires counts: a normalized table fails with ErrNormalizedCounts.
// Negative or non-finite parameters fail with ErrBadParameter.
//
// Complexity: O(F·S).
func (t *Table) FilterByOccurrence(minValue float64, minSamples int) error {
	if math.IsNaN(minValue) || math.IsInf(minValue, 0) || minValue < 0 || minSamples < 0 {
		return errors.Wrapf(ErrBadParameter, "%s: minValue=%g minSamples=%d", opFilterOccurrence, minValue, minSamples)
	}
	if minValue == 0 || minSamples == 0 {
		return nil
	}
	if _, err := t.state.next(countFilter); err != nil {
		t.rejected(opFilterOccurrence, err)
		return tableErrorf(opFilterOccurrence, err)
	}

	keep := make([]bool, len(t.features))
	for i := range t.features {
		row, _ := t.data.RowView(i)
		var hits int
		for _, v := range row {
			if v >= minValue {
				hits++
			}
		}
		keep[i] = hits >= minSamples
	}

	return t.compress(opFilterOccurrence, keep,
		":minValue="+formatFloat(minValue)+",minSamples="+strconv.Itoa(minSamples))
}

// FilterByPercentile keeps features that are at or above their sample's
// cutoff percentile in at least percentage percent of samples. Thresholds
// use linear interpolation between closest ranks.
//
// Either parameter at 0 is a no-op; both must lie within [0,100].
//
// Complexity: O(S·F log F) for thresholds, O(F·S) for the mask.
func (t *Table) FilterByPercentile(cutoff, percentage float64) error {
	if !inPercentRange(cutoff) || !inPercentRange(percentage) {
		return errors.Wrapf(ErrBadParameter, "%s: cutoff=%g percentage=%g", opFilterPercentile, cutoff, percentage)
	}
	if cutoff == 0 || percentage == 0 || len(t.features) == 0 || len(t.samples) == 0 {
		return nil
	}

	thresholds := make([]float64, len(t.samples))
	for j := range t.samples {
		col, err := t.data.Col(j)
		if err != nil {
			return tableErrorf(opFilterPercentile, err)
		}
		if thresholds[j], err = stats.Percentile(col, cutoff); err != nil {
			return tableErrorf(opFilterPercentile, err)
		}
	}

	need := percentage / 100
	n := float64(len(t.samples))
	keep := make([]bool, len(t.features))
	for i := range t.features {
		row, _ := t.data.RowView(i)
		var above int
		for j, v := range row {
			if v >= thresholds[j] {
				above++
			}
		}
		keep[i] = float64(above)/n >= need
	}

	return t.compress(opFilterPercentile, keep,
		":percentileCutoff="+formatFloat(cutoff)+",percentageAbovePercentile="+formatFloat(percentage))
}

// FilterByStdDev keeps features whose population standard deviation across
// samples is at least minSD. minSD == 0 is a no-op; negative fails with
// ErrBadParameter.
//
// Complexity: O(F·S).
func (t *Table) FilterByStdDev(minSD float64) error {
	if math.IsNaN(minSD) || math.IsInf(minSD, 0) || minSD < 0 {
		return errors.Wrapf(ErrBadParameter, "%s: minSD=%g", opFilterStdDev, minSD)
	}
	if minSD == 0 {
		return nil
	}

	keep := make([]bool, len(t.features))
	for i := range t.features {
		row, _ := t.data.RowView(i)
		keep[i] = stats.PopStdDev(row) >= minSD
	}

	return t.compress(opFilterStdDev, keep, ":minStdDev="+formatFloat(minSD))
}

// compress drops rows whose keep flag is false and records token.
func (t *Table) compress(op string, keep []bool, token string) error {
	data, err := t.data.CompressRows(keep)
	if err != nil {
		return tableErrorf(op, err)
	}

	features := make([]string, 0, data.Rows())
	for i, f := range t.features {
		if keep[i] {
			features = append(features, f)
		}
	}

	t.log.Debug("rows filtered",
		zap.String("table", t.name),
		zap.String("op", op),
		zap.Int("before", len(t.features)),
		zap.Int("after", len(features)),
	)

	t.features = features
	t.data = data
	t.filterState += token
	t.reindex()

	return nil
}

func inPercentRange(p float64) bool { return !math.IsNaN(p) && p >= 0 && p <= 100 }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
