package table

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/clade"
	"github.com/katalvlaran/abundance/stats"
	"gonum.org/v1/gonum/floats"
)

// SampleAverage pairs a sample with an average abundance.
type SampleAverage struct {
	Sample  string
	Average float64
}

// TerminalNodes returns the features whose lineage is not a prefix of any
// other feature's lineage, in row order.
func (t *Table) TerminalNodes() []string {
	return clade.TerminalNodes(t.features, t.featureDelim)
}

// FeatureSum returns the total of feature id across samples.
func (t *Table) FeatureSum(id string) (float64, error) {
	i, ok := t.index[id]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownFeature, "%s: %q", opFeatureSum, id)
	}
	row, _ := t.data.RowView(i)

	return floats.Sum(row), nil
}

// AverageSample returns, per feature, the mean value across samples.
func (t *Table) AverageSample() []float64 {
	out := make([]float64, len(t.features))
	for i := range t.features {
		row, _ := t.data.RowView(i)
		out[i] = stats.Mean(row)
	}

	return out
}

// AverageAbundancePerSample returns, per sample, the mean of the given
// features, sorted by decreasing average (ties keep sample order).
// Unknown features fail with ErrUnknownFeature.
func (t *Table) AverageAbundancePerSample(ids []string) ([]SampleAverage, error) {
	rows := make([]int, len(ids))
	for k, id := range ids {
		i, ok := t.index[id]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownFeature, "%s: %q", opAverageAbundance, id)
		}
		rows[k] = i
	}

	out := make([]SampleAverage, len(t.samples))
	vals := make([]float64, len(rows))
	for j, s := range t.samples {
		for k, i := range rows {
			vals[k], _ = t.data.At(i, j)
		}
		out[j] = SampleAverage{Sample: s, Average: stats.Mean(vals)}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Average > out[b].Average })

	return out, nil
}

// IsPrimaryIDMetadata reports whether metadata key exists and holds a
// distinct value for every sample.
func (t *Table) IsPrimaryIDMetadata(key string) bool {
	vals, ok := t.Metadata(key)
	if !ok {
		return false
	}

	return checkUnique(vals, ErrNotPrimaryID) == nil
}

// TranslateIntoMetadata maps values of metadata row from onto the same
// samples' values of metadata row to. When fromPrimary is set, from must
// hold unique values (ErrNotPrimaryID otherwise). Values absent from from
// fail with ErrUnknownMetadataValue; for non-unique rows the first matching
// sample wins.
func (t *Table) TranslateIntoMetadata(values []string, from, to string, fromPrimary bool) ([]string, error) {
	src, ok := t.Metadata(from)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMetadata, "%s: %q", opTranslate, from)
	}
	dst, ok := t.Metadata(to)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMetadata, "%s: %q", opTranslate, to)
	}
	if fromPrimary && !t.IsPrimaryIDMetadata(from) {
		return nil, errors.Wrapf(ErrNotPrimaryID, "%s: %q", opTranslate, from)
	}

	out := make([]string, len(values))
	for k, v := range values {
		j := indexOf(src, v)
		if j < 0 {
			return nil, errors.Wrapf(ErrUnknownMetadataValue, "%s: %q in %q", opTranslate, v, from)
		}
		out[k] = dst[j]
	}

	return out, nil
}
