// SPDX-License-Identifier: MIT
// Package table: the Table type, its constructor and read-only accessors.

package table

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/clade"
	"github.com/katalvlaran/abundance/matrix"
	"go.uber.org/zap"
)

// Operation tags used in wrapped errors.
const (
	opNew              = "table.New"
	opRow              = "table.Row"
	opSample           = "table.Sample"
	opFeatureSum       = "table.FeatureSum"
	opSumClades        = "table.SumClades"
	opNormalizeColumns = "table.NormalizeColumnsBySum"
	opNormalizeAnc     = "table.NormalizeByAncestor"
	opFilterOccurrence = "table.FilterByOccurrence"
	opFilterPercentile = "table.FilterByPercentile"
	opFilterStdDev     = "table.FilterByStdDev"
	opRank             = "table.Rank"
	opCladeLevel       = "table.ReduceToCladeLevel"
	opRemoveSamples    = "table.RemoveSamples"
	opStratify         = "table.StratifyByMetadata"
	opPair             = "table.PairTables"
	opTranslate        = "table.TranslateIntoMetadata"
	opAverageAbundance = "table.AverageAbundancePerSample"
)

// Table is an abundance matrix: rows are features (lineage identifiers),
// columns are samples, plus per-sample metadata and a state that records
// which transforms have been applied.
//
// Invariants:
//   - every row has exactly one value per sample;
//   - feature identifiers are unique, sample identifiers are unique;
//   - every metadata row has one value per sample;
//   - values are finite and non-negative.
//
// A Table is not safe for concurrent mutation. Read-only use from several
// goroutines is fine.
type Table struct {
	name         string
	idName       string
	lastMetadata string
	fileDelim    string
	featureDelim string

	samples  []string
	features []string
	index    map[string]int // feature -> row
	data     *matrix.Dense  // len(features) × len(samples)
	metadata map[string][]string

	state       State
	filterState string

	origFeatures int
	origSamples  int

	log *zap.Logger
}

// New builds a Table from sample identifiers, feature identifiers, one row
// of values per feature and per-sample metadata rows.
//
// Implementation:
//   - Stage 1: Validate shape, uniqueness and value domain.
//   - Stage 2: Copy inputs into owned storage.
//   - Stage 3: Resolve state (explicit WithState or inferred).
//
// Inference: the table is normalized iff it has values and none exceeds 1;
// it is summed iff some feature lineage is a prefix of another.
//
// Metadata rows named like the ID row are ignored; samples are authoritative.
func New(samples, features []string, rows [][]float64, metadata map[string][]string, opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(rows) != len(features) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%s: %d features, %d rows", opNew, len(features), len(rows))
	}
	if err := checkUnique(samples, ErrDuplicateSample); err != nil {
		return nil, tableErrorf(opNew, err)
	}
	if err := checkUnique(features, ErrDuplicateFeature); err != nil {
		return nil, tableErrorf(opNew, err)
	}
	for i, row := range rows {
		if len(row) != len(samples) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "%s: feature %q has %d values, want %d",
				opNew, features[i], len(row), len(samples))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return nil, errors.Wrapf(ErrInvalidValue, "%s: feature %q sample %q value %g",
					opNew, features[i], samples[j], v)
			}
		}
	}

	md := make(map[string][]string, len(metadata))
	for key, vals := range metadata {
		if key == o.idName {
			continue
		}
		if len(vals) != len(samples) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "%s: metadata %q has %d values, want %d",
				opNew, key, len(vals), len(samples))
		}
		md[key] = append([]string(nil), vals...)
	}

	data, err := matrix.NewDenseFromRows(rows, len(samples))
	if err != nil {
		return nil, tableErrorf(opNew, err)
	}

	t := &Table{
		name:         o.name,
		idName:       o.idName,
		lastMetadata: o.lastMetadata,
		fileDelim:    o.fileDelim,
		featureDelim: o.featureDelim,
		samples:      append([]string(nil), samples...),
		features:     append([]string(nil), features...),
		data:         data,
		metadata:     md,
		origFeatures: len(features),
		origSamples:  len(samples),
		log:          o.log,
	}
	t.reindex()

	if o.stateSet {
		t.state = o.state
	} else {
		t.state = t.inferState()
	}

	return t, nil
}

func checkUnique(ids []string, sentinel error) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return errors.Wrapf(sentinel, "%q", id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// inferState reads history from content: any lineage prefixing another
// means summed, and values within [0,1] mean normalized. A raw file that
// already lists an ancestor next to its descendant is therefore taken as
// summed, and SumClades leaves it as is; pass WithState(StateRaw) to
// aggregate it.
func (t *Table) inferState() State {
	normalized := len(t.features) > 0 && len(t.samples) > 0 && t.data.Max() <= 1
	summed := len(clade.TerminalNodes(t.features, t.featureDelim)) != len(t.features)

	switch {
	case summed && normalized:
		return StateSummedNormalized
	case summed:
		return StateSummed
	case normalized:
		return StateNormalized
	default:
		return StateRaw
	}
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.features))
	for i, f := range t.features {
		t.index[f] = i
	}
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// SetName renames the table.
func (t *Table) SetName(name string) { t.name = name }

// IDName returns the name of the sample-identifier metadata row.
func (t *Table) IDName() string { return t.idName }

// LastMetadata returns the name of the metadata row that closes the header.
func (t *Table) LastMetadata() string { return t.lastMetadata }

// FileDelimiter returns the column separator used for serialization.
func (t *Table) FileDelimiter() string { return t.fileDelim }

// FeatureDelimiter returns the lineage separator.
func (t *Table) FeatureDelimiter() string { return t.featureDelim }

// State returns the table's transform history.
func (t *Table) State() State { return t.state }

// IsSummed reports whether clades have been aggregated.
func (t *Table) IsSummed() bool { return t.state.IsSummed() }

// IsNormalized reports whether values are proportions.
func (t *Table) IsNormalized() bool { return t.state.IsNormalized() }

// FilterState returns the accumulated record of successful filters.
func (t *Table) FilterState() string { return t.filterState }

// FeatureCount returns the number of rows.
func (t *Table) FeatureCount() int { return len(t.features) }

// SampleCount returns the number of columns.
func (t *Table) SampleCount() int { return len(t.samples) }

// OriginalFeatureCount returns the row count at construction time.
func (t *Table) OriginalFeatureCount() int { return t.origFeatures }

// OriginalSampleCount returns the column count at construction time.
func (t *Table) OriginalSampleCount() int { return t.origSamples }

// Samples returns a copy of the sample identifiers in column order.
func (t *Table) Samples() []string { return append([]string(nil), t.samples...) }

// Features returns a copy of the feature identifiers in row order.
func (t *Table) Features() []string { return append([]string(nil), t.features...) }

// HasFeature reports whether id names a row.
func (t *Table) HasFeature(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Row returns a copy of the values of feature id.
func (t *Table) Row(id string) ([]float64, error) {
	i, ok := t.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFeature, "%s: %q", opRow, id)
	}

	return t.data.Row(i)
}

// Sample returns a copy of the column of sample id.
func (t *Table) Sample(id string) ([]float64, error) {
	j := indexOf(t.samples, id)
	if j < 0 {
		return nil, errors.Wrapf(ErrUnknownSample, "%s: %q", opSample, id)
	}

	return t.data.Col(j)
}

// Data returns a copy of the value matrix.
func (t *Table) Data() *matrix.Dense { return t.data.CloneDense() }

// ToArray returns a copy of the values as one slice per feature.
func (t *Table) ToArray() [][]float64 { return t.data.ToRows() }

// MetadataNames returns the names of the metadata rows, ID row excluded,
// sorted.
func (t *Table) MetadataNames() []string {
	names := make([]string, 0, len(t.metadata))
	for k := range t.metadata {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Metadata returns a copy of the metadata row key. The ID row name returns
// the sample identifiers.
func (t *Table) Metadata(key string) ([]string, bool) {
	if key == t.idName {
		return t.Samples(), true
	}
	vals, ok := t.metadata[key]
	if !ok {
		return nil, false
	}

	return append([]string(nil), vals...), true
}

// MetadataCopy returns a deep copy of all metadata rows, ID row excluded.
func (t *Table) MetadataCopy() map[string][]string {
	out := make(map[string][]string, len(t.metadata))
	for k, v := range t.metadata {
		out[k] = append([]string(nil), v...)
	}

	return out
}

// Clone returns a deep copy of t sharing only the logger.
func (t *Table) Clone() *Table {
	c := *t
	c.samples = t.Samples()
	c.features = t.Features()
	c.data = t.data.CloneDense()
	c.metadata = t.MetadataCopy()
	c.reindex()

	return &c
}

// String summarizes the table for humans.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table %q\n", t.name)
	fmt.Fprintf(&b, "  features: %d (originally %d)\n", len(t.features), t.origFeatures)
	fmt.Fprintf(&b, "  samples:  %d (originally %d)\n", len(t.samples), t.origSamples)
	fmt.Fprintf(&b, "  state:    %s\n", t.state)
	fmt.Fprintf(&b, "  id row:   %s\n", t.idName)
	if t.lastMetadata != "" {
		fmt.Fprintf(&b, "  last metadata: %s\n", t.lastMetadata)
	}
	if len(t.metadata) > 0 {
		fmt.Fprintf(&b, "  metadata: %s\n", strings.Join(t.MetadataNames(), ", "))
	}
	if t.filterState != "" {
		fmt.Fprintf(&b, "  filters:  %s\n", t.filterState)
	}

	return b.String()
}

// derive returns a table carrying t's configuration and history around new
// content. Inputs are owned by the result.
func (t *Table) derive(name string, samples, features []string, data *matrix.Dense, metadata map[string][]string) *Table {
	d := &Table{
		name:         name,
		idName:       t.idName,
		lastMetadata: t.lastMetadata,
		fileDelim:    t.fileDelim,
		featureDelim: t.featureDelim,
		samples:      samples,
		features:     features,
		data:         data,
		metadata:     metadata,
		state:        t.state,
		filterState:  t.filterState,
		origFeatures: len(features),
		origSamples:  len(samples),
		log:          t.log,
	}
	d.reindex()

	return d
}

// suffixName inserts suffix before the extension of name, if any.
func suffixName(name, suffix string) string {
	ext := filepath.Ext(name)

	return strings.TrimSuffix(name, ext) + suffix + ext
}

func indexOf(ids []string, id string) int {
	for i, s := range ids {
		if s == id {
			return i
		}
	}

	return -1
}
