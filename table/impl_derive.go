// SPDX-License-Identifier: MIT
// Package table: derived tables and structural edits.
// Derivations return new tables with deep-copied content. Structural edits
// (ReduceToCladeLevel, RemoveSamples*) mutate the receiver and leave it
// untouched on error.

package table

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/clade"
	"go.uber.org/zap"
)

// FeatureSubset returns a new table holding the rows named in ids, in the
// receiver's row order. Unknown identifiers are ignored. The result is
// named with a "-<n>-Features" suffix, n being len(ids).
func (t *Table) FeatureSubset(ids []string) (*Table, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	keep := make([]bool, len(t.features))
	for i, f := range t.features {
		_, keep[i] = want[f]
	}

	return t.keepRows(suffixName(t.name, "-"+strconv.Itoa(len(ids))+"-Features"), keep)
}

// WithoutOTUs returns a new table without the features whose last lineage
// segment is an integer (terminal OTU identifiers).
func (t *Table) WithoutOTUs() (*Table, error) {
	keep := make([]bool, len(t.features))
	for i, f := range t.features {
		keep[i] = !isOTU(clade.Split(f, t.featureDelim))
	}

	return t.keepRows(t.name, keep)
}

// TerminalOnly returns a new table restricted to TerminalNodes.
func (t *Table) TerminalOnly() (*Table, error) {
	return t.FeatureSubset(t.TerminalNodes())
}

func isOTU(path []string) bool {
	if len(path) == 0 {
		return false
	}
	_, err := strconv.Atoi(path[len(path)-1])

	return err == nil
}

func (t *Table) keepRows(name string, keep []bool) (*Table, error) {
	data, err := t.data.CompressRows(keep)
	if err != nil {
		return nil, err
	}
	features := make([]string, 0, data.Rows())
	for i, f := range t.features {
		if keep[i] {
			features = append(features, f)
		}
	}

	return t.derive(name, t.Samples(), features, data, t.MetadataCopy()), nil
}

// ReduceToCladeLevel keeps only features with at most level lineage
// segments. level < 1 fails with ErrBadCladeLevel.
func (t *Table) ReduceToCladeLevel(level int) error {
	if level < 1 {
		return errors.Wrapf(ErrBadCladeLevel, "%s: level=%d", opCladeLevel, level)
	}

	keep := make([]bool, len(t.features))
	for i, f := range t.features {
		keep[i] = clade.Depth(f, t.featureDelim) <= level
	}

	return t.compress(opCladeLevel, keep, ":cladeLevel="+strconv.Itoa(level))
}

// RemoveSamples drops the named sample columns and their metadata values.
// Any unknown name fails with ErrUnknownSample before anything changes.
func (t *Table) RemoveSamples(ids []string) error {
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		j := indexOf(t.samples, id)
		if j < 0 {
			return errors.Wrapf(ErrUnknownSample, "%s: %q", opRemoveSamples, id)
		}
		drop[j] = struct{}{}
	}

	keep := make([]int, 0, len(t.samples)-len(drop))
	for j := range t.samples {
		if _, ok := drop[j]; !ok {
			keep = append(keep, j)
		}
	}

	return t.keepColumns(keep)
}

// RemoveSamplesByMetadata drops every sample whose metadata key holds one of
// values. An unknown key fails with ErrUnknownMetadata.
func (t *Table) RemoveSamplesByMetadata(key string, values []string) error {
	row, ok := t.Metadata(key)
	if !ok {
		return errors.Wrapf(ErrUnknownMetadata, "%s: %q", opRemoveSamples, key)
	}
	drop := make(map[string]struct{}, len(values))
	for _, v := range values {
		drop[v] = struct{}{}
	}

	var ids []string
	for j, v := range row {
		if _, ok := drop[v]; ok {
			ids = append(ids, t.samples[j])
		}
	}

	return t.RemoveSamples(ids)
}

func (t *Table) keepColumns(cols []int) error {
	data, err := t.data.SelectCols(cols)
	if err != nil {
		return tableErrorf(opRemoveSamples, err)
	}

	t.log.Debug("samples removed",
		zap.String("table", t.name),
		zap.Int("before", len(t.samples)),
		zap.Int("after", len(cols)),
	)

	t.samples = pick(t.samples, cols)
	for k, vals := range t.metadata {
		t.metadata[k] = pick(vals, cols)
	}
	t.data = data

	return nil
}

// StratifyByMetadata splits the table into one new table per distinct value
// of metadata key, in sorted value order. Each is named with a
// "-StratBy-<value>" suffix, path separators in value replaced by '_'.
// An unknown key fails with ErrUnknownMetadata.
func (t *Table) StratifyByMetadata(key string) ([]*Table, error) {
	row, ok := t.Metadata(key)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMetadata, "%s: %q", opStratify, key)
	}

	groups := make(map[string][]int)
	for j, v := range row {
		groups[v] = append(groups[v], j)
	}
	values := make([]string, 0, len(groups))
	for v := range groups {
		values = append(values, v)
	}
	sort.Strings(values)

	out := make([]*Table, 0, len(values))
	for _, v := range values {
		cols := groups[v]
		data, err := t.data.SelectCols(cols)
		if err != nil {
			return nil, tableErrorf(opStratify, err)
		}
		md := make(map[string][]string, len(t.metadata))
		for k, vals := range t.metadata {
			md[k] = pick(vals, cols)
		}
		out = append(out, t.derive(suffixName(t.name, "-StratBy-"+pathSafe.Replace(v)), pick(t.samples, cols), t.Features(), data, md))
	}

	return out, nil
}

var pathSafe = strings.NewReplacer("/", "_", "\\", "_")

func pick(vals []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = vals[j]
	}

	return out
}
