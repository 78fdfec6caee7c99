// SPDX-License-Identifier: MIT
// Package table: clade aggregation.

package table

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/clade"
	"github.com/katalvlaran/abundance/matrix"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// SumClades materializes every ancestor clade implied by the feature
// lineages and removes ancestors that carry no information of their own.
//
// Implementation:
//   - Stage 1: Attach every row to its lineage in a clade.Tree, keeping
//     per-sample totals for diagnostics.
//   - Stage 2: Impute missing ancestors as the sum of their children;
//     observed ancestors keep their values.
//   - Stage 3: Over a sorted snapshot of all clades, drop every ancestor
//     whose vector equals that of any single descendant.
//   - Stage 4: Rebuild rows in ascending identifier order.
//
// Feature identifiers come out canonical (empty segments removed). Two
// input identifiers with the same canonical lineage collapse, the later
// row winning.
//
// A summed table is left unchanged. Summing a column-normalized table is
// allowed and yields StateSummedNormalized.
//
// Complexity: O(F·D·S) for F features of depth ≤ D over S samples, plus the
// sort.
func (t *Table) SumClades() error {
	if t.state.IsSummed() {
		return nil
	}
	next, err := t.state.next(toSummed)
	if err != nil {
		return tableErrorf(opSumClades, err)
	}

	// Stage 1: lineage tree.
	tree := clade.NewTree(t.featureDelim)
	totals := make([]float64, len(t.samples))
	for i, f := range t.features {
		path := clade.Split(f, t.featureDelim)
		if len(path) == 0 {
			return errors.Wrapf(ErrEmptyLineage, "%s: %q", opSumClades, f)
		}
		node, err := tree.GetOrCreate(path)
		if err != nil {
			return tableErrorf(opSumClades, err)
		}
		row, err := t.data.RowView(i)
		if err != nil {
			return tableErrorf(opSumClades, err)
		}
		if err = tree.SetVector(node, row); err != nil {
			return tableErrorf(opSumClades, err)
		}
		floats.Add(totals, row)
	}

	// Stage 2: imputation.
	tree.Impute()
	snapshot := tree.Flatten(clade.AllLevels, false)

	// Stage 3: pruning. Comparisons read the immutable snapshot; removals
	// go to a separate working set.
	names := make([]string, 0, len(snapshot))
	for k := range snapshot {
		names = append(names, k)
	}
	sort.Strings(names)

	keep := make(map[string]struct{}, len(names))
	for _, k := range names {
		keep[k] = struct{}{}
	}
	for _, k := range names {
		vec := snapshot[k]
		for _, anc := range clade.Ancestors(clade.Split(k, t.featureDelim)) {
			ak := clade.Join(anc, t.featureDelim)
			if av, ok := snapshot[ak]; ok && floats.Equal(av, vec) {
				delete(keep, ak)
			}
		}
	}

	// Stage 4: rebuild.
	features := make([]string, 0, len(keep))
	for _, k := range names {
		if _, ok := keep[k]; ok {
			features = append(features, k)
		}
	}
	rows := make([][]float64, len(features))
	for i, k := range features {
		rows[i] = snapshot[k]
	}
	data, err := matrix.NewDenseFromRows(rows, len(t.samples))
	if err != nil {
		return tableErrorf(opSumClades, err)
	}

	t.log.Debug("clades summed",
		zap.String("table", t.name),
		zap.Int("features_in", len(t.features)),
		zap.Int("clades", len(names)),
		zap.Int("features_out", len(features)),
		zap.Float64s("sample_totals", totals),
	)

	t.features = features
	t.data = data
	t.state = next
	t.reindex()

	return nil
}
