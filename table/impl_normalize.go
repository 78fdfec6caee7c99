// SPDX-License-Identifier: MIT
// Package table: normalization.

package table

import (
	"github.com/katalvlaran/abundance/clade"
	"github.com/katalvlaran/abundance/matrix"
	"go.uber.org/zap"
)

// Normalize picks the strategy matching the table's history:
// NormalizeByAncestor for summed tables, NormalizeColumnsBySum otherwise.
func (t *Table) Normalize() error {
	if t.state.IsSummed() {
		return t.NormalizeByAncestor()
	}

	return t.NormalizeColumnsBySum()
}

// NormalizeColumnsBySum divides every value by its column total, so each
// sample sums to 1. Columns totalling 0 stay 0.
//
// Fails with ErrAlreadyNormalized on a normalized table and with
// ErrSummedTable on a summed one (use NormalizeByAncestor). On failure the
// table is unchanged.
func (t *Table) NormalizeColumnsBySum() error {
	next, err := t.state.next(toColumnNormalized)
	if err != nil {
		t.rejected(opNormalizeColumns, err)
		return tableErrorf(opNormalizeColumns, err)
	}

	out, totals, err := matrix.NormalizeColumnsL1(t.data)
	if err != nil {
		return tableErrorf(opNormalizeColumns, err)
	}

	t.log.Debug("columns normalized",
		zap.String("table", t.name),
		zap.Float64s("totals", totals),
	)
	t.data = out.(*matrix.Dense)
	t.state = next

	return nil
}

// NormalizeByAncestor divides every row by its root reference: the row
// sharing its first lineage segment with the fewest segments. The reference
// itself becomes 1 (or 0 where it was 0). An unsummed table is summed first.
//
// Fails with ErrAlreadyNormalized on a normalized table, leaving it unchanged.
//
// Complexity: O(F·S) after summing.
func (t *Table) NormalizeByAncestor() error {
	next, err := t.state.next(toAncestorNormalized)
	if err != nil {
		t.rejected(opNormalizeAnc, err)
		return tableErrorf(opNormalizeAnc, err)
	}
	if !t.state.IsSummed() {
		if err = t.SumClades(); err != nil {
			return tableErrorf(opNormalizeAnc, err)
		}
	}

	paths := make([][]string, len(t.features))
	for i, f := range t.features {
		paths[i] = clade.Split(f, t.featureDelim)
	}
	refs := clade.RootReferences(paths)

	r, c := t.data.Rows(), t.data.Cols()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return tableErrorf(opNormalizeAnc, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		row, _ := t.data.RowView(i)
		ref, _ := t.data.RowView(refs[i])
		dst, _ := out.RowView(i)
		for j = 0; j < c; j++ {
			if ref[j] > 0 {
				dst[j] = row[j] / ref[j]
			}
		}
	}

	t.log.Debug("normalized by ancestor", zap.String("table", t.name), zap.Int("features", r))
	t.data = out
	t.state = next

	return nil
}

// rejected logs an invalid transition.
func (t *Table) rejected(op string, err error) {
	t.log.Warn("invalid transition",
		zap.String("table", t.name),
		zap.String("op", op),
		zap.Stringer("state", t.state),
		zap.Error(err),
	)
}
