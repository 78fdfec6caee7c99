package table

import (
	"github.com/katalvlaran/abundance/matrix"
	"github.com/katalvlaran/abundance/stats"
)

// Rank returns a new table in which every value is replaced by its rank
// within its sample: 1 for the largest, tied values sharing the mean of the
// positions they span. The source table is not modified; the result keeps
// the source state and filter history and gains the "-Ranked" name suffix.
//
// Complexity: O(S·F log F).
func (t *Table) Rank() (*Table, error) {
	r, c := t.data.Rows(), t.data.Cols()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, tableErrorf(opRank, err)
	}

	for j := 0; j < c; j++ {
		col, err := t.data.Col(j)
		if err != nil {
			return nil, tableErrorf(opRank, err)
		}
		if err = out.SetCol(j, stats.AverageRanks(col)); err != nil {
			return nil, tableErrorf(opRank, err)
		}
	}

	return t.derive(suffixName(t.name, "-Ranked"), t.Samples(), t.Features(), out, t.MetadataCopy()), nil
}
