package table_test

import (
	"fmt"

	"github.com/katalvlaran/abundance/table"
)

// ExampleTable_NormalizeByAncestor sums a two-leaf lineage and expresses
// each clade relative to its root.
func ExampleTable_NormalizeByAncestor() {
	tb, err := table.New(
		[]string{"s1", "s2"},
		[]string{"Bacteria|Firmicutes", "Bacteria|Bacteroidetes"},
		[][]float64{{30, 10}, {10, 30}},
		nil,
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = tb.NormalizeByAncestor(); err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range tb.Features() {
		row, _ := tb.Row(f)
		fmt.Println(f, row)
	}
	fmt.Println(tb.State())
	// Output:
	// Bacteria [1 1]
	// Bacteria|Bacteroidetes [0.25 0.75]
	// Bacteria|Firmicutes [0.75 0.25]
	// summed+normalized
}
