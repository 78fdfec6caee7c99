package pcl_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/abundance/pcl"
	"github.com/katalvlaran/abundance/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "ID\ts1\ts2\ts3\n" +
	"Subject\tp1\t\tp3\n" +
	"Group\ta\tb\ta\n" +
	"A|B\t1\t0\t3\n" +
	"A|C\t2\t\t0.5\n"

func TestRead(t *testing.T) {
	tb, err := pcl.Read(strings.NewReader(sample), pcl.WithLastMetadata("Group"), pcl.WithName("x.pcl"))
	require.NoError(t, err)

	assert.Equal(t, "x.pcl", tb.Name())
	assert.Equal(t, "ID", tb.IDName())
	assert.Equal(t, "Group", tb.LastMetadata())
	assert.Equal(t, []string{"s1", "s2", "s3"}, tb.Samples())
	assert.Equal(t, []string{"A|B", "A|C"}, tb.Features())
	assert.Equal(t, [][]float64{{1, 0, 3}, {2, 0, 0.5}}, tb.ToArray())

	subj, ok := tb.Metadata("Subject")
	require.True(t, ok)
	assert.Equal(t, []string{"p1", "NA", "p3"}, subj)
	assert.Equal(t, table.StateRaw, tb.State())
}

func TestRead_AncestorRowsInferSummed(t *testing.T) {
	in := "ID\ts1\ts2\nA\t2\t5\nA|B\t2\t5\nC\t3\t0\n"
	tb, err := pcl.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, table.StateSummed, tb.State())

	require.NoError(t, tb.SumClades())
	assert.Equal(t, []string{"A", "A|B", "C"}, tb.Features())
}

func TestRead_FirstRowOnlyWithoutLastMetadata(t *testing.T) {
	in := "SampleID\ta\tb\nX\t1\t2\n"
	tb, err := pcl.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "SampleID", tb.IDName())
	assert.Empty(t, tb.MetadataNames())
	assert.Equal(t, []string{"X"}, tb.Features())
}

func TestRead_NamedIDRow(t *testing.T) {
	in := "Group\tx\ty\nSample\ta\tb\nF\t1\t2\n"
	tb, err := pcl.Read(strings.NewReader(in), pcl.WithIDName("Sample"), pcl.WithLastMetadata("Sample"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.Samples())
	grp, _ := tb.Metadata("Group")
	assert.Equal(t, []string{"x", "y"}, grp)
}

func TestRead_PadsShortRows(t *testing.T) {
	in := "ID\ta\tb\tc\nG\tx\nF\t1\n"
	tb, err := pcl.Read(strings.NewReader(in), pcl.WithLastMetadata("G"), pcl.WithMissingAbundance(0))
	require.NoError(t, err)
	g, _ := tb.Metadata("G")
	assert.Equal(t, []string{"x", "NA", "NA"}, g)
	assert.Equal(t, [][]float64{{1, 0, 0}}, tb.ToArray())
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []pcl.Option
		want error
	}{
		{"empty", "", nil, pcl.ErrMissingIDRow},
		{"bad number", "ID\ta\nF\tx1\n", nil, pcl.ErrMalformedValue},
		{"missing last metadata", "ID\ta\nF\t1\n", []pcl.Option{pcl.WithLastMetadata("Group")}, pcl.ErrMissingLastMetadata},
		{"missing id row", "ID\ta\nF\t1\n", []pcl.Option{pcl.WithIDName("Sample")}, pcl.ErrMissingIDRow},
		{"ragged", "ID\ta\nF\t1\t2\n", nil, pcl.ErrRaggedRow},
		{"duplicate feature", "ID\ta\nF\t1\nF\t2\n", nil, table.ErrDuplicateFeature},
		{"negative", "ID\ta\nF\t-1\n", nil, table.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pcl.Read(strings.NewReader(tc.in), tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_TrailingDelimiterTolerated(t *testing.T) {
	tb, err := pcl.Read(strings.NewReader("ID\ta\tb\nF\t1\t2\t\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}}, tb.ToArray())
}

func TestWrite_Order(t *testing.T) {
	tb, err := table.New(
		[]string{"s1", "s2"},
		[]string{"B", "A"},
		[][]float64{{1.5, 0}, {2, 10}},
		map[string][]string{"Zeta": {"z1", "z2"}, "Alpha": {"a1", "a2"}, "Last": {"l1", "l2"}},
		table.WithLastMetadata("Last"),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pcl.Write(&buf, tb))
	assert.Equal(t,
		"ID\ts1\ts2\n"+
			"Alpha\ta1\ta2\n"+
			"Zeta\tz1\tz2\n"+
			"Last\tl1\tl2\n"+
			"B\t1.5\t0\n"+
			"A\t2\t10\n",
		buf.String())
}

func TestRoundTrip_File(t *testing.T) {
	orig, err := pcl.Read(strings.NewReader(sample), pcl.WithLastMetadata("Group"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "round.pcl")
	require.NoError(t, pcl.WriteFile(path, orig))

	back, err := pcl.ReadFile(path, pcl.WithLastMetadata("Group"))
	require.NoError(t, err)

	assert.Equal(t, "round.pcl", back.Name())
	assert.Equal(t, orig.Samples(), back.Samples())
	assert.Equal(t, orig.Features(), back.Features())
	assert.Equal(t, orig.ToArray(), back.ToArray())
	assert.Equal(t, orig.MetadataCopy(), back.MetadataCopy())
}

func TestCustomDelimiter(t *testing.T) {
	tb, err := pcl.Read(strings.NewReader("ID,a,b\nF;G,1,2\n"), pcl.WithDelimiter(","), pcl.WithFeatureDelimiter(";"))
	require.NoError(t, err)
	assert.Equal(t, ",", tb.FileDelimiter())
	assert.Equal(t, ";", tb.FeatureDelimiter())

	var buf bytes.Buffer
	require.NoError(t, pcl.Write(&buf, tb))
	assert.Equal(t, "ID,a,b\nF;G,1,2\n", buf.String())

	assert.Panics(t, func() { pcl.WithDelimiter("::") })
}
