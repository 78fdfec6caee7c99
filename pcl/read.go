// SPDX-License-Identifier: MIT

package pcl

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/table"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrMalformedValue indicates a measurement cell that is not a number.
	ErrMalformedValue = errors.New("pcl: malformed measurement")

	// ErrMissingIDRow indicates no sample-id row could be found.
	ErrMissingIDRow = errors.New("pcl: missing sample-id row")

	// ErrMissingLastMetadata indicates the named last metadata row never appears.
	ErrMissingLastMetadata = errors.New("pcl: last metadata row not found")

	// ErrRaggedRow indicates a row with more cells than there are samples.
	ErrRaggedRow = errors.New("pcl: row longer than sample-id row")
)

// record is one input line with its position in the source.
type record struct {
	line  int
	cells []string
}

// Read parses a table from r.
func Read(r io.Reader, opts ...Option) (*table.Table, error) {
	o := defaultReadOptions()
	for _, opt := range opts {
		opt(&o)
	}

	recs, err := readRecords(r, o.delim)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.Wrap(ErrMissingIDRow, "pcl.Read: empty input")
	}

	// Header block: rows 0..last inclusive.
	last := 0
	if o.lastMetadata != "" {
		last = -1
		for i, rec := range recs {
			if rowName(rec) == o.lastMetadata {
				last = i
				break
			}
		}
		if last < 0 {
			return nil, errors.Wrapf(ErrMissingLastMetadata, "pcl.Read: %q", o.lastMetadata)
		}
	}
	header, body := recs[:last+1], recs[last+1:]

	idRow := -1
	if o.idName == "" {
		idRow = 0
	} else {
		for i, rec := range header {
			if rowName(rec) == o.idName {
				idRow = i
				break
			}
		}
	}
	if idRow < 0 {
		return nil, errors.Wrapf(ErrMissingIDRow, "pcl.Read: %q", o.idName)
	}

	idName := rowName(header[idRow])
	if idName == "" {
		idName = table.DefaultIDName
	}
	samples := trimAll(header[idRow].cells[1:])
	width := len(samples)

	metadata := make(map[string][]string, len(header)-1)
	for i, rec := range header {
		if i == idRow {
			continue
		}
		vals, err := padCells(rec, width, o.missingMetadata)
		if err != nil {
			return nil, err
		}
		metadata[rowName(rec)] = vals
	}

	features := make([]string, 0, len(body))
	rows := make([][]float64, 0, len(body))
	for _, rec := range body {
		cells, err := padCells(rec, width, "")
		if err != nil {
			return nil, err
		}
		row := make([]float64, width)
		for j, c := range cells {
			if c == "" {
				row[j] = o.missingAbundance
				continue
			}
			if row[j], err = strconv.ParseFloat(c, 64); err != nil {
				return nil, errors.Wrapf(ErrMalformedValue, "pcl.Read: line %d column %d: %q", rec.line, j+2, c)
			}
		}
		features = append(features, rowName(rec))
		rows = append(rows, row)
	}

	t, err := table.New(samples, features, rows, metadata,
		table.WithName(o.name),
		table.WithIDName(idName),
		table.WithLastMetadata(o.lastMetadata),
		table.WithFileDelimiter(string(o.delim)),
		table.WithFeatureDelimiter(o.featureDelim),
		table.WithLogger(o.log),
	)
	if err != nil {
		return nil, errors.Wrap(err, "pcl.Read")
	}

	o.log.Debug("table read",
		zap.String("name", o.name),
		zap.Int("features", t.FeatureCount()),
		zap.Int("samples", t.SampleCount()),
		zap.Int("metadata", len(metadata)),
		zap.Stringer("state", t.State()),
	)

	return t, nil
}

// ReadFile opens path and reads a table from it. The table is named after
// the file unless WithName is given.
func ReadFile(path string, opts ...Option) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "pcl.ReadFile %s", path)
	}
	defer f.Close()

	opts = append([]Option{WithName(filepath.Base(path))}, opts...)

	return Read(f, opts...)
}

func readRecords(r io.Reader, delim rune) ([]record, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var out []record
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "pcl.Read")
		}
		line, _ := cr.FieldPos(0)
		out = append(out, record{line: line, cells: cells})
	}
}

func rowName(rec record) string {
	if len(rec.cells) == 0 {
		return ""
	}

	return strings.TrimSpace(rec.cells[0])
}

// padCells returns the trimmed value cells of rec, padded to width with
// missing for short rows and with empty cells replaced by missing.
func padCells(rec record, width int, missing string) ([]string, error) {
	var vals []string
	if len(rec.cells) > 1 {
		vals = rec.cells[1:]
	}
	for len(vals) > width && strings.TrimSpace(vals[len(vals)-1]) == "" {
		vals = vals[:len(vals)-1]
	}
	if len(vals) > width {
		return nil, errors.Wrapf(ErrRaggedRow, "pcl.Read: line %d has %d values, want %d", rec.line, len(vals), width)
	}

	out := make([]string, width)
	for j := range out {
		if j < len(vals) {
			out[j] = strings.TrimSpace(vals[j])
		}
		if out[j] == "" {
			out[j] = missing
		}
	}

	return out, nil
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}

	return out
}
