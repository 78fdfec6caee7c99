// SPDX-License-Identifier: MIT

package pcl

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/table"
)

// Write serializes t to w using t's file delimiter.
func Write(w io.Writer, t *table.Table) error {
	if t == nil {
		return errors.New("pcl.Write: nil table")
	}
	delim, size := utf8.DecodeRuneInString(t.FileDelimiter())
	if size != len(t.FileDelimiter()) {
		return errors.Newf("pcl.Write: delimiter %q is not a single character", t.FileDelimiter())
	}

	cw := csv.NewWriter(w)
	cw.Comma = delim

	samples := t.Samples()
	rec := make([]string, len(samples)+1)

	rec[0] = t.IDName()
	copy(rec[1:], samples)
	if err := cw.Write(rec); err != nil {
		return errors.Wrap(err, "pcl.Write")
	}

	names := t.MetadataNames()
	last := t.LastMetadata()
	ordered := make([]string, 0, len(names))
	for _, n := range names {
		if n != last {
			ordered = append(ordered, n)
		}
	}
	if _, ok := t.Metadata(last); ok && last != t.IDName() {
		ordered = append(ordered, last)
	}
	for _, n := range ordered {
		vals, _ := t.Metadata(n)
		rec[0] = n
		copy(rec[1:], vals)
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "pcl.Write")
		}
	}

	for _, f := range t.Features() {
		row, err := t.Row(f)
		if err != nil {
			return errors.Wrap(err, "pcl.Write")
		}
		rec[0] = f
		for j, v := range row {
			rec[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err = cw.Write(rec); err != nil {
			return errors.Wrap(err, "pcl.Write")
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "pcl.Write")
}

// WriteFile writes t to path, creating or truncating it.
func WriteFile(path string, t *table.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "pcl.WriteFile %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "pcl.WriteFile %s", path)
		}
	}()

	return Write(f, t)
}
