// SPDX-License-Identifier: MIT
// Package table: pairing two tables on a shared sample identifier.

package table

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// PairTables reduces a and b to the samples whose value of metadata key
// occurs in both tables. key must be a primary ID in each table; otherwise
// PairTables fails with ErrUnknownMetadata or ErrNotPrimaryID and neither
// table changes. Sample order within each table is kept.
//
// Complexity: O(Sa + Sb) plus the column compression.
func PairTables(a, b *Table, key string) error {
	av, err := primaryID(a, key)
	if err != nil {
		return err
	}
	bv, err := primaryID(b, key)
	if err != nil {
		return err
	}

	dropA := unshared(a.samples, av, bv)
	dropB := unshared(b.samples, bv, av)
	if err = a.RemoveSamples(dropA); err != nil {
		return tableErrorf(opPair, err)
	}
	if err = b.RemoveSamples(dropB); err != nil {
		return tableErrorf(opPair, err)
	}

	a.log.Debug("tables paired",
		zap.String("left", a.name),
		zap.String("right", b.name),
		zap.String("key", key),
		zap.Int("shared", len(a.samples)),
	)

	return nil
}

func primaryID(t *Table, key string) ([]string, error) {
	vals, ok := t.Metadata(key)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMetadata, "%s: %q in %q", opPair, key, t.name)
	}
	if !t.IsPrimaryIDMetadata(key) {
		return nil, errors.Wrapf(ErrNotPrimaryID, "%s: %q in %q", opPair, key, t.name)
	}

	return vals, nil
}

// unshared lists the samples whose id is absent from other.
func unshared(samples, ids, other []string) []string {
	in := make(map[string]struct{}, len(other))
	for _, v := range other {
		in[v] = struct{}{}
	}

	var out []string
	for j, v := range ids {
		if _, ok := in[v]; !ok {
			out = append(out, samples[j])
		}
	}

	return out
}
