// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// All operations return these sentinels wrapped with operation context
// (errors.Wrapf) and callers match them via errors.Is. No operation panics
// on user-triggered conditions; panics are reserved for nonsensical Option
// values (programmer error).

package table

import "github.com/cockroachdb/errors"

// Construction failures. These abort table creation entirely.
var (
	// ErrDimensionMismatch indicates a row or metadata vector whose length
	// differs from the sample count, or a feature list whose length differs
	// from the row count.
	ErrDimensionMismatch = errors.New("table: dimension mismatch")

	// ErrDuplicateFeature indicates two rows with the same identifier.
	ErrDuplicateFeature = errors.New("table: duplicate feature identifier")

	// ErrDuplicateSample indicates two columns with the same sample identifier.
	ErrDuplicateSample = errors.New("table: duplicate sample identifier")

	// ErrInvalidValue indicates a negative, NaN or infinite measurement.
	ErrInvalidValue = errors.New("table: measurement must be finite and non-negative")

	// ErrEmptyLineage indicates a feature identifier with no lineage segment
	// (e.g. made only of delimiters) where a lineage is required.
	ErrEmptyLineage = errors.New("table: feature has an empty lineage")
)

// Invalid-transition failures. Recoverable: the table is left unchanged.
var (
	// ErrAlreadyNormalized is returned by any normalization of a normalized table.
	ErrAlreadyNormalized = errors.New("table: already normalized")

	// ErrSummedTable is returned by column-sum normalization of a summed table;
	// hierarchical data must be normalized by ancestor instead.
	ErrSummedTable = errors.New("table: summed clades require ancestor normalization")

	// ErrNormalizedCounts is returned by filters that need raw counts.
	ErrNormalizedCounts = errors.New("table: filter requires raw (non-normalized) counts")
)

// Lookup and parameter failures.
var (
	// ErrUnknownFeature indicates a feature identifier not present in the table.
	ErrUnknownFeature = errors.New("table: unknown feature")

	// ErrUnknownSample indicates a sample identifier not present in the table.
	ErrUnknownSample = errors.New("table: unknown sample")

	// ErrUnknownMetadata indicates a metadata name not present in the table.
	ErrUnknownMetadata = errors.New("table: unknown metadata")

	// ErrUnknownMetadataValue indicates a value missing from a metadata row.
	ErrUnknownMetadataValue = errors.New("table: value not found in metadata")

	// ErrNotPrimaryID indicates a metadata row whose values are not unique.
	ErrNotPrimaryID = errors.New("table: metadata values are not unique")

	// ErrBadCladeLevel indicates a clade level below 1.
	ErrBadCladeLevel = errors.New("table: clade level must be >= 1")

	// ErrBadParameter indicates a filter parameter outside its domain.
	ErrBadParameter = errors.New("table: parameter out of range")
)

// IsInvalidTransition reports whether err is one of the recoverable
// state-transition failures. Callers typically skip or reorder the step.
func IsInvalidTransition(err error) bool {
	return err != nil && errors.IsAny(err, ErrAlreadyNormalized, ErrSummedTable, ErrNormalizedCounts)
}

// tableErrorf wraps err with an operation tag, preserving the sentinel.
func tableErrorf(op string, err error) error {
	return errors.Wrap(err, op)
}
