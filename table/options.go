// SPDX-License-Identifier: MIT
// Package table: functional options for New.
// Invalid option values are programmer errors and panic early with a clear
// message; all data-dependent problems are reported as errors by New.

package table

import (
	"fmt"

	"go.uber.org/zap"
)

// Defaults applied by New when no option overrides them.
const (
	// DefaultIDName is the name of the sample-identifier metadata row.
	DefaultIDName = "ID"

	// DefaultFileDelimiter separates columns in serialized tables.
	DefaultFileDelimiter = "\t"

	// DefaultFeatureDelimiter separates lineage segments in feature identifiers.
	DefaultFeatureDelimiter = "|"
)

// Option configures a Table at construction time.
type Option func(*options)

type options struct {
	name         string
	idName       string
	lastMetadata string
	fileDelim    string
	featureDelim string
	state        State
	stateSet     bool
	log          *zap.Logger
}

func defaultOptions() options {
	return options{
		idName:       DefaultIDName,
		fileDelim:    DefaultFileDelimiter,
		featureDelim: DefaultFeatureDelimiter,
		log:          zap.NewNop(),
	}
}

// WithName sets the table name (typically the source file name).
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithIDName sets the name of the sample-identifier metadata row.
// Panics on an empty name.
func WithIDName(id string) Option {
	if id == "" {
		panic("table: WithIDName requires a non-empty name")
	}

	return func(o *options) { o.idName = id }
}

// WithLastMetadata names the metadata row that closes the header block
// when the table is serialized.
func WithLastMetadata(name string) Option {
	return func(o *options) { o.lastMetadata = name }
}

// WithFileDelimiter sets the column separator used for serialization.
// Panics on an empty delimiter.
func WithFileDelimiter(d string) Option {
	if d == "" {
		panic("table: WithFileDelimiter requires a non-empty delimiter")
	}

	return func(o *options) { o.fileDelim = d }
}

// WithFeatureDelimiter sets the lineage separator for feature identifiers.
// Panics on an empty delimiter.
func WithFeatureDelimiter(d string) Option {
	if d == "" {
		panic("table: WithFeatureDelimiter requires a non-empty delimiter")
	}

	return func(o *options) { o.featureDelim = d }
}

// WithState declares the table's history explicitly, bypassing inference.
// Panics on an undeclared State value.
func WithState(s State) Option {
	if !s.valid() {
		panic(fmt.Sprintf("table: WithState(%d): unknown state", s))
	}

	return func(o *options) {
		o.state = s
		o.stateSet = true
	}
}

// WithLogger attaches a logger for transition diagnostics. A nil logger
// is replaced by a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.log = l
	}
}
