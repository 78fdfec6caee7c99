package pcl

import (
	"unicode/utf8"

	"github.com/katalvlaran/abundance/table"
	"go.uber.org/zap"
)

// Defaults for missing cells.
const (
	DefaultMissingMetadata  = "NA"
	DefaultMissingAbundance = 0.0
)

// Option configures Read.
type Option func(*readOptions)

type readOptions struct {
	name             string
	idName           string
	lastMetadata     string
	delim            rune
	featureDelim     string
	missingMetadata  string
	missingAbundance float64
	log              *zap.Logger
}

func defaultReadOptions() readOptions {
	d, _ := utf8.DecodeRuneInString(table.DefaultFileDelimiter)

	return readOptions{
		delim:            d,
		featureDelim:     table.DefaultFeatureDelimiter,
		missingMetadata:  DefaultMissingMetadata,
		missingAbundance: DefaultMissingAbundance,
		log:              zap.NewNop(),
	}
}

// WithName sets the name of the resulting table.
func WithName(name string) Option { return func(o *readOptions) { o.name = name } }

// WithIDName names the sample-id row. Without it the first row is used.
func WithIDName(id string) Option { return func(o *readOptions) { o.idName = id } }

// WithLastMetadata names the last header row.
func WithLastMetadata(name string) Option { return func(o *readOptions) { o.lastMetadata = name } }

// WithDelimiter sets the column separator. It must be a single character;
// anything else panics.
func WithDelimiter(d string) Option {
	r, size := utf8.DecodeRuneInString(d)
	if size == 0 || size != len(d) || r == utf8.RuneError {
		panic("pcl: WithDelimiter requires exactly one character")
	}

	return func(o *readOptions) { o.delim = r }
}

// WithFeatureDelimiter sets the lineage separator of feature identifiers.
func WithFeatureDelimiter(d string) Option {
	return func(o *readOptions) { o.featureDelim = d }
}

// WithMissingMetadata sets the value substituted for empty metadata cells.
func WithMissingMetadata(v string) Option { return func(o *readOptions) { o.missingMetadata = v } }

// WithMissingAbundance sets the value substituted for empty measurements.
func WithMissingAbundance(v float64) Option { return func(o *readOptions) { o.missingAbundance = v } }

// WithLogger sets the logger passed to the resulting table.
func WithLogger(l *zap.Logger) Option {
	return func(o *readOptions) {
		if l != nil {
			o.log = l
		}
	}
}
