// Package config loads abundance tool settings from defaults, an optional
// TOML file and ABUNDANCE_* environment variables, in increasing precedence.
package config

// Config is the complete tool configuration.
type Config struct {
	Delimiters DelimiterConfig `mapstructure:"delimiters"`
	Missing    MissingConfig   `mapstructure:"missing"`
	Table      TableConfig     `mapstructure:"table"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`
	Log        LogConfig       `mapstructure:"log"`
}

// DelimiterConfig holds the column and lineage separators.
type DelimiterConfig struct {
	Column  string `mapstructure:"column"`  // single character
	Feature string `mapstructure:"feature"` // lineage separator, non-empty
}

// MissingConfig holds substitutes for empty cells.
type MissingConfig struct {
	Abundance float64 `mapstructure:"abundance"`
	Metadata  string  `mapstructure:"metadata"`
}

// TableConfig names special header rows.
type TableConfig struct {
	IDName       string `mapstructure:"id_name"`
	LastMetadata string `mapstructure:"last_metadata"` // empty: first row only
}

// PipelineConfig selects the transforms run by pipeline.Run. Zero values
// disable the corresponding step.
type PipelineConfig struct {
	TerminalOnly   bool                 `mapstructure:"terminal_only"`
	RemoveOTUs     bool                 `mapstructure:"remove_otus"`
	Sum            bool                 `mapstructure:"sum"`
	Normalize      bool                 `mapstructure:"normalize"`
	Occurrence     OccurrenceConfig     `mapstructure:"occurrence"`
	Percentile     PercentileConfig     `mapstructure:"percentile"`
	StdDev         StdDevConfig         `mapstructure:"stddev"`
	CladeLevel     int                  `mapstructure:"clade_level"`
	Features       []string             `mapstructure:"features"` // empty: keep all
	RemoveMetadata RemoveMetadataConfig `mapstructure:"remove_metadata"`
	Rank           bool                 `mapstructure:"rank"`
}

// RemoveMetadataConfig parameterizes table.RemoveSamplesByMetadata: samples
// whose ID metadata holds one of Values are dropped.
type RemoveMetadataConfig struct {
	ID     string   `mapstructure:"id"`
	Values []string `mapstructure:"values"`
}

// OccurrenceConfig parameterizes table.FilterByOccurrence.
type OccurrenceConfig struct {
	MinValue   float64 `mapstructure:"min_value"`
	MinSamples int     `mapstructure:"min_samples"`
}

// PercentileConfig parameterizes table.FilterByPercentile.
type PercentileConfig struct {
	Cutoff     float64 `mapstructure:"cutoff"`     // 0..100
	Percentage float64 `mapstructure:"percentage"` // 0..100
}

// StdDevConfig parameterizes table.FilterByStdDev.
type StdDevConfig struct {
	Min float64 `mapstructure:"min"`
}

// LogConfig selects the log encoder and level.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}
