package config

import "github.com/spf13/viper"

// EnvPrefix prefixes environment overrides: pipeline.stddev.min is read
// from ABUNDANCE_PIPELINE_STDDEV_MIN.
const EnvPrefix = "ABUNDANCE"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Serialization
	v.SetDefault("delimiters.column", "\t")
	v.SetDefault("delimiters.feature", "|")
	v.SetDefault("missing.abundance", 0.0)
	v.SetDefault("missing.metadata", "NA")
	v.SetDefault("table.id_name", "ID")
	v.SetDefault("table.last_metadata", "")

	// Pipeline: everything off
	v.SetDefault("pipeline.terminal_only", false)
	v.SetDefault("pipeline.remove_otus", false)
	v.SetDefault("pipeline.sum", false)
	v.SetDefault("pipeline.normalize", false)
	v.SetDefault("pipeline.occurrence.min_value", 0.0)
	v.SetDefault("pipeline.occurrence.min_samples", 0)
	v.SetDefault("pipeline.percentile.cutoff", 0.0)
	v.SetDefault("pipeline.percentile.percentage", 0.0)
	v.SetDefault("pipeline.stddev.min", 0.0)
	v.SetDefault("pipeline.clade_level", 0)
	v.SetDefault("pipeline.features", []string{})
	v.SetDefault("pipeline.remove_metadata.id", "")
	v.SetDefault("pipeline.remove_metadata.values", []string{})
	v.SetDefault("pipeline.rank", false)

	// Logging
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}
