package config

import (
	"math"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiters.Column) != 1 {
		return errors.Wrapf(ErrInvalid, "delimiters.column must be one character, got %q", c.Delimiters.Column)
	}
	if c.Delimiters.Feature == "" {
		return errors.Wrap(ErrInvalid, "delimiters.feature cannot be empty")
	}
	if c.Table.IDName == "" {
		return errors.Wrap(ErrInvalid, "table.id_name cannot be empty")
	}
	if c.Missing.Abundance < 0 || math.IsNaN(c.Missing.Abundance) {
		return errors.Wrapf(ErrInvalid, "missing.abundance must be >= 0, got %g", c.Missing.Abundance)
	}

	p := c.Pipeline
	if p.Occurrence.MinValue < 0 {
		return errors.Wrapf(ErrInvalid, "pipeline.occurrence.min_value must be >= 0, got %g", p.Occurrence.MinValue)
	}
	if p.Occurrence.MinSamples < 0 {
		return errors.Wrapf(ErrInvalid, "pipeline.occurrence.min_samples must be >= 0, got %d", p.Occurrence.MinSamples)
	}
	if p.Percentile.Cutoff < 0 || p.Percentile.Cutoff > 100 {
		return errors.Wrapf(ErrInvalid, "pipeline.percentile.cutoff must be within [0,100], got %g", p.Percentile.Cutoff)
	}
	if p.Percentile.Percentage < 0 || p.Percentile.Percentage > 100 {
		return errors.Wrapf(ErrInvalid, "pipeline.percentile.percentage must be within [0,100], got %g", p.Percentile.Percentage)
	}
	if p.StdDev.Min < 0 {
		return errors.Wrapf(ErrInvalid, "pipeline.stddev.min must be >= 0, got %g", p.StdDev.Min)
	}
	// 0 = off
	if p.CladeLevel < 0 {
		return errors.Wrapf(ErrInvalid, "pipeline.clade_level must be >= 0, got %d", p.CladeLevel)
	}
	if rm := p.RemoveMetadata; (rm.ID == "") != (len(rm.Values) == 0) {
		return errors.Wrapf(ErrInvalid, "pipeline.remove_metadata needs both id and values, got id=%q values=%v", rm.ID, rm.Values)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalid, "log.level: %v", err)
	}

	return nil
}
