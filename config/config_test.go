package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/abundance/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "\t", cfg.Delimiters.Column)
	assert.Equal(t, "|", cfg.Delimiters.Feature)
	assert.Equal(t, "NA", cfg.Missing.Metadata)
	assert.Equal(t, 0.0, cfg.Missing.Abundance)
	assert.Equal(t, "ID", cfg.Table.IDName)
	assert.Empty(t, cfg.Table.LastMetadata)
	p := cfg.Pipeline
	assert.Empty(t, p.Features)
	assert.Empty(t, p.RemoveMetadata.Values)
	p.Features, p.RemoveMetadata.Values = nil, nil
	assert.Equal(t, config.PipelineConfig{}, p)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abundance.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[table]
last_metadata = "Group"

[pipeline]
sum = true
normalize = true
clade_level = 3
features = ["k__A|p__B", "k__A|p__C"]

[pipeline.occurrence]
min_value = 0.0001
min_samples = 2

[pipeline.remove_metadata]
id = "Group"
values = ["control"]

[log]
level = "debug"
`), 0o600))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Group", cfg.Table.LastMetadata)
	assert.True(t, cfg.Pipeline.Sum)
	assert.True(t, cfg.Pipeline.Normalize)
	assert.Equal(t, 3, cfg.Pipeline.CladeLevel)
	assert.Equal(t, 0.0001, cfg.Pipeline.Occurrence.MinValue)
	assert.Equal(t, 2, cfg.Pipeline.Occurrence.MinSamples)
	assert.Equal(t, []string{"k__A|p__B", "k__A|p__C"}, cfg.Pipeline.Features)
	assert.Equal(t, config.RemoveMetadataConfig{ID: "Group", Values: []string{"control"}}, cfg.Pipeline.RemoveMetadata)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ID", cfg.Table.IDName)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ABUNDANCE_PIPELINE_STDDEV_MIN", "0.25")
	t.Setenv("ABUNDANCE_TABLE_ID_NAME", "SampleID")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Pipeline.StdDev.Min)
	assert.Equal(t, "SampleID", cfg.Table.IDName)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		v := viper.New()
		config.SetDefaults(v)
		cfg, err := config.LoadWithViper(v)
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"defaults", func(c *config.Config) {}, false},
		{"comma delimiter", func(c *config.Config) { c.Delimiters.Column = "," }, false},
		{"two-char delimiter", func(c *config.Config) { c.Delimiters.Column = "::" }, true},
		{"empty feature delimiter", func(c *config.Config) { c.Delimiters.Feature = "" }, true},
		{"empty id name", func(c *config.Config) { c.Table.IDName = "" }, true},
		{"negative missing abundance", func(c *config.Config) { c.Missing.Abundance = -1 }, true},
		{"negative min value", func(c *config.Config) { c.Pipeline.Occurrence.MinValue = -1 }, true},
		{"negative min samples", func(c *config.Config) { c.Pipeline.Occurrence.MinSamples = -1 }, true},
		{"cutoff over 100", func(c *config.Config) { c.Pipeline.Percentile.Cutoff = 101 }, true},
		{"negative percentage", func(c *config.Config) { c.Pipeline.Percentile.Percentage = -5 }, true},
		{"negative stddev", func(c *config.Config) { c.Pipeline.StdDev.Min = -0.1 }, true},
		{"negative clade level", func(c *config.Config) { c.Pipeline.CladeLevel = -1 }, true},
		{"remove metadata without values", func(c *config.Config) { c.Pipeline.RemoveMetadata.ID = "Group" }, true},
		{"remove metadata without id", func(c *config.Config) { c.Pipeline.RemoveMetadata.Values = []string{"x"} }, true},
		{"remove metadata", func(c *config.Config) {
			c.Pipeline.RemoveMetadata = config.RemoveMetadataConfig{ID: "Group", Values: []string{"x"}}
		}, false},
		{"unknown log level", func(c *config.Config) { c.Log.Level = "verbose" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
