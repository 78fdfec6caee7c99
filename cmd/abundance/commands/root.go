package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/config"
	"github.com/katalvlaran/abundance/logger"
	"github.com/katalvlaran/abundance/pcl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flag names.
const (
	flagConfig       = "config"
	flagJSONLog      = "json-log"
	flagLogLevel     = "log-level"
	flagID           = "id"
	flagMeta         = "meta"
	flagDelim        = "delim"
	flagFeatureDelim = "feature-delim"
)

// flagKeys binds flags to configuration keys. Flags absent from a command
// are skipped.
var flagKeys = map[string]string{
	flagJSONLog:      "log.json",
	flagLogLevel:     "log.level",
	flagID:           "table.id_name",
	flagMeta:         "table.last_metadata",
	flagDelim:        "delimiters.column",
	flagFeatureDelim: "delimiters.feature",
	"sum":            "pipeline.sum",
	"normalize":      "pipeline.normalize",
	"rank":           "pipeline.rank",
	"terminal":       "pipeline.terminal_only",
	"remove-otus":    "pipeline.remove_otus",
	"stddev":         "pipeline.stddev.min",
	"clade-level":    "pipeline.clade_level",
}

// cfg is the configuration resolved for the running command.
var cfg *config.Config

// NewRootCmd builds the abundance command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "abundance",
		Short: "Manipulate hierarchical microbial abundance tables",
		Long: `abundance - sum, normalize, filter and rank abundance tables.

Tables are delimited text: a sample-id row, optional metadata rows ending
with the row named by --meta, then one row per feature. Features are
lineages such as k__Bacteria|p__Firmicutes.

Settings come from defaults, a TOML file (--config), ABUNDANCE_* environment
variables and flags, in increasing precedence.

Examples:
  abundance describe table.pcl --meta Group
  abundance manipulate in.pcl out.pcl --sum --occurrence 5,2 --normalize
  abundance pair a.pcl b.pcl Subject a-paired.pcl b-paired.pcl --meta Group
  abundance stratify in.pcl Group out/ --meta Group
  abundance terminal in.pcl`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Sync() },
	}

	f := root.PersistentFlags()
	f.String(flagConfig, "", "TOML configuration file")
	f.Bool(flagJSONLog, false, "emit JSON logs")
	f.String(flagLogLevel, "info", "log level (debug, info, warn, error)")
	f.String(flagID, "ID", "name of the sample-id row")
	f.String(flagMeta, "", "name of the last metadata row")
	f.String(flagDelim, "\t", "column delimiter (one character)")
	f.String(flagFeatureDelim, "|", "lineage delimiter in feature names")

	root.AddCommand(newManipulateCmd(), newDescribeCmd(), newStratifyCmd(), newTerminalCmd(), newPairCmd())

	return root
}

// setup resolves configuration for cmd and initializes the global logger.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(flagConfig)
	v, err := config.New(path)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if fl := cmd.Flags().Lookup(name); fl != nil {
			if err = v.BindPFlag(key, fl); err != nil {
				return errors.Wrapf(err, "bind --%s", name)
			}
		}
	}
	if err = setPair(cmd, v, "occurrence", "pipeline.occurrence.min_value", "pipeline.occurrence.min_samples", true); err != nil {
		return err
	}
	if err = setPair(cmd, v, "percentile", "pipeline.percentile.cutoff", "pipeline.percentile.percentage", false); err != nil {
		return err
	}
	if err = setFeatures(cmd, v); err != nil {
		return err
	}
	if err = setRemoveMetadata(cmd, v); err != nil {
		return err
	}

	if cfg, err = config.LoadWithViper(v); err != nil {
		return err
	}
	if err = logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	return nil
}

// setPair parses a "A,B" flag into two configuration keys. B is an integer
// when intB is set.
func setPair(cmd *cobra.Command, v *viper.Viper, name, keyA, keyB string, intB bool) error {
	fl := cmd.Flags().Lookup(name)
	if fl == nil || !fl.Changed {
		return nil
	}
	a, b, ok := strings.Cut(fl.Value.String(), ",")
	if !ok {
		return errors.Newf("--%s wants two comma-separated numbers, got %q", name, fl.Value.String())
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return errors.Wrapf(err, "--%s", name)
	}
	v.Set(keyA, x)

	b = strings.TrimSpace(b)
	if intB {
		n, err := strconv.Atoi(b)
		if err != nil {
			return errors.Wrapf(err, "--%s", name)
		}
		v.Set(keyB, n)
		return nil
	}
	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return errors.Wrapf(err, "--%s", name)
	}
	v.Set(keyB, y)

	return nil
}

// setFeatures resolves --features: a file with one feature per line when
// the value names an existing file, else a comma-separated list.
func setFeatures(cmd *cobra.Command, v *viper.Viper) error {
	fl := cmd.Flags().Lookup("features")
	if fl == nil || !fl.Changed {
		return nil
	}
	val := fl.Value.String()

	var ids []string
	if st, err := os.Stat(val); err == nil && !st.IsDir() {
		raw, err := os.ReadFile(val)
		if err != nil {
			return errors.Wrapf(err, "--features: read %s", val)
		}
		ids = splitClean(string(raw), "\n")
	} else {
		ids = splitClean(val, ",")
	}
	if len(ids) == 0 {
		return errors.Newf("--features names no feature in %q", val)
	}
	v.Set("pipeline.features", ids)

	return nil
}

// setRemoveMetadata parses --remove-metadata ID,V1[,V2...].
func setRemoveMetadata(cmd *cobra.Command, v *viper.Viper) error {
	fl := cmd.Flags().Lookup("remove-metadata")
	if fl == nil || !fl.Changed {
		return nil
	}
	parts := splitClean(fl.Value.String(), ",")
	if len(parts) < 2 {
		return errors.Newf("--remove-metadata wants ID,VALUE[,VALUE...], got %q", fl.Value.String())
	}
	v.Set("pipeline.remove_metadata.id", parts[0])
	v.Set("pipeline.remove_metadata.values", parts[1:])

	return nil
}

// splitClean splits s on sep, trimming blanks and dropping empty items.
func splitClean(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// readOptions maps the resolved configuration onto pcl reader options.
func readOptions() []pcl.Option {
	return []pcl.Option{
		pcl.WithIDName(cfg.Table.IDName),
		pcl.WithLastMetadata(cfg.Table.LastMetadata),
		pcl.WithDelimiter(cfg.Delimiters.Column),
		pcl.WithFeatureDelimiter(cfg.Delimiters.Feature),
		pcl.WithMissingMetadata(cfg.Missing.Metadata),
		pcl.WithMissingAbundance(cfg.Missing.Abundance),
		pcl.WithLogger(logger.Named("table")),
	}
}
