package commands

import (
	"github.com/katalvlaran/abundance/logger"
	"github.com/katalvlaran/abundance/pcl"
	"github.com/katalvlaran/abundance/pipeline"
	"github.com/spf13/cobra"
)

func newManipulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manipulate <in> <out>",
		Short: "Run sum, normalize, filter and rank steps over a table",
		Long: `Reads <in>, applies the enabled steps in this order and writes <out>:

  sum, occurrence, terminal-only, remove OTUs, clade level, features,
  remove metadata, normalize, percentile, stddev, rank

Occurrence thresholds apply to counts; percentile and stddev thresholds
apply to the values after normalization.

Steps refused by the table's state (e.g. normalizing twice) are reported
and skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: runManipulate,
	}

	f := cmd.Flags()
	f.Bool("sum", false, "sum clades")
	f.Bool("normalize", false, "normalize (by ancestor when summed, else by column totals)")
	f.String("occurrence", "", "keep features >= MIN in at least SAMPLES samples (MIN,SAMPLES)")
	f.String("percentile", "", "keep features above the CUT percentile in PCT percent of samples (CUT,PCT)")
	f.Float64("stddev", 0, "keep features with population standard deviation >= this")
	f.Int("clade-level", 0, "keep clades with at most this many lineage segments (0 = off)")
	f.Bool("rank", false, "replace values with within-sample ranks")
	f.Bool("terminal", false, "keep terminal nodes only")
	f.Bool("remove-otus", false, "drop features ending in a numeric OTU id")
	f.String("features", "", "keep only these features (comma list, or a file with one per line)")
	f.String("remove-metadata", "", "drop samples whose metadata ID holds one of the values (ID,V1[,V2...])")

	return cmd
}

func runManipulate(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	t, err := pcl.ReadFile(in, readOptions()...)
	if err != nil {
		return err
	}

	res, rep, err := pipeline.Run(t, cfg.Pipeline, logger.Named("pipeline"))
	if err != nil {
		return err
	}
	for _, s := range rep.Skipped {
		logger.Logger.Warnw("step skipped", "step", s.Step, "reason", s.Err)
	}

	if err = pcl.WriteFile(out, res); err != nil {
		return err
	}
	logger.Logger.Infow("table written",
		"out", out,
		"steps", rep.Applied,
		"features", res.FeatureCount(),
		"samples", res.SampleCount(),
		"state", res.State().String(),
	)

	return nil
}
