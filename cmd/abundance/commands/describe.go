package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/abundance/logger"
	"github.com/katalvlaran/abundance/pcl"
	"github.com/katalvlaran/abundance/table"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <in>",
		Short: "Print a summary of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pcl.ReadFile(args[0], readOptions()...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}

func newTerminalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terminal <in>",
		Short: "List features that are not an ancestor of another feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pcl.ReadFile(args[0], readOptions()...)
			if err != nil {
				return err
			}
			for _, f := range t.TerminalNodes() {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newStratifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stratify <in> <metadata> <dir>",
		Short: "Write one table per distinct value of a metadata row",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, key, dir := args[0], args[1], args[2]

			t, err := pcl.ReadFile(in, readOptions()...)
			if err != nil {
				return err
			}
			parts, err := t.StratifyByMetadata(key)
			if err != nil {
				return err
			}
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrapf(err, "create %s", dir)
			}
			for _, p := range parts {
				path := filepath.Join(dir, filepath.Base(p.Name()))
				if err = pcl.WriteFile(path, p); err != nil {
					return err
				}
				logger.Logger.Infow("stratum written", "path", path, "samples", p.SampleCount())
			}
			return nil
		},
	}
}

func newPairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pair <a> <b> <metadata> <out-a> <out-b>",
		Short: "Reduce two tables to the samples they share",
		Long: `Reads <a> and <b>, keeps in each only the samples whose value of
<metadata> also occurs in the other table, and writes the results. The
metadata row must hold a distinct value per sample in both tables.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := pcl.ReadFile(args[0], readOptions()...)
			if err != nil {
				return err
			}
			b, err := pcl.ReadFile(args[1], readOptions()...)
			if err != nil {
				return err
			}
			if err = table.PairTables(a, b, args[2]); err != nil {
				return err
			}
			if err = pcl.WriteFile(args[3], a); err != nil {
				return err
			}
			if err = pcl.WriteFile(args[4], b); err != nil {
				return err
			}
			logger.Logger.Infow("tables paired", "key", args[2], "samples", a.SampleCount())
			return nil
		},
	}
}
