// SPDX-License-Identifier: MIT
// Package pipeline runs a configured sequence of table transforms in a fixed
// order:
//
//	sum → occurrence → terminal-only → remove OTUs → clade level →
//	features → remove metadata → normalize → percentile → stddev → rank
//
// Occurrence thresholds apply to counts and run before normalization.
//
// Steps refused because of the table's state (table.IsInvalidTransition) are
// recorded in the Report and skipped; any other failure aborts the run.
package pipeline

import (
	"github.com/katalvlaran/abundance/config"
	"github.com/katalvlaran/abundance/table"
	"go.uber.org/zap"
)

// Step names reported in Report.
const (
	StepSum            = "sum"
	StepOccurrence     = "occurrence"
	StepTerminalOnly   = "terminal_only"
	StepRemoveOTUs     = "remove_otus"
	StepCladeLevel     = "clade_level"
	StepFeatures       = "features"
	StepRemoveMetadata = "remove_metadata"
	StepNormalize      = "normalize"
	StepPercentile     = "percentile"
	StepStdDev         = "stddev"
	StepRank           = "rank"
)

// Skip records a step refused by the table state machine.
type Skip struct {
	Step string
	Err  error
}

// Report lists what a run did.
type Report struct {
	Applied []string
	Skipped []Skip
}

// step is one enabled transform. It returns the (possibly new) table.
type step struct {
	name string
	run  func(*table.Table) (*table.Table, error)
}

// Run applies the transforms enabled in cfg to a copy of t and returns the
// result. t itself is never modified. A nil log discards.
func Run(t *table.Table, cfg config.PipelineConfig, log *zap.Logger) (*table.Table, Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var rep Report
	cur := t.Clone()
	for _, s := range plan(cfg, t.Name()) {
		next, err := s.run(cur)
		switch {
		case err == nil:
			cur = next
			rep.Applied = append(rep.Applied, s.name)
			log.Debug("step applied", zap.String("step", s.name), zap.Int("features", cur.FeatureCount()))
		case table.IsInvalidTransition(err):
			rep.Skipped = append(rep.Skipped, Skip{Step: s.name, Err: err})
			log.Warn("step skipped", zap.String("step", s.name), zap.Stringer("state", cur.State()), zap.Error(err))
		default:
			log.Error("step failed", zap.String("step", s.name), zap.Error(err))
			return nil, rep, err
		}
	}

	return cur, rep, nil
}

// plan lists the enabled steps in execution order.
func plan(cfg config.PipelineConfig, name string) []step {
	inPlace := func(f func(*table.Table) error) func(*table.Table) (*table.Table, error) {
		return func(t *table.Table) (*table.Table, error) { return t, f(t) }
	}

	// rename keeps the input name on derived tables.
	rename := func(f func(*table.Table) (*table.Table, error)) func(*table.Table) (*table.Table, error) {
		return func(t *table.Table) (*table.Table, error) {
			out, err := f(t)
			if err == nil {
				out.SetName(name)
			}
			return out, err
		}
	}

	var steps []step
	if cfg.Sum {
		steps = append(steps, step{StepSum, inPlace((*table.Table).SumClades)})
	}
	if o := cfg.Occurrence; o.MinValue > 0 && o.MinSamples > 0 {
		steps = append(steps, step{StepOccurrence, inPlace(func(t *table.Table) error {
			return t.FilterByOccurrence(o.MinValue, o.MinSamples)
		})})
	}
	if cfg.TerminalOnly {
		steps = append(steps, step{StepTerminalOnly, rename((*table.Table).TerminalOnly)})
	}
	if cfg.RemoveOTUs {
		steps = append(steps, step{StepRemoveOTUs, (*table.Table).WithoutOTUs})
	}
	if lvl := cfg.CladeLevel; lvl > 0 {
		steps = append(steps, step{StepCladeLevel, inPlace(func(t *table.Table) error {
			return t.ReduceToCladeLevel(lvl)
		})})
	}
	if ids := cfg.Features; len(ids) > 0 {
		steps = append(steps, step{StepFeatures, rename(func(t *table.Table) (*table.Table, error) {
			return t.FeatureSubset(ids)
		})})
	}
	if rm := cfg.RemoveMetadata; rm.ID != "" && len(rm.Values) > 0 {
		steps = append(steps, step{StepRemoveMetadata, inPlace(func(t *table.Table) error {
			return t.RemoveSamplesByMetadata(rm.ID, rm.Values)
		})})
	}
	if cfg.Normalize {
		steps = append(steps, step{StepNormalize, inPlace((*table.Table).Normalize)})
	}
	if p := cfg.Percentile; p.Cutoff > 0 && p.Percentage > 0 {
		steps = append(steps, step{StepPercentile, inPlace(func(t *table.Table) error {
			return t.FilterByPercentile(p.Cutoff, p.Percentage)
		})})
	}
	if sd := cfg.StdDev.Min; sd > 0 {
		steps = append(steps, step{StepStdDev, inPlace(func(t *table.Table) error {
			return t.FilterByStdDev(sd)
		})})
	}
	if cfg.Rank {
		steps = append(steps, step{StepRank, (*table.Table).Rank})
	}

	return steps
}
