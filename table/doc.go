// SPDX-License-Identifier: MIT
// Package table provides the abundance matrix of a microbial community
// profile: features (taxonomic lineages such as
// "k__Bacteria|p__Firmicutes|c__Bacilli") by samples, with per-sample
// metadata.
//
// What:
//
//   - Construction with validation and state inference (New).
//   - Clade aggregation: SumClades materializes every ancestor clade and
//     prunes ancestors indistinguishable from a single descendant.
//   - Normalization: NormalizeColumnsBySum for flat tables,
//     NormalizeByAncestor for summed (hierarchical) tables.
//   - Filters: FilterByOccurrence, FilterByPercentile, FilterByStdDev,
//     ReduceToCladeLevel.
//   - Rank: per-sample average ranks as a new table.
//   - Derivatives: FeatureSubset, WithoutOTUs, TerminalOnly,
//     StratifyByMetadata, RemoveSamples, PairTables.
//
// State:
//
//	Raw ──SumClades──▶ Summed ──NormalizeByAncestor──▶ SummedNormalized
//	Raw ──NormalizeColumnsBySum──▶ Normalized
//
// Normalizing twice, column-normalizing a summed table, and running count
// filters on proportions are refused with errors for which
// IsInvalidTransition reports true; the table is left unchanged.
//
// Errors:
//
//   - All failures wrap a package sentinel (ErrDimensionMismatch,
//     ErrAlreadyNormalized, ErrUnknownSample, ...) matched with errors.Is.
//
// Logging:
//
//   - WithLogger attaches a *zap.Logger. Rejected transitions log at Warn,
//     successful transforms at Debug. The default logger discards.
package table
