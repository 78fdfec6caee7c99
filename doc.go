// Package abundance is a toolkit for hierarchical microbial abundance
// tables: features named by taxonomic lineages ("k__Bacteria|p__Firmicutes")
// measured across samples, with per-sample metadata.
//
// 🚀 What is in the box?
//
//	• Clade aggregation: materialize every ancestor clade, prune the
//	  redundant ones
//	• Normalization: per-sample proportions, or proportions of the root clade
//	• Filters: occurrence, percentile, standard deviation, clade depth
//	• Rank transform with averaged ties
//	• Derivatives: feature subsets, stratification by metadata, sample removal,
//	  pairing two tables on a shared sample id
//	• Delimited-text (PCL) reading and writing
//	• A configurable pipeline and the `abundance` command line tool
//
// ✨ Guarantees
//
//   - A table records its history (raw, summed, normalized) and refuses
//     transforms that would corrupt it, leaving itself unchanged.
//   - Aggregation is deterministic: clades are emitted in sorted order.
//   - Every failure wraps a package sentinel usable with errors.Is.
//
// Under the hood:
//
//	clade/    - lineage paths, the clade tree, root selection, terminal nodes
//	matrix/   - dense row-major storage and column kernels
//	stats/    - percentile, population standard deviation, average ranks
//	table/    - the abundance table and all transforms
//	pcl/      - delimited text reader and writer
//	config/   - viper-backed settings (defaults, TOML, ABUNDANCE_* env)
//	logger/   - process-wide zap logger
//	pipeline/ - ordered execution of configured transforms
//	cmd/abundance - cobra CLI
//
// Quick example:
//
//	t, _ := pcl.ReadFile("study.pcl", pcl.WithLastMetadata("Group"))
//	_ = t.SumClades()
//	_ = t.NormalizeByAncestor()
//	_ = t.FilterByOccurrence(0.0001, 2)
//	_ = pcl.WriteFile("study-relative.pcl", t)
package abundance
