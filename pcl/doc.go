// SPDX-License-Identifier: MIT
// Package pcl reads and writes abundance tables as delimited text.
//
// Layout (tab-delimited by default):
//
//	ID        s1      s2      s3      <- sample-id row
//	Group     a       b       a       <- metadata rows ...
//	Subject   p1      p2      p3      <- ... up to LastMetadata
//	A|B       1       0       3       <- one row per feature
//	A|C       2       5       0
//
// The first column holds row names. Every metadata row is read up to and
// including the row named by WithLastMetadata; without it only the first row
// is header. Empty metadata cells become "NA" and empty measurements become
// 0 (see WithMissingMetadata, WithMissingAbundance). Short rows are padded
// the same way.
//
// Write emits the sample-id row, the remaining metadata rows in name order,
// the last-metadata row, then the feature rows in table order.
package pcl
