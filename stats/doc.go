// Package stats holds the pure numeric kernels behind table filters and
// transforms: percentiles, population standard deviation and tie-averaged
// descending ranks.
//
// Every function works on a plain []float64, never mutates its input and
// keeps no state between calls, so each kernel can be tested in isolation
// from the table that feeds it.
//
//	thr, _ := stats.Percentile(column, 95)   // R-7 linear interpolation
//	sd := stats.PopStdDev(row)               // divide by n, not n-1
//	ranks := stats.AverageRanks(column)      // 1 = largest, ties averaged
package stats
