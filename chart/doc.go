// SPDX-License-Identifier: MIT

// Package chart draws the S-curve and P-curve of an analyzed table.
//
// Both renderers use the unit square of sptable.Curves: X is the fraction of
// problems, Y the fraction of students measured from the top, so the Y axis
// is drawn inverted (rank 1 at the top, as in the table itself).
//
//   - WriteHTML: interactive page built with go-echarts.
//   - WritePNG:  static image built with gonum/plot.
//
// Empty curves produce an empty chart, not an error.
package chart
