// SPDX-License-Identifier: MIT

// Package sptable is the home of an S-P (Student-Problem) table engine:
// rank a binary response table, draw its S-curve and P-curve, and score how
// far each student and each problem strays from the ideal staircase.
//
// What is an S-P table?
//
//	Rows are students, columns are problems, a cell is 1 for a correct answer.
//	Sort rows by score (descending) and columns by correct count (descending)
//	and a perfectly consistent class forms a staircase of 1s in the top-left.
//	The S-curve bounds each student's score, the P-curve each problem's
//	correct count; the caution indices CS and CP and the disparity
//	coefficient D* measure departures from that staircase.
//
// Everything is organized under these subpackages:
//
//	matrix/   - dense 0/1 matrix with row/column sums and permutations
//	sptable/  - Analyze: ranking, curves, caution indices, D*, summary
//	ingest/   - CSV and XLSX loaders (standard, transposed, ○/× marks)
//	export/   - CSV, XLSX and JSON reports
//	chart/    - S-P chart as interactive HTML or PNG
//	samples/  - deterministic small / medium / large data sets
//	internal/ - configuration and the HTTP API
//	cmd/      - the sptable command
//
// Quick ASCII example (ranked, perfect staircase, D* = 0):
//
//	        P1 P2 P3
//	    S1   1  1  1
//	    S2   1  1  0
//	    S3   1  0  0
//
//	go get github.com/katalvlaran/sptable
package sptable
