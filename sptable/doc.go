// SPDX-License-Identifier: MIT

// Package sptable computes the S-P (Student-Problem) table analysis of a
// binary response matrix.
//
// 🚀 What is an S-P table?
//
//	Students are ranked by score and problems by the number of students who
//	solved them. Under the idealized (Guttman) pattern every student solves
//	exactly the easiest problems up to their score, so the ranked table splits
//	into a solid "correct" block and a solid "incorrect" block. The S-curve and
//	P-curve trace that boundary from the student side and the problem side; the
//	caution indices (CS/CP) measure how far each student or problem strays from
//	it; the disparity coefficient D* summarizes the whole table.
//
// ✨ Key features:
//   - stable ranking with an explicit tie-break (original index ascending)
//   - S-curve / P-curve step polylines normalized to [0,1]
//   - per-student CS and per-problem CP as true nullable values (NullFloat)
//   - disparity coefficient D* against the random-response expectation
//   - two interchangeable evaluation strategies (Naive, PrefixSum) that
//     produce identical results
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/sptable/sptable"
//
//	res, err := sptable.Analyze(sptable.Raw{
//	  StudentIDs: []string{"S1", "S2", "S3"},
//	  ProblemIDs: []string{"Q1", "Q2", "Q3"},
//	  Matrix:     [][]int{{1, 0, 1}, {1, 1, 0}, {1, 0, 0}},
//	})
//	fmt.Println(res.Disparity) // 0.75
//
// Concurrency:
//
//	Every function is pure: no globals, no caches, no logging. Independent
//	calls may run concurrently; each call allocates its own output.
//
// Performance:
//
//   - Time:   O(S·P + S log S + P log P)
//   - Memory: O(S·P)
package sptable
