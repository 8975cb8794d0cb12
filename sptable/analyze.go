// SPDX-License-Identifier: MIT

package sptable

import (
	"fmt"

	"github.com/katalvlaran/sptable/matrix"
)

const opAnalyze = "Analyze"

// Analyze runs the full S-P analysis of raw.
//
// Algorithm Outline:
//  1. Validate raw (shape and cells always; identifiers unless WithoutIDValidation).
//  2. Rank: reduce to scores / correct counts, order both axes stably,
//     permute the matrix.
//  3. CautionIndices on the ranked matrix and aggregates.
//  4. BuildCurves from the ranked aggregates.
//  5. Disparity from the ranked matrix and aggregates.
//  6. Summarize.
//
// Degenerate input (zero students and/or zero problems) is valid and yields
// empty collections, empty curves and D* = 0.
//
// The result shares no memory with raw and nothing in it is reused across
// calls.
//
// Errors:
//   - ErrDimensionMismatch, ErrRaggedMatrix, ErrNonBinary, ErrEmptyID,
//     ErrDuplicateID, each wrapped with "Analyze: ...".
//
// Complexity:
//   - Time O(S·P + S log S + P log P), Space O(S·P).
func Analyze(raw Raw, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if err := validateShape(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}
	if o.validateIDs {
		if err := validateIDs(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", opAnalyze, err)
		}
	}

	m, err := matrix.FromRows(raw.Matrix, len(raw.ProblemIDs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	// Stage 2: rank.
	rk, err := Rank(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}
	rankedRows := rk.Matrix.ToRows()

	// Stage 3: caution indices.
	cs, cp, err := CautionIndices(rankedRows, rk.Scores, rk.CorrectCounts, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	s := len(raw.StudentIDs)
	students := make([]RankedStudent, s)
	for i, orig := range rk.StudentOrder {
		students[i] = RankedStudent{
			ID:            raw.StudentIDs[orig],
			OriginalIndex: orig,
			TotalScore:    rk.Scores[i],
			Responses:     rk.Matrix.Row(i),
			CautionIndex:  cs[i],
		}
	}

	problems := make([]RankedProblem, len(raw.ProblemIDs))
	for j, orig := range rk.ProblemOrder {
		rate := 0.0
		if s > 0 {
			rate = float64(rk.CorrectCounts[j]) / float64(s)
		}
		problems[j] = RankedProblem{
			ID:            raw.ProblemIDs[orig],
			OriginalIndex: orig,
			CorrectCount:  rk.CorrectCounts[j],
			CorrectRate:   rate,
			CautionIndex:  cp[j],
		}
	}

	// Stage 4: curves.
	curves := BuildCurves(rk.Scores, rk.CorrectCounts)

	// Stage 5: disparity.
	d, err := Disparity(rankedRows, rk.Scores, rk.CorrectCounts, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	// Stage 6: summary.
	return &Result{
		Students:  students,
		Problems:  problems,
		Matrix:    rankedRows,
		Curves:    curves,
		Disparity: d,
		Summary:   Summarize(students, problems),
	}, nil
}
