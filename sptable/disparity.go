// SPDX-License-Identifier: MIT

package sptable

import "fmt"

const opDisparity = "Disparity"

// Disparity computes the disparity coefficient D* of a ranked table.
//
//	observed = #{(i,j) : j < score_i, r[i][j] = 0}
//	expected = Σ_i Σ_{j<score_i} (1 − cc_j/S)
//	D*       = observed / expected
//
// expected is carried exactly as the integer numerator
// Σ_i Σ_{j<score_i} (S − cc_j) over S, so D* = observed·S / numerator with a
// single rounding step.
//
// Degenerate case: when expected == 0, D* is 0 if observed == 0 and 1
// otherwise.
//
// Range: D* ≥ 0; 0 means a perfect Guttman pattern.
//
// Errors:
//   - ErrDimensionMismatch when the matrix shape disagrees with the aggregates.
//
// Complexity:
//   - Time O(S·P), Space O(P) for the prefix table.
func Disparity(ranked [][]int, scores, correctCounts []int, opts ...Option) (float64, error) {
	if err := checkShape(ranked, scores, correctCounts); err != nil {
		return 0, fmt.Errorf("%s: %w", opDisparity, err)
	}

	o := gatherOptions(opts...)
	var observed, numerator int
	if o.strategy == Naive {
		observed, numerator = separationNaive(ranked, scores, correctCounts)
	} else {
		observed, numerator = separationPrefix(ranked, scores, correctCounts)
	}

	return disparityRatio(observed, numerator, len(scores)), nil
}

// separationNaive counts misses inside the S-curve and accumulates S − cc_j
// over the same cells.
func separationNaive(ranked [][]int, scores, correctCounts []int) (observed, numerator int) {
	s, p := len(scores), len(correctCounts)
	var j int
	for i, score := range scores {
		k := min(score, p)
		for j = 0; j < k; j++ {
			if ranked[i][j] == 0 {
				observed++
			}
			numerator += s - correctCounts[j]
		}
	}

	return observed, numerator
}

// separationPrefix uses Σ_{j<k}(S − cc_j) = k·S − preCC[k].
func separationPrefix(ranked [][]int, scores, correctCounts []int) (observed, numerator int) {
	s, p := len(scores), len(correctCounts)
	preCC := prefixInt(correctCounts)
	var j int
	for i, score := range scores {
		k := min(score, p)
		hits := 0
		for j = 0; j < k; j++ {
			hits += ranked[i][j]
		}
		observed += k - hits
		numerator += k*s - preCC[k]
	}

	return observed, numerator
}

// disparityRatio applies the degenerate-case rule and the final division.
func disparityRatio(observed, numerator, s int) float64 {
	if numerator == 0 {
		if observed == 0 {
			return 0
		}

		return 1
	}

	return float64(observed) * float64(s) / float64(numerator)
}
