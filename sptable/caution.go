// SPDX-License-Identifier: MIT

package sptable

import "fmt"

const opCaution = "CautionIndices"

// CautionIndices computes the student caution index CS and the problem
// caution index CP for every row and column of a ranked table.
//
// Inputs are the ranked matrix and the ranked aggregates (row sums and column
// sums, in rank order). Let S = len(scores), P = len(correctCounts),
// E_p = mean(correctCounts), E_s = mean(scores).
//
// For student i with boundary k = score_i:
//
//	A_i = Σ_{j<k, r[i][j]=0} cc_j          expected-correct problems missed
//	B_i = Σ_{j≥k, r[i][j]=1} cc_j          expected-incorrect problems solved
//	C_i = Σ_{j<k} cc_j
//	CS_i = (A_i − B_i) / (C_i − score_i·E_p)
//
// For problem j the roles swap: boundary m = cc_j, rows [0,m) and [m,S),
// weights score_i and E_s.
//
// A, B and C are exact integer sums; the only floating-point steps are the
// mean, the denominator and the final division. A denominator exactly equal
// to zero yields Null(), never 0 or NaN.
//
// Errors:
//   - ErrDimensionMismatch when the matrix shape disagrees with the aggregates.
//
// Complexity:
//   - Naive: O(S·P) with three passes per entity; PrefixSum: one O(S·P) pass
//     plus O(S + P) prefix tables.
func CautionIndices(ranked [][]int, scores, correctCounts []int, opts ...Option) (students, problems []NullFloat, err error) {
	if err = checkShape(ranked, scores, correctCounts); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opCaution, err)
	}

	o := gatherOptions(opts...)
	if o.strategy == Naive {
		return cautionNaive(ranked, scores, correctCounts), cautionNaiveProblems(ranked, scores, correctCounts), nil
	}
	students, problems = cautionPrefix(ranked, scores, correctCounts)

	return students, problems, nil
}

// checkShape ensures len(ranked) == len(scores) and every row has len(correctCounts) cells.
func checkShape(ranked [][]int, scores, correctCounts []int) error {
	if len(ranked) != len(scores) {
		return fmt.Errorf("%d rows for %d scores: %w", len(ranked), len(scores), ErrDimensionMismatch)
	}
	for i, row := range ranked {
		if len(row) != len(correctCounts) {
			return fmt.Errorf("row %d has %d cells for %d problems: %w", i, len(row), len(correctCounts), ErrDimensionMismatch)
		}
	}

	return nil
}

// caution finalizes (a−b)/(c−d·e), null on an exactly zero denominator.
func caution(a, b, c, d int, e float64) NullFloat {
	den := float64(c) - float64(d)*e
	if den == 0 {
		return Null()
	}

	return Float(float64(a-b) / den)
}

// meanInt returns Σv/len(v), or 0 for an empty vector.
func meanInt(v []int) float64 {
	if len(v) == 0 {
		return 0
	}

	return float64(sumInt(v)) / float64(len(v))
}

// sumInt returns the exact integer sum of v.
func sumInt(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}

	return s
}

// prefixInt returns pre with pre[k] = Σ_{t<k} v[t], len(v)+1 entries.
func prefixInt(v []int) []int {
	pre := make([]int, len(v)+1)
	for t, x := range v {
		pre[t+1] = pre[t] + x
	}

	return pre
}

// cautionNaive evaluates CS directly from the definition.
func cautionNaive(ranked [][]int, scores, correctCounts []int) []NullFloat {
	p := len(correctCounts)
	ep := meanInt(correctCounts)
	out := make([]NullFloat, len(scores))

	var a, b, c, j int
	for i, score := range scores {
		k := min(score, p)
		a, b, c = 0, 0, 0
		for j = 0; j < k; j++ {
			if ranked[i][j] == 0 {
				a += correctCounts[j]
			}
		}
		for j = k; j < p; j++ {
			if ranked[i][j] == 1 {
				b += correctCounts[j]
			}
		}
		for j = 0; j < k; j++ {
			c += correctCounts[j]
		}
		out[i] = caution(a, b, c, score, ep)
	}

	return out
}

// cautionNaiveProblems evaluates CP directly from the definition.
func cautionNaiveProblems(ranked [][]int, scores, correctCounts []int) []NullFloat {
	s := len(scores)
	es := meanInt(scores)
	out := make([]NullFloat, len(correctCounts))

	var a, b, c, i int
	for j, cc := range correctCounts {
		m := min(cc, s)
		a, b, c = 0, 0, 0
		for i = 0; i < m; i++ {
			if ranked[i][j] == 0 {
				a += scores[i]
			}
		}
		for i = m; i < s; i++ {
			if ranked[i][j] == 1 {
				b += scores[i]
			}
		}
		for i = 0; i < m; i++ {
			c += scores[i]
		}
		out[j] = caution(a, b, c, cc, es)
	}

	return out
}

// cautionPrefix evaluates CS and CP in one row-major pass.
//
// With W = weight vector and k the boundary, C = pre[k] comes from the prefix
// table. Only the weighted hits before the boundary (hb) and over the whole
// line (hw) need the matrix:
//
//	A = C − hb      (weights inside the boundary that were missed)
//	B = hw − hb     (weights outside the boundary that were hit)
func cautionPrefix(ranked [][]int, scores, correctCounts []int) (students, problems []NullFloat) {
	s, p := len(scores), len(correctCounts)
	preCC := prefixInt(correctCounts)
	preScore := prefixInt(scores)
	ep := meanInt(correctCounts)
	es := meanInt(scores)

	colBefore := make([]int, p) // Σ_{i<m_j, r=1} score_i
	colAll := make([]int, p)    // Σ_{r=1} score_i
	colBound := make([]int, p)
	for j, cc := range correctCounts {
		colBound[j] = min(cc, s)
	}

	students = make([]NullFloat, s)
	var j int
	for i, row := range ranked {
		k := min(scores[i], p)
		rowBefore, rowAll := 0, 0
		for j = 0; j < p; j++ {
			if row[j] != 1 {
				continue
			}
			rowAll += correctCounts[j]
			if j < k {
				rowBefore += correctCounts[j]
			}
			colAll[j] += scores[i]
			if i < colBound[j] {
				colBefore[j] += scores[i]
			}
		}
		c := preCC[k]
		students[i] = caution(c-rowBefore, rowAll-rowBefore, c, scores[i], ep)
	}

	problems = make([]NullFloat, p)
	for j = 0; j < p; j++ {
		c := preScore[colBound[j]]
		problems[j] = caution(c-colBefore[j], colAll[j]-colBefore[j], c, correctCounts[j], es)
	}

	return students, problems
}
