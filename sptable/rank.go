// SPDX-License-Identifier: MIT

package sptable

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/sptable/matrix"
)

const opRank = "Rank"

// Ranking is the outcome of the stable ranker.
//
// StudentOrder[i] is the original index of the student placed at rank i;
// ProblemOrder[j] likewise for problems. Scores and CorrectCounts are the
// aggregates already reordered into rank order, and Matrix is the reordered
// table: Matrix[i][j] = raw[StudentOrder[i]][ProblemOrder[j]].
type Ranking struct {
	StudentOrder  []int
	ProblemOrder  []int
	Scores        []int
	CorrectCounts []int
	Matrix        *matrix.Binary
}

// Order returns the permutation of [0..len(keys)) sorted by key descending,
// ties broken by index ascending.
//
// The tie-break is part of the comparator itself, so the result does not
// depend on the stability of the underlying sort.
// Complexity: O(n log n).
func Order(keys []int) []int {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		if c := cmp.Compare(keys[b], keys[a]); c != 0 {
			return c // key descending
		}

		return cmp.Compare(a, b) // original index ascending
	})

	return idx
}

// Rank reduces m, orders students by (score desc, index asc) and problems by
// (correct count desc, index asc), and builds the reordered matrix.
// Implementation:
//   - Stage 1: matrix.Reduce for scores and correct counts.
//   - Stage 2: Order on each aggregate vector.
//   - Stage 3: gather ranked aggregates; m.Permute for the ranked matrix.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(S·P + S log S + P log P), Space O(S·P).
func Rank(m *matrix.Binary) (*Ranking, error) {
	scores, counts, err := matrix.Reduce(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}

	studentOrder := Order(scores)
	problemOrder := Order(counts)

	ranked, err := m.Permute(studentOrder, problemOrder)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRank, err)
	}

	return &Ranking{
		StudentOrder:  studentOrder,
		ProblemOrder:  problemOrder,
		Scores:        gather(scores, studentOrder),
		CorrectCounts: gather(counts, problemOrder),
		Matrix:        ranked,
	}, nil
}

// gather returns v reordered by perm: out[k] = v[perm[k]].
func gather(v, perm []int) []int {
	out := make([]int, len(perm))
	for k, p := range perm {
		out[k] = v[p]
	}

	return out
}
