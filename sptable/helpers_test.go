// SPDX-License-Identifier: MIT
package sptable_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sptable/sptable"
)

// nullFloatCmp lets go-cmp compare NullFloat values exactly.
var nullFloatCmp = cmp.AllowUnexported(sptable.NullFloat{})

// ids returns n identifiers "<prefix>1".."<prefix>n".
func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}

	return out
}

// rawOf wraps a matrix with generated identifiers.
func rawOf(rows [][]int, problems int) sptable.Raw {
	return sptable.Raw{
		StudentIDs: ids("S", len(rows)),
		ProblemIDs: ids("Q", problems),
		Matrix:     rows,
	}
}

// randomRows builds an s×p 0/1 table with probability density of ones.
func randomRows(rng *rand.Rand, s, p int, density float64) [][]int {
	rows := make([][]int, s)
	for i := range rows {
		rows[i] = make([]int, p)
		for j := range rows[i] {
			if rng.Float64() < density {
				rows[i][j] = 1
			}
		}
	}

	return rows
}

// distinctColumnRows builds an s×p table where column j has exactly j+1 ones
// at random rows, so no two problems tie on correct count (requires p ≤ s).
func distinctColumnRows(rng *rand.Rand, s, p int) [][]int {
	rows := make([][]int, s)
	for i := range rows {
		rows[i] = make([]int, p)
	}
	for j := 0; j < p; j++ {
		for _, i := range rng.Perm(s)[:j+1] {
			rows[i][j] = 1
		}
	}

	return rows
}

// shuffle returns raw with rows permuted by rp and columns by cp.
func shuffle(raw sptable.Raw, rp, cp []int) sptable.Raw {
	out := sptable.Raw{
		StudentIDs: make([]string, len(rp)),
		ProblemIDs: make([]string, len(cp)),
		Matrix:     make([][]int, len(rp)),
	}
	for j, c := range cp {
		out.ProblemIDs[j] = raw.ProblemIDs[c]
	}
	for i, r := range rp {
		out.StudentIDs[i] = raw.StudentIDs[r]
		out.Matrix[i] = make([]int, len(cp))
		for j, c := range cp {
			out.Matrix[i][j] = raw.Matrix[r][c]
		}
	}

	return out
}

// mustAnalyze runs Analyze and fails the test on error.
func mustAnalyze(t *testing.T, raw sptable.Raw, opts ...sptable.Option) *sptable.Result {
	t.Helper()
	res, err := sptable.Analyze(raw, opts...)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	return res
}

// guttman3 is the perfect 3×3 staircase.
var guttman3 = [][]int{
	{1, 1, 1},
	{1, 1, 0},
	{1, 0, 0},
}

// anomalous has one student and two problems off the staircase.
//
//	raw          ranked (problem order 0,2,1,3)
//	1 1 1 0      1 1 1 0   score 3
//	0 0 1 1      0 1 0 1   score 2  ← misses Q1, solves Q4
//	1 0 0 0      1 0 0 0   score 1
var anomalous = [][]int{
	{1, 1, 1, 0},
	{0, 0, 1, 1},
	{1, 0, 0, 0},
}
