// SPDX-License-Identifier: MIT
package sptable_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sptable/sptable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyze_Validation maps each malformed input to its sentinel.
func TestAnalyze_Validation(t *testing.T) {
	cases := []struct {
		name string
		raw  sptable.Raw
		want error
	}{
		{"row count", sptable.Raw{StudentIDs: []string{"a", "b"}, ProblemIDs: []string{"q"}, Matrix: [][]int{{1}}}, sptable.ErrDimensionMismatch},
		{"ragged", sptable.Raw{StudentIDs: []string{"a", "b"}, ProblemIDs: []string{"q", "r"}, Matrix: [][]int{{1, 0}, {1}}}, sptable.ErrRaggedMatrix},
		{"non-binary", sptable.Raw{StudentIDs: []string{"a"}, ProblemIDs: []string{"q"}, Matrix: [][]int{{2}}}, sptable.ErrNonBinary},
		{"negative", sptable.Raw{StudentIDs: []string{"a"}, ProblemIDs: []string{"q"}, Matrix: [][]int{{-1}}}, sptable.ErrNonBinary},
		{"empty student", sptable.Raw{StudentIDs: []string{""}, ProblemIDs: []string{"q"}, Matrix: [][]int{{1}}}, sptable.ErrEmptyID},
		{"duplicate student", sptable.Raw{StudentIDs: []string{"a", "a"}, ProblemIDs: []string{"q"}, Matrix: [][]int{{1}, {0}}}, sptable.ErrDuplicateID},
		{"duplicate problem", sptable.Raw{StudentIDs: []string{"a"}, ProblemIDs: []string{"q", "q"}, Matrix: [][]int{{1, 0}}}, sptable.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sptable.Analyze(tc.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, sptable.Validate(tc.raw), tc.want)
		})
	}
}

// TestAnalyze_WithoutIDValidation skips identifier checks but not shape checks.
func TestAnalyze_WithoutIDValidation(t *testing.T) {
	raw := sptable.Raw{StudentIDs: []string{"a", "a"}, ProblemIDs: []string{"q"}, Matrix: [][]int{{0}, {1}}}
	res, err := sptable.Analyze(raw, sptable.WithoutIDValidation())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Students[0].OriginalIndex)

	raw.Matrix[0][0] = 3
	_, err = sptable.Analyze(raw, sptable.WithoutIDValidation())
	assert.ErrorIs(t, err, sptable.ErrNonBinary)
}

// TestAnalyze_Anomalous checks every field of a small hand-worked table.
func TestAnalyze_Anomalous(t *testing.T) {
	res := mustAnalyze(t, rawOf(anomalous, 4))

	gotIDs := make([]string, len(res.Problems))
	for j, p := range res.Problems {
		gotIDs[j] = p.ID
	}
	assert.Equal(t, []string{"Q1", "Q3", "Q2", "Q4"}, gotIDs)
	assert.Equal(t, [][]int{{1, 1, 1, 0}, {0, 1, 0, 1}, {1, 0, 0, 0}}, res.Matrix)

	st := res.Students[1]
	assert.Equal(t, "S2", st.ID)
	assert.Equal(t, 2, st.TotalScore)
	assert.Equal(t, []int{0, 1, 0, 1}, st.Responses)
	assert.Equal(t, sptable.LevelCritical, sptable.Level(st.CautionIndex))

	assert.InDelta(t, 2.0/3.0, res.Problems[0].CorrectRate, 1e-12)
	assert.Equal(t, 2, res.Problems[0].CorrectCount)

	sum := res.Summary
	assert.Equal(t, 3, sum.StudentCount)
	assert.Equal(t, 4, sum.ProblemCount)
	assert.Equal(t, 1, sum.CautionStudents)
	assert.Equal(t, 1, sum.HighCautionStudents)
	assert.Equal(t, 2, sum.CautionProblems)
	assert.Equal(t, 2, sum.HighCautionProblems)
	assert.InDelta(t, 2.0, sum.AverageScore, 1e-12)
	assert.InDelta(t, 0.5, sum.AverageCorrectRate, 1e-12)
	requireValue(t, -4.0/9.0, sum.Reliability, "KR-20")
}

// TestAnalyze_MatrixMatchesOrders: Matrix[i][j] = raw[orig_i][orig_j] and
// Responses mirrors the ranked row.
func TestAnalyze_MatrixMatchesOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		s, p := rng.Intn(15), rng.Intn(10)
		raw := rawOf(randomRows(rng, s, p, 0.5), p)
		res := mustAnalyze(t, raw)

		require.Len(t, res.Matrix, s)
		for i, st := range res.Students {
			assert.Equal(t, res.Matrix[i], st.Responses)
			for j, pr := range res.Problems {
				assert.Equal(t, raw.Matrix[st.OriginalIndex][pr.OriginalIndex], res.Matrix[i][j])
			}
			if i > 0 {
				prev := res.Students[i-1]
				assert.True(t, prev.TotalScore > st.TotalScore ||
					(prev.TotalScore == st.TotalScore && prev.OriginalIndex < st.OriginalIndex))
			}
		}
	}
}

// TestAnalyze_NoAliasing: the result shares no memory with the input.
func TestAnalyze_NoAliasing(t *testing.T) {
	raw := rawOf([][]int{{1, 0}, {1, 1}}, 2)
	res := mustAnalyze(t, raw)
	before := [][]int{{1, 1}, {1, 0}}
	require.Equal(t, before, res.Matrix)

	raw.Matrix[1][1] = 0
	raw.StudentIDs[0] = "changed"
	assert.Equal(t, before, res.Matrix)
	assert.Equal(t, "S1", res.Students[1].ID)

	res.Students[0].Responses[0] = 0
	assert.Equal(t, 1, res.Matrix[0][0])
}

// TestAnalyze_Degenerate covers the empty shapes.
func TestAnalyze_Degenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		res := mustAnalyze(t, sptable.Raw{})
		assert.Empty(t, res.Students)
		assert.Empty(t, res.Problems)
		assert.Empty(t, res.Curves.S)
		assert.Empty(t, res.Curves.P)
		assert.Equal(t, 0.0, res.Disparity)
		assert.True(t, res.Summary.Reliability.IsNull())
	})

	t.Run("students only", func(t *testing.T) {
		res := mustAnalyze(t, rawOf([][]int{{}, {}, {}}, 0))
		require.Len(t, res.Students, 3)
		for _, st := range res.Students {
			assert.True(t, st.CautionIndex.IsNull())
			assert.Equal(t, 0, st.TotalScore)
		}
		assert.Empty(t, res.Curves.S)
		assert.Equal(t, 0.0, res.Disparity)
		assert.Equal(t, 0.0, res.Summary.AverageCorrectRate)
	})

	t.Run("problems only", func(t *testing.T) {
		res := mustAnalyze(t, rawOf(nil, 3))
		require.Len(t, res.Problems, 3)
		for _, pr := range res.Problems {
			assert.True(t, pr.CautionIndex.IsNull())
			assert.Equal(t, 0.0, pr.CorrectRate)
		}
		assert.Empty(t, res.Curves.P)
		assert.Equal(t, 0.0, res.Summary.AverageScore)
	})

	t.Run("single correct cell", func(t *testing.T) {
		res := mustAnalyze(t, rawOf([][]int{{1}}, 1))
		assert.True(t, res.Students[0].CautionIndex.IsNull())
		assert.True(t, res.Problems[0].CautionIndex.IsNull())
		assert.Equal(t, 0.0, res.Disparity)
		assert.Len(t, res.Curves.S, 3)
	})
}

// TestAnalyze_ThresholdCounts recounts the summary from the ranked entities.
func TestAnalyze_ThresholdCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 25; trial++ {
		s, p := 1+rng.Intn(25), 1+rng.Intn(15)
		res := mustAnalyze(t, rawOf(randomRows(rng, s, p, 0.55), p))

		var warn, crit int
		for _, st := range res.Students {
			if v, ok := st.CautionIndex.Get(); ok && v >= 0.5 {
				warn++
				if v >= 0.75 {
					crit++
				}
			}
		}
		assert.Equal(t, warn, res.Summary.CautionStudents)
		assert.Equal(t, crit, res.Summary.HighCautionStudents)
		assert.LessOrEqual(t, res.Summary.HighCautionProblems, res.Summary.CautionProblems)
		assert.GreaterOrEqual(t, res.Disparity, 0.0)
	}
}

// TestAnalyze_Concurrent runs independent analyses in parallel; each must
// match its sequential twin.
func TestAnalyze_Concurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	raws := make([]sptable.Raw, 16)
	want := make([]*sptable.Result, len(raws))
	for k := range raws {
		p := 1 + rng.Intn(12)
		raws[k] = rawOf(randomRows(rng, 1+rng.Intn(40), p, 0.5), p)
		want[k] = mustAnalyze(t, raws[k])
	}

	got := make([]*sptable.Result, len(raws))
	var wg sync.WaitGroup
	for k := range raws {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			got[k], _ = sptable.Analyze(raws[k])
		}(k)
	}
	wg.Wait()

	for k := range raws {
		if diff := cmp.Diff(want[k], got[k], nullFloatCmp); diff != "" {
			t.Errorf("table %d differs under concurrency (-want +got):\n%s", k, diff)
		}
	}
}
