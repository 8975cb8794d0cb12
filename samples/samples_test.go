// SPDX-License-Identifier: MIT
package samples_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/sptable/samples"
	"github.com/katalvlaran/sptable/sptable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmall_IsPerfectStaircase(t *testing.T) {
	s := samples.Small()
	assert.Equal(t, []string{"S001", "S002", "S003", "S004", "S005"}, s.Raw.StudentIDs)
	assert.Equal(t, []string{"P1", "P2", "P3", "P4", "P5"}, s.Raw.ProblemIDs)

	res, err := sptable.Analyze(s.Raw)
	require.NoError(t, err)
	want, ok := s.ExpectedDisparity.Get()
	require.True(t, ok)
	assert.Equal(t, want, res.Disparity)
}

func TestBundled_ShapesAndDeterminism(t *testing.T) {
	cases := []struct {
		name      string
		s, p      int
		firstID   string
		lastProbl string
	}{
		{samples.NameSmall, 5, 5, "S001", "P5"},
		{samples.NameMedium, 30, 20, "S001", "P20"},
		{samples.NameLarge, 300, 60, "S0001", "P60"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := samples.ByName(tc.name)
			require.NoError(t, err)
			b, err := samples.ByName(strings.ToUpper(tc.name))
			require.NoError(t, err)

			require.Len(t, a.Raw.StudentIDs, tc.s)
			require.Len(t, a.Raw.ProblemIDs, tc.p)
			assert.Equal(t, tc.firstID, a.Raw.StudentIDs[0])
			assert.Equal(t, tc.lastProbl, a.Raw.ProblemIDs[tc.p-1])
			assert.Equal(t, a.Raw, b.Raw, "samples must be reproducible")
			assert.NoError(t, sptable.Validate(a.Raw))
		})
	}
}

func TestGenerated_NotDegenerate(t *testing.T) {
	for _, s := range samples.All()[1:] {
		ones := 0
		for _, row := range s.Raw.Matrix {
			for _, v := range row {
				ones += v
			}
		}
		cells := len(s.Raw.StudentIDs) * len(s.Raw.ProblemIDs)
		assert.Greater(t, ones, 0, s.Name)
		assert.Less(t, ones, cells, s.Name)
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := samples.ByName("huge")
	assert.ErrorIs(t, err, samples.ErrUnknownSample)
	assert.Equal(t, []string{"small", "medium", "large"}, samples.Names())
}

func TestGenerate_Options(t *testing.T) {
	raw, err := samples.Generate(
		samples.WithStudents(3),
		samples.WithProblems(2),
		samples.WithIDScheme(samples.NumberedIDFn("s"), samples.ExcelColumnIDFn),
		samples.WithOffset(1), // every draw < ability·ease + 1
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "s2", "s3"}, raw.StudentIDs)
	assert.Equal(t, []string{"A", "B"}, raw.ProblemIDs)
	assert.Equal(t, [][]int{{1, 1}, {1, 1}, {1, 1}}, raw.Matrix)

	raw, err = samples.Generate(samples.WithStudents(0), samples.WithProblems(0))
	require.NoError(t, err)
	assert.Empty(t, raw.Matrix)

	_, err = samples.Generate(samples.WithStudents(-1))
	assert.ErrorIs(t, err, samples.ErrTooFew)
	_, err = samples.Generate(samples.WithAbility(0.8, 0.4, 1))
	assert.ErrorIs(t, err, samples.ErrBadRange)

	assert.Panics(t, func() { samples.WithIDScheme(nil, samples.ExcelColumnIDFn) })
}

func TestSeededRandom_Range(t *testing.T) {
	for seed := 0.0; seed < 5000; seed += 7 {
		r := samples.SeededRandom(seed)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.Less(t, r, 1.0)
	}
	assert.Equal(t, samples.SeededRandom(42), samples.SeededRandom(42))
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "S001", samples.PaddedIDFn("S", 3)(0))
	assert.Equal(t, "P1000", samples.PaddedIDFn("P", 2)(999))
	assert.Equal(t, "Q7", samples.NumberedIDFn("Q")(6))
	assert.Equal(t, "Z", samples.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", samples.ExcelColumnIDFn(26))
	assert.Equal(t, "ZZ", samples.ExcelColumnIDFn(701))
	assert.Panics(t, func() { samples.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { samples.PaddedIDFn("S", 0) })
}

func TestCSV(t *testing.T) {
	got := samples.CSV(samples.Small())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, ",P1,P2,P3,P4,P5", lines[0])
	assert.Equal(t, "S001,1,1,1,1,1", lines[1])
	assert.Equal(t, "S005,1,0,0,0,0", lines[5])
}
