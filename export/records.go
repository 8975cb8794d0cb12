// SPDX-License-Identifier: MIT

package export

import (
	"strconv"

	"github.com/katalvlaran/sptable/sptable"
)

// Header cells shared by the CSV and XLSX writers.
var (
	studentHeaderHead = []string{"student_id", "original_index"}
	studentHeaderTail = []string{"score", "CS"}
	problemHeader     = []string{"problem_id", "original_index", "correct_count", "correct_rate", "CP"}
)

func studentHeader(res *sptable.Result) []string {
	h := make([]string, 0, len(studentHeaderHead)+len(res.Problems)+len(studentHeaderTail))
	h = append(h, studentHeaderHead...)
	for _, p := range res.Problems {
		h = append(h, p.ID)
	}

	return append(h, studentHeaderTail...)
}

func studentRecord(st sptable.RankedStudent) []string {
	rec := make([]string, 0, len(st.Responses)+4)
	rec = append(rec, st.ID, strconv.Itoa(st.OriginalIndex))
	for _, v := range st.Responses {
		rec = append(rec, strconv.Itoa(v))
	}

	return append(rec, strconv.Itoa(st.TotalScore), st.CautionIndex.Format(4))
}

func problemRecord(p sptable.RankedProblem) []string {
	return []string{
		p.ID,
		strconv.Itoa(p.OriginalIndex),
		strconv.Itoa(p.CorrectCount),
		strconv.FormatFloat(p.CorrectRate, 'f', 4, 64),
		p.CautionIndex.Format(4),
	}
}

// summaryRecords lists label/value pairs of the summary block.
func summaryRecords(res *sptable.Result) [][]string {
	s := res.Summary
	f := func(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

	return [][]string{
		{"disparity_coefficient", f(res.Disparity, 4)},
		{"student_count", strconv.Itoa(s.StudentCount)},
		{"problem_count", strconv.Itoa(s.ProblemCount)},
		{"average_score", f(s.AverageScore, 2)},
		{"average_correct_rate", f(s.AverageCorrectRate, 4)},
		{"score_std_dev", f(s.ScoreStdDev, 4)},
		{"reliability_kr20", s.Reliability.Format(4)},
		{"caution_students", strconv.Itoa(s.CautionStudents)},
		{"high_caution_students", strconv.Itoa(s.HighCautionStudents)},
		{"caution_problems", strconv.Itoa(s.CautionProblems)},
		{"high_caution_problems", strconv.Itoa(s.HighCautionProblems)},
	}
}
