// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/sptable/sptable"
	"github.com/xuri/excelize/v2"
)

// Worksheet names of the XLSX export.
const (
	SheetStudents = "Students"
	SheetProblems = "Problems"
	SheetSummary  = "Summary"
)

// WriteXLSX writes res as a workbook with Students, Problems and Summary
// sheets. Numbers are stored as numbers; a null caution index is the text
// sptable.NotComputable.
func WriteXLSX(w io.Writer, res *sptable.Result, opts ...Option) error {
	o := newOptions(opts...)
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetStudents); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	for _, name := range []string{SheetProblems, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	// Students
	rows := make([][]interface{}, 0, len(res.Students)+1)
	rows = append(rows, cells(studentHeader(res)))
	for _, st := range res.Students {
		row := make([]interface{}, 0, len(st.Responses)+4)
		row = append(row, st.ID, st.OriginalIndex)
		for _, v := range st.Responses {
			row = append(row, v)
		}
		rows = append(rows, append(row, st.TotalScore, nullable(st.CautionIndex)))
	}
	if err := writeSheet(f, SheetStudents, rows, bold); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	// Problems
	rows = rows[:0]
	rows = append(rows, cells(problemHeader))
	for _, p := range res.Problems {
		rows = append(rows, []interface{}{p.ID, p.OriginalIndex, p.CorrectCount, p.CorrectRate, nullable(p.CautionIndex)})
	}
	if err := writeSheet(f, SheetProblems, rows, bold); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	// Summary
	s := res.Summary
	rows = [][]interface{}{
		{"metric", "value"},
		{"disparity_coefficient", res.Disparity},
		{"student_count", s.StudentCount},
		{"problem_count", s.ProblemCount},
		{"average_score", s.AverageScore},
		{"average_correct_rate", s.AverageCorrectRate},
		{"score_std_dev", s.ScoreStdDev},
		{"reliability_kr20", nullable(s.Reliability)},
		{"caution_students", s.CautionStudents},
		{"high_caution_students", s.HighCautionStudents},
		{"caution_problems", s.CautionProblems},
		{"high_caution_problems", s.HighCautionProblems},
	}
	if err := writeSheet(f, SheetSummary, rows, bold); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	o.logger.Debug("export: xlsx written", slog.Int("students", len(res.Students)))

	return nil
}

// writeSheet writes rows from A1 down, bolds and freezes the header row.
func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func cells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}

// nullable maps a null value to the text marker and a present one to a number.
func nullable(n sptable.NullFloat) interface{} {
	if v, ok := n.Get(); ok {
		return v
	}

	return sptable.NotComputable
}
