// SPDX-License-Identifier: MIT

package samples

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sptable/sptable"
)

// Bundled sample names.
const (
	NameSmall  = "small"
	NameMedium = "medium"
	NameLarge  = "large"
)

// Sample is a bundled data set.
type Sample struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Raw         sptable.Raw `json:"data"`

	// ExpectedDisparity is the known D* of the table, null when not precomputed.
	ExpectedDisparity sptable.NullFloat `json:"expectedDisparityCoefficient"`
}

// Small returns the 5×5 perfect staircase.
func Small() Sample {
	return Sample{
		Name:        NameSmall,
		Description: "5 students × 5 problems (minimal, perfect Guttman pattern)",
		Raw: sptable.Raw{
			StudentIDs: idsOf(PaddedIDFn("S", 3), 5),
			ProblemIDs: idsOf(NumberedIDFn("P"), 5),
			Matrix: [][]int{
				{1, 1, 1, 1, 1},
				{1, 1, 1, 1, 0},
				{1, 1, 1, 0, 0},
				{1, 1, 0, 0, 0},
				{1, 0, 0, 0, 0},
			},
		},
		ExpectedDisparity: sptable.Float(0),
	}
}

// Medium returns the 30×20 class-sized table.
func Medium() Sample {
	raw, _ := Generate() // defaults are the medium family and always valid

	return Sample{
		Name:        NameMedium,
		Description: "30 students × 20 problems (typical class)",
		Raw:         raw,
	}
}

// Large returns the 300×60 grade-sized table.
func Large() Sample {
	raw, _ := Generate(
		WithStudents(300),
		WithProblems(60),
		WithIDScheme(PaddedIDFn("S", 4), PaddedIDFn("P", 2)),
		WithAbility(0.2, 0.6, 2),
		WithEase(0.2, 0.6, 2000),
		WithOffset(0.15),
		WithCellSeed(10000),
	)

	return Sample{
		Name:        NameLarge,
		Description: "300 students × 60 problems (grade scale)",
		Raw:         raw,
	}
}

// Names lists the bundled sample names in size order.
func Names() []string { return []string{NameSmall, NameMedium, NameLarge} }

// All returns every bundled sample in size order.
// Each call builds fresh tables; callers may mutate them.
func All() []Sample { return []Sample{Small(), Medium(), Large()} }

// ByName returns the bundled sample called name.
func ByName(name string) (Sample, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSmall:
		return Small(), nil
	case NameMedium:
		return Medium(), nil
	case NameLarge:
		return Large(), nil
	default:
		return Sample{}, samplesErrorf("ByName", fmt.Errorf("%q: %w", name, ErrUnknownSample))
	}
}

// WriteCSV writes raw in the standard layout: a header row with an empty
// corner cell followed by problem IDs, then one row per student.
func WriteCSV(w io.Writer, raw sptable.Raw) error {
	cw := csv.NewWriter(w)
	header := append([]string{""}, raw.ProblemIDs...)
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(raw.ProblemIDs)+1)
	for i, row := range raw.Matrix {
		rec[0] = raw.StudentIDs[i]
		for j, v := range row {
			rec[j+1] = strconv.Itoa(v)
		}
		if err := cw.Write(rec[:len(row)+1]); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// CSV renders s in the standard layout (see WriteCSV).
func CSV(s Sample) string {
	var sb strings.Builder
	_ = WriteCSV(&sb, s.Raw) // strings.Builder never fails

	return sb.String()
}
