// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/sptable/matrix"
	"github.com/katalvlaran/sptable/sptable"
)

// Parsed is a loaded table plus what the loader learned about the source.
type Parsed struct {
	Raw    sptable.Raw
	Layout Layout // Standard or Transposed, never Auto
	Marks  bool   // circle / cross marks were present
}

const bom = "\ufeff"

// ParseCSV reads a CSV response table from r.
func ParseCSV(r io.Reader, opts ...Option) (*Parsed, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ParseCSV: %w", err)
	}

	p, err := parseRecords(records, newConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("ParseCSV: %w", err)
	}

	return p, nil
}

// parseRecords is the shared row parser of every source.
func parseRecords(records [][]string, cfg config) (*Parsed, error) {
	records = dropBlank(records)
	if len(records) < 2 {
		return nil, ErrTooFewRows
	}
	records[0][0] = strings.TrimPrefix(records[0][0], bom)

	header := trimAll(records[0])
	if len(header) < 2 {
		return nil, ErrNoIDs
	}
	cols := header[1:]
	body := records[1:]

	layout := cfg.layout
	if layout == Auto {
		layout = detect(len(cols), len(body))
	}

	lineIDs := make([]string, len(body))
	grid := make([][]int, len(body))
	var marks bool
	for i, rec := range body {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: %w", i+2, ErrShortRow)
		}
		lineIDs[i] = strings.TrimSpace(rec[0])
		row := make([]int, len(cols)) // zero padded
		for j := 1; j < len(rec) && j <= len(cols); j++ {
			v, mark, ok := normalize(rec[j])
			if !ok {
				return nil, fmt.Errorf("row %d column %d (%q): %w", i+2, j+1, strings.TrimSpace(rec[j]), ErrInvalidCell)
			}
			marks = marks || mark
			row[j-1] = v
		}
		grid[i] = row
	}

	raw := sptable.Raw{StudentIDs: lineIDs, ProblemIDs: cols, Matrix: grid}
	if layout == Transposed {
		var err error
		if raw, err = transpose(lineIDs, cols, grid); err != nil {
			return nil, err
		}
	}
	if err := sptable.Validate(raw); err != nil {
		return nil, err
	}

	cfg.logger.Debug("ingest: table parsed",
		slog.String("layout", layout.String()),
		slog.Bool("marks", marks),
		slog.Int("students", len(raw.StudentIDs)),
		slog.Int("problems", len(raw.ProblemIDs)))

	return &Parsed{Raw: raw, Layout: layout, Marks: marks}, nil
}

// detect applies the Transposed heuristic.
func detect(headerIDs, dataRows int) Layout {
	if headerIDs > TransposedMinHeader && dataRows < TransposedMaxRows {
		return Transposed
	}

	return Standard
}

// transpose turns a problem-per-row grid into a student-per-row Raw.
func transpose(problemIDs, studentIDs []string, grid [][]int) (sptable.Raw, error) {
	byProblem, err := matrix.FromRows(grid, len(studentIDs))
	if err != nil {
		return sptable.Raw{}, err
	}
	byStudent, err := matrix.Transpose(byProblem)
	if err != nil {
		return sptable.Raw{}, err
	}

	return sptable.Raw{StudentIDs: studentIDs, ProblemIDs: problemIDs, Matrix: byStudent.ToRows()}, nil
}

// normalize maps a cell to 0/1. mark reports a circle or cross symbol.
func normalize(cell string) (v int, mark, ok bool) {
	switch strings.TrimSpace(cell) {
	case "1":
		return 1, false, true
	case "0", "":
		return 0, false, true
	case "○", "◯", "O", "o":
		return 1, true, true
	case "×", "✕", "X", "x":
		return 0, true, true
	default:
		return 0, false, false
	}
}

// dropBlank removes records whose every field is blank.
func dropBlank(records [][]string) [][]string {
	out := records[:0]
	for _, rec := range records {
		if !blank(rec) {
			out = append(out, rec)
		}
	}

	return out
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(strings.TrimPrefix(f, bom)) != "" {
			return false
		}
	}

	return true
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, f := range rec {
		out[i] = strings.TrimSpace(f)
	}

	return out
}

// IsInputError reports whether err was caused by the content of the input
// rather than by I/O.
func IsInputError(err error) bool {
	var pe *csv.ParseError
	for _, target := range []error{
		ErrTooFewRows, ErrNoIDs, ErrShortRow, ErrInvalidCell, ErrNoSheet, ErrUnknownLayout,
		sptable.ErrDuplicateID, sptable.ErrEmptyID,
		sptable.ErrDimensionMismatch, sptable.ErrRaggedMatrix, sptable.ErrNonBinary,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return errors.As(err, &pe)
}
