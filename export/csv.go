// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/sptable/sptable"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes res as three blocks separated by an empty line:
//
//	student_id,original_index,<problem ids...>,score,CS
//	problem_id,original_index,correct_count,correct_rate,CP
//	label,value summary pairs
func WriteCSV(w io.Writer, res *sptable.Result, opts ...Option) error {
	o := newOptions(opts...)
	if o.bom {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	records := make([][]string, 0, len(res.Students)+len(res.Problems)+16)
	records = append(records, studentHeader(res))
	for _, st := range res.Students {
		records = append(records, studentRecord(st))
	}
	records = append(records, []string{""})
	records = append(records, problemHeader)
	for _, p := range res.Problems {
		records = append(records, problemRecord(p))
	}
	records = append(records, []string{""})
	records = append(records, summaryRecords(res)...)

	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	o.logger.Debug("export: csv written",
		slog.Int("students", len(res.Students)),
		slog.Int("problems", len(res.Problems)))

	return nil
}
