// SPDX-License-Identifier: MIT

package ingest

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a response table from an XLSX workbook. sheet selects the
// worksheet; an empty name means the first one. Cell text is parsed exactly as
// ParseCSV parses fields.
func ReadXLSX(r io.Reader, sheet string, opts ...Option) (*Parsed, error) {
	cfg := newConfig(opts...)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("ReadXLSX: %q: %w", sheet, ErrNoSheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: read %q: %w", sheet, err)
	}
	cfg.logger.Debug("ingest: worksheet loaded", slog.String("sheet", sheet), slog.Int("rows", len(rows)))

	p, err := parseRecords(rows, cfg)
	if err != nil {
		return nil, fmt.Errorf("ReadXLSX: %w", err)
	}

	return p, nil
}
