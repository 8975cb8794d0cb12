// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates a format name or value that is not supported.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format is an output encoding.
type Format int

const (
	CSV Format = iota
	XLSX
	JSON
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case XLSX:
		return "xlsx"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + f.String() }

// ContentType returns the MIME type of the encoding.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=utf-8"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case JSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat maps "csv", "xlsx" or "json" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "xlsx", "excel":
		return XLSX, nil
	case "json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}
