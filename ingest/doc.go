// SPDX-License-Identifier: MIT

// Package ingest turns spreadsheet exports into sptable.Raw tables.
//
// 📦 Supported sources
//
//   - CSV (ParseCSV): comma separated, RFC 4180 quoting.
//   - XLSX (ReadXLSX): first or named worksheet, read with excelize.
//
// 🧭 Layouts
//
//	Standard    header: "", P1, P2, ...   rows: studentID, cells...
//	Transposed  header: "", S1, S2, ...   rows: problemID, cells...
//
// Transposed is assumed when the header lists more than 100 entries and there
// are fewer than 30 data rows (a roster with students across the top).
// WithLayout forces either layout.
//
// ✔ Cell values
//
//	1  ○  ◯  O  o      → 1
//	0  ×  ✕  X  x  ""  → 0
//
// Surrounding whitespace is ignored. Short rows are padded with 0, extra
// cells beyond the header are ignored, and blank lines are skipped. Any other
// value is ErrInvalidCell with its 1-based row and column.
//
// The parsed table is checked with sptable.Validate, so duplicate and empty
// identifiers surface as sptable.ErrDuplicateID / sptable.ErrEmptyID.
package ingest
