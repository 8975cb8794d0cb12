// SPDX-License-Identifier: MIT
// Package: sptable/ingest
//
// errors.go: sentinel errors for the ingest package.

package ingest

import "errors"

var (
	// ErrTooFewRows indicates fewer than a header row and one data row.
	ErrTooFewRows = errors.New("ingest: need a header row and at least one data row")

	// ErrNoIDs indicates a header row with no identifier after the corner cell.
	ErrNoIDs = errors.New("ingest: header row has no identifiers")

	// ErrShortRow indicates a data row with no cell after its identifier.
	ErrShortRow = errors.New("ingest: data row has no cells")

	// ErrInvalidCell indicates a value that is not a recognized mark.
	ErrInvalidCell = errors.New("ingest: cell must be 0, 1, ○ or ×")

	// ErrNoSheet indicates a workbook without the requested worksheet.
	ErrNoSheet = errors.New("ingest: worksheet not found")

	// ErrUnknownLayout indicates a layout name ParseLayout does not know.
	ErrUnknownLayout = errors.New("ingest: unknown layout")
)
