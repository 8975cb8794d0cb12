// SPDX-License-Identifier: MIT

// Package export writes an analyzed S-P table as CSV, XLSX or JSON.
//
// All writers render a null caution index as sptable.NotComputable ("n/a")
// in text formats and as JSON null in JSON. CSV output can be prefixed with a
// UTF-8 BOM so spreadsheet tools detect the encoding.
//
// Write dispatches on Format; SaveFile creates the target directory and
// names the file <base>.<ext>.
package export
