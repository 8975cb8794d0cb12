// SPDX-License-Identifier: MIT
package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/sptable/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// workbook builds an in-memory XLSX with one sheet named sheet.
func workbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := workbook(t, "Scores", [][]interface{}{
		{"", "Q1", "Q2"},
		{"S1", 1, "○"},
		{"S2", 0},
	})

	p, err := ingest.ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	require.NoError(t, err)
	assert.True(t, p.Marks)
	assert.Equal(t, []string{"S1", "S2"}, p.Raw.StudentIDs)
	assert.Equal(t, [][]int{{1, 1}, {0, 0}}, p.Raw.Matrix)

	p, err = ingest.ReadXLSX(bytes.NewReader(buf.Bytes()), "Scores")
	require.NoError(t, err)
	assert.Len(t, p.Raw.ProblemIDs, 2)
}

func TestReadXLSX_Errors(t *testing.T) {
	buf := workbook(t, "Scores", [][]interface{}{{"", "Q1"}, {"S1", 5}})

	_, err := ingest.ReadXLSX(bytes.NewReader(buf.Bytes()), "Missing")
	assert.ErrorIs(t, err, ingest.ErrNoSheet)

	_, err = ingest.ReadXLSX(bytes.NewReader(buf.Bytes()), "")
	assert.ErrorIs(t, err, ingest.ErrInvalidCell)

	_, err = ingest.ReadXLSX(strings.NewReader("not a zip"), "")
	assert.Error(t, err)
}
