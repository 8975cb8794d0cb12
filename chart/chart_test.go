// SPDX-License-Identifier: MIT
package chart_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/katalvlaran/sptable/chart"
	"github.com/katalvlaran/sptable/samples"
	"github.com/katalvlaran/sptable/sptable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func smallCurves(t *testing.T) sptable.Curves {
	t.Helper()
	res, err := sptable.Analyze(samples.Small().Raw)
	require.NoError(t, err)

	return res.Curves
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.WriteHTML(&buf, smallCurves(t), "Class 3-B"))

	page := buf.String()
	assert.Contains(t, page, "<html")
	assert.Contains(t, page, "Class 3-B")
	assert.Contains(t, page, chart.SeriesS)
	assert.Contains(t, page, chart.SeriesP)
	assert.Contains(t, page, `"inverse":true`)
}

func TestWriteHTML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.WriteHTML(&buf, sptable.Curves{}, "empty"))
	assert.Contains(t, buf.String(), "no data")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.WritePNG(&buf, smallCurves(t), "Class 3-B", 4*vg.Inch, 3*vg.Inch))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Greater(t, b.Dx(), b.Dy(), "width must exceed height for a 4×3 in image")
}

func TestWritePNG_EmptyDefaultSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.WritePNG(&buf, sptable.Curves{}, "", 0, 0))
	_, err := png.Decode(&buf)
	assert.NoError(t, err)
}
