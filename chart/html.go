// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/katalvlaran/sptable/sptable"
)

// Series names and colors shared by both renderers.
const (
	SeriesS = "S-curve"
	SeriesP = "P-curve"

	colorS = "#1f77b4"
	colorP = "#d62728"
)

// WriteHTML renders curves as a standalone HTML page.
func WriteHTML(w io.Writer, curves sptable.Curves, title string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "720px", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle(curves)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: 1, Name: "problems", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: 1, Name: "students", Inverse: opts.Bool(true)}),
	)
	line.AddSeries(SeriesS, lineData(curves.S),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorS}))
	line.AddSeries(SeriesP, lineData(curves.P),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorP}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("WriteHTML: %w", err)
	}

	return nil
}

func lineData(pts []sptable.CurvePoint) []opts.LineData {
	out := make([]opts.LineData, len(pts))
	for i, p := range pts {
		out[i] = opts.LineData{Value: []interface{}{p.X, p.Y}}
	}

	return out
}

func subtitle(c sptable.Curves) string {
	if len(c.S) == 0 {
		return "no data"
	}

	return fmt.Sprintf("%d students × %d problems", (len(c.S)-1)/2, (len(c.P)-1)/2)
}
