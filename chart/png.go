// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/katalvlaran/sptable/sptable"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default image size of WritePNG.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var (
	rgbS = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	rgbP = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// WritePNG renders curves as a PNG image of width × height (zero means the
// default size).
//
// gonum/plot has no inverted axis, so Y values are drawn as 1−y and the tick
// labels are flipped back.
func WritePNG(w io.Writer, curves sptable.Curves, title string, width, height vg.Length) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "problems"
	p.Y.Label.Text = "students"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Y.Tick.Marker = plot.TickerFunc(invertedTicks)
	p.Add(plotter.NewGrid())

	for _, s := range []struct {
		name string
		pts  []sptable.CurvePoint
		rgb  color.Color
	}{
		{SeriesS, curves.S, rgbS},
		{SeriesP, curves.P, rgbP},
	} {
		if len(s.pts) == 0 {
			continue
		}
		l, err := plotter.NewLine(flipped(s.pts))
		if err != nil {
			return fmt.Errorf("WritePNG: %s: %w", s.name, err)
		}
		l.Color = s.rgb
		l.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add(s.name, l)
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}

	return nil
}

// flipped converts curve points to plot coordinates with Y measured upward.
func flipped(pts []sptable.CurvePoint) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: 1 - pt.Y}
	}

	return xys
}

// invertedTicks labels the flipped Y axis in original units.
func invertedTicks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if !t.IsMinor() {
			ticks[i].Label = strconv.FormatFloat(1-t.Value, 'g', 3, 64)
		}
	}

	return ticks
}
