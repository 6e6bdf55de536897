// Package render draws the income model's curves as line charts: a
// density chart and a cumulative chart, each optionally highlighting a
// selected income band with a shaded region and dashed bound markers.
package render

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"incomelens/internal/format"
	"incomelens/internal/income"
)

// Format is a chart output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case FormatPNG, "":
		return chart.PNG, nil
	case FormatSVG:
		return chart.SVG, nil
	}
	return nil, fmt.Errorf("unsupported chart format: %s", f)
}

// Band is an income band to highlight on a chart.
type Band struct {
	Low  float64
	High float64
}

// Options control chart rendering.
type Options struct {
	Width  int
	Height int
	Format Format
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 500
	}
	if o.Format == "" {
		o.Format = FormatPNG
	}
	return o
}

var (
	densityColor    drawing.Color = chart.ColorBlue
	cumulativeColor drawing.Color = chart.ColorGreen
	bandColor       drawing.Color = chart.ColorRed
)

// Density renders the income density curve over grid. The curve is
// scaled so its peak reads 100 (relative density), matching the
// original calculator's presentation. A non-nil band is shaded under
// the curve between its bounds and marked with dashed verticals.
func Density(m *income.Model, grid []float64, band *Band, opts Options) ([]byte, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("display grid needs at least 2 points, got %d", len(grid))
	}
	opts = opts.withDefaults()

	ys := m.DensitySeries(grid)
	peak := 0.0
	for _, y := range ys {
		if y > peak {
			peak = y
		}
	}
	if peak > 0 {
		for i := range ys {
			ys[i] = ys[i] / peak * 100
		}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Population Density",
			XValues: grid,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: densityColor,
				StrokeWidth: 3,
			},
		},
	}

	if band != nil {
		series = append(series, bandFill(grid, ys, *band), vline(band.Low, 100), vline(band.High, 100))
	}

	graph := chart.Chart{
		Title:  "Income Distribution",
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:           "Income ($ CAD)",
			ValueFormatter: dollarFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Density (% of peak)",
		},
		Series: series,
	}

	return renderChart(graph, opts.Format)
}

// Cumulative renders the CDF over grid as a percentage curve. A
// non-nil band is marked with dashed verticals at its bounds.
func Cumulative(m *income.Model, grid []float64, band *Band, opts Options) ([]byte, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("display grid needs at least 2 points, got %d", len(grid))
	}
	opts = opts.withDefaults()

	ys := m.CumulativeSeries(grid)
	for i := range ys {
		ys[i] *= 100
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Cumulative %",
			XValues: grid,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: cumulativeColor,
				StrokeWidth: 2,
			},
		},
	}

	if band != nil {
		series = append(series, vline(band.Low, 100), vline(band.High, 100))
	}

	graph := chart.Chart{
		Title:  "Cumulative Distribution",
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:           "Income ($ CAD)",
			ValueFormatter: dollarFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Cumulative %",
		},
		Series: series,
	}

	return renderChart(graph, opts.Format)
}

// bandFill shades the area under the curve between the band bounds.
func bandFill(grid, ys []float64, band Band) chart.Series {
	var xs, fys []float64
	for i, x := range grid {
		if x >= band.Low && x <= band.High {
			xs = append(xs, x)
			fys = append(fys, ys[i])
		}
	}
	// A fill needs at least two samples; fall back to the bare bounds.
	if len(xs) < 2 {
		xs = []float64{band.Low, band.High}
		fys = []float64{0, 0}
	}
	return chart.ContinuousSeries{
		XValues: xs,
		YValues: fys,
		Style: chart.Style{
			StrokeWidth: 1,
			StrokeColor: bandColor.WithAlpha(100),
			FillColor:   bandColor.WithAlpha(50),
		},
	}
}

// vline draws a dashed vertical marker from 0 to top at x.
func vline(x, top float64) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{x, x},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     bandColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5, 5},
		},
	}
}

func dollarFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return format.Dollars(f)
}

func renderChart(graph chart.Chart, f Format) ([]byte, error) {
	provider, err := f.provider()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := graph.Render(provider, &buf); err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return buf.Bytes(), nil
}
