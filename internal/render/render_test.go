package render

import (
	"bytes"
	"testing"

	"incomelens/internal/income"
)

func testModel(t *testing.T) *income.Model {
	t.Helper()
	m, err := income.New(income.DefaultParams())
	if err != nil {
		t.Fatalf("building model: %v", err)
	}
	return m
}

func TestDensity_RendersPNG(t *testing.T) {
	m := testModel(t)
	grid := income.Grid(300_000, 200)

	band := &Band{Low: 40_000, High: 100_000}
	data, err := Density(m, grid, band, Options{Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("Density() failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Density() produced no bytes")
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("output does not look like a PNG (first bytes %q)", data[:4])
	}
}

func TestCumulative_RendersSVG(t *testing.T) {
	m := testModel(t)
	grid := income.Grid(300_000, 200)

	data, err := Cumulative(m, grid, nil, Options{Format: FormatSVG})
	if err != nil {
		t.Fatalf("Cumulative() failed: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output does not look like an SVG")
	}
}

func TestDensity_NoBand(t *testing.T) {
	m := testModel(t)
	grid := income.Grid(300_000, 100)

	data, err := Density(m, grid, nil, Options{})
	if err != nil {
		t.Fatalf("Density() without band failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("no output")
	}
}

func TestDensity_GridTooSmall(t *testing.T) {
	m := testModel(t)

	if _, err := Density(m, []float64{100}, nil, Options{}); err == nil {
		t.Error("expected error for single-point grid")
	}
	if _, err := Density(m, nil, nil, Options{}); err == nil {
		t.Error("expected error for nil grid")
	}
}

func TestBadFormat(t *testing.T) {
	m := testModel(t)
	grid := income.Grid(300_000, 100)

	if _, err := Cumulative(m, grid, nil, Options{Format: Format("bmp")}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatExt(t *testing.T) {
	if got := FormatPNG.Ext(); got != "png" {
		t.Errorf("FormatPNG.Ext() = %q, want png", got)
	}
	if got := FormatSVG.Ext(); got != "svg" {
		t.Errorf("FormatSVG.Ext() = %q, want svg", got)
	}
}
