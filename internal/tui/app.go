// Package tui implements the interactive shell: two income-bound
// sliders with live population metrics and in-terminal sketches of the
// density and cumulative curves. Every keypress re-queries the model
// with plain function calls; there is no cached or incremental state
// beyond the current bounds.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"incomelens/internal/format"
	"incomelens/internal/income"
)

// Slider steps in dollars, matching the original calculator's $5,000
// slider increments.
const (
	stepFine   = 5_000
	stepCoarse = 25_000
)

const defaultSketchWidth = 64

type slider int

const (
	sliderMin slider = iota
	sliderMax
)

type model struct {
	theme Theme
	keys  keyMap
	help  help.Model

	inc     *income.Model
	gridMax float64

	// density/cumulative levels precomputed over the sketch columns;
	// the distribution never changes, only the band does.
	density    []float64
	cumulative []float64

	low, high float64
	band      income.BandResult
	active    slider
	width     int
}

// Run starts the interactive shell against inc. gridMax bounds the
// slider range and the sketch x-axis.
func Run(inc *income.Model, gridMax float64) error {
	p := tea.NewProgram(newModel(inc, gridMax), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(inc *income.Model, gridMax float64) model {
	m := model{
		theme:   DefaultTheme(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		inc:     inc,
		gridMax: gridMax,
		low:     25_000,
		high:    100_000,
		width:   defaultSketchWidth,
	}
	if m.high > gridMax {
		m.high = gridMax
	}
	if m.low > m.high {
		m.low = 0
	}
	m.resample()
	m.requery()
	return m
}

// resample evaluates both curves over one x per sketch column.
func (m *model) resample() {
	cols := m.sketchWidth()
	xs := make([]float64, cols)
	for i := range xs {
		xs[i] = (float64(i) + 0.5) * m.gridMax / float64(cols)
	}
	m.density = m.inc.DensitySeries(xs)
	m.cumulative = m.inc.CumulativeSeries(xs)
}

func (m *model) requery() {
	res, err := m.inc.Band(m.low, m.high)
	if err != nil {
		return // unreachable: slider clamping preserves 0 <= low <= high
	}
	m.band = res
}

func (m model) sketchWidth() int {
	w := m.width - 4
	if w < 16 {
		w = 16
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.resample()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			if m.active == sliderMin {
				m.active = sliderMax
			} else {
				m.active = sliderMin
			}
			return m, nil
		case key.Matches(msg, m.keys.Coarse):
			if strings.Contains(msg.String(), "left") || msg.String() == "H" {
				m.adjust(-stepCoarse)
			} else {
				m.adjust(stepCoarse)
			}
			return m, nil
		case key.Matches(msg, m.keys.Decrease):
			m.adjust(-stepFine)
			return m, nil
		case key.Matches(msg, m.keys.Increase):
			m.adjust(stepFine)
			return m, nil
		}
	}
	return m, nil
}

// adjust moves the active bound by delta, keeping 0 <= low <= high <=
// gridMax. The min slider cannot pass the max slider, mirroring the
// original's dependent slider ranges.
func (m *model) adjust(delta float64) {
	switch m.active {
	case sliderMin:
		m.low = clamp(m.low+delta, 0, m.high)
	case sliderMax:
		m.high = clamp(m.high+delta, m.low, m.gridMax)
	}
	m.requery()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Canada Income Distribution"))
	b.WriteString("\n")
	p := m.inc.Params()
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf(
		"log-normal mu=%.2f sigma=%.2f, population %s",
		p.Mu, p.Sigma, format.Count(float64(p.Population)))))
	b.WriteString("\n\n")

	b.WriteString(m.metrics())
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Density"))
	b.WriteString("\n")
	b.WriteString(m.sketch(m.density))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Cumulative"))
	b.WriteString("\n")
	b.WriteString(m.sketch(m.cumulative))
	b.WriteString("\n\n")

	b.WriteString(m.sliderLine("Min", m.low, sliderMin))
	b.WriteString("\n")
	b.WriteString(m.sliderLine("Max", m.high, sliderMax))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m model) metrics() string {
	cards := []string{
		m.card("People in Range", format.Count(m.band.People)),
		m.card("Share of Population", format.Percent(m.band.Percent)),
		m.card("Income Range", fmt.Sprintf("%s - %s", format.Dollars(m.low), format.Dollars(m.high))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m model) card(label, value string) string {
	inner := m.theme.Label.Render(label) + "\n" + m.theme.Metric.Render(value)
	return m.theme.Card.Render(inner)
}

func (m model) sliderLine(label string, v float64, s slider) string {
	line := fmt.Sprintf("%-4s %s", label, format.Dollars(v))
	if m.active == s {
		return m.theme.Active.Render("> " + line)
	}
	return "  " + line
}

// sketch renders ys as one row of block characters, coloring the
// columns inside the selected band.
func (m model) sketch(ys []float64) string {
	runes := sparkline(ys)
	cols := len(runes)

	var b strings.Builder
	for i, r := range runes {
		x := (float64(i) + 0.5) * m.gridMax / float64(cols)
		if x >= m.low && x <= m.high {
			b.WriteString(m.theme.BandMark.Render(string(r)))
		} else {
			b.WriteString(m.theme.Curve.Render(string(r)))
		}
	}
	return b.String()
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline maps ys onto block-character levels scaled to the series
// peak. Length and order match the input.
func sparkline(ys []float64) []rune {
	peak := 0.0
	for _, y := range ys {
		if y > peak {
			peak = y
		}
	}

	out := make([]rune, len(ys))
	for i, y := range ys {
		if peak <= 0 || y <= 0 {
			out[i] = sparkLevels[0]
			continue
		}
		lvl := int(y / peak * float64(len(sparkLevels)-1))
		if lvl >= len(sparkLevels) {
			lvl = len(sparkLevels) - 1
		}
		out[i] = sparkLevels[lvl]
	}
	return out
}
