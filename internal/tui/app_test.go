package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"incomelens/internal/income"
)

func testShell(t *testing.T) model {
	t.Helper()
	inc, err := income.New(income.DefaultParams())
	if err != nil {
		t.Fatalf("building model: %v", err)
	}
	return newModel(inc, income.DefaultGridMax)
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return got
}

func TestInitialState(t *testing.T) {
	m := testShell(t)

	if m.low != 25_000 || m.high != 100_000 {
		t.Errorf("initial bounds = %v, %v, want 25000, 100000", m.low, m.high)
	}
	if m.band.Probability <= 0 || m.band.Probability >= 1 {
		t.Errorf("initial band probability = %v, want in (0, 1)", m.band.Probability)
	}
}

func TestAdjust_StepsAndClamps(t *testing.T) {
	m := testShell(t)

	m = update(t, m, keyPress(tea.KeyLeft))
	if m.low != 20_000 {
		t.Errorf("low after one left = %v, want 20000", m.low)
	}

	// Min slider cannot go below zero.
	for i := 0; i < 10; i++ {
		m = update(t, m, keyPress(tea.KeyLeft))
	}
	if m.low != 0 {
		t.Errorf("low after many lefts = %v, want 0", m.low)
	}
}

func TestAdjust_MinCannotPassMax(t *testing.T) {
	m := testShell(t)

	for i := 0; i < 50; i++ {
		m = update(t, m, keyPress(tea.KeyRight))
	}
	if m.low > m.high {
		t.Errorf("low %v exceeds high %v", m.low, m.high)
	}
	if m.low != m.high {
		t.Errorf("low after many rights = %v, want clamped to high %v", m.low, m.high)
	}
}

func TestAdjust_MaxBounds(t *testing.T) {
	m := testShell(t)
	m = update(t, m, keyPress(tea.KeyTab)) // switch to max slider

	for i := 0; i < 100; i++ {
		m = update(t, m, keyPress(tea.KeyRight))
	}
	if m.high != income.DefaultGridMax {
		t.Errorf("high after many rights = %v, want %v", m.high, float64(income.DefaultGridMax))
	}

	for i := 0; i < 1000; i++ {
		m = update(t, m, keyPress(tea.KeyLeft))
	}
	if m.high != m.low {
		t.Errorf("high after many lefts = %v, want clamped to low %v", m.high, m.low)
	}
}

func TestBandRecomputedOnAdjust(t *testing.T) {
	m := testShell(t)
	before := m.band

	m = update(t, m, keyPress(tea.KeyRight))
	if m.band == before {
		t.Error("band result unchanged after moving a slider")
	}
}

func TestQuitKeys(t *testing.T) {
	m := testShell(t)

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Error("expected quit command for q")
	}
	_, cmd = m.Update(keyPress(tea.KeyCtrlC))
	if cmd == nil {
		t.Error("expected quit command for ctrl+c")
	}
}

func TestView_ShowsMetrics(t *testing.T) {
	m := testShell(t)
	view := m.View()

	for _, want := range []string{"People in Range", "Income Range", "$25,000", "$100,000", "Density", "Cumulative"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name string
		ys   []float64
		want string
	}{
		{"empty", nil, ""},
		{"all zero", []float64{0, 0, 0}, "▁▁▁"},
		{"peak at end", []float64{0, 0.5, 1}, "▁▄█"},
		{"flat positive", []float64{2, 2}, "██"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(sparkline(tt.ys)); got != tt.want {
				t.Errorf("sparkline(%v) = %q, want %q", tt.ys, got, tt.want)
			}
		})
	}
}

func TestSparkline_MatchesLength(t *testing.T) {
	m := testShell(t)
	if got, want := len(sparkline(m.density)), len(m.density); got != want {
		t.Errorf("sparkline length = %d, want %d", got, want)
	}
}
