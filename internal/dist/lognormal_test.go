package dist

import (
	"math"
	"math/rand"
	"testing"
)

// Parameters of the Canadian income model; convenient realistic values
// for exercising the math.
var income = LogNormal{Mu: 10.45, Sigma: 0.95}

func TestPDF_NonNegative(t *testing.T) {
	for x := 1.0; x < 1e6; x *= 1.7 {
		if got := income.PDF(x); got < 0 {
			t.Errorf("PDF(%v) = %v, want >= 0", x, got)
		}
	}
}

func TestPDF_ZeroOutsideDomain(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"zero", 0},
		{"negative", -100},
		{"very negative", -1e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := income.PDF(tt.x); got != 0 {
				t.Errorf("PDF(%v) = %v, want 0", tt.x, got)
			}
		})
	}
}

func TestPDF_IntegratesToOne(t *testing.T) {
	// Trapezoid rule over a fine grid; the upper cutoff covers all but
	// a vanishing sliver of the right tail.
	const (
		n   = 200000
		max = 5e6
	)
	step := max / n
	var sum float64
	for i := 0; i < n; i++ {
		a := float64(i) * step
		b := a + step
		sum += (income.PDF(a) + income.PDF(b)) / 2 * step
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("integral of PDF = %v, want ~1", sum)
	}
}

func TestCDF_Monotone(t *testing.T) {
	prev := 0.0
	for x := 0.0; x < 2e6; x += 997 {
		got := income.CDF(x)
		if got < prev {
			t.Fatalf("CDF(%v) = %v < CDF at previous grid point %v", x, got, prev)
		}
		prev = got
	}
}

func TestCDF_Limits(t *testing.T) {
	if got := income.CDF(0); got != 0 {
		t.Errorf("CDF(0) = %v, want 0", got)
	}
	if got := income.CDF(-50); got != 0 {
		t.Errorf("CDF(-50) = %v, want 0", got)
	}
	if got := income.CDF(1e-9); got > 1e-6 {
		t.Errorf("CDF(1e-9) = %v, want ~0", got)
	}
	// 10 * scale * exp(5*sigma) is far into the right tail.
	far := 10 * income.Scale() * math.Exp(5*income.Sigma)
	if got := income.CDF(far); got < 0.999 {
		t.Errorf("CDF(%v) = %v, want > 0.999", far, got)
	}
}

func TestCDF_MedianIsHalf(t *testing.T) {
	got := income.CDF(income.Median())
	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("CDF(median) = %v, want 0.5", got)
	}
}

func TestInvCDF_RoundTrip(t *testing.T) {
	for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		x := income.InvCDF(p)
		got := income.CDF(x)
		if math.Abs(got-p) > 1e-6 {
			t.Errorf("CDF(InvCDF(%v)) = %v, want %v", p, got, p)
		}
	}
}

func TestMoments(t *testing.T) {
	d := LogNormal{Mu: 10.45, Sigma: 0.95}

	if got, want := d.Median(), math.Exp(10.45); math.Abs(got-want) > 1e-6 {
		t.Errorf("Median() = %v, want %v", got, want)
	}
	if got, want := d.Mean(), math.Exp(10.45+0.95*0.95/2); math.Abs(got-want) > 1e-6 {
		t.Errorf("Mean() = %v, want %v", got, want)
	}
	if got, want := d.Mode(), math.Exp(10.45-0.95*0.95); math.Abs(got-want) > 1e-6 {
		t.Errorf("Mode() = %v, want %v", got, want)
	}
	// mode < median < mean for any positive sigma
	if !(d.Mode() < d.Median() && d.Median() < d.Mean()) {
		t.Errorf("expected Mode < Median < Mean, got %v, %v, %v", d.Mode(), d.Median(), d.Mean())
	}
}

func TestDeterminism(t *testing.T) {
	for _, x := range []float64{1, 34544, 100000, 2.5e6} {
		if income.PDF(x) != income.PDF(x) {
			t.Errorf("PDF(%v) not deterministic", x)
		}
		if income.CDF(x) != income.CDF(x) {
			t.Errorf("CDF(%v) not deterministic", x)
		}
	}
}

func TestRand_MedianAgreesWithModel(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const n = 200000
	below := 0
	median := income.Median()
	for i := 0; i < n; i++ {
		if income.Rand(r) <= median {
			below++
		}
	}
	frac := float64(below) / n
	if math.Abs(frac-0.5) > 0.01 {
		t.Errorf("fraction of samples below median = %v, want ~0.5", frac)
	}
}
