// Package income models Canadian personal income as a fixed log-normal
// distribution and answers band queries against it: how many people,
// and what share of the population, earn between two bounds.
package income

import (
	"errors"
	"fmt"

	"incomelens/internal/dist"
)

// Default model parameters, estimated for Canadian tax filers aged 15+.
const (
	// DefaultMu is the mean of log income.
	DefaultMu = 10.45

	// DefaultSigma is the standard deviation of log income.
	DefaultSigma = 0.95

	// DefaultPopulation is the reference population used to convert
	// probabilities to head counts (~20M tax filers).
	DefaultPopulation = 20_000_000
)

// Display grid defaults. The grid exists only for charting; it plays
// no role in band queries.
const (
	// DefaultGridMax is the right edge of the display grid in dollars.
	DefaultGridMax = 300_000

	// DefaultGridPoints is the number of samples on the display grid.
	DefaultGridPoints = 1000
)

var (
	// ErrNegativeBound reports an income bound below zero.
	ErrNegativeBound = errors.New("income bound must be >= 0")

	// ErrInvertedBand reports a band whose lower bound exceeds its
	// upper bound.
	ErrInvertedBand = errors.New("band lower bound exceeds upper bound")
)

// Params are the fixed model parameters. A Model copies them at
// construction and never mutates them.
type Params struct {
	// Mu is the mean of log income.
	Mu float64

	// Sigma is the standard deviation of log income.
	Sigma float64

	// Population is the reference head count the probabilities scale to.
	Population int64
}

// DefaultParams returns the Canadian income parameters.
func DefaultParams() Params {
	return Params{Mu: DefaultMu, Sigma: DefaultSigma, Population: DefaultPopulation}
}

// Validate checks the distribution invariants.
func (p Params) Validate() error {
	if p.Sigma <= 0 {
		return fmt.Errorf("sigma must be positive, got %v", p.Sigma)
	}
	if p.Population <= 0 {
		return fmt.Errorf("population must be positive, got %d", p.Population)
	}
	return nil
}

// Model answers density, cumulative, and band queries against an
// immutable log-normal income distribution. Construct once, read
// forever; every method is a pure function.
type Model struct {
	params Params
	dist   dist.LogNormal
}

// New builds a Model from p. It fails if p violates the distribution
// invariants.
func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model parameters: %w", err)
	}
	return &Model{
		params: p,
		dist:   dist.LogNormal{Mu: p.Mu, Sigma: p.Sigma},
	}, nil
}

// Params returns the parameters the model was built with.
func (m *Model) Params() Params { return m.params }

// Dist returns the underlying distribution.
func (m *Model) Dist() dist.LogNormal { return m.dist }

// Density returns the probability density at income x (0 for x <= 0).
func (m *Model) Density(x float64) float64 { return m.dist.PDF(x) }

// Cumulative returns the probability that a random income is <= x.
func (m *Model) Cumulative(x float64) float64 { return m.dist.CDF(x) }

// BandResult reports the population mass inside an income band.
type BandResult struct {
	Low         float64 `json:"low"`
	High        float64 `json:"high"`
	Probability float64 `json:"probability"`
	People      float64 `json:"people"`
	Percent     float64 `json:"percent"`
}

// Band computes the probability mass between low and high and scales
// it to the reference population. Bounds must be non-negative and
// low must not exceed high; inverted bands are rejected rather than
// producing a negative probability.
func (m *Model) Band(low, high float64) (BandResult, error) {
	if low < 0 || high < 0 {
		return BandResult{}, fmt.Errorf("band [%v, %v]: %w", low, high, ErrNegativeBound)
	}
	if low > high {
		return BandResult{}, fmt.Errorf("band [%v, %v]: %w", low, high, ErrInvertedBand)
	}

	p := m.dist.CDF(high) - m.dist.CDF(low)
	// Monotone CDF keeps p in [0, 1]; clamp floating-point dust anyway.
	if p < 0 {
		p = 0
	}

	return BandResult{
		Low:         low,
		High:        high,
		Probability: p,
		People:      p * float64(m.params.Population),
		Percent:     p * 100,
	}, nil
}

// DensitySeries evaluates the density over grid, preserving length and
// order. Grid values <= 0 yield 0.
func (m *Model) DensitySeries(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = m.dist.PDF(x)
	}
	return out
}

// CumulativeSeries evaluates the CDF over grid, preserving length and
// order.
func (m *Model) CumulativeSeries(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = m.dist.CDF(x)
	}
	return out
}

// Grid returns points evenly spaced incomes from 0 to max inclusive,
// for use as a chart x-axis. points must be at least 2.
func Grid(max float64, points int) []float64 {
	if points < 2 || max <= 0 {
		return nil
	}
	out := make([]float64, points)
	step := max / float64(points-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// Quantile pairs a cumulative probability with the income at it.
type Quantile struct {
	P      float64 `json:"p"`
	Income float64 `json:"income"`
}

// Summary describes the distribution's central values and spread.
type Summary struct {
	Median    float64    `json:"median"`
	Mean      float64    `json:"mean"`
	Mode      float64    `json:"mode"`
	Quantiles []Quantile `json:"quantiles"`
}

// summaryQuantiles are the cumulative probabilities reported by Summary.
var summaryQuantiles = []float64{0.10, 0.25, 0.50, 0.75, 0.90, 0.99}

// Summary returns the model's central values and selected quantiles.
func (m *Model) Summary() Summary {
	qs := make([]Quantile, len(summaryQuantiles))
	for i, p := range summaryQuantiles {
		qs[i] = Quantile{P: p, Income: m.dist.InvCDF(p)}
	}
	return Summary{
		Median:    m.dist.Median(),
		Mean:      m.dist.Mean(),
		Mode:      m.dist.Mode(),
		Quantiles: qs,
	}
}
