// Package dist provides the distribution math behind the income model.
// A LogNormal is a plain value type; all methods are pure functions of
// its two parameters.
package dist

import (
	"math"
	"math/rand"

	"github.com/aclements/go-moremath/stats"
)

// LogNormal is a log-normal distribution parameterized by the mean Mu
// and standard deviation Sigma of the underlying normal distribution
// of log values. Sigma must be positive; the zero value is not useful.
type LogNormal struct {
	Mu    float64
	Sigma float64
}

// Scale returns exp(Mu), the scale parameter and median of the
// distribution.
func (d LogNormal) Scale() float64 { return math.Exp(d.Mu) }

// PDF returns the probability density at x. Density is 0 for x <= 0.
func (d LogNormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := (math.Log(x) - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) / (x * d.Sigma * math.Sqrt(2*math.Pi))
}

// CDF returns P(X <= x). It is 0 for x <= 0, monotonically
// non-decreasing, and approaches 1 as x grows. The standard normal CDF
// is evaluated through the error function, not an approximation.
func (d LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return stats.StdNormal.CDF((math.Log(x) - d.Mu) / d.Sigma)
}

// InvCDF returns the income at quantile p. It is the inverse of CDF
// for p in (0, 1); p outside [0, 1] yields NaN.
func (d LogNormal) InvCDF(p float64) float64 {
	return math.Exp(d.Mu + d.Sigma*stats.StdNormal.InvCDF(p))
}

// Median returns exp(Mu).
func (d LogNormal) Median() float64 { return math.Exp(d.Mu) }

// Mean returns exp(Mu + Sigma²/2).
func (d LogNormal) Mean() float64 { return math.Exp(d.Mu + d.Sigma*d.Sigma/2) }

// Mode returns exp(Mu - Sigma²), the income with the highest density.
func (d LogNormal) Mode() float64 { return math.Exp(d.Mu - d.Sigma*d.Sigma) }

// Rand draws one sample using r as the randomness source.
func (d LogNormal) Rand(r *rand.Rand) float64 {
	return math.Exp(r.NormFloat64()*d.Sigma + d.Mu)
}
