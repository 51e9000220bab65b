package analytics

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// minCorrelationPairs is the smallest sample a correlation is reported for.
const minCorrelationPairs = 3

// Pearson returns the Pearson correlation coefficient of xs and ys.
// It is Undefined, never NaN, for short, mismatched or constant series.
func Pearson(xs, ys []float64) Result {
	if len(xs) != len(ys) {
		return Undefined(fmt.Sprintf("series length mismatch: %d != %d", len(xs), len(ys)))
	}
	if len(xs) < minCorrelationPairs {
		return Undefined(fmt.Sprintf("%d pairs, need at least %d", len(xs), minCorrelationPairs))
	}
	if isConstant(xs) || isConstant(ys) {
		return Undefined("zero variance")
	}

	r, err := stats.Correlation(xs, ys)
	if err != nil {
		return Undefined(err.Error())
	}
	if math.IsNaN(r) {
		return Undefined("zero variance")
	}

	// rounding can push a perfect correlation slightly past 1
	return Value(math.Max(-1, math.Min(1, r)))
}

// LinearFit is an ordinary least squares line y = Slope*x + Intercept.
type LinearFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"rSquared"`
	N         int     `json:"n"`
}

// At evaluates the fitted line at x.
func (f LinearFit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// FitOLS fits y on x. The Result carries the slope, or says why there is no fit.
func FitOLS(xs, ys []float64) (LinearFit, Result) {
	if len(xs) != len(ys) {
		return LinearFit{}, Undefined(fmt.Sprintf("series length mismatch: %d != %d", len(xs), len(ys)))
	}
	if len(xs) < 2 {
		return LinearFit{N: len(xs)}, Undefined("a line needs at least 2 points")
	}
	if isConstant(xs) {
		return LinearFit{N: len(xs)}, Undefined("zero variance in x")
	}

	meanX, _ := stats.Mean(xs)
	meanY, _ := stats.Mean(ys)
	varX, _ := stats.PopulationVariance(xs)
	covXY, err := stats.CovariancePopulation(xs, ys)
	if err != nil {
		return LinearFit{N: len(xs)}, Undefined(err.Error())
	}

	fit := LinearFit{
		Slope: covXY / varX,
		N:     len(xs),
	}
	fit.Intercept = meanY - fit.Slope*meanX

	// with a constant y every point is on the line
	fit.RSquared = 1
	if !isConstant(ys) {
		varY, _ := stats.PopulationVariance(ys)
		fit.RSquared = (covXY * covXY) / (varX * varY)
	}

	return fit, Value(fit.Slope)
}

// FormatCorrelation renders a coefficient with 4 decimals, or the message of a missing one.
func FormatCorrelation(r Result) string {
	if v, ok := r.Float(); ok {
		return fmt.Sprintf("%.4f", v)
	}
	return r.Message
}

// isConstant is true when every value is the same, or the spread is too small
// for the variance to register at all.
func isConstant(values []float64) bool {
	lo, err := stats.Min(values)
	if err != nil {
		return true
	}
	hi, _ := stats.Max(values)
	if lo == hi {
		return true
	}
	variance, err := stats.PopulationVariance(values)
	return err != nil || variance == 0
}
