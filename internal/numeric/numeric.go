// Package numeric holds the small numerical helpers shared by the growth
// and survival estimators.
package numeric

import (
	"fmt"
	"math"

	apperrors "rtk-backend/internal/errors"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultTolerance is the absolute tolerance used by Bisect callers.
	DefaultTolerance = 1e-10
	// MaxIterations bounds every iterative estimate.
	MaxIterations = 200
)

// CheckConfidence validates a two-sided confidence level.
func CheckConfidence(c float64) error {
	if !(c > 0 && c < 1) {
		return fmt.Errorf("%w: got %v", apperrors.ErrInvalidConfidence, c)
	}
	return nil
}

// Alpha returns the per-tail probability of a two-sided confidence level.
func Alpha(confidence float64) float64 {
	return (1.0 - confidence) / 2.0
}

// ChiSquareQuantile returns the p quantile of a chi-square distribution
// with df degrees of freedom.
func ChiSquareQuantile(p, df float64) float64 {
	return distuv.ChiSquared{K: df}.Quantile(p)
}

// ChiSquareSurvival returns P(X > x) for X ~ chi-square(df).
func ChiSquareSurvival(x, df float64) float64 {
	return distuv.ChiSquared{K: df}.Survival(x)
}

// NormalQuantile returns the p quantile of the standard normal.
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// TwoSidedNormalP returns the two-sided p-value of a standard normal
// statistic.
func TwoSidedNormalP(z float64) float64 {
	return 2.0 * distuv.UnitNormal.Survival(math.Abs(z))
}

// AIC is 2k - 2 lnL.
func AIC(k int, logLikelihood float64) float64 {
	return 2.0*float64(k) - 2.0*logLikelihood
}

// BIC is k ln n - 2 lnL.
func BIC(k, n int, logLikelihood float64) float64 {
	return float64(k)*math.Log(float64(n)) - 2.0*logLikelihood
}

// Bisect finds a root of f in [lo, hi]. The bracket is widened up to
// MaxIterations times by doubling hi and halving lo when f(lo) and f(hi)
// share a sign.
func Bisect(f func(float64) float64, lo, hi, tol float64) (float64, error) {
	flo, fhi := f(lo), f(hi)
	for i := 0; flo*fhi > 0; i++ {
		if i >= MaxIterations || math.IsNaN(flo) || math.IsNaN(fhi) {
			return 0, fmt.Errorf("%w: no sign change in [%g, %g]", apperrors.ErrNonConvergence, lo, hi)
		}
		lo, hi = lo/2, hi*2
		flo, fhi = f(lo), f(hi)
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	for i := 0; i < MaxIterations; i++ {
		mid := lo + (hi-lo)/2
		fm := f(mid)
		if math.IsNaN(fm) {
			return 0, fmt.Errorf("%w: objective undefined at %g", apperrors.ErrNonConvergence, mid)
		}
		if fm == 0 || (hi-lo)/2 < tol {
			return mid, nil
		}
		if fm*flo < 0 {
			hi = mid
		} else {
			lo, flo = mid, fm
		}
	}
	return 0, fmt.Errorf("%w: bisection exceeded %d iterations", apperrors.ErrNonConvergence, MaxIterations)
}
