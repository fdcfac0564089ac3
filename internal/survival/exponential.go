package survival

import (
	"fmt"
	"math"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/numeric"
)

// FitExponential estimates lambda = r / T where r is the number of failures
// and T the total exposure time. Bounds on lambda are the two-sided
// chi-square bounds with 2r (lower) and 2r+2 (upper) degrees of freedom and
// the normal approximation lambda +/- z lambda / sqrt(r).
func FitExponential(records []Record, confidence float64) (*Fit, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	s, err := summarize(records)
	if err != nil {
		return nil, err
	}
	if s.failures < 1 {
		return nil, fmt.Errorf("%w: exponential fit needs at least one failure", apperrors.ErrInsufficientData)
	}

	r, T := s.failures, s.exposure
	lambda := r / T
	alpha := numeric.Alpha(confidence)

	fit := newFit(Exponential, confidence, s)
	fit.Parameters["lambda"] = lambda
	fit.Parameters["mtbf"] = 1.0 / lambda

	lower := numeric.ChiSquareQuantile(alpha, 2.0*r) / (2.0 * T)
	upper := numeric.ChiSquareQuantile(1.0-alpha, 2.0*r+2.0) / (2.0 * T)
	fit.Lower["lambda"] = lower
	fit.Upper["lambda"] = upper
	fit.Lower["mtbf"] = 1.0 / upper
	fit.Upper["mtbf"] = 1.0 / lower

	z := numeric.NormalQuantile(1.0 - alpha)
	half := z * lambda / math.Sqrt(r)
	fit.Lower["lambda_normal"] = math.Max(0, lambda-half)
	fit.Upper["lambda_normal"] = lambda + half

	fit.LogLikelihood = r*math.Log(lambda) - lambda*T
	n := int(s.failures + s.suspensions)
	fit.AIC = numeric.AIC(1, fit.LogLikelihood)
	fit.BIC = numeric.BIC(1, n, fit.LogLikelihood)
	return fit, nil
}
