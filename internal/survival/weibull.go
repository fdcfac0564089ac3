package survival

import (
	"fmt"
	"math"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/numeric"

	"gonum.org/v1/gonum/mat"
)

// FitWeibull estimates the two-parameter Weibull by maximum likelihood with
// right censoring. The shape is the root of the profile score
//
//	sum w t^b ln t / sum w t^b - 1/b - (1/r) sum_f w ln t = 0
//
// and the scale is (sum w t^b / r)^(1/b). Bounds come from the inverse of
// the observed Fisher information.
func FitWeibull(records []Record, confidence float64) (*Fit, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	s, err := summarize(records)
	if err != nil {
		return nil, err
	}
	if s.failures < 2 {
		return nil, fmt.Errorf("%w: weibull fit needs at least two failures", apperrors.ErrInsufficientData)
	}

	// Scale times by the largest so t^b stays finite; the shape root does not
	// depend on the time unit.
	maxT := 0.0
	for _, r := range records {
		maxT = math.Max(maxT, r.Time())
	}
	u := make([]float64, len(records))
	w := make([]float64, len(records))
	meanLogFail := 0.0
	distinct := make(map[float64]struct{})
	for i, r := range records {
		u[i] = r.Time() / maxT
		w[i] = r.weight()
		if r.Failed() {
			meanLogFail += w[i] * math.Log(u[i])
			distinct[u[i]] = struct{}{}
		}
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("%w: weibull fit needs two distinct failure times", apperrors.ErrInsufficientData)
	}
	rf := s.failures
	meanLogFail /= rf

	score := func(b float64) float64 {
		var num, den float64
		for i := range u {
			p := w[i] * math.Pow(u[i], b)
			num += p * math.Log(u[i])
			den += p
		}
		return num/den - 1.0/b - meanLogFail
	}
	beta, err := numeric.Bisect(score, 0.05, 20, numeric.DefaultTolerance)
	if err != nil {
		return nil, err
	}
	sumPow := 0.0
	for i := range u {
		sumPow += w[i] * math.Pow(u[i], beta)
	}
	eta := maxT * math.Pow(sumPow/rf, 1.0/beta)

	fit := newFit(Weibull, confidence, s)
	fit.Parameters["shape"] = beta
	fit.Parameters["scale"] = eta
	fit.Parameters["mtbf"] = eta * math.Gamma(1.0+1.0/beta)

	var ll, zSum, zLog, zLog2 float64
	for _, r := range records {
		t := r.Time()
		wt := r.weight()
		z := math.Pow(t/eta, beta)
		lr := math.Log(t / eta)
		if r.Failed() {
			ll += wt * (math.Log(beta/eta) + (beta-1.0)*lr)
		}
		ll -= wt * z
		zSum += wt * z
		zLog += wt * z * lr
		zLog2 += wt * z * lr * lr
	}
	fit.LogLikelihood = ll
	n := int(s.failures + s.suspensions)
	fit.AIC = numeric.AIC(2, ll)
	fit.BIC = numeric.BIC(2, n, ll)

	// Observed information, the negated Hessian of lnL in (shape, scale).
	info := mat.NewSymDense(2, []float64{
		rf/(beta*beta) + zLog2, -(1.0/eta)*(-rf+zSum+beta*zLog),
		-(1.0/eta)*(-rf+zSum+beta*zLog), -(beta/(eta*eta))*(rf-(beta+1.0)*zSum),
	})
	var cov mat.Dense
	if err := cov.Inverse(info); err != nil {
		return nil, apperrors.NewCalculationError("weibull", "Fisher information matrix is singular")
	}

	z := numeric.NormalQuantile(1.0 - numeric.Alpha(confidence))
	for i, name := range []string{"shape", "scale"} {
		v := cov.At(i, i)
		if v < 0 {
			return nil, apperrors.NewCalculationError("weibull", "negative variance estimate")
		}
		est := fit.Parameters[name]
		f := math.Exp(z * math.Sqrt(v) / est)
		fit.Lower[name] = est / f
		fit.Upper[name] = est * f
	}
	return fit, nil
}
