// Package growth fits reliability growth models to test failure data.
//
// Times are cumulative test hours measured from the start of the test.
package growth

import (
	"fmt"
	"math"
	"sort"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/numeric"
)

// Termination records how a growth test ended.
type Termination string

const (
	TimeTerminated    Termination = "time_terminated"
	FailureTerminated Termination = "failure_terminated"
)

// IsValid checks if the Termination is valid
func (t Termination) IsValid() bool {
	return t == TimeTerminated || t == FailureTerminated
}

// CrowAMSAAResult holds the NHPP power-law estimates for a test.
type CrowAMSAAResult struct {
	Termination  Termination `json:"termination"`
	Failures     int         `json:"failures"`
	TestTime     float64     `json:"test_time"`
	Confidence   float64     `json:"confidence"`
	Beta         float64     `json:"beta"`
	BetaUnbiased float64     `json:"beta_unbiased"`
	BetaLower    float64     `json:"beta_lower"`
	BetaUpper    float64     `json:"beta_upper"`
	Lambda       float64     `json:"lambda"`
	GrowthRate   float64     `json:"growth_rate"`

	CumulativeMTBF         float64 `json:"cumulative_mtbf"`
	InstantaneousMTBF      float64 `json:"instantaneous_mtbf"`
	InstantaneousMTBFLower float64 `json:"instantaneous_mtbf_lower"`
	InstantaneousMTBFUpper float64 `json:"instantaneous_mtbf_upper"`

	CumulativeFailureIntensity    float64 `json:"cumulative_failure_intensity"`
	InstantaneousFailureIntensity float64 `json:"instantaneous_failure_intensity"`
}

// CumulativeMTBFAt returns T^(1-beta)/lambda.
func (r *CrowAMSAAResult) CumulativeMTBFAt(t float64) float64 {
	return math.Pow(t, 1.0-r.Beta) / r.Lambda
}

// InstantaneousMTBFAt returns 1/(lambda beta t^(beta-1)).
func (r *CrowAMSAAResult) InstantaneousMTBFAt(t float64) float64 {
	return 1.0 / (r.Lambda * r.Beta * math.Pow(t, r.Beta-1.0))
}

// ExpectedFailures returns lambda t^beta.
func (r *CrowAMSAAResult) ExpectedFailures(t float64) float64 {
	return r.Lambda * math.Pow(t, r.Beta)
}

// checkTimes validates individual failure times and returns a sorted copy.
func checkTimes(times []float64, testTime float64, term Termination) ([]float64, float64, error) {
	if !term.IsValid() {
		return nil, 0, apperrors.NewValidationError("termination", fmt.Sprintf("unknown termination %q", term))
	}
	if len(times) < 2 {
		return nil, 0, fmt.Errorf("%w: need at least 2 failures, got %d", apperrors.ErrInsufficientData, len(times))
	}
	sorted := append([]float64(nil), times...)
	for _, t := range sorted {
		if !(t > 0) || math.IsInf(t, 0) {
			return nil, 0, apperrors.NewValidationError("times", "failure times must be positive and finite")
		}
	}
	if !sort.Float64sAreSorted(sorted) {
		return nil, 0, apperrors.NewValidationError("times", "failure times must be in ascending order")
	}
	last := sorted[len(sorted)-1]
	switch term {
	case FailureTerminated:
		testTime = last
	default:
		if testTime == 0 {
			testTime = last
		}
		if testTime < last {
			return nil, 0, apperrors.NewValidationError("test_time", "a failure occurs after the end of the test")
		}
	}
	return sorted, testTime, nil
}

// CrowAMSAA estimates the power-law NHPP parameters from individual failure
// times. For a failure terminated test the test time is the last failure and
// that failure is excluded from the shape sum.
func CrowAMSAA(times []float64, testTime float64, term Termination, confidence float64) (*CrowAMSAAResult, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	sorted, T, err := checkTimes(times, testTime, term)
	if err != nil {
		return nil, err
	}
	n := len(sorted)

	terms := sorted
	if term == FailureTerminated {
		terms = sorted[:n-1]
	}
	sum := 0.0
	for _, t := range terms {
		sum += math.Log(T / t)
	}
	if sum <= 0 {
		return nil, fmt.Errorf("%w: all failures at the end of the test", apperrors.ErrInsufficientData)
	}

	nf := float64(n)
	beta := nf / sum
	res := &CrowAMSAAResult{
		Termination: term,
		Failures:    n,
		TestTime:    T,
		Confidence:  confidence,
		Beta:        beta,
		Lambda:      nf / math.Pow(T, beta),
		GrowthRate:  1.0 - beta,
	}

	df := 2.0 * nf
	if term == FailureTerminated {
		res.BetaUnbiased = (nf - 2.0) / nf * beta
		df = 2.0 * (nf - 1.0)
	} else {
		res.BetaUnbiased = (nf - 1.0) / nf * beta
	}
	alpha := numeric.Alpha(confidence)
	res.BetaLower = beta * numeric.ChiSquareQuantile(alpha, df) / (2.0 * nf)
	res.BetaUpper = beta * numeric.ChiSquareQuantile(1.0-alpha, df) / (2.0 * nf)

	res.CumulativeMTBF = res.CumulativeMTBFAt(T)
	res.InstantaneousMTBF = res.InstantaneousMTBFAt(T)
	res.CumulativeFailureIntensity = 1.0 / res.CumulativeMTBF
	res.InstantaneousFailureIntensity = 1.0 / res.InstantaneousMTBF

	// Chi-square approximation to Crow's instantaneous MTBF bounds.
	upperDF := 2.0*nf + 2.0
	if term == FailureTerminated {
		upperDF = 2.0 * nf
	}
	res.InstantaneousMTBFLower = res.InstantaneousMTBF * 2.0 * nf / numeric.ChiSquareQuantile(1.0-alpha, upperDF)
	res.InstantaneousMTBFUpper = res.InstantaneousMTBF * 2.0 * nf / numeric.ChiSquareQuantile(alpha, 2.0*nf)
	return res, nil
}
