package growth

import (
	"math"

	"rtk-backend/internal/numeric"
)

// Trend direction of a failure process.
const (
	Improving     = "improving"
	Deteriorating = "deteriorating"
)

// TrendResult is the outcome of a test for a homogeneous Poisson process.
type TrendResult struct {
	Test             string  `json:"test"`
	Statistic        float64 `json:"statistic"`
	DegreesOfFreedom int     `json:"degrees_of_freedom,omitempty"`
	PValue           float64 `json:"p_value"`
	Confidence       float64 `json:"confidence"`
	TrendIndicated   bool    `json:"trend_indicated"`
	Direction        string  `json:"direction"`
}

// MilHandbookTest computes U = 2 sum ln(T/t_i), chi-square with 2n degrees
// of freedom for a time terminated test and 2(n-1) for a failure terminated
// one. Large values indicate reliability growth.
func MilHandbookTest(times []float64, testTime float64, term Termination, confidence float64) (*TrendResult, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	sorted, T, err := checkTimes(times, testTime, term)
	if err != nil {
		return nil, err
	}
	terms := sorted
	if term == FailureTerminated {
		terms = sorted[:len(sorted)-1]
	}
	u := 0.0
	for _, t := range terms {
		u += 2.0 * math.Log(T/t)
	}
	df := 2 * len(terms)

	upper := numeric.ChiSquareSurvival(u, float64(df))
	p := 2.0 * math.Min(upper, 1.0-upper)
	res := &TrendResult{
		Test:             "mil_hdbk_189",
		Statistic:        u,
		DegreesOfFreedom: df,
		PValue:           p,
		Confidence:       confidence,
		TrendIndicated:   p < 1.0-confidence,
		Direction:        Deteriorating,
	}
	if u > float64(df) {
		res.Direction = Improving
	}
	return res, nil
}

// LaplaceTest computes the normal statistic
// (mean(t_i) - T/2) / (T sqrt(1/(12n))). For a failure terminated test the
// final failure defines T and is excluded.
func LaplaceTest(times []float64, testTime float64, term Termination, confidence float64) (*TrendResult, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	sorted, T, err := checkTimes(times, testTime, term)
	if err != nil {
		return nil, err
	}
	terms := sorted
	if term == FailureTerminated {
		terms = sorted[:len(sorted)-1]
	}
	n := float64(len(terms))
	sum := 0.0
	for _, t := range terms {
		sum += t
	}
	z := (sum/n - T/2.0) / (T * math.Sqrt(1.0/(12.0*n)))
	p := numeric.TwoSidedNormalP(z)

	res := &TrendResult{
		Test:           "laplace",
		Statistic:      z,
		PValue:         p,
		Confidence:     confidence,
		TrendIndicated: p < 1.0-confidence,
		Direction:      Deteriorating,
	}
	if z < 0 {
		res.Direction = Improving
	}
	return res, nil
}
