package growth

import (
	"fmt"
	"math"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/numeric"
)

// Interval is one inspection period of a grouped test: Failures were
// observed between the previous interval's end and End.
type Interval struct {
	End      float64 `json:"end" yaml:"end"`
	Failures int     `json:"failures" yaml:"failures"`
}

// GroupedResult holds the grouped-data power-law fit and its goodness of fit.
type GroupedResult struct {
	Intervals         int       `json:"intervals"`
	Failures          int       `json:"failures"`
	TestTime          float64   `json:"test_time"`
	Confidence        float64   `json:"confidence"`
	Beta              float64   `json:"beta"`
	Lambda            float64   `json:"lambda"`
	GrowthRate        float64   `json:"growth_rate"`
	CumulativeMTBF    float64   `json:"cumulative_mtbf"`
	InstantaneousMTBF float64   `json:"instantaneous_mtbf"`
	Expected          []float64 `json:"expected"`
	ChiSquare         float64   `json:"chi_square"`
	DegreesOfFreedom  int       `json:"degrees_of_freedom"`
	PValue            float64   `json:"p_value"`
	// GoodFit is false when the chi-square test rejects the model at the
	// fit's confidence level.
	GoodFit bool `json:"good_fit"`
}

// CrowAMSAAGrouped estimates the power-law NHPP from interval counts. The
// shape solves
//
//	sum n_i [(t_i^b ln t_i - t_{i-1}^b ln t_{i-1}) / (t_i^b - t_{i-1}^b) - ln t_k] = 0
//
// with t_0 = 0. Times are scaled by t_k, which leaves the root unchanged.
func CrowAMSAAGrouped(intervals []Interval, confidence float64) (*GroupedResult, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	if len(intervals) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 intervals, got %d", apperrors.ErrInsufficientData, len(intervals))
	}

	total, withFailures := 0, 0
	prev := 0.0
	for i, iv := range intervals {
		if !(iv.End > prev) {
			return nil, apperrors.NewValidationError("intervals", fmt.Sprintf("interval %d does not end after the previous one", i))
		}
		if iv.Failures < 0 {
			return nil, apperrors.NewValidationError("intervals", fmt.Sprintf("interval %d has negative failures", i))
		}
		if iv.Failures > 0 {
			withFailures++
		}
		total += iv.Failures
		prev = iv.End
	}
	if total < 2 {
		return nil, fmt.Errorf("%w: need at least 2 failures, got %d", apperrors.ErrInsufficientData, total)
	}
	if withFailures < 2 {
		return nil, fmt.Errorf("%w: failures must fall in at least 2 intervals", apperrors.ErrInsufficientData)
	}

	tk := intervals[len(intervals)-1].End
	u := make([]float64, len(intervals))
	for i, iv := range intervals {
		u[i] = iv.End / tk
	}

	score := func(b float64) float64 {
		s := 0.0
		lo, loLog := 0.0, 0.0
		for i, iv := range intervals {
			hi := math.Pow(u[i], b)
			hiLog := hi * math.Log(u[i])
			if iv.Failures > 0 {
				s += float64(iv.Failures) * (hiLog - loLog) / (hi - lo)
			}
			lo, loLog = hi, hiLog
		}
		return s
	}
	beta, err := numeric.Bisect(score, 0.01, 10, numeric.DefaultTolerance)
	if err != nil {
		return nil, err
	}

	n := float64(total)
	res := &GroupedResult{
		Intervals:  len(intervals),
		Failures:   total,
		TestTime:   tk,
		Confidence: confidence,
		Beta:       beta,
		Lambda:     n / math.Pow(tk, beta),
		GrowthRate: 1.0 - beta,
		Expected:   make([]float64, len(intervals)),
	}
	res.CumulativeMTBF = tk / n
	res.InstantaneousMTBF = res.CumulativeMTBF / beta

	prevT := 0.0
	for i, iv := range intervals {
		e := res.Lambda * (math.Pow(iv.End, beta) - math.Pow(prevT, beta))
		res.Expected[i] = e
		if e > 0 {
			d := float64(iv.Failures) - e
			res.ChiSquare += d * d / e
		}
		prevT = iv.End
	}
	res.DegreesOfFreedom = len(intervals) - 2
	res.GoodFit = true
	if res.DegreesOfFreedom > 0 {
		res.PValue = numeric.ChiSquareSurvival(res.ChiSquare, float64(res.DegreesOfFreedom))
		res.GoodFit = res.PValue >= 1.0-confidence
	}
	return res, nil
}
