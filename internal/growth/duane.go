package growth

import (
	"fmt"
	"math"

	apperrors "rtk-backend/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// DuaneResult is the log-log least squares fit of cumulative MTBF against
// cumulative test time: ln M_c = ln b + alpha ln t.
type DuaneResult struct {
	Failures          int     `json:"failures"`
	TestTime          float64 `json:"test_time"`
	B                 float64 `json:"b"`
	Alpha             float64 `json:"alpha"`
	RSquared          float64 `json:"r_squared"`
	CumulativeMTBF    float64 `json:"cumulative_mtbf"`
	InstantaneousMTBF float64 `json:"instantaneous_mtbf"`
}

// CumulativeMTBFAt returns b t^alpha.
func (d *DuaneResult) CumulativeMTBFAt(t float64) float64 {
	return d.B * math.Pow(t, d.Alpha)
}

// Duane fits the Duane postulate to ascending cumulative failure times.
// The cumulative MTBF after the i-th failure is t_i / i.
func Duane(times []float64) (*DuaneResult, error) {
	sorted, T, err := checkTimes(times, 0, FailureTerminated)
	if err != nil {
		return nil, err
	}

	x := make([]float64, len(sorted))
	y := make([]float64, len(sorted))
	for i, t := range sorted {
		x[i] = math.Log(t)
		y[i] = math.Log(t / float64(i+1))
	}
	if stat.Variance(x, nil) == 0 {
		return nil, fmt.Errorf("%w: failure times are all equal", apperrors.ErrInsufficientData)
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	res := &DuaneResult{
		Failures: len(sorted),
		TestTime: T,
		B:        math.Exp(intercept),
		Alpha:    slope,
		RSquared: stat.RSquared(x, y, nil, intercept, slope),
	}
	res.CumulativeMTBF = res.CumulativeMTBFAt(T)
	if res.Alpha >= 1 {
		return nil, apperrors.NewCalculationError("duane", fmt.Sprintf("growth slope %.3f is not below 1", res.Alpha))
	}
	res.InstantaneousMTBF = res.CumulativeMTBF / (1.0 - res.Alpha)
	return res, nil
}
