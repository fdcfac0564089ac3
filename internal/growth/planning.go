package growth

import (
	"fmt"
	"math"

	apperrors "rtk-backend/internal/errors"
)

// PlanPoint is one point of an idealized growth curve.
type PlanPoint struct {
	Time              float64 `json:"time"`
	CumulativeMTBF    float64 `json:"cumulative_mtbf"`
	InstantaneousMTBF float64 `json:"instantaneous_mtbf"`
}

// Plan describes an idealized growth program: the MTBF demonstrated by the
// end of the initial test phase and the planned growth rate.
type Plan struct {
	InitialMTBF float64 `json:"initial_mtbf" yaml:"initial_mtbf" validate:"gt=0"`
	InitialTime float64 `json:"initial_time" yaml:"initial_time" validate:"gt=0"`
	Alpha       float64 `json:"alpha" yaml:"alpha" validate:"gt=0,lt=1"`
}

func (p Plan) validate() error {
	if !(p.InitialMTBF > 0) {
		return apperrors.NewValidationError("initial_mtbf", "must be greater than zero")
	}
	if !(p.InitialTime > 0) {
		return apperrors.NewValidationError("initial_time", "must be greater than zero")
	}
	if !(p.Alpha > 0 && p.Alpha < 1) {
		return apperrors.NewValidationError("alpha", "growth rate must be between 0 and 1")
	}
	return nil
}

// IdealGrowthCurve evaluates the plan at each time. The MTBF is flat at
// the initial value through the initial phase; afterwards the cumulative MTBF
// grows as M_I (t/t_I)^alpha and the instantaneous MTBF is that over
// (1 - alpha).
func IdealGrowthCurve(p Plan, times []float64) ([]PlanPoint, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	out := make([]PlanPoint, 0, len(times))
	for _, t := range times {
		if t < 0 {
			return nil, apperrors.NewValidationError("times", "times must not be negative")
		}
		pt := PlanPoint{Time: t, CumulativeMTBF: p.InitialMTBF, InstantaneousMTBF: p.InitialMTBF}
		if t > p.InitialTime {
			pt.CumulativeMTBF = p.InitialMTBF * math.Pow(t/p.InitialTime, p.Alpha)
			pt.InstantaneousMTBF = pt.CumulativeMTBF / (1.0 - p.Alpha)
		}
		out = append(out, pt)
	}
	return out, nil
}

// TimeToGoal returns the cumulative test time at which the planned
// instantaneous MTBF reaches goal.
func TimeToGoal(p Plan, goal float64) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	if !(goal > 0) {
		return 0, apperrors.NewValidationError("goal_mtbf", "must be greater than zero")
	}
	if goal <= p.InitialMTBF {
		return p.InitialTime, nil
	}
	t := p.InitialTime * math.Pow(goal*(1.0-p.Alpha)/p.InitialMTBF, 1.0/p.Alpha)
	if math.IsInf(t, 0) || math.IsNaN(t) {
		return 0, apperrors.NewCalculationError("growth plan", fmt.Sprintf("goal %.1f is unreachable", goal))
	}
	return math.Max(t, p.InitialTime), nil
}
