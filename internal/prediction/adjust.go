package prediction

import (
	"fmt"

	apperrors "rtk-backend/internal/errors"
)

// HazardRateType selects where a part's active hazard rate comes from.
type HazardRateType string

const (
	Assessed            HazardRateType = "assessed"
	SpecifiedHazardRate HazardRateType = "specified_hazard_rate"
	SpecifiedMTBF       HazardRateType = "specified_mtbf"
)

// IsValid checks if the HazardRateType is valid
func (t HazardRateType) IsValid() bool {
	switch t {
	case Assessed, SpecifiedHazardRate, SpecifiedMTBF:
		return true
	}
	return false
}

// Adjustment carries the user overrides applied on top of the model.
type Adjustment struct {
	Type                HazardRateType `json:"hazard_rate_type"`
	SpecifiedHazardRate float64        `json:"specified_hazard_rate"`
	SpecifiedMTBF       float64        `json:"specified_mtbf"`
	MultAdjFactor       float64        `json:"mult_adj_factor"`
	AddAdjFactor        float64        `json:"add_adj_factor"`
}

// NeedsModel reports whether the handbook model must be evaluated.
func (a Adjustment) NeedsModel() bool {
	return a.Type == "" || a.Type == Assessed
}

// Apply returns the active hazard rate for a part. An assessed rate is
// modelled * MultAdjFactor + AddAdjFactor, with a zero multiplier read as 1.
// Specified types ignore modelled.
func (a Adjustment) Apply(modelled, multiplier float64) (float64, error) {
	switch a.Type {
	case "", Assessed:
		mult := a.MultAdjFactor
		if mult == 0 {
			mult = 1.0
		}
		lambda := modelled*mult + a.AddAdjFactor
		if lambda < 0 {
			return 0, apperrors.NewValidationError("add_adj_factor", "adjusted hazard rate is negative")
		}
		return lambda, nil
	case SpecifiedHazardRate:
		if a.SpecifiedHazardRate < 0 {
			return 0, apperrors.NewValidationError("specified_hazard_rate", "must not be negative")
		}
		return a.SpecifiedHazardRate, nil
	case SpecifiedMTBF:
		if a.SpecifiedMTBF <= 0 {
			return 0, apperrors.NewValidationError("specified_mtbf", "must be greater than zero")
		}
		return multiplier / a.SpecifiedMTBF, nil
	default:
		return 0, apperrors.NewValidationError("hazard_rate_type", fmt.Sprintf("unknown hazard rate type %q", a.Type))
	}
}

// Dormant conversion factors per category, in ground, naval, airborne and
// space order.
var dormantFactors = map[Category][4]float64{
	CategoryIntegratedCircuit: {0.08, 0.06, 0.06, 0.10},
	CategorySemiconductor:     {0.04, 0.05, 0.05, 0.20},
	CategoryResistor:          {0.20, 0.06, 0.06, 0.20},
	CategoryCapacitor:         {0.10, 0.10, 0.10, 0.20},
	CategoryInductor:          {0.20, 0.10, 0.10, 0.20},
	CategoryRelay:             {0.20, 0.20, 0.20, 0.20},
	CategorySwitch:            {0.40, 0.20, 0.20, 0.40},
	CategoryConnection:        {0.10, 0.10, 0.10, 0.10},
	CategoryMeter:             {0.20, 0.20, 0.20, 0.20},
	CategoryMiscellaneous:     {0.20, 0.20, 0.20, 0.20},
}

// DormantHazardRate converts an active hazard rate into the rate while the
// part sits unpowered in env. Unknown categories have no dormant rate.
func DormantHazardRate(c Category, env Environment, active float64) float64 {
	factors, ok := dormantFactors[c]
	if !ok || !env.IsValid() {
		return 0
	}
	switch env.Class() {
	case ClassNaval:
		return active * factors[1]
	case ClassAirborne:
		return active * factors[2]
	case ClassSpace:
		return active * factors[3]
	default:
		return active * factors[0]
	}
}
