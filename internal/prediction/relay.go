package prediction

import (
	"math"
	"strings"
)

var (
	relayMechanicalEnvironment = EnvTable{1.0, 2.0, 15, 8.0, 27, 7.0, 9.0, 11, 12, 46, 0.50, 25, 66, 0}
	relaySolidStateEnvironment = EnvTable{1.0, 3.0, 12, 6.0, 17, 12, 19, 21, 32, 23, 0.40, 12, 33, 590}

	relayMechanicalQuality = qualityTable{
		"R": 0.10, "P": 0.30, "X": 0.45, "U": 0.60, "M": 1.0, "L": 1.5, "MIL-SPEC": 1.5, "LOWER": 2.9,
	}
	relaySolidStateQuality = qualityTable{"MIL-SPEC": 1.0, "LOWER": 4.0}
)

var relaySolidStateBase = map[string]float64{
	"solid_state": 0.40,
	"time_delay":  0.50,
}

// Contact form factors shared by relays and switches.
var contactFormFactors = map[string]float64{
	"spst": 1.0,
	"dpst": 1.5,
	"spdt": 1.75,
	"3pst": 2.0,
	"4pst": 2.5,
	"dpdt": 3.0,
	"3pdt": 4.25,
	"4pdt": 5.5,
	"6pdt": 8.0,
}

// Application and construction factors for mechanical relays, keyed
// "<application>/<construction>".
var relayApplicationFactors = map[string]float64{
	"dry_circuit/armature":              4,
	"dry_circuit/reed":                  6,
	"dry_circuit/mercury_wetted":        1,
	"dry_circuit/magnetic_latching":     6,
	"dry_circuit/balanced_armature":     7,
	"dry_circuit/solenoid":              7,
	"general_purpose/armature":          3,
	"general_purpose/balanced_armature": 3,
	"general_purpose/solenoid":          6,
	"general_purpose/magnetic_latching": 5,
	"sensitive/armature":                5,
	"sensitive/balanced_armature":       10,
	"sensitive/mercury_wetted":          5,
	"polarized/armature":                10,
	"polarized/balanced_armature":       10,
	"vibrating_reed/reed":               6,
	"high_speed/armature":               25,
	"high_speed/balanced_armature":      25,
	"high_voltage/vacuum_glass":         20,
	"high_voltage/vacuum_ceramic":       5,
	"medium_power/armature":             3,
	"medium_power/solenoid":             6,
}

// loadStressFactor is pi_L for a contact load at current stress s.
func loadStressFactor(load string, s float64) (float64, bool) {
	var div float64
	switch load {
	case "resistive":
		div = 0.8
	case "inductive":
		div = 0.4
	case "lamp":
		div = 0.2
	default:
		return 0, false
	}
	return math.Exp(math.Pow(s/div, 2)), true
}

// relayStress evaluates mechanical relays
// (lambda_b * pi_L * pi_C * pi_CYC * pi_F * pi_Q * pi_E) and solid state or
// time delay relays (lambda_b * pi_Q * pi_E).
func relayStress(in Input) (*Result, error) {
	sub := strings.ToLower(in.Subcategory)
	if lb, ok := relaySolidStateBase[sub]; ok {
		return relaySolidState(in, lb)
	}
	if sub != "mechanical" {
		return nil, unknownSubcategory(CategoryRelay, in.Subcategory)
	}

	res := newResult("lambda_b * pi_L * pi_C * pi_CYC * pi_F * pi_Q * pi_E")
	piE, err := relayMechanicalEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := relayMechanicalQuality.lookup(CategoryRelay, in.Quality)
	if err != nil {
		return nil, err
	}

	iOp, err := in.RequireAttr("current_operating")
	if err != nil {
		return nil, err
	}
	iRated, err := in.RequirePositive("current_rated")
	if err != nil {
		return nil, err
	}
	s := iOp / iRated
	res.checkRatio("relay.current", s, in.Environment)

	load := in.Option("load_type", "resistive")
	piL, ok := loadStressFactor(load, s)
	if !ok {
		return nil, unknownSubcategory(CategoryRelay, "mechanical/load "+load)
	}
	form := in.Option("contact_form", "spst")
	piC, ok := contactFormFactors[form]
	if !ok {
		return nil, unknownSubcategory(CategoryRelay, "mechanical/contact "+form)
	}
	app := in.Option("application", "general_purpose") + "/" + in.Option("construction", "armature")
	piF, ok := relayApplicationFactors[app]
	if !ok {
		return nil, unknownSubcategory(CategoryRelay, "mechanical/"+app)
	}

	ratedTemp := in.AttrOr("temperature_rated_max", 85)
	res.checkTemperature(CategoryRelay, in.AmbientTemp, ratedTemp, in.Environment)
	tk := kelvin(in.AmbientTemp)
	if ratedTemp > 85 {
		res.Factors["lambda_b"] = 0.0059 * math.Exp(math.Pow(tk/377.0, 10.4))
	} else {
		res.Factors["lambda_b"] = 0.0059 * math.Exp(math.Pow(tk/352.0, 15.7))
	}

	res.Factors["pi_L"] = piL
	res.Factors["pi_C"] = piC
	res.Factors["pi_CYC"] = cyclingFactor(in.AttrOr("cycles_per_hour", 0), 0.1, 10)
	res.Factors["pi_F"] = piF
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_L", "pi_C", "pi_CYC", "pi_F", "pi_Q", "pi_E")
	return res, nil
}

func relaySolidState(in Input, lb float64) (*Result, error) {
	res := newResult("lambda_b * pi_Q * pi_E")
	piE, err := relaySolidStateEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := relaySolidStateQuality.lookup(CategoryRelay, in.Quality)
	if err != nil {
		return nil, err
	}
	if iOp, ok := in.Attr("current_operating"); ok {
		if iRated, ok := in.Attr("current_rated"); ok && iRated > 0 {
			res.checkRatio("relay.current", iOp/iRated, in.Environment)
		}
	}
	res.checkTemperature(CategoryRelay, in.AmbientTemp, in.AttrOr("temperature_rated_max", 0), in.Environment)

	res.Factors["lambda_b"] = lb
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_Q", "pi_E")
	return res, nil
}

// cyclingFactor is cycles/div above one cycle per hour and floor below it.
func cyclingFactor(cyclesPerHour, floor, div float64) float64 {
	if cyclesPerHour < 1.0 {
		return floor
	}
	return math.Max(floor, cyclesPerHour/div)
}
