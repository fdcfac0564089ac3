package prediction

import (
	"math"
	"strings"
)

// complexityBand maps an upper complexity bound (gates, transistors or bits)
// to the die factor C1.
type complexityBand struct {
	Max float64
	C1  float64
}

type microcircuitTech struct {
	bands      []complexityBand
	activation float64
}

var microcircuitTechs = map[string]microcircuitTech{
	"digital_bipolar": {
		bands:      []complexityBand{{100, 0.0025}, {1000, 0.005}, {3000, 0.010}, {10000, 0.020}, {30000, 0.040}, {60000, 0.080}},
		activation: 0.4,
	},
	"digital_mos": {
		bands:      []complexityBand{{100, 0.010}, {1000, 0.020}, {3000, 0.040}, {10000, 0.080}, {30000, 0.16}, {60000, 0.29}},
		activation: 0.35,
	},
	"linear_bipolar": {
		bands:      []complexityBand{{100, 0.010}, {300, 0.020}, {1000, 0.040}, {10000, 0.060}},
		activation: 0.65,
	},
	"linear_mos": {
		bands:      []complexityBand{{100, 0.010}, {300, 0.020}, {1000, 0.040}, {10000, 0.060}},
		activation: 0.65,
	},
	"microprocessor_bipolar": {
		bands:      []complexityBand{{8, 0.060}, {16, 0.12}, {32, 0.24}},
		activation: 0.4,
	},
	"microprocessor_mos": {
		bands:      []complexityBand{{8, 0.14}, {16, 0.28}, {32, 0.56}},
		activation: 0.35,
	},
}

// packageFactor gives C2 = K * Np^E for Np functional pins.
type packageFactor struct {
	K, E float64
}

var microcircuitPackages = map[string]packageFactor{
	"dip_hermetic": {K: 2.8e-4, E: 1.08},
	"dip_plastic":  {K: 3.6e-4, E: 1.08},
	"flatpack":     {K: 3.0e-5, E: 2.01},
	"can":          {K: 3.0e-5, E: 1.82},
}

var (
	microcircuitEnvironment = EnvTable{0.50, 2.0, 4.0, 4.0, 6.0, 4.0, 5.0, 5.0, 8.0, 8.0, 0.50, 5.0, 12, 220}
	microcircuitQuality     = qualityTable{"S": 0.25, "B": 1.0, "B-1": 2.0, "LOWER": 10.0}
)

const defaultMicrocircuitMaxJunction = 125.0

// learningFactor is pi_L = 0.01 exp(5.35 - 0.35Y), 1.0 from two years in
// production onward.
func learningFactor(years float64) float64 {
	if years >= 2.0 {
		return 1.0
	}
	if years < 0.1 {
		years = 0.1
	}
	return 0.01 * math.Exp(5.35-0.35*years)
}

// junctionTemperature uses a supplied junction temperature or
// T_C + theta_JC * P.
func junctionTemperature(in Input) float64 {
	if tj, ok := in.Attr("junction_temperature"); ok {
		return tj
	}
	tc := in.AttrOr("case_temperature", in.AmbientTemp)
	return tc + in.AttrOr("theta_jc", 0)*in.AttrOr("power_operating", 0)
}

// integratedCircuitStress evaluates (C1 * pi_T + C2 * pi_E) * pi_Q * pi_L.
func integratedCircuitStress(in Input) (*Result, error) {
	sub := strings.ToLower(in.Subcategory)
	tech, ok := microcircuitTechs[sub]
	if !ok {
		return nil, unknownSubcategory(CategoryIntegratedCircuit, in.Subcategory)
	}
	res := newResult("(C1 * pi_T + C2 * pi_E) * pi_Q * pi_L")

	piE, err := microcircuitEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := microcircuitQuality.lookup(CategoryIntegratedCircuit, in.Quality)
	if err != nil {
		return nil, err
	}
	complexity, err := in.RequirePositive("complexity")
	if err != nil {
		return nil, err
	}
	pins, err := in.RequirePositive("n_pins")
	if err != nil {
		return nil, err
	}
	pkgName := in.Option("package", "dip_hermetic")
	pkg, ok := microcircuitPackages[pkgName]
	if !ok {
		return nil, unknownSubcategory(CategoryIntegratedCircuit, sub+"/package "+pkgName)
	}

	c1 := tech.bands[len(tech.bands)-1].C1
	for _, b := range tech.bands {
		if complexity <= b.Max {
			c1 = b.C1
			break
		}
	}

	tj := junctionTemperature(in)
	res.Stress["junction_temperature"] = tj
	res.checkTemperature(CategoryIntegratedCircuit, tj, in.AttrOr("temperature_rated_max", defaultMicrocircuitMaxJunction), in.Environment)
	if vOp, ok := in.Attr("voltage_supply"); ok {
		if vRated, ok := in.Attr("voltage_supply_rated"); ok && vRated > 0 {
			res.checkRatio("integrated_circuit.supply", vOp/vRated, in.Environment)
		}
	}

	res.Factors["C1"] = c1
	res.Factors["C2"] = pkg.K * math.Pow(pins, pkg.E)
	res.Factors["pi_T"] = 0.1 * arrhenius(tech.activation, tj)
	res.Factors["pi_E"] = piE
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_L"] = learningFactor(in.AttrOr("years_in_production", 2.0))

	f := res.Factors
	res.HazardRate = (f["C1"]*f["pi_T"] + f["C2"]*f["pi_E"]) * f["pi_Q"] * f["pi_L"]
	return res, nil
}
