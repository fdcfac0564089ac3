package prediction

import (
	"math"
	"strings"
)

// resistorBase holds the lambda_b constants
// lambda_b = A exp(B((T+273)/Nt)^G) exp(((S/Ns)((T+273)/273))^J).
type resistorBase struct {
	A, B, Nt, G, Ns, J float64
}

func (b resistorBase) rate(t, s float64) float64 {
	tk := kelvin(t)
	return b.A * math.Exp(b.B*math.Pow(tk/b.Nt, b.G)) * math.Exp(math.Pow((s/b.Ns)*(tk/273.0), b.J))
}

var resistorBases = map[string]resistorBase{
	"composition":          {A: 4.5e-9, B: 12, Nt: 343, G: 1, Ns: 0.6, J: 1},
	"film":                 {A: 3.25e-4, B: 1, Nt: 343, G: 3, Ns: 1, J: 1},
	"film_power":           {A: 7.33e-3, B: 0.202, Nt: 409, G: 2.6, Ns: 1, J: 1},
	"film_network":         {A: 3.25e-4, B: 1, Nt: 343, G: 3, Ns: 1, J: 1},
	"wirewound_accurate":   {A: 0.0031, B: 1, Nt: 398, G: 10, Ns: 1, J: 1.5},
	"wirewound_power":      {A: 0.00148, B: 1, Nt: 298, G: 2, Ns: 0.5, J: 1},
	"variable_wirewound":   {A: 0.0062, B: 1, Nt: 298, G: 1, Ns: 1, J: 2},
	"variable_composition": {A: 0.0246, B: 0.459, Nt: 373, G: 9.3, Ns: 1, J: 2.32},
}

// Resistance factor bands: upper bound in ohms and pi_R.
type resistanceBand struct {
	Max float64
	PiR float64
}

var resistanceFactors = map[string][]resistanceBand{
	"composition":        {{1e5, 1.0}, {1e6, 1.1}, {1e7, 1.6}, {math.Inf(1), 2.5}},
	"film":               {{1e5, 1.0}, {1e6, 1.1}, {1e7, 1.6}, {math.Inf(1), 2.5}},
	"film_power":         {{100, 1.0}, {1e5, 1.2}, {1e6, 1.3}, {math.Inf(1), 3.5}},
	"wirewound_accurate": {{1e4, 1.0}, {1e5, 1.7}, {1e6, 3.0}, {math.Inf(1), 5.0}},
	"wirewound_power":    {{500, 1.0}, {1e3, 1.0}, {5e3, 1.2}, {7.5e3, 1.2}, {1e4, 1.6}, {1.5e4, 1.6}, {2e4, 2.0}, {math.Inf(1), 2.0}},
	"variable_wirewound": {{2e3, 1.0}, {5e3, 1.4}, {2e4, 2.0}, {math.Inf(1), 2.5}},
}

var thermistorBase = map[string]float64{
	"bead": 0.021,
	"disk": 0.065,
	"rod":  0.105,
}

var resistorQuality = qualityTable{
	"S": 0.030, "R": 0.10, "P": 0.30, "M": 1.0, "MIL-SPEC": 5.0, "LOWER": 15.0,
}

var resistorEnvironment = map[string]EnvTable{
	"composition":          {1.0, 3.0, 8.0, 5.0, 13, 4.0, 5.0, 7.0, 11, 19, 0.5, 11, 27, 490},
	"film":                 {1.0, 2.0, 8.0, 4.0, 14, 4.0, 8.0, 10, 18, 19, 0.2, 10, 28, 510},
	"film_power":           {1.0, 2.0, 10, 5.0, 17, 6.0, 8.0, 14, 18, 25, 0.5, 14, 36, 660},
	"film_network":         {1.0, 2.0, 10, 5.0, 17, 6.0, 8.0, 14, 18, 25, 0.5, 14, 36, 660},
	"wirewound_accurate":   {1.0, 2.0, 11, 5.0, 18, 15, 18, 28, 35, 27, 0.8, 14, 38, 610},
	"wirewound_power":      {1.0, 2.0, 10, 5.0, 16, 4.0, 8.0, 9.0, 18, 23, 0.3, 13, 34, 610},
	"thermistor":           {1.0, 5.0, 21, 11, 24, 11, 30, 16, 42, 37, 0.5, 20, 53, 950},
	"variable_wirewound":   {1.0, 2.0, 12, 6.0, 20, 5.0, 8.0, 9.0, 15, 33, 0.5, 18, 48, 870},
	"variable_composition": {1.0, 2.0, 19, 8.0, 29, 40, 65, 48, 78, 46, 0.5, 25, 66, 1200},
}

// resistorStress evaluates lambda_p = lambda_b * pi_R * pi_Q * pi_E.
func resistorStress(in Input) (*Result, error) {
	sub := strings.ToLower(in.Subcategory)
	piETable, ok := resistorEnvironment[sub]
	if !ok {
		return nil, unknownSubcategory(CategoryResistor, in.Subcategory)
	}
	res := newResult("lambda_b * pi_R * pi_Q * pi_E")

	piE, err := piETable.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := resistorQuality.lookup(CategoryResistor, in.Quality)
	if err != nil {
		return nil, err
	}
	res.Factors["pi_E"] = piE
	res.Factors["pi_Q"] = piQ

	if sub == "thermistor" {
		style := in.Option("thermistor_type", "disk")
		lb, ok := thermistorBase[style]
		if !ok {
			return nil, unknownSubcategory(CategoryResistor, "thermistor/"+style)
		}
		res.Model = "lambda_b * pi_Q * pi_E"
		res.Factors["lambda_b"] = lb
		res.HazardRate = res.product("lambda_b", "pi_Q", "pi_E")
		return res, nil
	}

	powerOp, err := in.RequireAttr("power_operating")
	if err != nil {
		return nil, err
	}
	powerRated, err := in.RequirePositive("power_rated")
	if err != nil {
		return nil, err
	}
	s, err := ratio(powerOp, powerRated, "power_rated")
	if err != nil {
		return nil, err
	}
	res.checkRatio("resistor.power", s, in.Environment)
	if vOp, ok := in.Attr("voltage_operating"); ok {
		if vRated, ok := in.Attr("voltage_rated"); ok && vRated > 0 {
			res.checkRatio("resistor.voltage", vOp/vRated, in.Environment)
		}
	}
	res.checkTemperature(CategoryResistor, in.AmbientTemp, in.AttrOr("temperature_rated_max", 0), in.Environment)

	res.Factors["lambda_b"] = resistorBases[sub].rate(in.AmbientTemp, s)
	res.Factors["pi_R"] = resistanceFactor(sub, in.AttrOr("resistance", 0))

	if sub == "film_network" {
		// pi_NR scales with the number of film resistors in use.
		res.Model = "lambda_b * pi_NR * pi_Q * pi_E"
		res.Factors["pi_NR"] = math.Max(1, in.AttrOr("n_resistors", 1))
		res.HazardRate = res.product("lambda_b", "pi_NR", "pi_Q", "pi_E")
		return res, nil
	}

	if strings.HasPrefix(sub, "variable_") {
		res.Model = "lambda_b * pi_TAPS * pi_R * pi_V * pi_Q * pi_E"
		taps := math.Max(3, in.AttrOr("n_taps", 3))
		res.Factors["pi_TAPS"] = math.Pow(taps, 1.5)/25.0 + 0.792
		res.Factors["pi_V"] = potentiometerVoltageFactor(in)
		res.HazardRate = res.product("lambda_b", "pi_TAPS", "pi_R", "pi_V", "pi_Q", "pi_E")
		return res, nil
	}

	res.HazardRate = res.product("lambda_b", "pi_R", "pi_Q", "pi_E")
	return res, nil
}

func resistanceFactor(sub string, ohms float64) float64 {
	bands, ok := resistanceFactors[sub]
	if !ok {
		return 1.0
	}
	for _, b := range bands {
		if ohms <= b.Max {
			return b.PiR
		}
	}
	return bands[len(bands)-1].PiR
}

// potentiometerVoltageFactor steps with applied over rated voltage.
func potentiometerVoltageFactor(in Input) float64 {
	vOp, ok1 := in.Attr("voltage_operating")
	vRated, ok2 := in.Attr("voltage_rated")
	if !ok1 || !ok2 || vRated <= 0 {
		return 1.0
	}
	switch s := vOp / vRated; {
	case s <= 0.8:
		return 1.0
	case s <= 0.9:
		return 1.1
	default:
		return 1.22
	}
}
