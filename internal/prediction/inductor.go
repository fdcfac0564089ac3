package prediction

import (
	"math"
	"strings"
)

// insulationClass holds the hot-spot rating and lambda_b shape constants.
type insulationClass struct {
	MaxTemp float64
	Nt      float64
	G       float64
}

var insulationClasses = map[string]insulationClass{
	"o": {MaxTemp: 85, Nt: 329, G: 15.6},
	"a": {MaxTemp: 105, Nt: 352, G: 14.0},
	"b": {MaxTemp: 130, Nt: 364, G: 8.7},
	"f": {MaxTemp: 155, Nt: 409, G: 10.0},
	"h": {MaxTemp: 180, Nt: 429, G: 10.0},
	"c": {MaxTemp: 220, Nt: 477, G: 8.4},
}

var (
	transformerEnvironment = EnvTable{1.0, 6.0, 12, 5.0, 16, 6.0, 8.0, 7.0, 9.0, 24, 0.5, 13, 34, 610}
	coilEnvironment        = EnvTable{1.0, 4.0, 12, 5.0, 16, 5.0, 7.0, 6.0, 8.0, 24, 0.5, 13, 34, 610}

	transformerQuality = qualityTable{"MIL-SPEC": 1.0, "LOWER": 3.0}
	coilQuality        = qualityTable{"S": 0.03, "R": 0.1, "P": 0.3, "M": 1.0, "MIL-SPEC": 1.0, "LOWER": 4.0}
)

const (
	transformerBaseA = 0.0018
	coilBaseA        = 0.000335
	// defaultTemperatureRise applies when neither the rise nor the power
	// dissipation is known.
	defaultTemperatureRise = 10.0
)

// hotSpotTemperature is T_A + 1.1 * delta T.
func hotSpotTemperature(in Input) float64 {
	return in.AmbientTemp + 1.1*temperatureRise(in)
}

func temperatureRise(in Input) float64 {
	if rise, ok := in.Attr("temperature_rise"); ok {
		return rise
	}
	loss, ok := in.Attr("power_loss")
	if !ok {
		return defaultTemperatureRise
	}
	if area, ok := in.Attr("case_area"); ok && area > 0 {
		return 125.0 * loss / area
	}
	if weight, ok := in.Attr("weight"); ok && weight > 0 {
		return 11.5 * loss / math.Pow(weight, 0.6766)
	}
	return defaultTemperatureRise
}

// inductorStress evaluates transformers (lambda_b * pi_Q * pi_E) and coils
// (lambda_b * pi_C * pi_Q * pi_E).
func inductorStress(in Input) (*Result, error) {
	sub := strings.ToLower(in.Subcategory)
	isCoil := sub == "coil"
	if !isCoil && !strings.HasPrefix(sub, "transformer_") {
		return nil, unknownSubcategory(CategoryInductor, in.Subcategory)
	}
	if _, ok := genericFailureRates[CategoryInductor][sub]; !ok {
		return nil, unknownSubcategory(CategoryInductor, in.Subcategory)
	}

	class, ok := insulationClasses[in.Option("insulation_class", "a")]
	if !ok {
		return nil, unknownSubcategory(CategoryInductor, in.Subcategory+"/insulation "+in.Option("insulation_class", ""))
	}

	envTable, quality, baseA := transformerEnvironment, transformerQuality, transformerBaseA
	res := newResult("lambda_b * pi_Q * pi_E")
	if isCoil {
		envTable, quality, baseA = coilEnvironment, coilQuality, coilBaseA
		res.Model = "lambda_b * pi_C * pi_Q * pi_E"
	}

	piE, err := envTable.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := quality.lookup(CategoryInductor, in.Quality)
	if err != nil {
		return nil, err
	}

	ths := hotSpotTemperature(in)
	res.Stress["hot_spot_temperature"] = ths
	res.checkTemperature(CategoryInductor, ths, class.MaxTemp, in.Environment)

	res.Factors["lambda_b"] = baseA * math.Exp(math.Pow(kelvin(ths)/class.Nt, class.G))
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE

	if isCoil {
		res.Factors["pi_C"] = 1.0
		if in.Option("construction", "fixed") == "variable" {
			res.Factors["pi_C"] = 2.0
		}
		res.HazardRate = res.product("lambda_b", "pi_C", "pi_Q", "pi_E")
		return res, nil
	}

	res.HazardRate = res.product("lambda_b", "pi_Q", "pi_E")
	return res, nil
}
