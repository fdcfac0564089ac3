package prediction

import "strings"

var elapsedTimeBase = map[string]float64{
	"ac":              20,
	"inverter_driven": 30,
	"commutator_dc":   80,
}

var (
	elapsedTimeEnvironment = EnvTable{1.0, 2.0, 12, 7.0, 18, 5.0, 8.0, 16, 25, 26, 0.50, 14, 38, 0}
	panelMeterEnvironment  = EnvTable{1.0, 4.0, 25, 12, 35, 28, 42, 58, 73, 60, 0.50, 32, 72, 0}

	panelMeterQuality = qualityTable{"MIL-SPEC": 1.0, "LOWER": 3.4}
)

const panelMeterBase = 0.090

// meterStress evaluates elapsed-time meters (lambda_b * pi_T * pi_E) and
// panel meters (lambda_b * pi_A * pi_F * pi_Q * pi_E).
func meterStress(in Input) (*Result, error) {
	switch strings.ToLower(in.Subcategory) {
	case "elapsed_time":
		return elapsedTimeStress(in)
	case "panel":
		return panelMeterStress(in)
	default:
		return nil, unknownSubcategory(CategoryMeter, in.Subcategory)
	}
}

func elapsedTimeStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_T * pi_E")
	piE, err := elapsedTimeEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	kind := in.Option("meter_type", "ac")
	lb, ok := elapsedTimeBase[kind]
	if !ok {
		return nil, unknownSubcategory(CategoryMeter, "elapsed_time/"+kind)
	}
	rated, err := in.RequirePositive("temperature_rated_max")
	if err != nil {
		return nil, err
	}
	s := in.AmbientTemp / rated
	res.Stress["meter.temperature"] = s

	res.Factors["lambda_b"] = lb
	res.Factors["pi_T"] = meterTemperatureFactor(s)
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_T", "pi_E")
	if s > 1.0 {
		res.overstress("operating temperature exceeds the rated maximum")
	}
	return res, nil
}

// meterTemperatureFactor steps with operating over rated temperature.
func meterTemperatureFactor(s float64) float64 {
	switch {
	case s <= 0.5:
		return 0.5
	case s <= 0.6:
		return 0.6
	case s <= 0.8:
		return 0.8
	default:
		return 1.0
	}
}

func panelMeterStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_A * pi_F * pi_Q * pi_E")
	piE, err := panelMeterEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := panelMeterQuality.lookup(CategoryMeter, in.Quality)
	if err != nil {
		return nil, err
	}

	piA := 1.0
	switch app := in.Option("application", "dc"); app {
	case "dc":
	case "ac":
		piA = 1.7
	default:
		return nil, unknownSubcategory(CategoryMeter, "panel/"+app)
	}
	piF := 1.0
	switch fn := in.Option("function", "ammeter"); fn {
	case "ammeter", "voltmeter":
	case "other":
		piF = 2.8
	default:
		return nil, unknownSubcategory(CategoryMeter, "panel/"+fn)
	}

	res.Factors["lambda_b"] = panelMeterBase
	res.Factors["pi_A"] = piA
	res.Factors["pi_F"] = piF
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_A", "pi_F", "pi_Q", "pi_E")
	return res, nil
}
