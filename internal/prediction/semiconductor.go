package prediction

import (
	"math"
	"strings"
)

var diodeBase = map[string]float64{
	"general_purpose":      0.0038,
	"switching":            0.0010,
	"power_rectifier":      0.069,
	"fast_recovery":        0.025,
	"transient_suppressor": 0.0013,
	"current_regulator":    0.0034,
	"voltage_regulator":    0.0020,
}

var (
	semiconductorEnvironment = EnvTable{1.0, 6.0, 9.0, 9.0, 19, 13, 29, 20, 43, 24, 0.50, 14, 32, 320}
	semiconductorQuality     = qualityTable{"JANTXV": 0.70, "JANTX": 1.0, "JAN": 2.4, "LOWER": 5.5, "PLASTIC": 8.0}
)

const (
	bipolarTransistorBase = 0.00074
	mosfetBase            = 0.012
	jfetBase              = 0.0045

	defaultMaxJunction = 175.0
)

// semiconductorStress evaluates discrete diodes and low-frequency bipolar
// and silicon FET transistors.
func semiconductorStress(in Input) (*Result, error) {
	switch sub := strings.ToLower(in.Subcategory); sub {
	case "diode_general", "diode_regulator":
		return diodeStress(in, sub == "diode_regulator")
	case "transistor_bipolar":
		return bipolarTransistorStress(in)
	case "transistor_fet":
		return fetStress(in)
	default:
		return nil, unknownSubcategory(CategorySemiconductor, in.Subcategory)
	}
}

// thermalFactor is exp(-k (1/(Tj+273) - 1/298)).
func thermalFactor(k, tj float64) float64 {
	return math.Exp(-k * (1.0/kelvin(tj) - 1.0/298.0))
}

// semiconductorCommon resolves pi_E, pi_Q and the junction temperature and
// applies the temperature and power derating checks.
func semiconductorCommon(in Input, res *Result) (float64, error) {
	piE, err := semiconductorEnvironment.Lookup(in.Environment)
	if err != nil {
		return 0, err
	}
	piQ, err := semiconductorQuality.lookup(CategorySemiconductor, in.Quality)
	if err != nil {
		return 0, err
	}
	res.Factors["pi_E"] = piE
	res.Factors["pi_Q"] = piQ

	tj := junctionTemperature(in)
	res.Stress["junction_temperature"] = tj
	res.checkTemperature(CategorySemiconductor, tj, in.AttrOr("temperature_rated_max", defaultMaxJunction), in.Environment)
	if pOp, ok := in.Attr("power_operating"); ok {
		if pRated, ok := in.Attr("power_rated"); ok && pRated > 0 {
			res.checkRatio("semiconductor.power", pOp/pRated, in.Environment)
		}
	}
	return tj, nil
}

// voltageStress returns operating over rated voltage when both are given.
func voltageStress(in Input, res *Result) (float64, bool) {
	vOp, ok1 := in.Attr("voltage_operating")
	vRated, ok2 := in.Attr("voltage_rated")
	if !ok1 || !ok2 || vRated <= 0 {
		return 0, false
	}
	s := vOp / vRated
	res.checkRatio("semiconductor.voltage", s, in.Environment)
	return s, true
}

// lambda_b * pi_T * pi_S * pi_C * pi_Q * pi_E
func diodeStress(in Input, regulator bool) (*Result, error) {
	res := newResult("lambda_b * pi_T * pi_S * pi_C * pi_Q * pi_E")
	tj, err := semiconductorCommon(in, res)
	if err != nil {
		return nil, err
	}

	def, k := "general_purpose", 3091.0
	if regulator {
		def, k = "voltage_regulator", 1925.0
	}
	kind := in.Option("diode_type", def)
	lb, ok := diodeBase[kind]
	if !ok {
		return nil, unknownSubcategory(CategorySemiconductor, in.Subcategory+"/"+kind)
	}

	piS := 1.0
	if vs, ok := voltageStress(in, res); ok && !regulator {
		if vs <= 0.3 {
			piS = 0.054
		} else {
			piS = math.Pow(vs, 2.43)
		}
	}
	piC := 1.0
	if in.Option("contact", "metallurgically_bonded") != "metallurgically_bonded" {
		piC = 2.0
	}

	res.Factors["lambda_b"] = lb
	res.Factors["pi_T"] = thermalFactor(k, tj)
	res.Factors["pi_S"] = piS
	res.Factors["pi_C"] = piC
	res.HazardRate = res.product("lambda_b", "pi_T", "pi_S", "pi_C", "pi_Q", "pi_E")
	return res, nil
}

// lambda_b * pi_T * pi_A * pi_R * pi_S * pi_Q * pi_E
func bipolarTransistorStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_T * pi_A * pi_R * pi_S * pi_Q * pi_E")
	tj, err := semiconductorCommon(in, res)
	if err != nil {
		return nil, err
	}

	piA := 1.5
	switch app := in.Option("application", "linear"); app {
	case "linear":
	case "switching":
		piA = 0.7
	default:
		return nil, unknownSubcategory(CategorySemiconductor, "transistor_bipolar/"+app)
	}
	piR := 0.43
	if pr := in.AttrOr("power_rated", 0); pr > 0.1 {
		piR = math.Pow(pr, 0.37)
	}
	piS := 0.045
	if vs, ok := voltageStress(in, res); ok {
		piS = 0.045 * math.Exp(3.1*vs)
	}

	res.Factors["lambda_b"] = bipolarTransistorBase
	res.Factors["pi_T"] = thermalFactor(2114, tj)
	res.Factors["pi_A"] = piA
	res.Factors["pi_R"] = piR
	res.Factors["pi_S"] = piS
	res.HazardRate = res.product("lambda_b", "pi_T", "pi_A", "pi_R", "pi_S", "pi_Q", "pi_E")
	return res, nil
}

// lambda_b * pi_T * pi_A * pi_Q * pi_E
func fetStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_T * pi_A * pi_Q * pi_E")
	tj, err := semiconductorCommon(in, res)
	if err != nil {
		return nil, err
	}
	voltageStress(in, res)

	lb := mosfetBase
	switch kind := in.Option("fet_type", "mosfet"); kind {
	case "mosfet":
	case "jfet":
		lb = jfetBase
	default:
		return nil, unknownSubcategory(CategorySemiconductor, "transistor_fet/"+kind)
	}

	var piA float64
	switch app := in.Option("application", "linear"); app {
	case "linear":
		piA = 1.5
	case "switching":
		piA = 0.7
	case "power":
		piA = fetPowerFactor(in.AttrOr("power_rated", 0))
	default:
		return nil, unknownSubcategory(CategorySemiconductor, "transistor_fet/"+app)
	}

	res.Factors["lambda_b"] = lb
	res.Factors["pi_T"] = thermalFactor(1925, tj)
	res.Factors["pi_A"] = piA
	res.HazardRate = res.product("lambda_b", "pi_T", "pi_A", "pi_Q", "pi_E")
	return res, nil
}

// fetPowerFactor steps pi_A with the rated power of a power FET.
func fetPowerFactor(watts float64) float64 {
	switch {
	case watts < 5:
		return 2.0
	case watts < 50:
		return 4.0
	case watts < 250:
		return 8.0
	default:
		return 10.0
	}
}
