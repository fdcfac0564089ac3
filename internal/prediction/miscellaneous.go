package prediction

import (
	"math"
	"strings"
)

var (
	crystalEnvironment = EnvTable{1.0, 3.0, 10, 6.0, 16, 12, 17, 22, 28, 23, 0.50, 13, 32, 500}
	fuseEnvironment    = EnvTable{1.0, 2.0, 8.0, 5.0, 11, 9.0, 12, 15, 18, 16, 0.90, 10, 21, 230}
	lampEnvironment    = EnvTable{1.0, 2.0, 3.0, 3.0, 4.0, 4.0, 4.0, 5.0, 6.0, 5.0, 0.70, 4.0, 6.0, 27}
	filterEnvironment  = EnvTable{1.0, 2.0, 6.0, 4.0, 9.0, 7.0, 9.0, 11, 13, 11, 0.80, 7.0, 15, 120}

	crystalQuality = qualityTable{"MIL-SPEC": 1.0, "LOWER": 2.1}
	filterQuality  = qualityTable{"MIL-SPEC": 1.0, "LOWER": 2.9}
)

var filterBase = map[string]float64{
	"ceramic_ferrite":     0.022,
	"discrete_lc":         0.12,
	"discrete_lc_crystal": 0.27,
}

const fuseBase = 0.010

// miscellaneousStress covers crystals, fuses, lamps and filters.
func miscellaneousStress(in Input) (*Result, error) {
	switch strings.ToLower(in.Subcategory) {
	case "crystal":
		return crystalStress(in)
	case "fuse":
		return fuseStress(in)
	case "lamp":
		return lampStress(in)
	case "filter":
		return filterStress(in)
	default:
		return nil, unknownSubcategory(CategoryMiscellaneous, in.Subcategory)
	}
}

// lambda_b = 0.013 f^0.23, f in MHz.
func crystalStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_Q * pi_E")
	piE, err := crystalEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := crystalQuality.lookup(CategoryMiscellaneous, in.Quality)
	if err != nil {
		return nil, err
	}
	f, err := in.RequirePositive("frequency")
	if err != nil {
		return nil, err
	}
	res.Factors["lambda_b"] = 0.013 * math.Pow(f, 0.23)
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_Q", "pi_E")
	return res, nil
}

func fuseStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_E")
	piE, err := fuseEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	if iOp, ok := in.Attr("current_operating"); ok {
		if iRated, ok := in.Attr("current_rated"); ok && iRated > 0 {
			res.Stress["fuse.current"] = iOp / iRated
		}
	}
	res.Factors["lambda_b"] = fuseBase
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_E")
	return res, nil
}

// lambda_b = 0.074 V^1.29 with V the rated voltage.
func lampStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_U * pi_A * pi_E")
	piE, err := lampEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	v, err := in.RequirePositive("voltage_rated")
	if err != nil {
		return nil, err
	}

	// Utilization is the fraction of time the lamp is illuminated.
	piU := 1.0
	switch u := in.AttrOr("utilization", 1.0); {
	case u < 0:
		return nil, errNegative("utilization")
	case u < 0.10:
		piU = 0.10
	case u <= 0.20:
		piU = 0.72
	}
	piA := 1.0
	switch app := in.Option("application", "ac"); app {
	case "ac":
	case "dc":
		piA = 3.3
	default:
		return nil, unknownSubcategory(CategoryMiscellaneous, "lamp/"+app)
	}

	res.Factors["lambda_b"] = 0.074 * math.Pow(v, 1.29)
	res.Factors["pi_U"] = piU
	res.Factors["pi_A"] = piA
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_U", "pi_A", "pi_E")
	return res, nil
}

func filterStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_Q * pi_E")
	piE, err := filterEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := filterQuality.lookup(CategoryMiscellaneous, in.Quality)
	if err != nil {
		return nil, err
	}
	kind := in.Option("filter_type", "ceramic_ferrite")
	lb, ok := filterBase[kind]
	if !ok {
		return nil, unknownSubcategory(CategoryMiscellaneous, "filter/"+kind)
	}
	res.Factors["lambda_b"] = lb
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_Q", "pi_E")
	return res, nil
}
