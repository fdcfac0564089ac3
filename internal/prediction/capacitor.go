package prediction

import (
	"math"
	"strings"

	apperrors "rtk-backend/internal/errors"
)

// capacitorBase holds the lambda_b constants
// lambda_b = A((S/Ns)^H + 1) exp(B((T+273)/Nt)^G).
type capacitorBase struct {
	A, Ns, H, B, Nt, G float64
}

func (b capacitorBase) rate(t, s float64) float64 {
	return b.A * (math.Pow(s/b.Ns, b.H) + 1.0) * math.Exp(b.B*math.Pow(kelvin(t)/b.Nt, b.G))
}

// capacitanceFactor is pi_CV = K * C^E with C in microfarads.
type capacitanceFactor struct {
	K, E float64
}

func (f capacitanceFactor) value(uf float64) float64 {
	if f.K == 0 || uf <= 0 {
		return 1.0
	}
	return f.K * math.Pow(uf, f.E)
}

type capacitorStyle struct {
	base    capacitorBase
	piCV    capacitanceFactor
	piE     EnvTable
	maxTemp float64
}

var capacitorStyles = map[string]capacitorStyle{
	"paper_plastic": {
		base:    capacitorBase{A: 0.00086, Ns: 0.4, H: 5, B: 2.5, Nt: 358, G: 18},
		piCV:    capacitanceFactor{K: 1.2, E: 0.095},
		piE:     EnvTable{1.0, 2.0, 9.0, 5.0, 15, 6.0, 8.0, 17, 32, 22, 0.5, 12, 32, 570},
		maxTemp: 85,
	},
	"mica": {
		base:    capacitorBase{A: 8.6e-10, Ns: 0.4, H: 3, B: 16, Nt: 398, G: 1},
		piCV:    capacitanceFactor{K: 0.45, E: 0.14},
		piE:     EnvTable{1.0, 2.0, 10, 6.0, 16, 5.0, 7.0, 22, 28, 23, 0.5, 13, 34, 610},
		maxTemp: 125,
	},
	"glass": {
		base:    capacitorBase{A: 1.1e-9, Ns: 0.5, H: 4, B: 15, Nt: 398, G: 1},
		piCV:    capacitanceFactor{K: 0.62, E: 0.14},
		piE:     EnvTable{1.0, 2.0, 10, 6.0, 16, 5.0, 7.0, 22, 28, 23, 0.5, 13, 34, 610},
		maxTemp: 125,
	},
	"ceramic_general": {
		base:    capacitorBase{A: 0.0003, Ns: 0.3, H: 3, B: 1, Nt: 398, G: 1},
		piCV:    capacitanceFactor{K: 0.41, E: 0.11},
		piE:     EnvTable{1.0, 2.0, 9.0, 5.0, 15, 4.0, 4.0, 8.0, 12, 20, 0.4, 13, 34, 610},
		maxTemp: 125,
	},
	"ceramic_temp_comp": {
		base:    capacitorBase{A: 2.6e-9, Ns: 0.3, H: 3, B: 14.3, Nt: 398, G: 1},
		piCV:    capacitanceFactor{K: 0.59, E: 0.12},
		piE:     EnvTable{1.0, 2.0, 10, 5.0, 17, 4.0, 8.0, 16, 35, 24, 0.5, 13, 34, 610},
		maxTemp: 125,
	},
	"tantalum_solid": {
		base:    capacitorBase{A: 0.00375, Ns: 0.4, H: 3, B: 2.6, Nt: 398, G: 9},
		piCV:    capacitanceFactor{K: 1.0, E: 0.12},
		piE:     EnvTable{1.0, 2.0, 8.0, 5.0, 14, 4.0, 5.0, 12, 20, 24, 0.4, 11, 29, 530},
		maxTemp: 125,
	},
	"tantalum_nonsolid": {
		base:    capacitorBase{A: 0.00165, Ns: 0.4, H: 3, B: 2.6, Nt: 398, G: 9},
		piCV:    capacitanceFactor{K: 0.82, E: 0.066},
		piE:     EnvTable{1.0, 2.0, 10, 6.0, 16, 4.0, 8.0, 14, 30, 23, 0.5, 13, 34, 610},
		maxTemp: 125,
	},
	"aluminum_electrolytic": {
		base:    capacitorBase{A: 0.00254, Ns: 0.5, H: 3, B: 5.09, Nt: 358, G: 5},
		piCV:    capacitanceFactor{K: 0.34, E: 0.18},
		piE:     EnvTable{1.0, 2.0, 12, 6.0, 17, 10, 12, 28, 35, 27, 0.5, 14, 38, 690},
		maxTemp: 85,
	},
	"variable_ceramic": {
		base:    capacitorBase{A: 7.3e-7, Ns: 0.17, H: 3, B: 12.1, Nt: 398, G: 1},
		piE:     EnvTable{1.0, 3.0, 13, 8.0, 24, 6.0, 10, 37, 70, 36, 0.4, 20, 52, 950},
		maxTemp: 85,
	},
}

var capacitorQuality = qualityTable{
	"S": 0.030, "R": 0.10, "P": 0.30, "M": 1.0, "L": 1.5, "MIL-SPEC": 3.0, "LOWER": 10.0,
}

// capacitorStress evaluates lambda_p = lambda_b * pi_CV * pi_SR * pi_Q * pi_E.
func capacitorStress(in Input) (*Result, error) {
	sub := strings.ToLower(in.Subcategory)
	style, ok := capacitorStyles[sub]
	if !ok {
		return nil, unknownSubcategory(CategoryCapacitor, in.Subcategory)
	}
	res := newResult("lambda_b * pi_CV * pi_Q * pi_E")

	piE, err := style.piE.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := capacitorQuality.lookup(CategoryCapacitor, in.Quality)
	if err != nil {
		return nil, err
	}
	vRated, err := in.RequirePositive("voltage_rated")
	if err != nil {
		return nil, err
	}
	vdc := in.AttrOr("voltage_dc_operating", 0)
	vac := in.AttrOr("voltage_ac_operating", 0)
	if vdc < 0 || vac < 0 {
		return nil, apperrors.NewValidationError("voltage_operating", "operating voltage must not be negative")
	}
	s := (vdc + vac) / vRated
	res.checkRatio("capacitor.voltage", s, in.Environment)

	maxTemp := in.AttrOr("temperature_rated_max", style.maxTemp)
	res.checkTemperature(CategoryCapacitor, in.AmbientTemp, maxTemp, in.Environment)

	res.Factors["lambda_b"] = style.base.rate(in.AmbientTemp, s)
	res.Factors["pi_CV"] = style.piCV.value(in.AttrOr("capacitance", 0))
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE

	if sub == "tantalum_solid" {
		res.Model = "lambda_b * pi_CV * pi_SR * pi_Q * pi_E"
		res.Factors["pi_SR"] = seriesResistanceFactor(in)
		res.HazardRate = res.product("lambda_b", "pi_CV", "pi_SR", "pi_Q", "pi_E")
		return res, nil
	}

	res.HazardRate = res.product("lambda_b", "pi_CV", "pi_Q", "pi_E")
	return res, nil
}

// seriesResistanceFactor steps with circuit resistance in ohms per volt
// applied to a solid tantalum capacitor.
func seriesResistanceFactor(in Input) float64 {
	r, ok := in.Attr("effective_resistance")
	if !ok {
		return 1.0
	}
	v := in.AttrOr("voltage_dc_operating", 0) + in.AttrOr("voltage_ac_operating", 0)
	if v <= 0 {
		return 0.066
	}
	switch ohmsPerVolt := r / v; {
	case ohmsPerVolt > 0.8:
		return 0.066
	case ohmsPerVolt > 0.6:
		return 0.10
	case ohmsPerVolt > 0.4:
		return 0.13
	case ohmsPerVolt > 0.2:
		return 0.20
	case ohmsPerVolt > 0.1:
		return 0.27
	default:
		return 0.33
	}
}
