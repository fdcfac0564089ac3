package prediction

import (
	"strings"
)

var (
	switchEnvironment         = EnvTable{1.0, 3.0, 18, 8.0, 29, 10, 18, 13, 22, 46, 0.50, 25, 67, 1200}
	circuitBreakerEnvironment = EnvTable{1.0, 2.0, 15, 8.0, 27, 7.0, 9.0, 11, 12, 46, 0.50, 25, 66, 0}

	switchQuality         = qualityTable{"MIL-SPEC": 1.0, "LOWER": 20.0}
	circuitBreakerQuality = qualityTable{"MIL-SPEC": 1.0, "LOWER": 8.4}
)

// switchBase gives lambda_b = first + n_contacts * perContact.
type switchBase struct {
	first      float64
	perContact float64
}

var switchBases = map[string]switchBase{
	"toggle":     {first: 0.00045},
	"pushbutton": {first: 0.00045},
	"sensitive":  {first: 0.10, perContact: 0.00045},
	"rotary":     {first: 0.0067, perContact: 0.00003},
	"thumbwheel": {first: 0.0067, perContact: 0.062},
}

var circuitBreakerBase = map[string]float64{
	"magnetic":         0.020,
	"thermal":          0.038,
	"thermal_magnetic": 0.038,
}

var circuitBreakerPoles = map[string]float64{
	"spst": 1.0,
	"dpst": 2.0,
	"3pst": 3.0,
	"4pst": 4.0,
}

// switchStress evaluates lambda_b * pi_CYC * pi_L * pi_C * pi_Q * pi_E for
// toggle, pushbutton, sensitive, rotary and thumbwheel switches, and
// lambda_b * pi_C * pi_U * pi_Q * pi_E for circuit breakers.
func switchStress(in Input) (*Result, error) {
	sub := strings.ToLower(in.Subcategory)
	if sub == "circuit_breaker" {
		return circuitBreakerStress(in)
	}
	base, ok := switchBases[sub]
	if !ok {
		return nil, unknownSubcategory(CategorySwitch, in.Subcategory)
	}

	res := newResult("lambda_b * pi_CYC * pi_L * pi_C * pi_Q * pi_E")
	piE, err := switchEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := switchQuality.lookup(CategorySwitch, in.Quality)
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
	res.checkRatio("switch.current", s, in.Environment)

	load := in.Option("load_type", "resistive")
	piL, ok := loadStressFactor(load, s)
	if !ok {
		return nil, unknownSubcategory(CategorySwitch, sub+"/load "+load)
	}

	piC := 1.0
	if sub == "toggle" || sub == "pushbutton" {
		form := in.Option("contact_form", "spst")
		if piC, ok = contactFormFactors[form]; !ok {
			return nil, unknownSubcategory(CategorySwitch, sub+"/contact "+form)
		}
	}

	contacts := in.AttrOr("n_contacts", 1)
	if contacts < 1 {
		contacts = 1
	}

	res.Factors["lambda_b"] = base.first + contacts*base.perContact
	res.Factors["pi_CYC"] = cyclingFactor(in.AttrOr("cycles_per_hour", 0), 1.0, 1.0)
	res.Factors["pi_L"] = piL
	res.Factors["pi_C"] = piC
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_CYC", "pi_L", "pi_C", "pi_Q", "pi_E")
	return res, nil
}

func circuitBreakerStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_C * pi_U * pi_Q * pi_E")
	piE, err := circuitBreakerEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := circuitBreakerQuality.lookup(CategorySwitch, in.Quality)
	if err != nil {
		return nil, err
	}
	function := in.Option("function", "magnetic")
	lb, ok := circuitBreakerBase[function]
	if !ok {
		return nil, unknownSubcategory(CategorySwitch, "circuit_breaker/"+function)
	}
	poles := in.Option("contact_form", "spst")
	piC, ok := circuitBreakerPoles[poles]
	if !ok {
		return nil, unknownSubcategory(CategorySwitch, "circuit_breaker/contact "+poles)
	}
	if iOp, ok := in.Attr("current_operating"); ok {
		if iRated, ok := in.Attr("current_rated"); ok && iRated > 0 {
			res.checkRatio("switch.current", iOp/iRated, in.Environment)
		}
	}

	res.Factors["lambda_b"] = lb
	res.Factors["pi_C"] = piC
	// pi_U is 10 when the breaker also serves as a power on/off switch.
	res.Factors["pi_U"] = 1.0
	if in.Option("power_switch", "false") == "true" {
		res.Factors["pi_U"] = 10.0
	}
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_C", "pi_U", "pi_Q", "pi_E")
	return res, nil
}
