package prediction

import (
	"math"
	"strings"
)

// insertMaterial holds lambda_b = A exp(-B/To + (To/Nt)^P), To in Kelvin.
type insertMaterial struct {
	A, B, Nt, P float64
}

func (m insertMaterial) rate(insertTemp float64) float64 {
	to := kelvin(insertTemp)
	return m.A * math.Exp(-m.B/to+math.Pow(to/m.Nt, m.P))
}

var insertMaterials = map[string]insertMaterial{
	"a": {A: 0.00042, B: 1592.1, Nt: 358, P: 4.72},
	"b": {A: 0.00021, B: 2073.6, Nt: 423, P: 4.66},
	"c": {A: 0.00031, B: 1298.0, Nt: 373, P: 5.36},
}

// Contact gauge constants for insert temperature rise = C * i^1.85.
var contactGaugeRise = map[string]float64{
	"12": 0.100,
	"16": 0.274,
	"20": 0.640,
	"22": 0.989,
	"26": 2.100,
}

var wireConnectionBase = map[string]float64{
	"hand_solder_no_wrap": 0.0026,
	"hand_solder_wrap":    0.00014,
	"crimp":               0.00026,
	"weld":                0.000005,
	"solderless_wrap":     0.0000035,
	"clip_termination":    0.00012,
	"reflow_solder":       0.000069,
}

var (
	connectorEnvironment      = EnvTable{1.0, 1.0, 8.0, 5.0, 13, 3.0, 5.0, 8.0, 12, 19, 0.50, 10, 27, 490}
	icSocketEnvironment       = EnvTable{1.0, 3.0, 14, 6.0, 18, 8.0, 12, 11, 13, 25, 0.50, 14, 36, 650}
	pthEnvironment            = EnvTable{1.0, 2.0, 7.0, 5.0, 13, 5.0, 8.0, 16, 28, 19, 0.50, 10, 27, 500}
	wireConnectionEnvironment = EnvTable{1.0, 2.0, 7.0, 4.0, 11, 4.0, 6.0, 6.0, 8.0, 16, 0.50, 9.0, 24, 420}

	connectionQuality = qualityTable{"MIL-SPEC": 1.0, "LOWER": 2.0}
)

const (
	icSocketBase = 0.00042
	pthBase      = 0.000041
)

// connectionStress dispatches on the connection style.
func connectionStress(in Input) (*Result, error) {
	switch sub := strings.ToLower(in.Subcategory); sub {
	case "connector", "pcb_connector":
		return connectorStress(in)
	case "ic_socket":
		return icSocketStress(in)
	case "pth":
		return pthStress(in)
	case "wire_connection":
		return wireConnectionStress(in)
	default:
		return nil, unknownSubcategory(CategoryConnection, in.Subcategory)
	}
}

// pinFactor is pi_P = exp(((N-1)/10)^0.51064) for N active pins.
func pinFactor(pins float64) float64 {
	if pins <= 1 {
		return 1.0
	}
	return math.Exp(math.Pow((pins-1)/10.0, 0.51064))
}

// matingFactor is pi_K by mating/unmating cycles per 1000 hours.
func matingFactor(cycles float64) float64 {
	switch {
	case cycles <= 0.05:
		return 1.0
	case cycles <= 0.5:
		return 1.5
	case cycles <= 5:
		return 2.0
	case cycles <= 50:
		return 3.0
	default:
		return 4.0
	}
}

// lambda_b * pi_K * pi_P * pi_E
func connectorStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_K * pi_P * pi_E")
	piE, err := connectorEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	material := in.Option("insert_material", "a")
	m, ok := insertMaterials[material]
	if !ok {
		return nil, unknownSubcategory(CategoryConnection, in.Subcategory+"/insert "+material)
	}

	current := in.AttrOr("current_operating", 0)
	if current < 0 {
		return nil, errNegative("current_operating")
	}
	rise, ok := in.Attr("temperature_rise")
	if !ok {
		gauge := in.Option("contact_gauge", "22")
		c, ok := contactGaugeRise[gauge]
		if !ok {
			return nil, unknownSubcategory(CategoryConnection, in.Subcategory+"/gauge "+gauge)
		}
		rise = c * math.Pow(current, 1.85)
	}
	insertTemp := in.AmbientTemp + rise
	res.Stress["insert_temperature"] = insertTemp
	if iRated, ok := in.Attr("current_rated"); ok && iRated > 0 {
		res.checkRatio("connection.current", current/iRated, in.Environment)
	}
	res.checkTemperature(CategoryConnection, insertTemp, in.AttrOr("temperature_rated_max", 0), in.Environment)

	res.Factors["lambda_b"] = m.rate(insertTemp)
	res.Factors["pi_K"] = matingFactor(in.AttrOr("mating_cycles", 0))
	res.Factors["pi_P"] = pinFactor(in.AttrOr("n_active_pins", 1))
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_K", "pi_P", "pi_E")
	return res, nil
}

// lambda_b * pi_P * pi_Q * pi_E
func icSocketStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_P * pi_Q * pi_E")
	piE, err := icSocketEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := connectionQuality.lookup(CategoryConnection, in.Quality)
	if err != nil {
		return nil, err
	}
	pins, err := in.RequirePositive("n_active_pins")
	if err != nil {
		return nil, err
	}
	res.Factors["lambda_b"] = icSocketBase
	res.Factors["pi_P"] = pinFactor(pins)
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_P", "pi_Q", "pi_E")
	return res, nil
}

// lambda_b (N1 pi_C + N2 (pi_C + 13)) pi_Q pi_E
func pthStress(in Input) (*Result, error) {
	res := newResult("lambda_b * (N1 * pi_C + N2 * (pi_C + 13)) * pi_Q * pi_E")
	piE, err := pthEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := connectionQuality.lookup(CategoryConnection, in.Quality)
	if err != nil {
		return nil, err
	}
	n1, err := in.RequireAttr("n_wave_soldered")
	if err != nil {
		return nil, err
	}
	n2 := in.AttrOr("n_hand_soldered", 0)
	if n2 < 0 {
		return nil, errNegative("n_hand_soldered")
	}

	piC := 1.0
	if layers := in.AttrOr("n_circuit_planes", 2); layers > 2 {
		piC = 0.65 * math.Pow(layers, 0.63)
	}

	res.Factors["lambda_b"] = pthBase
	res.Factors["pi_C"] = piC
	res.Factors["N1"] = n1
	res.Factors["N2"] = n2
	res.Factors["pi_Q"] = piQ
	res.Factors["pi_E"] = piE
	res.HazardRate = pthBase * (n1*piC + n2*(piC+13.0)) * piQ * piE
	return res, nil
}

// lambda_b * pi_E
func wireConnectionStress(in Input) (*Result, error) {
	res := newResult("lambda_b * pi_E")
	piE, err := wireConnectionEnvironment.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	kind := in.Option("connection_type", "crimp")
	lb, ok := wireConnectionBase[kind]
	if !ok {
		return nil, unknownSubcategory(CategoryConnection, "wire_connection/"+kind)
	}
	res.Factors["lambda_b"] = lb
	res.Factors["pi_E"] = piE
	res.HazardRate = res.product("lambda_b", "pi_E")
	return res, nil
}
