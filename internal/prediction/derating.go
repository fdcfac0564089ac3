package prediction

import "fmt"

// deratingLimit caps a stress ratio for mild and harsh environments.
type deratingLimit struct {
	Mild  float64
	Harsh float64
}

func (l deratingLimit) forEnv(env Environment) float64 {
	if env.Harsh() {
		return l.Harsh
	}
	return l.Mild
}

// Stress ratio limits applied to each family.
var deratingLimits = map[string]deratingLimit{
	"resistor.power":            {Mild: 0.8, Harsh: 0.5},
	"resistor.voltage":          {Mild: 0.9, Harsh: 0.8},
	"capacitor.voltage":         {Mild: 0.9, Harsh: 0.6},
	"relay.current":             {Mild: 0.75, Harsh: 0.5},
	"switch.current":            {Mild: 0.75, Harsh: 0.5},
	"connection.current":        {Mild: 0.7, Harsh: 0.5},
	"semiconductor.voltage":     {Mild: 0.9, Harsh: 0.7},
	"semiconductor.power":       {Mild: 0.9, Harsh: 0.6},
	"integrated_circuit.supply": {Mild: 0.9, Harsh: 0.8},
}

// Temperature margins in C below the rated maximum.
var temperatureMargins = map[Category]deratingLimit{
	CategoryResistor:          {Mild: 0, Harsh: 20},
	CategoryCapacitor:         {Mild: 0, Harsh: 10},
	CategoryInductor:          {Mild: 0, Harsh: 15},
	CategoryRelay:             {Mild: 0, Harsh: 20},
	CategoryConnection:        {Mild: 0, Harsh: 25},
	CategorySemiconductor:     {Mild: 25, Harsh: 50},
	CategoryIntegratedCircuit: {Mild: 25, Harsh: 40},
}

// checkRatio records a stress ratio and flags it against the named limit.
func (r *Result) checkRatio(name string, value float64, env Environment) {
	r.Stress[name] = value
	limit, ok := deratingLimits[name]
	if !ok {
		return
	}
	allowed := limit.forEnv(env)
	if value > allowed {
		r.overstress(fmt.Sprintf("%s ratio %.2f exceeds %.2f", name, value, allowed))
	}
}

// checkTemperature flags an operating temperature within the category's
// margin of its rated maximum. A zero rated maximum disables the check.
func (r *Result) checkTemperature(c Category, operating, ratedMax float64, env Environment) {
	if ratedMax <= 0 {
		return
	}
	margin := temperatureMargins[c].forEnv(env)
	r.Stress[string(c)+".temperature"] = operating / ratedMax
	if operating > ratedMax-margin {
		r.overstress(fmt.Sprintf("operating temperature %.1fC exceeds %.1fC (rated %.1fC less %.0fC margin)",
			operating, ratedMax-margin, ratedMax, margin))
	}
}
