// Package prediction evaluates MIL-HDBK-217F parts-count and parts-stress
// hazard-rate models.
//
// Hazard rates are expressed in failures per 10^6 hours. Every calculation
// reports the factors it used so a caller can store and audit them alongside
// the part.
package prediction

import (
	"fmt"
	"math"
	"sort"
	"strings"

	apperrors "rtk-backend/internal/errors"
)

// Category is the part family a hardware item belongs to.
type Category string

const (
	CategoryIntegratedCircuit Category = "integrated_circuit"
	CategorySemiconductor     Category = "semiconductor"
	CategoryResistor          Category = "resistor"
	CategoryCapacitor         Category = "capacitor"
	CategoryInductor          Category = "inductor"
	CategoryRelay             Category = "relay"
	CategorySwitch            Category = "switch"
	CategoryConnection        Category = "connection"
	CategoryMeter             Category = "meter"
	CategoryMiscellaneous     Category = "miscellaneous"
)

// Method selects the handbook prediction approach.
type Method string

const (
	PartsCount  Method = "parts_count"
	PartsStress Method = "parts_stress"
)

// IsValid checks if the Method is valid
func (m Method) IsValid() bool {
	return m == PartsCount || m == PartsStress
}

// Input carries everything needed to evaluate one part. Family-specific
// numeric inputs live in Attributes and selector inputs in Options.
type Input struct {
	Category    Category           `json:"category" yaml:"category" validate:"required"`
	Subcategory string             `json:"subcategory" yaml:"subcategory" validate:"required"`
	Environment Environment        `json:"environment" yaml:"environment" validate:"required"`
	Quality     string             `json:"quality" yaml:"quality" validate:"required"`
	Method      Method             `json:"method" yaml:"method" validate:"required"`
	Quantity    int                `json:"quantity" yaml:"quantity" validate:"min=0"`
	AmbientTemp float64            `json:"ambient_temp" yaml:"ambient_temp"`
	Attributes  map[string]float64 `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Options     map[string]string  `json:"options,omitempty" yaml:"options,omitempty"`
}

// Attr returns a numeric attribute and whether it was supplied.
func (in Input) Attr(name string) (float64, bool) {
	v, ok := in.Attributes[name]
	return v, ok
}

// AttrOr returns a numeric attribute or def when absent.
func (in Input) AttrOr(name string, def float64) float64 {
	if v, ok := in.Attributes[name]; ok {
		return v
	}
	return def
}

// RequireAttr returns a numeric attribute that must be present and >= 0.
func (in Input) RequireAttr(name string) (float64, error) {
	v, ok := in.Attributes[name]
	if !ok {
		return 0, apperrors.NewValidationError(name, "attribute is required")
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.NewValidationError(name, "attribute must be a finite non-negative number")
	}
	return v, nil
}

// RequirePositive returns a numeric attribute that must be present and > 0.
func (in Input) RequirePositive(name string) (float64, error) {
	v, err := in.RequireAttr(name)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, apperrors.NewValidationError(name, "attribute must be greater than zero")
	}
	return v, nil
}

// Option returns a selector option lower-cased, or def when absent.
func (in Input) Option(name, def string) string {
	if v, ok := in.Options[name]; ok && v != "" {
		return strings.ToLower(v)
	}
	return def
}

// Result is the outcome of one part evaluation.
type Result struct {
	HazardRate   float64            `json:"hazard_rate"`
	Model        string             `json:"model"`
	Factors      map[string]float64 `json:"factors"`
	Stress       map[string]float64 `json:"stress,omitempty"`
	Overstressed bool               `json:"overstressed"`
	Reasons      []string           `json:"reasons,omitempty"`
}

func newResult(model string) *Result {
	return &Result{
		Model:   model,
		Factors: make(map[string]float64),
		Stress:  make(map[string]float64),
	}
}

// product multiplies the named factors.
func (r *Result) product(names ...string) float64 {
	v := 1.0
	for _, n := range names {
		v *= r.Factors[n]
	}
	return v
}

func (r *Result) overstress(reason string) {
	r.Overstressed = true
	r.Reasons = append(r.Reasons, reason)
}

// Calculator evaluates the parts-stress model of one part family.
type Calculator interface {
	Calculate(in Input) (*Result, error)
}

// CalculatorFunc adapts a function to Calculator.
type CalculatorFunc func(in Input) (*Result, error)

// Calculate calls f(in).
func (f CalculatorFunc) Calculate(in Input) (*Result, error) {
	return f(in)
}

// Registry maps part families to their parts-stress calculators.
type Registry struct {
	calculators map[Category]Calculator
}

// NewRegistry returns a registry with every handbook family registered.
func NewRegistry() *Registry {
	r := &Registry{calculators: make(map[Category]Calculator)}
	r.Register(CategoryIntegratedCircuit, CalculatorFunc(integratedCircuitStress))
	r.Register(CategorySemiconductor, CalculatorFunc(semiconductorStress))
	r.Register(CategoryResistor, CalculatorFunc(resistorStress))
	r.Register(CategoryCapacitor, CalculatorFunc(capacitorStress))
	r.Register(CategoryInductor, CalculatorFunc(inductorStress))
	r.Register(CategoryRelay, CalculatorFunc(relayStress))
	r.Register(CategorySwitch, CalculatorFunc(switchStress))
	r.Register(CategoryConnection, CalculatorFunc(connectionStress))
	r.Register(CategoryMeter, CalculatorFunc(meterStress))
	r.Register(CategoryMiscellaneous, CalculatorFunc(miscellaneousStress))
	return r
}

// Register installs or replaces the calculator for a category.
func (r *Registry) Register(category Category, calc Calculator) {
	r.calculators[category] = calc
}

// Categories lists the registered categories in sorted order.
func (r *Registry) Categories() []Category {
	out := make([]Category, 0, len(r.calculators))
	for c := range r.calculators {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Calculate validates in and evaluates it with the selected method.
func (r *Registry) Calculate(in Input) (*Result, error) {
	env, err := ParseEnvironment(string(in.Environment))
	if err != nil {
		return nil, err
	}
	in.Environment = env
	if in.AmbientTemp < -273 {
		return nil, apperrors.NewValidationError("ambient_temp", "temperature below absolute zero")
	}
	calc, ok := r.calculators[in.Category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, in.Category)
	}

	var res *Result
	switch in.Method {
	case PartsCount:
		res, err = partsCount(in)
	case PartsStress:
		res, err = calc.Calculate(in)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownMethod, in.Method)
	}
	if err != nil {
		return nil, err
	}
	if math.IsNaN(res.HazardRate) || math.IsInf(res.HazardRate, 0) || res.HazardRate < 0 {
		return nil, apperrors.NewCalculationError(string(in.Category)+"/"+in.Subcategory, "model produced a non-finite hazard rate")
	}
	return res, nil
}

var defaultRegistry = NewRegistry()

// Calculate evaluates in with the default registry.
func Calculate(in Input) (*Result, error) {
	return defaultRegistry.Calculate(in)
}

func unknownSubcategory(c Category, sub string) error {
	return fmt.Errorf("%w: %s/%q", apperrors.ErrUnknownSubcategory, c, sub)
}

func unknownQuality(c Category, q string) error {
	return fmt.Errorf("%w: %s/%q", apperrors.ErrUnknownQuality, c, q)
}

// qualityTable maps quality designators to pi_Q.
type qualityTable map[string]float64

func (t qualityTable) lookup(c Category, q string) (float64, error) {
	v, ok := t[strings.ToUpper(strings.TrimSpace(q))]
	if !ok {
		return 0, unknownQuality(c, q)
	}
	return v, nil
}

// kelvin converts Celsius to Kelvin the way the handbook does.
func kelvin(t float64) float64 {
	return t + 273.0
}

// boltzmann is Boltzmann's constant in eV/K.
const boltzmann = 8.617e-5

// arrhenius is the handbook temperature factor relative to 25 C.
func arrhenius(ea, tj float64) float64 {
	return math.Exp(-ea / boltzmann * (1.0/kelvin(tj) - 1.0/298.0))
}

func errNegative(name string) error {
	return apperrors.NewValidationError(name, "attribute must not be negative")
}

// ratio returns num/den or an error naming den when den is not positive.
func ratio(num, den float64, denName string) (float64, error) {
	if den <= 0 {
		return 0, apperrors.NewValidationError(denName, "rated value must be greater than zero")
	}
	return num / den, nil
}
