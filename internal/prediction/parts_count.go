package prediction

import (
	"fmt"
	"sort"
	"strings"
)

// Generic failure rates (lambda_g) for the parts-count method, failures per
// 10^6 hours, columns in handbook environment order:
// GB, GF, GM, NS, NU, AIC, AIF, AUC, AUF, ARW, SF, MF, ML, CL.
var genericFailureRates = map[Category]map[string]EnvTable{
	CategoryIntegratedCircuit: {
		"digital_bipolar":        {0.0094, 0.019, 0.034, 0.030, 0.047, 0.036, 0.046, 0.040, 0.064, 0.062, 0.0094, 0.048, 0.090, 1.4},
		"digital_mos":            {0.016, 0.037, 0.063, 0.057, 0.091, 0.070, 0.089, 0.076, 0.12, 0.12, 0.016, 0.091, 0.17, 2.7},
		"linear_bipolar":         {0.0095, 0.024, 0.039, 0.034, 0.049, 0.057, 0.10, 0.062, 0.14, 0.11, 0.0095, 0.071, 0.13, 1.8},
		"linear_mos":             {0.0066, 0.019, 0.030, 0.026, 0.042, 0.038, 0.052, 0.043, 0.074, 0.073, 0.0066, 0.047, 0.092, 1.3},
		"microprocessor_bipolar": {0.028, 0.061, 0.11, 0.098, 0.15, 0.11, 0.14, 0.12, 0.20, 0.20, 0.028, 0.15, 0.28, 4.6},
		"microprocessor_mos":     {0.048, 0.089, 0.14, 0.13, 0.22, 0.14, 0.19, 0.16, 0.26, 0.26, 0.048, 0.20, 0.37, 6.6},
	},
	CategorySemiconductor: {
		"diode_general":      {0.0036, 0.028, 0.049, 0.043, 0.10, 0.092, 0.21, 0.20, 0.44, 0.17, 0.0018, 0.076, 0.23, 1.5},
		"diode_regulator":    {0.0047, 0.0089, 0.036, 0.018, 0.061, 0.027, 0.043, 0.039, 0.090, 0.067, 0.0024, 0.044, 0.10, 0.91},
		"transistor_bipolar": {0.00015, 0.0011, 0.0017, 0.0017, 0.0037, 0.0030, 0.0067, 0.0060, 0.013, 0.0056, 0.000073, 0.0027, 0.0074, 0.056},
		"transistor_fet":     {0.0039, 0.026, 0.048, 0.044, 0.10, 0.084, 0.20, 0.19, 0.42, 0.16, 0.0020, 0.072, 0.22, 1.4},
	},
	CategoryResistor: {
		"composition":          {0.0005, 0.0022, 0.0071, 0.0037, 0.012, 0.0052, 0.0065, 0.016, 0.025, 0.025, 0.00025, 0.0098, 0.035, 0.36},
		"film":                 {0.0012, 0.0027, 0.011, 0.0054, 0.020, 0.0063, 0.013, 0.018, 0.033, 0.030, 0.00025, 0.014, 0.044, 0.69},
		"film_power":           {0.012, 0.025, 0.13, 0.062, 0.21, 0.078, 0.10, 0.19, 0.24, 0.32, 0.0060, 0.18, 0.47, 8.2},
		"film_network":         {0.0023, 0.0066, 0.031, 0.013, 0.055, 0.022, 0.043, 0.077, 0.15, 0.10, 0.0011, 0.055, 0.15, 1.7},
		"wirewound_accurate":   {0.0085, 0.018, 0.10, 0.045, 0.16, 0.15, 0.17, 0.30, 0.38, 0.26, 0.0068, 0.13, 0.37, 5.4},
		"wirewound_power":      {0.014, 0.031, 0.16, 0.077, 0.26, 0.073, 0.15, 0.19, 0.39, 0.42, 0.0042, 0.21, 0.62, 9.4},
		"thermistor":           {0.065, 0.32, 1.4, 0.71, 1.6, 0.71, 1.9, 1.0, 2.7, 2.4, 0.032, 1.3, 3.4, 62},
		"variable_wirewound":   {0.025, 0.055, 0.35, 0.15, 0.58, 0.16, 0.26, 0.35, 0.58, 1.1, 0.013, 0.52, 1.6, 24},
		"variable_composition": {0.050, 0.11, 1.1, 0.45, 1.7, 2.8, 4.6, 4.6, 7.5, 3.3, 0.025, 1.5, 4.7, 67},
	},
	CategoryCapacitor: {
		"paper_plastic":         {0.0036, 0.0072, 0.033, 0.018, 0.055, 0.023, 0.030, 0.07, 0.13, 0.083, 0.0018, 0.044, 0.12, 2.1},
		"mica":                  {0.00078, 0.0022, 0.013, 0.0056, 0.023, 0.0077, 0.015, 0.015, 0.028, 0.040, 0.0003, 0.017, 0.049, 0.32},
		"glass":                 {0.00061, 0.0017, 0.0091, 0.0041, 0.016, 0.0059, 0.011, 0.012, 0.023, 0.027, 0.00030, 0.012, 0.033, 0.24},
		"ceramic_general":       {0.0036, 0.0074, 0.034, 0.019, 0.056, 0.015, 0.015, 0.032, 0.048, 0.077, 0.0014, 0.038, 0.11, 1.1},
		"ceramic_temp_comp":     {0.00099, 0.0031, 0.016, 0.0068, 0.028, 0.0043, 0.0061, 0.0089, 0.013, 0.050, 0.00047, 0.024, 0.071, 0.37},
		"tantalum_solid":        {0.0018, 0.0039, 0.016, 0.0097, 0.028, 0.0091, 0.011, 0.034, 0.057, 0.055, 0.00072, 0.022, 0.066, 1.0},
		"tantalum_nonsolid":     {0.0061, 0.013, 0.069, 0.039, 0.11, 0.031, 0.061, 0.13, 0.29, 0.18, 0.0030, 0.069, 0.26, 4.0},
		"aluminum_electrolytic": {0.024, 0.061, 0.42, 0.18, 0.59, 0.46, 0.55, 2.1, 2.6, 1.2, 0.012, 0.49, 1.7, 21},
		"variable_ceramic":      {0.08, 0.27, 1.2, 0.71, 2.3, 0.69, 1.1, 6.2, 12, 4.1, 0.032, 1.9, 5.9, 85},
	},
	CategoryInductor: {
		"transformer_pulse": {0.0035, 0.023, 0.049, 0.019, 0.065, 0.027, 0.037, 0.041, 0.052, 0.11, 0.0018, 0.053, 0.16, 2.3},
		"transformer_audio": {0.0071, 0.046, 0.097, 0.038, 0.13, 0.055, 0.073, 0.081, 0.10, 0.22, 0.0035, 0.11, 0.31, 4.7},
		"transformer_power": {0.023, 0.16, 0.35, 0.13, 0.45, 0.21, 0.27, 0.35, 0.45, 0.82, 0.011, 0.37, 1.2, 16},
		"transformer_rf":    {0.028, 0.18, 0.39, 0.15, 0.52, 0.22, 0.29, 0.33, 0.42, 0.88, 0.015, 0.42, 1.2, 19},
		"coil":              {0.0017, 0.0073, 0.023, 0.0091, 0.031, 0.011, 0.015, 0.016, 0.022, 0.052, 0.00083, 0.25, 0.073, 1.1},
	},
	CategoryRelay: {
		"mechanical":  {0.13, 0.28, 2.1, 1.1, 3.8, 1.1, 1.4, 1.9, 2.0, 7.0, 0.066, 3.5, 10, 0},
		"solid_state": {0.40, 1.2, 4.8, 2.4, 6.8, 4.8, 7.6, 8.4, 13, 9.2, 0.16, 4.8, 13, 240},
		"time_delay":  {0.50, 1.5, 6.0, 3.0, 8.5, 5.0, 9.5, 11, 16, 12, 0.20, 5.0, 17, 300},
	},
	CategorySwitch: {
		"toggle":          {0.0010, 0.0030, 0.018, 0.0080, 0.029, 0.010, 0.018, 0.013, 0.022, 0.046, 0.0005, 0.025, 0.067, 1.2},
		"pushbutton":      {0.0010, 0.0030, 0.018, 0.0080, 0.029, 0.010, 0.018, 0.013, 0.022, 0.046, 0.0005, 0.025, 0.067, 1.2},
		"sensitive":       {0.15, 0.44, 2.7, 1.2, 4.3, 1.5, 2.7, 1.9, 3.3, 6.8, 0.74, 3.7, 9.9, 180},
		"rotary":          {0.33, 0.99, 5.9, 2.6, 9.5, 3.3, 5.9, 4.3, 7.2, 15, 0.16, 8.1, 22, 390},
		"thumbwheel":      {0.56, 1.7, 10, 4.5, 16, 5.6, 10, 7.3, 12, 26, 0.26, 14, 38, 670},
		"circuit_breaker": {0.11, 0.23, 1.7, 0.91, 3.1, 0.80, 1.0, 1.3, 1.4, 5.2, 0.057, 2.8, 7.5, 0},
	},
	CategoryConnection: {
		"connector":       {0.011, 0.14, 0.11, 0.069, 0.20, 0.058, 0.098, 0.23, 0.34, 0.37, 0.0054, 0.16, 0.42, 6.8},
		"pcb_connector":   {0.0054, 0.021, 0.063, 0.035, 0.10, 0.059, 0.11, 0.085, 0.16, 0.19, 0.0027, 0.078, 0.22, 3.1},
		"ic_socket":       {0.0019, 0.0058, 0.027, 0.012, 0.035, 0.015, 0.023, 0.021, 0.025, 0.051, 0.00095, 0.026, 0.071, 1.2},
		"pth":             {0.053, 0.11, 0.37, 0.69, 0.27, 0.27, 0.43, 0.85, 1.5, 1.0, 0.027, 0.53, 1.4, 27},
		"wire_connection": {0.0026, 0.0052, 0.018, 0.013, 0.047, 0.0083, 0.013, 0.021, 0.031, 0.039, 0.0013, 0.021, 0.058, 0.86},
	},
	CategoryMeter: {
		"elapsed_time": {10, 20, 120, 70, 180, 50, 80, 160, 250, 260, 5.0, 140, 380, 0},
		"panel":        {0.09, 0.36, 2.3, 1.1, 3.2, 2.5, 3.8, 5.2, 7.9, 5.5, 0.045, 3.2, 8.8, 0},
	},
	CategoryMiscellaneous: {
		"crystal": {0.032, 0.096, 0.32, 0.19, 0.51, 0.38, 0.54, 0.70, 0.90, 0.74, 0.016, 0.42, 1.0, 16},
		"fuse":    {0.010, 0.020, 0.080, 0.050, 0.11, 0.090, 0.12, 0.15, 0.18, 0.18, 0.009, 0.10, 0.21, 2.3},
		"lamp":    {0.73, 1.7, 5.2, 4.4, 7.3, 6.0, 7.0, 7.0, 8.7, 9.5, 0.37, 5.5, 13, 150},
		"filter":  {0.022, 0.044, 0.13, 0.088, 0.20, 0.088, 0.11, 0.13, 0.18, 0.21, 0.011, 0.13, 0.31, 5.5},
	},
}

// Parts-count quality factors.
var partsCountQuality = map[Category]qualityTable{
	CategoryIntegratedCircuit: {"S": 0.25, "B": 1.0, "B-1": 2.0, "LOWER": 10.0},
	CategorySemiconductor:     {"JANTXV": 0.7, "JANTX": 1.0, "JAN": 2.4, "LOWER": 5.5, "PLASTIC": 8.0},
	CategoryResistor:          {"S": 0.030, "R": 0.10, "P": 0.30, "M": 1.0, "MIL-SPEC": 3.0, "LOWER": 10.0},
	CategoryCapacitor:         {"S": 0.030, "R": 0.10, "P": 0.30, "M": 1.0, "L": 1.5, "MIL-SPEC": 3.0, "LOWER": 10.0},
	CategoryInductor:          {"S": 0.25, "R": 0.25, "P": 0.50, "M": 1.0, "MIL-SPEC": 1.0, "LOWER": 3.0},
	CategoryRelay:             {"R": 0.60, "P": 0.60, "M": 0.60, "MIL-SPEC": 1.5, "LOWER": 2.9},
	CategorySwitch:            {"MIL-SPEC": 1.0, "LOWER": 2.0},
	CategoryConnection:        {"MIL-SPEC": 1.0, "LOWER": 2.0},
	CategoryMeter:             {"MIL-SPEC": 1.0, "LOWER": 3.4},
	CategoryMiscellaneous:     {"MIL-SPEC": 1.0, "LOWER": 3.4},
}

// partsCount evaluates lambda = lambda_g * pi_Q (* pi_L for microcircuits).
func partsCount(in Input) (*Result, error) {
	table, ok := genericFailureRates[in.Category]
	if !ok {
		return nil, fmt.Errorf("no parts-count table for %s", in.Category)
	}
	sub := strings.ToLower(in.Subcategory)
	rates, ok := table[sub]
	if !ok {
		return nil, unknownSubcategory(in.Category, in.Subcategory)
	}

	res := newResult("lambda_g * pi_Q")
	lambdaG, err := rates.Lookup(in.Environment)
	if err != nil {
		return nil, err
	}
	piQ, err := partsCountQuality[in.Category].lookup(in.Category, in.Quality)
	if err != nil {
		return nil, err
	}
	res.Factors["lambda_g"] = lambdaG
	res.Factors["pi_Q"] = piQ

	if in.Category == CategoryIntegratedCircuit {
		res.Model = "lambda_g * pi_Q * pi_L"
		res.Factors["pi_L"] = learningFactor(in.AttrOr("years_in_production", 2.0))
		res.HazardRate = res.product("lambda_g", "pi_Q", "pi_L")
		return res, nil
	}

	res.HazardRate = res.product("lambda_g", "pi_Q")
	return res, nil
}

// Subcategories returns the parts-count subcategories known for a category.
func Subcategories(c Category) []string {
	table := genericFailureRates[c]
	out := make([]string, 0, len(table))
	for sub := range table {
		out = append(out, sub)
	}
	sort.Strings(out)
	return out
}

// Qualities returns the parts-count quality levels known for a category.
func Qualities(c Category) []string {
	table := partsCountQuality[c]
	out := make([]string, 0, len(table))
	for q := range table {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}
