package prediction

import (
	"math"
	"testing"

	apperrors "rtk-backend/internal/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment("aif")
	require.NoError(t, err)
	assert.Equal(t, EnvAirborneInhabitedFighter, env)
	assert.True(t, env.Harsh())
	assert.Equal(t, ClassAirborne, env.Class())

	_, err = ParseEnvironment("moon")
	assert.True(t, apperrors.IsValidation(err))

	assert.Len(t, Environments(), NumEnvironments)
	assert.False(t, EnvGroundBenign.Harsh())
	assert.False(t, EnvSpaceFlight.Harsh())
	assert.Equal(t, ClassNaval, EnvNavalUnsheltered.Class())
}

func TestPartsCount(t *testing.T) {
	t.Run("resistor film", func(t *testing.T) {
		res, err := Calculate(Input{
			Category:    CategoryResistor,
			Subcategory: "film",
			Environment: EnvGroundBenign,
			Quality:     "M",
			Method:      PartsCount,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.0012, res.HazardRate, 1e-12)
		assert.Equal(t, "lambda_g * pi_Q", res.Model)
	})

	t.Run("environment is case insensitive", func(t *testing.T) {
		res, err := Calculate(Input{
			Category:    CategoryResistor,
			Subcategory: "film",
			Environment: Environment(" gb "),
			Quality:     "M",
			Method:      PartsCount,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.0012, res.HazardRate, 1e-12)

		_, err = Calculate(Input{Category: CategoryResistor, Subcategory: "film", Environment: "moon", Quality: "M", Method: PartsCount})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("capacitor quality is case insensitive", func(t *testing.T) {
		res, err := Calculate(Input{
			Category:    CategoryCapacitor,
			Subcategory: "Ceramic_General",
			Environment: EnvGroundFixed,
			Quality:     "lower",
			Method:      PartsCount,
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.074, res.HazardRate, 1e-12)
	})

	t.Run("microcircuit learning factor", func(t *testing.T) {
		res, err := Calculate(Input{
			Category:    CategoryIntegratedCircuit,
			Subcategory: "digital_mos",
			Environment: EnvGroundBenign,
			Quality:     "B",
			Method:      PartsCount,
			Attributes:  map[string]float64{"years_in_production": 0.5},
		})
		require.NoError(t, err)
		assert.InDelta(t, 1.7679661, res.Factors["pi_L"], 1e-6)
		assert.InDelta(t, 0.016*1.7679661, res.HazardRate, 1e-6)
	})

	t.Run("not applicable environment", func(t *testing.T) {
		_, err := Calculate(Input{
			Category:    CategoryRelay,
			Subcategory: "mechanical",
			Environment: EnvCannonLaunch,
			Quality:     "MIL-SPEC",
			Method:      PartsCount,
		})
		assert.ErrorIs(t, err, apperrors.ErrEnvironmentNotApplicable)
	})

	t.Run("unknown inputs", func(t *testing.T) {
		base := Input{Category: CategoryResistor, Subcategory: "film", Environment: EnvGroundBenign, Quality: "M", Method: PartsCount}

		in := base
		in.Category = "vacuum_tube"
		_, err := Calculate(in)
		assert.ErrorIs(t, err, apperrors.ErrUnknownCategory)

		in = base
		in.Subcategory = "carbon_nanotube"
		_, err = Calculate(in)
		assert.ErrorIs(t, err, apperrors.ErrUnknownSubcategory)

		in = base
		in.Quality = "Z"
		_, err = Calculate(in)
		assert.ErrorIs(t, err, apperrors.ErrUnknownQuality)

		in = base
		in.Method = "guess"
		_, err = Calculate(in)
		assert.ErrorIs(t, err, apperrors.ErrUnknownMethod)

		in = base
		in.Environment = "XX"
		_, err = Calculate(in)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestSubcategories(t *testing.T) {
	subs := Subcategories(CategoryMeter)
	assert.Equal(t, []string{"elapsed_time", "panel"}, subs)
	assert.Empty(t, Subcategories("vacuum_tube"))
	assert.Equal(t, []string{"LOWER", "MIL-SPEC"}, Qualities(CategoryMeter))
}

func TestResistorStress(t *testing.T) {
	in := Input{
		Category:    CategoryResistor,
		Subcategory: "film",
		Environment: EnvGroundBenign,
		Quality:     "M",
		Method:      PartsStress,
		AmbientTemp: 25,
		Attributes: map[string]float64{
			"power_operating": 0.125,
			"power_rated":     0.25,
			"resistance":      10000,
		},
	}

	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.00108074, res.Factors["lambda_b"], 1e-8)
	assert.Equal(t, 1.0, res.Factors["pi_R"])
	assert.InDelta(t, 0.00108074, res.HazardRate, 1e-8)
	assert.Equal(t, 0.5, res.Stress["resistor.power"])
	assert.False(t, res.Overstressed)

	t.Run("harsh environment derates power", func(t *testing.T) {
		harsh := in
		harsh.Environment = EnvGroundMobile
		harsh.Attributes = map[string]float64{"power_operating": 0.15, "power_rated": 0.25}
		res, err := Calculate(harsh)
		require.NoError(t, err)
		assert.True(t, res.Overstressed)
		require.Len(t, res.Reasons, 1)
		assert.Contains(t, res.Reasons[0], "resistor.power")
	})

	t.Run("missing rated power", func(t *testing.T) {
		bad := in
		bad.Attributes = map[string]float64{"power_operating": 0.1}
		_, err := Calculate(bad)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("negative stress input", func(t *testing.T) {
		bad := in
		bad.Attributes = map[string]float64{"power_operating": -1, "power_rated": 0.25}
		_, err := Calculate(bad)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("thermistor", func(t *testing.T) {
		th := in
		th.Subcategory = "thermistor"
		th.Options = map[string]string{"thermistor_type": "bead"}
		res, err := Calculate(th)
		require.NoError(t, err)
		assert.InDelta(t, 0.021, res.HazardRate, 1e-12)
	})
}

func TestCapacitorStress(t *testing.T) {
	in := Input{
		Category:    CategoryCapacitor,
		Subcategory: "ceramic_general",
		Environment: EnvGroundBenign,
		Quality:     "M",
		Method:      PartsStress,
		AmbientTemp: 40,
		Attributes: map[string]float64{
			"voltage_rated":        50,
			"voltage_dc_operating": 20,
			"voltage_ac_operating": 5,
			"capacitance":          0.1,
		},
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	s := 0.5
	want := 0.0003 * (math.Pow(s/0.3, 3) + 1) * math.Exp(math.Pow(313.0/398.0, 1))
	assert.InDelta(t, want, res.Factors["lambda_b"], 1e-12)
	assert.InDelta(t, 0.41*math.Pow(0.1, 0.11), res.Factors["pi_CV"], 1e-12)
	assert.Equal(t, s, res.Stress["capacitor.voltage"])
	assert.False(t, res.Overstressed)

	in.Environment = EnvNavalUnsheltered
	in.Attributes["voltage_dc_operating"] = 30
	res, err = Calculate(in)
	require.NoError(t, err)
	assert.True(t, res.Overstressed)

	in.Attributes["voltage_rated"] = 0
	_, err = Calculate(in)
	assert.True(t, apperrors.IsValidation(err))
}

func TestInductorStress(t *testing.T) {
	res, err := Calculate(Input{
		Category:    CategoryInductor,
		Subcategory: "transformer_power",
		Environment: EnvGroundBenign,
		Quality:     "MIL-SPEC",
		Method:      PartsStress,
		AmbientTemp: 25,
		Attributes:  map[string]float64{"power_loss": 2, "case_area": 50},
	})
	require.NoError(t, err)
	assert.InDelta(t, 30.5, res.Stress["hot_spot_temperature"], 1e-9)
	assert.InDelta(t, 0.00204068, res.HazardRate, 1e-7)

	coil, err := Calculate(Input{
		Category:    CategoryInductor,
		Subcategory: "coil",
		Environment: EnvGroundBenign,
		Quality:     "M",
		Method:      PartsStress,
		AmbientTemp: 25,
		Options:     map[string]string{"construction": "variable"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, coil.Factors["pi_C"])
}

func TestRelayStress(t *testing.T) {
	in := Input{
		Category:    CategoryRelay,
		Subcategory: "mechanical",
		Environment: EnvGroundFixed,
		Quality:     "M",
		Method:      PartsStress,
		AmbientTemp: 30,
		Attributes:  map[string]float64{"current_operating": 1, "current_rated": 5, "cycles_per_hour": 20},
		Options:     map[string]string{"contact_form": "dpdt", "load_type": "inductive"},
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(math.Pow(0.2/0.4, 2)), res.Factors["pi_L"], 1e-12)
	assert.Equal(t, 3.0, res.Factors["pi_C"])
	assert.Equal(t, 2.0, res.Factors["pi_CYC"])
	assert.Equal(t, 3.0, res.Factors["pi_F"])
	assert.False(t, res.Overstressed)

	in.Options["contact_form"] = "12pdt"
	_, err = Calculate(in)
	assert.ErrorIs(t, err, apperrors.ErrUnknownSubcategory)

	ss, err := Calculate(Input{
		Category: CategoryRelay, Subcategory: "solid_state", Environment: EnvGroundBenign,
		Quality: "LOWER", Method: PartsStress,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.4*4.0, ss.HazardRate, 1e-12)
}

func TestSwitchStress(t *testing.T) {
	res, err := Calculate(Input{
		Category:    CategorySwitch,
		Subcategory: "sensitive",
		Environment: EnvGroundBenign,
		Quality:     "MIL-SPEC",
		Method:      PartsStress,
		Attributes:  map[string]float64{"current_operating": 0.5, "current_rated": 2, "n_contacts": 4},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10+4*0.00045, res.Factors["lambda_b"], 1e-12)

	cb, err := Calculate(Input{
		Category:    CategorySwitch,
		Subcategory: "circuit_breaker",
		Environment: EnvGroundBenign,
		Quality:     "MIL-SPEC",
		Method:      PartsStress,
		Options:     map[string]string{"function": "thermal", "contact_form": "3pst", "power_switch": "true"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.038*3*10, cb.HazardRate, 1e-12)
}

func TestConnectionStress(t *testing.T) {
	assert.Equal(t, 1.0, pinFactor(1))
	assert.InDelta(t, math.E, pinFactor(11), 1e-12)
	assert.Equal(t, 3.0, matingFactor(10))

	pth, err := Calculate(Input{
		Category:    CategoryConnection,
		Subcategory: "pth",
		Environment: EnvGroundBenign,
		Quality:     "MIL-SPEC",
		Method:      PartsStress,
		Attributes:  map[string]float64{"n_wave_soldered": 1000, "n_hand_soldered": 10, "n_circuit_planes": 2},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.000041*(1000+10*14), pth.HazardRate, 1e-12)

	wire, err := Calculate(Input{
		Category:    CategoryConnection,
		Subcategory: "wire_connection",
		Environment: EnvGroundBenign,
		Quality:     "MIL-SPEC",
		Method:      PartsStress,
	})
	require.NoError(t, err)
	want := &Result{
		HazardRate: 0.00026,
		Model:      "lambda_b * pi_E",
		Factors:    map[string]float64{"lambda_b": 0.00026, "pi_E": 1.0},
	}
	if diff := cmp.Diff(want, wire, cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("wire connection result mismatch (-want +got):\n%s", diff)
	}
}

func TestMeterAndMiscellaneousStress(t *testing.T) {
	etm, err := Calculate(Input{
		Category:    CategoryMeter,
		Subcategory: "elapsed_time",
		Environment: EnvGroundBenign,
		Quality:     "MIL-SPEC",
		Method:      PartsStress,
		AmbientTemp: 30,
		Attributes:  map[string]float64{"temperature_rated_max": 100},
	})
	require.NoError(t, err)
	assert.InDelta(t, 20*0.5, etm.HazardRate, 1e-12)

	crystal, err := Calculate(Input{
		Category:    CategoryMiscellaneous,
		Subcategory: "crystal",
		Environment: EnvGroundBenign,
		Quality:     "MIL-SPEC",
		Method:      PartsStress,
		Attributes:  map[string]float64{"frequency": 10},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.013*math.Pow(10, 0.23), crystal.HazardRate, 1e-12)
}

func TestMicrocircuitAndSemiconductorStress(t *testing.T) {
	ic, err := Calculate(Input{
		Category:    CategoryIntegratedCircuit,
		Subcategory: "digital_mos",
		Environment: EnvGroundBenign,
		Quality:     "B",
		Method:      PartsStress,
		AmbientTemp: 25,
		Attributes:  map[string]float64{"complexity": 2000, "n_pins": 14},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.040, ic.Factors["C1"])
	assert.InDelta(t, 0.1, ic.Factors["pi_T"], 1e-12)
	c2 := 2.8e-4 * math.Pow(14, 1.08)
	assert.InDelta(t, (0.040*0.1+c2*0.5)*1.0*1.0, ic.HazardRate, 1e-12)

	diode, err := Calculate(Input{
		Category:    CategorySemiconductor,
		Subcategory: "diode_general",
		Environment: EnvGroundBenign,
		Quality:     "JANTX",
		Method:      PartsStress,
		AmbientTemp: 25,
		Attributes:  map[string]float64{"voltage_operating": 10, "voltage_rated": 100},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.054, diode.Factors["pi_S"])
	assert.InDelta(t, 0.0038*0.054, diode.HazardRate, 1e-12)

	hot, err := Calculate(Input{
		Category:    CategorySemiconductor,
		Subcategory: "transistor_fet",
		Environment: EnvAirborneUninhabitedFighter,
		Quality:     "JAN",
		Method:      PartsStress,
		Attributes:  map[string]float64{"junction_temperature": 150},
	})
	require.NoError(t, err)
	assert.True(t, hot.Overstressed)
}

func TestAdjustment(t *testing.T) {
	lambda, err := Adjustment{Type: Assessed, MultAdjFactor: 2, AddAdjFactor: 0.1}.Apply(0.5, 1e6)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, lambda, 1e-12)

	lambda, err = Adjustment{}.Apply(0.5, 1e6)
	require.NoError(t, err)
	assert.Equal(t, 0.5, lambda)

	lambda, err = Adjustment{Type: SpecifiedMTBF, SpecifiedMTBF: 250000}.Apply(99, 1e6)
	require.NoError(t, err)
	assert.Equal(t, 4.0, lambda)

	_, err = Adjustment{Type: SpecifiedMTBF}.Apply(1, 1e6)
	assert.True(t, apperrors.IsValidation(err))

	assert.False(t, Adjustment{Type: SpecifiedHazardRate}.NeedsModel())
	assert.InDelta(t, 0.06, DormantHazardRate(CategoryResistor, EnvAirborneInhabitedCargo, 1.0), 1e-12)
	assert.InDelta(t, 0.2, DormantHazardRate(CategoryCapacitor, EnvSpaceFlight, 1.0), 1e-12)
	assert.Equal(t, 0.0, DormantHazardRate("vacuum_tube", EnvGroundBenign, 1.0))
}

func TestRollup(t *testing.T) {
	nodes := []*Node{
		{ID: "A", Assembly: true, Quantity: 1},
		{ID: "p1", ParentID: "A", Quantity: 2, HazardRate: 0.1},
		{ID: "p2", ParentID: "A", Quantity: 1, HazardRate: 0.3},
		{ID: "B", ParentID: "A", Assembly: true, Quantity: 2},
		{ID: "p3", ParentID: "B", Quantity: 1, HazardRate: 0.05},
	}
	summaries, err := Rollup(nodes, 100, 1e6)
	require.NoError(t, err)

	require.Contains(t, summaries, "B")
	assert.InDelta(t, 0.05, summaries["B"].HazardRate, 1e-12)

	a := summaries["A"]
	assert.InDelta(t, 0.6, a.HazardRate, 1e-12)
	assert.InDelta(t, 1e6/0.6, a.MTBF, 1e-6)
	assert.InDelta(t, math.Exp(-0.6*100/1e6), a.Reliability, 1e-12)

	percent := map[string]float64{}
	total := 0.0
	for _, c := range a.Contributions {
		percent[c.ID] = c.Percent
		total += c.Percent
	}
	assert.InDelta(t, 100.0, total, 1e-9)
	assert.InDelta(t, 50.0, percent["p2"], 1e-9)
	assert.InDelta(t, 100.0/6.0, percent["B"], 1e-9)

	t.Run("cycle", func(t *testing.T) {
		_, err := Rollup([]*Node{
			{ID: "x", ParentID: "y", Assembly: true},
			{ID: "y", ParentID: "x", Assembly: true},
		}, 100, 1e6)
		assert.ErrorIs(t, err, apperrors.ErrAssemblyCycle)
	})

	t.Run("parent is a part", func(t *testing.T) {
		_, err := Rollup([]*Node{
			{ID: "x", HazardRate: 1},
			{ID: "y", ParentID: "x", HazardRate: 1},
		}, 100, 1e6)
		assert.ErrorIs(t, err, apperrors.ErrParentNotAssembly)
	})

	assert.Equal(t, 0.0, MTBF(0, 1e6))
}
