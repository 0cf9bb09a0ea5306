// Package pipeflow is the public entry point of the solver: it wires the
// PIT builder, connectivity check, reducer, hydraulic Newton solver,
// thermal solver, and result extractor behind one Pipeflow(net, options) call.
// Options follows the same JSON-tagged, flat-struct convention used for
// solver configuration elsewhere in this codebase.
package pipeflow

// Mode selects which physics the solve covers.
type Mode string

const (
	ModeHydraulics   Mode = "hydraulics"
	ModeHeat         Mode = "heat"
	ModeSequential   Mode = "sequential"
	ModeBidirectional Mode = "bidirectional"
)

// FrictionModel selects the Darcy friction-factor closure.
type FrictionModel string

const (
	FrictionNikuradse   FrictionModel = "nikuradse"
	FrictionSwameeJain  FrictionModel = "swamee_jain"
	FrictionColebrook   FrictionModel = "colebrook"
)

// NonlinearMethod selects the damping/globalization strategy for the
// Newton step.
type NonlinearMethod string

const (
	NonlinearAutomatic NonlinearMethod = "automatic"
	NonlinearConstant  NonlinearMethod = "constant"
)

// Options holds everything pipeflow(net, options) recognizes.
type Options struct {
	Mode         Mode          `json:"mode"`
	Friction     FrictionModel `json:"friction_model"`
	Nonlinear    NonlinearMethod `json:"nonlinear_method"`

	MaxIterHydraulic int `json:"max_iter_hydraulic"`
	MaxIterThermal   int `json:"max_iter_thermal"`
	MaxIterColebrook int `json:"max_iter_colebrook"`

	TolP   float64 `json:"tol_p"`
	TolM   float64 `json:"tol_m"`
	TolRes float64 `json:"tol_res"`
	TolT   float64 `json:"tol_t"`

	CheckConnectivity       bool `json:"check_connectivity"`
	ReuseInternalData       bool `json:"reuse_internal_data"`
	OnlyUpdateHydraulicMat  bool `json:"only_update_hydraulic_matrix"`
	UseNumericalAccel       bool `json:"use_numerical_acceleration"`

	AmbientTemperatureK float64 `json:"ambient_temperature"`
	AmbientPressureBar  float64 `json:"ambient_pressure"`

	// StrictThermalSingularity opts into ThermalSingularity errors instead
	// of the default warn-and-skip policy.
	StrictThermalSingularity bool `json:"strict_thermal_singularity"`

	// NominalMdotKgS is the flat-start mass-flow guess.
	NominalMdotKgS float64 `json:"nominal_mdot_kg_per_s"`

	Logger Logger `json:"-"`
}

// SetDefault fills unset (zero-value) fields with the solver's defaults.
func (o *Options) SetDefault() {
	if o.Mode == "" {
		o.Mode = ModeSequential
	}
	if o.Friction == "" {
		o.Friction = FrictionNikuradse
	}
	if o.Nonlinear == "" {
		o.Nonlinear = NonlinearAutomatic
	}
	if o.MaxIterHydraulic == 0 {
		o.MaxIterHydraulic = 50
	}
	if o.MaxIterThermal == 0 {
		o.MaxIterThermal = 50
	}
	if o.MaxIterColebrook == 0 {
		o.MaxIterColebrook = 30
	}
	if o.TolP == 0 {
		o.TolP = 1e-4
	}
	if o.TolM == 0 {
		o.TolM = 1e-8
	}
	if o.TolRes == 0 {
		o.TolRes = 1e-6
	}
	if o.TolT == 0 {
		o.TolT = 1e-3
	}
	if o.AmbientTemperatureK == 0 {
		o.AmbientTemperatureK = 293.15
	}
	if o.AmbientPressureBar == 0 {
		o.AmbientPressureBar = 1.01325
	}
	if o.NominalMdotKgS == 0 {
		o.NominalMdotKgS = 0.1
	}
	if o.Logger == nil {
		o.Logger = NewStdLogger()
	}
	// CheckConnectivity is left as given: its zero value (false) cannot be
	// told apart from "unset", so SetDefault does not turn it on.
	// NewOptions does.
}

// NewOptions returns Options with every recognized default applied.
// Equivalent to `var o Options; o.SetDefault(); o.CheckConnectivity = true`.
func NewOptions() *Options {
	o := &Options{CheckConnectivity: true}
	o.SetDefault()
	return o
}
