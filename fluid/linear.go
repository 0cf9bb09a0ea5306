package fluid

import "github.com/cpmech/gosl/fun"

// Linear implements a fluid whose density varies linearly with pressure
// (and, for gases, is computed from the ideal-gas law instead - see
// GasMode) while viscosity and heat capacity are taken as constants.
//
//	R(p) = R0 + C*(p - p0)      dR/dp = C
type Linear struct {
	Nm  string
	Gas bool
	R0  float64 // density at reference pressure P0 [kg/m3]
	P0  float64 // reference pressure [bar]
	C   float64 // compressibility coefficient [kg/(m3.bar)]
	Mu  float64 // [Pa.s]
	Cp  float64 // [J/(kg.K)]
	Mm  float64 // [kg/mol]
}

func newLinear(prms fun.Params) (Model, error) {
	o := new(Linear)
	for _, p := range prms {
		switch p.N {
		case "gas":
			o.Gas = p.V > 0
		case "r0":
			o.R0 = p.V
		case "p0":
			o.P0 = p.V
		case "c":
			o.C = p.V
		case "mu":
			o.Mu = p.V
		case "cp":
			o.Cp = p.V
		case "mm":
			o.Mm = p.V
		}
	}
	return o, nil
}

func (o *Linear) SetName(n string) { o.Nm = n }
func (o *Linear) Name() string     { return o.Nm }
func (o *Linear) GasMode() bool    { return o.Gas }

func (o *Linear) Density(p, T float64) float64 {
	if o.Gas {
		// ideal gas: rho = p*M/(R*T); p in bar -> Pa via 1e5
		const Rgas = 8.314462618
		return (p * 1e5 * o.Mm) / (Rgas * T)
	}
	return o.R0 + o.C*(p-o.P0)
}

func (o *Linear) Viscosity(p, T float64) float64       { return o.Mu }
func (o *Linear) HeatCapacity(p, T float64) float64    { return o.Cp }
func (o *Linear) MolarMass() float64                   { return o.Mm }
func (o *Linear) Compressibility(p, T float64) float64 { return 1 }
