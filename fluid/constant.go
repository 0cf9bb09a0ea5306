package fluid

import "github.com/cpmech/gosl/fun"

// Constant implements a fluid with properties independent of p and T,
// using the same flat-parameter Init pattern as the other fluid models,
// specialised to the degenerate (no p,T dependence) case.
type Constant struct {
	Nm  string
	Gas bool
	Rho float64 // [kg/m3]
	Mu  float64 // [Pa.s]
	Cp  float64 // [J/(kg.K)]
	Mm  float64 // [kg/mol]
	Z   float64 // compressibility factor, 1 for ideal-gas liquids
}

func newConstant(prms fun.Params) (Model, error) {
	o := &Constant{Z: 1}
	for _, p := range prms {
		switch p.N {
		case "gas":
			o.Gas = p.V > 0
		case "rho":
			o.Rho = p.V
		case "mu":
			o.Mu = p.V
		case "cp":
			o.Cp = p.V
		case "mm":
			o.Mm = p.V
		case "z":
			o.Z = p.V
		}
	}
	return o, nil
}

func (o *Constant) SetName(n string)                     { o.Nm = n }
func (o *Constant) Name() string                         { return o.Nm }
func (o *Constant) GasMode() bool                        { return o.Gas }
func (o *Constant) Density(p, T float64) float64         { return o.Rho }
func (o *Constant) Viscosity(p, T float64) float64       { return o.Mu }
func (o *Constant) HeatCapacity(p, T float64) float64    { return o.Cp }
func (o *Constant) MolarMass() float64                   { return o.Mm }
func (o *Constant) Compressibility(p, T float64) float64 { return o.Z }
