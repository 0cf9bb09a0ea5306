package fluid

import (
	"github.com/cpmech/gosl/fun"
)

// Polynomial implements a fluid whose density is a polynomial in
// temperature, coefficients stored lowest-degree-first (the same
// coefficients-plus-degree storage convention used for pump curves,
// reused here for the fluid library's polynomial variant). Viscosity
// and heat capacity are likewise polynomials in T.
type Polynomial struct {
	Nm       string
	Gas      bool
	Mm       float64
	RhoCoefs []float64
	MuCoefs  []float64
	CpCoefs  []float64
}

func newPolynomial(prms fun.Params) (Model, error) {
	o := new(Polynomial)
	rho := map[int]float64{}
	mu := map[int]float64{}
	cp := map[int]float64{}
	for _, p := range prms {
		switch p.N {
		case "gas":
			o.Gas = p.V > 0
		case "mm":
			o.Mm = p.V
		default:
			kind, idx, ok := parseIndexedKey(p.N)
			if !ok {
				continue
			}
			switch kind {
			case "rhoc":
				rho[idx] = p.V
			case "muc":
				mu[idx] = p.V
			case "cpc":
				cp[idx] = p.V
			}
		}
	}
	o.RhoCoefs = coefSlice(rho)
	o.MuCoefs = coefSlice(mu)
	o.CpCoefs = coefSlice(cp)
	return o, nil
}

func coefSlice(m map[int]float64) []float64 {
	if len(m) == 0 {
		return nil
	}
	maxIdx := 0
	for i := range m {
		if i > maxIdx {
			maxIdx = i
		}
	}
	out := make([]float64, maxIdx+1)
	for i, v := range m {
		out[i] = v
	}
	return out
}

func (o *Polynomial) SetName(n string) { o.Nm = n }
func (o *Polynomial) Name() string     { return o.Nm }
func (o *Polynomial) GasMode() bool    { return o.Gas }

func evalPoly(coefs []float64, x float64) float64 {
	var y, xn float64
	xn = 1
	for _, c := range coefs {
		y += c * xn
		xn *= x
	}
	return y
}

func (o *Polynomial) Density(p, T float64) float64      { return evalPoly(o.RhoCoefs, T) }
func (o *Polynomial) Viscosity(p, T float64) float64    { return evalPoly(o.MuCoefs, T) }
func (o *Polynomial) HeatCapacity(p, T float64) float64 { return evalPoly(o.CpCoefs, T) }
func (o *Polynomial) MolarMass() float64                { return o.Mm }
func (o *Polynomial) Compressibility(p, T float64) float64 {
	return 1
}
