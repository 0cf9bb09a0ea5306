package fluid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Table implements a fluid whose properties are given at discrete
// temperature points and linearly interpolated in between (properties are
// assumed weakly pressure-dependent and are looked up by T alone, the
// common simplification for liquid/gas property tables in district
// heating networks), using the same flat-parameter construction idiom
// as the other fluid models, generalised to tabulated rather than
// closed-form data.
type Table struct {
	Nm   string
	Gas  bool
	Mm   float64
	Ts   []float64 // [n] sorted temperatures [K]
	Rhos []float64 // [n] density [kg/m3]
	Mus  []float64 // [n] viscosity [Pa.s]
	Cps  []float64 // [n] heat capacity [J/(kg.K)]
}

// newTable builds a Table fluid from fun.Params carrying parallel arrays
// encoded as repeated {t_i, rho_i, mu_i, cp_i} quadruples tagged by index,
// e.g. N="t0",V=293.15, N="rho0",V=998.2, ...
func newTable(prms fun.Params) (Model, error) {
	o := new(Table)
	byIdx := map[int]*[4]float64{}
	seen := map[int]uint8{}
	get := func(i int) *[4]float64 {
		if a, ok := byIdx[i]; ok {
			return a
		}
		a := new([4]float64)
		byIdx[i] = a
		return a
	}
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
			a := get(idx)
			switch kind {
			case "t":
				a[0] = p.V
				seen[idx] |= 1
			case "rho":
				a[1] = p.V
				seen[idx] |= 2
			case "mu":
				a[2] = p.V
				seen[idx] |= 4
			case "cp":
				a[3] = p.V
				seen[idx] |= 8
			}
		}
	}
	if len(byIdx) == 0 {
		return nil, chk.Err("fluid: table model requires at least one t_i/rho_i/mu_i/cp_i point")
	}
	idxs := make([]int, 0, len(byIdx))
	for i := range byIdx {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	for _, i := range idxs {
		a := byIdx[i]
		o.Ts = append(o.Ts, a[0])
		o.Rhos = append(o.Rhos, a[1])
		o.Mus = append(o.Mus, a[2])
		o.Cps = append(o.Cps, a[3])
	}
	for k := 1; k < len(o.Ts); k++ {
		if o.Ts[k] <= o.Ts[k-1] {
			return nil, chk.Err("fluid: table model temperature points must be strictly increasing")
		}
	}
	return o, nil
}

func (o *Table) SetName(n string) { o.Nm = n }
func (o *Table) Name() string     { return o.Nm }
func (o *Table) GasMode() bool    { return o.Gas }

func (o *Table) Density(p, T float64) float64      { return o.lookup(T, o.Rhos) }
func (o *Table) Viscosity(p, T float64) float64    { return o.lookup(T, o.Mus) }
func (o *Table) HeatCapacity(p, T float64) float64 { return o.lookup(T, o.Cps) }
func (o *Table) MolarMass() float64                { return o.Mm }
func (o *Table) Compressibility(p, T float64) float64 {
	return 1
}

// lookup performs piecewise-linear interpolation, clamping outside the
// tabulated range rather than extrapolating.
func (o *Table) lookup(T float64, ys []float64) float64 {
	n := len(o.Ts)
	if n == 0 {
		return 0
	}
	if n == 1 || T <= o.Ts[0] {
		return ys[0]
	}
	if T >= o.Ts[n-1] {
		return ys[n-1]
	}
	i := sort.SearchFloat64s(o.Ts, T)
	if o.Ts[i] == T {
		return ys[i]
	}
	lo, hi := i-1, i
	frac := (T - o.Ts[lo]) / (o.Ts[hi] - o.Ts[lo])
	return ys[lo] + frac*(ys[hi]-ys[lo])
}
