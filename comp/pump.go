package comp

import "github.com/pandapipes-go/pipeflow/pit"

// PumpResidual implements a polynomial-regression pump curve: lift is
// f(v) clipped to >= 0, and 0 on reverse flow. Coefficients are
// lowest-degree-first in volumetric flow v [m3/s].
func PumpResidual(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result {
	pp := params.Pumps[row.ExtIndex]
	tMean := 0.5 * (row.TIn + row.TOut)
	pMean := 0.5 * (pFrom + pTo)
	rho := ctx.Fluid.Density(pMean, tMean)

	lift := func(mdot float64) float64 {
		if rho <= 0 {
			return 0
		}
		v := mdot / rho
		if v < 0 || (pp != nil && pp.VMaxM3S > 0 && v > pp.VMaxM3S) {
			return 0
		}
		var coefs []float64
		if pp != nil {
			coefs = pp.PolyCoefs
		}
		l := evalPumpPoly(coefs, v)
		if l < 0 {
			l = 0
		}
		return l
	}

	l := lift(row.Mdot)
	if pp != nil {
		pp.LastLiftBar = l
	}

	F := (pTo - pFrom) - l
	dFdMdot := centralDiffMdot(func(m float64) float64 { return (pTo - pFrom) - lift(m) }, row.Mdot)
	return Result{F: F, DFdPFrom: -1, DFdPTo: 1, DFdMdot: dFdMdot}
}

func evalPumpPoly(coefs []float64, v float64) float64 {
	var y, vn float64
	vn = 1
	for _, c := range coefs {
		y += c * vn
		vn *= v
	}
	return y
}
