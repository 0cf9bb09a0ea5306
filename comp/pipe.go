package comp

import (
	"math"

	"github.com/pandapipes-go/pipeflow/pit"
)

const gravity = 9.81 // m/s2

// PipeResidual implements the Darcy-Weisbach pressure-drop law for both
// liquids and gases: gas-mode density is evaluated from the fluid
// model's own ideal-gas branch at the branch's mean (p, T) state, so one
// formula covers both regimes instead of tracking a separate integrated
// compressible form (see DESIGN.md for the tradeoff).
//
//	p_from - p_to = rho*g*dh + rho*lambda(Re)*L*v*|v|/(2D) + zeta*rho*v*|v|/2
//	v = mdot / (rho * A)
func PipeResidual(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result {
	area := math.Pi * row.DiameterM * row.DiameterM / 4
	if area <= 0 {
		return Result{F: row.Mdot, DFdMdot: 1} // degenerate zero-diameter pipe: force mdot=0
	}
	relRough := (row.RoughnessMM * 1e-3) / row.DiameterM
	tMean := 0.5 * (row.TIn + row.TOut)
	dh := hTo - hFrom

	evalF := func(pFrom, pTo, mdot float64) float64 {
		pMean := 0.5 * (pFrom + pTo)
		rho := ctx.Fluid.Density(pMean, tMean)
		if rho <= 0 {
			return pFrom - pTo
		}
		v := mdot / (rho * area)
		mu := ctx.Fluid.Viscosity(pMean, tMean)
		var re float64
		if mu > 0 {
			re = rho * math.Abs(v) * row.DiameterM / mu
		}
		lambda := ctx.Friction.Lambda(re, relRough)
		frictionPa := rho * lambda * row.LengthM * v * math.Abs(v) / (2 * row.DiameterM)
		lossPa := row.LossCoeff * rho * v * math.Abs(v) / 2
		hydroPa := rho * gravity * dh
		return (pFrom - pTo) - (hydroPa+frictionPa+lossPa)/1e5
	}

	F := evalF(pFrom, pTo, row.Mdot)
	dFdMdot := centralDiffMdot(func(m float64) float64 { return evalF(pFrom, pTo, m) }, row.Mdot)

	// pressure partials are finite-differenced too: rho depends on pMean
	// for gas/linear fluids, so dF/dp isn't the constant +-1 it would be
	// for a pressure-independent density.
	const h = 1e-6
	dFdPFrom := (evalF(pFrom+h, pTo, row.Mdot) - evalF(pFrom-h, pTo, row.Mdot)) / (2 * h)
	dFdPTo := (evalF(pFrom, pTo+h, row.Mdot) - evalF(pFrom, pTo-h, row.Mdot)) / (2 * h)

	// record scratch outputs (Reynolds, lambda) at the current state for
	// the result extractor.
	pMean := 0.5 * (pFrom + pTo)
	rho := ctx.Fluid.Density(pMean, tMean)
	if rho > 0 {
		v := row.Mdot / (rho * area)
		mu := ctx.Fluid.Viscosity(pMean, tMean)
		if mu > 0 {
			row.Reynolds = rho * math.Abs(v) * row.DiameterM / mu
		}
		row.Lambda = ctx.Friction.Lambda(row.Reynolds, relRough)
	}

	return Result{F: F, DFdPFrom: dFdPFrom, DFdPTo: dFdPTo, DFdMdot: dFdMdot}
}
