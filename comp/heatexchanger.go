package comp

import (
	"math"

	"github.com/pandapipes-go/pipeflow/pit"
)

// HeatExchangerResidual implements the heat exchanger / heat consumer
// hydraulic contract. The heat-injection term (qext_w) is applied entirely in
// the thermal solver; this function only produces the
// momentum-equation residual, shared by both kinds since heat consumers
// are hydraulically identical to heat exchangers.
func HeatExchangerResidual(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result {
	area := math.Pi * row.DiameterM * row.DiameterM / 4
	if area <= 0 || row.LossCoeff == 0 {
		return Result{F: pFrom - pTo, DFdPFrom: 1, DFdPTo: -1}
	}
	tMean := 0.5 * (row.TIn + row.TOut)
	evalF := func(pFrom, pTo, mdot float64) float64 {
		pMean := 0.5 * (pFrom + pTo)
		rho := ctx.Fluid.Density(pMean, tMean)
		if rho <= 0 {
			return pFrom - pTo
		}
		v := mdot / (rho * area)
		lossPa := row.LossCoeff * rho * v * math.Abs(v) / 2
		return (pFrom - pTo) - lossPa/1e5
	}
	F := evalF(pFrom, pTo, row.Mdot)
	dFdMdot := centralDiffMdot(func(m float64) float64 { return evalF(pFrom, pTo, m) }, row.Mdot)
	// pressure partials are finite-differenced too: rho depends on pMean.
	const h = 1e-6
	dFdPFrom := (evalF(pFrom+h, pTo, row.Mdot) - evalF(pFrom-h, pTo, row.Mdot)) / (2 * h)
	dFdPTo := (evalF(pFrom, pTo+h, row.Mdot) - evalF(pFrom, pTo-h, row.Mdot)) / (2 * h)
	return Result{F: F, DFdPFrom: dFdPFrom, DFdPTo: dFdPTo, DFdMdot: dFdMdot}
}
