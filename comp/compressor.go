package comp

import "github.com/pandapipes-go/pipeflow/pit"

// CompressorResidual implements the compressor pressure-ratio law:
// p_to + p_amb = (p_from + p_amb)*ratio when mdot > 0, else p_to =
// p_from. p_amb is threaded from solver options. Unlike the friction-law
// branch kinds, F here is exactly linear in pFrom/pTo, so the pressure
// partials are closed-form rather than finite-differenced.
func CompressorResidual(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result {
	cp := params.Compressors[row.ExtIndex]
	ratio := 1.0
	if cp != nil {
		ratio = cp.PressureRatio
	}
	pAmb := ctx.AmbientPressureBar

	eval := func(pFrom, pTo, mdot float64) float64 {
		if mdot > 0 {
			return (pTo + pAmb) - (pFrom+pAmb)*ratio
		}
		return pTo - pFrom
	}

	F := eval(pFrom, pTo, row.Mdot)
	dFdMdot := centralDiffMdot(func(m float64) float64 { return eval(pFrom, pTo, m) }, row.Mdot)

	dFdPFrom, dFdPTo := -ratio, 1.0
	if row.Mdot <= 0 {
		dFdPFrom = -1
	}
	return Result{F: F, DFdPFrom: dFdPFrom, DFdPTo: dFdPTo, DFdMdot: dFdMdot}
}
