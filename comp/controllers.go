package comp

import "github.com/pandapipes-go/pipeflow/pit"

// FlowControllerResidual fixes mdot to its target, leaving the branch's
// own pressure drop as the free variable that balances the rest of the
// system. An inactive controller (Active == false) drops its target and
// behaves like a plain continuity link instead.
func FlowControllerResidual(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result {
	fc := params.FlowControllers[row.ExtIndex]
	if fc != nil && !fc.Active {
		return Result{F: pFrom - pTo, DFdPFrom: 1, DFdPTo: -1}
	}
	target := row.Mdot // fallback: already initialised to target by the builder
	if fc != nil {
		target = fc.TargetKgS
	}
	return Result{F: row.Mdot - target, DFdMdot: 1}
}

// PressureControllerResidual fixes the pressure at the branch's to-node
// to its target, leaving mdot as the free variable. An inactive
// controller (Active == false) drops its target and behaves like a
// plain continuity link instead.
func PressureControllerResidual(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result {
	pc := params.PressureControllers[row.ExtIndex]
	if pc != nil && !pc.Active {
		return Result{F: pFrom - pTo, DFdPFrom: 1, DFdPTo: -1}
	}
	target := pTo
	if pc != nil {
		target = pc.TargetBar
	}
	return Result{F: pTo - target, DFdPTo: 1}
}
