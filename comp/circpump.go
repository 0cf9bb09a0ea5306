package comp

import "github.com/pandapipes-go/pipeflow/pit"

// CirculationPumpResidual implements the two circulation-pump variants:
// mass mode fixes mdot like a flow controller (the thermal solver pins
// its outlet temperature to CirculationPumpParams.TFlowK); pressure mode
// imposes a fixed pressure lift like a constant-lift pump.
func CirculationPumpResidual(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result {
	cp := params.CirculationPumps[row.ExtIndex]
	if cp == nil || !cp.MassMode {
		lift := 0.0
		if cp != nil {
			lift = cp.LiftBar
		}
		return Result{F: (pTo - pFrom) - lift, DFdPFrom: -1, DFdPTo: 1}
	}
	return Result{F: row.Mdot - cp.MdotKgS, DFdMdot: 1}
}
