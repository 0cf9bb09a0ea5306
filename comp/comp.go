// Package comp implements the per-component-kind residual and Jacobian
// contributions for branch rows, using the same tagged-dispatch
// registry pattern used for element allocation elsewhere in this
// codebase, specialised here to one momentum-equation residual per
// branch kind instead of a full finite-element contribution.
package comp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/pandapipes-go/pipeflow/fluid"
	"github.com/pandapipes-go/pipeflow/friction"
	"github.com/pandapipes-go/pipeflow/pit"
)

// Ctx carries the read-only state every branch model needs, threaded in
// from solver Options without importing the root package.
type Ctx struct {
	Fluid               fluid.Model
	Friction            friction.Model
	AmbientPressureBar  float64
	AmbientTemperatureK float64
	TolM                float64
}

// Result is the branch momentum-law residual and its analytic/semi-
// analytic partial derivatives.
type Result struct {
	F        float64
	DFdPFrom float64
	DFdPTo   float64
	DFdMdot  float64
}

// Model computes a branch's momentum-equation residual. row.Mdot is the
// current Newton iterate; pFrom/pTo and hFrom/hTo are the current node
// pressures and fixed elevations (passed explicitly since BranchRow
// doesn't own node state).
type Model func(ctx *Ctx, row *pit.BranchRow, params *pit.Params, pFrom, pTo, hFrom, hTo float64) Result

var registry = map[pit.BranchKind]Model{}

// Register adds a branch model to the factory, keyed by kind. Panics on
// duplicate registration (programmer error), mirroring ele.SetAllocator.
func Register(kind pit.BranchKind, m Model) {
	if _, ok := registry[kind]; ok {
		chk.Panic("comp: cannot register model for kind %v twice", kind)
	}
	registry[kind] = m
}

// Get returns the registered model for kind, panicking if none was
// registered: a missing kind is a programmer error, not a user error.
func Get(kind pit.BranchKind) Model {
	m, ok := registry[kind]
	if !ok {
		chk.Panic("comp: no model registered for kind %v", kind)
	}
	return m
}

func init() {
	Register(pit.KindPipe, PipeResidual)
	Register(pit.KindValve, ValveResidual)
	Register(pit.KindPump, PumpResidual)
	Register(pit.KindCompressor, CompressorResidual)
	Register(pit.KindHeatExchanger, HeatExchangerResidual)
	Register(pit.KindHeatConsumer, HeatExchangerResidual)
	Register(pit.KindFlowController, FlowControllerResidual)
	Register(pit.KindPressureController, PressureControllerResidual)
	Register(pit.KindCirculationPump, CirculationPumpResidual)
}

// centralDiffMdot computes dF/dmdot by central finite difference around
// row.Mdot, holding pFrom/pTo fixed. Used where the friction-factor
// closure's dependence on Re makes an analytic mdot-derivative
// cumbersome. Several residuals below (pipe, valve, heat exchanger)
// finite-difference their pressure partials the same way, since density
// depends on pMean for the linear/ideal-gas fluid models and an exact
// chain rule would need a dRho/dp the fluid.Model interface doesn't
// expose; residuals whose F is exactly linear in pFrom/pTo (pump,
// compressor, controllers, circulation pump) use closed-form partials.
func centralDiffMdot(f func(mdot float64) float64, mdot float64) float64 {
	h := 1e-6
	if mdot != 0 {
		h = 1e-6 * (1 + absf(mdot))
	}
	return (f(mdot+h) - f(mdot-h)) / (2 * h)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
