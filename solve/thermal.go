package solve

import (
	"math"

	"github.com/pandapipes-go/pipeflow/comp"
	"github.com/pandapipes-go/pipeflow/errs"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/pandapipes-go/pipeflow/reduce"
)

// Thermal solves the nodal mixing-temperature / branch outlet-temperature
// system by repeated sweeps: each sweep recomputes every
// branch's outlet temperature from its current upstream node (flow
// direction taken from the sign of the already-converged mdot), then
// recomputes every non-T-fixed node's temperature as the flow-weighted
// mean of its inbound branches. This is the "iterate to a fixed point"
// strategy the thermal spec calls for on cyclic networks; on an acyclic
// (purely radial) network it also happens to converge in at most the
// graph's longest directed path length, which subsumes a topological
// pass without needing a separate acyclic code path.
func Thermal(active *reduce.Active, params *pit.Params, ctx *comp.Ctx, opts ThermalOptions) (ThermalReport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = nullLogger{}
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = 50
	}

	n := len(active.Nodes)
	report := ThermalReport{}

	for iter := 0; iter < maxIter; iter++ {
		maxDelta := 0.0
		sumWeight := make([]float64, n)
		sumWT := make([]float64, n)

		for bi := range active.Branches {
			row := &active.Branches[bi]
			effFrom, effTo := row.From, row.To
			mdot := row.Mdot
			if mdot < 0 {
				effFrom, effTo = row.To, row.From
				mdot = -mdot
			}
			tIn := active.Nodes[effFrom].T

			if mdot < opts.TolM {
				if opts.Strict {
					return report, errs.ThermalSingularity("pipeflow: branch %s[%d] has |mdot|=%.3e below tol_m=%.3e", row.TableID, row.ExtIndex, mdot, opts.TolM)
				}
				logger.Warnf("pipeflow: branch %s[%d] thermally inactive (|mdot|=%.3e < tol_m)", row.TableID, row.ExtIndex, mdot)
				row.ThermallyActive = false
				row.TIn = tIn
				row.TOut = tIn
				continue
			}

			cp := ctx.Fluid.HeatCapacity(active.Nodes[effFrom].P, tIn)
			newOut := thermalOutlet(row, params, ctx, effFrom, tIn, mdot, cp, active)

			delta := math.Abs(newOut - row.TOut)
			if delta > maxDelta {
				maxDelta = delta
			}
			row.TIn = tIn
			row.TOut = newOut
			row.ThermallyActive = true

			w := mdot * cp
			sumWeight[effTo] += w
			sumWT[effTo] += w * newOut
		}

		for _, src := range active.Sources {
			node := active.Nodes[src.NodeIdx]
			if node.Kind == pit.NodeTFixed || node.Kind == pit.NodePTFixed {
				continue
			}
			cp := ctx.Fluid.HeatCapacity(node.P, src.TK)
			if cp <= 0 {
				continue
			}
			w := src.MdotKgS * cp
			sumWeight[src.NodeIdx] += w
			sumWT[src.NodeIdx] += w * src.TK
		}

		for i := range active.Nodes {
			node := &active.Nodes[i]
			if node.Kind == pit.NodeTFixed || node.Kind == pit.NodePTFixed {
				continue
			}
			if sumWeight[i] <= 0 {
				continue
			}
			newT := sumWT[i] / sumWeight[i]
			if delta := math.Abs(newT - node.T); delta > maxDelta {
				maxDelta = delta
			}
			node.T = newT
		}

		report.Iterations = iter + 1
		report.TNorm = maxDelta
		logger.Infof("pipeflow: thermal iter %d: dT=%.3e", iter, maxDelta)

		if maxDelta < opts.TolT {
			report.Converged = true
			break
		}
	}

	return report, nil
}

// thermalOutlet computes one branch's outlet temperature given its
// resolved upstream node.
func thermalOutlet(row *pit.BranchRow, params *pit.Params, ctx *comp.Ctx, effFrom int, tIn, mdot, cp float64, active *reduce.Active) float64 {
	switch row.Kind {
	case pit.KindPipe:
		if row.UWPerM2K <= 0 || row.DiameterM <= 0 || cp <= 0 {
			return tIn
		}
		perimeter := math.Pi * row.DiameterM
		exponent := -row.UWPerM2K * perimeter * row.LengthM / (mdot * cp)
		return row.TAmbientK + (tIn-row.TAmbientK)*math.Exp(exponent)

	case pit.KindPump, pit.KindCompressor:
		return tIn + compressionHeating(row, ctx, active, effFrom, tIn, cp)

	case pit.KindCirculationPump:
		cpParams := params.CirculationPumps[row.ExtIndex]
		if cpParams != nil && cpParams.MassMode {
			return cpParams.TFlowK
		}
		return tIn + compressionHeating(row, ctx, active, effFrom, tIn, cp)

	case pit.KindHeatExchanger:
		hp := params.HeatExchangers[row.ExtIndex]
		if hp == nil || cp <= 0 {
			return tIn
		}
		return tIn + hp.QSetpointW/(mdot*cp)

	case pit.KindHeatConsumer:
		hp := params.HeatConsumers[row.ExtIndex]
		if hp == nil {
			return tIn
		}
		if hp.DeltaTSetK != 0 {
			return tIn - hp.DeltaTSetK
		}
		if cp <= 0 {
			return tIn
		}
		return tIn + hp.QSetpointW/(mdot*cp)

	default: // valve, flow controller, pressure controller: no temperature adaptation
		return tIn
	}
}

// compressionHeating estimates the adiabatic temperature rise across a
// pressure lift, via dT = dp / (rho*cp), the same order-of-magnitude
// estimate used for the extractor's compression-power figure.
func compressionHeating(row *pit.BranchRow, ctx *comp.Ctx, active *reduce.Active, effFrom int, tIn, cp float64) float64 {
	dpBar := active.Nodes[row.To].P - active.Nodes[row.From].P
	if dpBar <= 0 || cp <= 0 {
		return 0
	}
	rho := ctx.Fluid.Density(active.Nodes[effFrom].P, tIn)
	if rho <= 0 {
		return 0
	}
	return dpBar * 1e5 / (rho * cp)
}
