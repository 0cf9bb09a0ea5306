// Package extract implements the result extractor: reconstructing every
// external element's result row from the converged full pit, following the "walk the structure, write one
// output row per entity" pattern used elsewhere in this codebase,
// generalised here to the PIT's lookup tables instead of a
// finite-element mesh's cell/node arrays.
package extract

import (
	"math"

	"github.com/pandapipes-go/pipeflow/comp"
	"github.com/pandapipes-go/pipeflow/network"
	"github.com/pandapipes-go/pipeflow/pit"
)

// Populate fills net.Results from the converged full pit p. Call only
// after a successful solve; on failure the caller clears net.Results
// instead.
func Populate(net *network.Network, p *pit.PIT, ctx *comp.Ctx) {
	populateJunctions(net, p)
	populatePipes(net, p, ctx)
	populateSimpleBranch(p.Lookups.BranchRowOfValve, p, &net.Results.Valve)
	populateSimpleBranch(p.Lookups.BranchRowOfFlowController, p, &net.Results.FlowController)
	populateSimpleBranch(p.Lookups.BranchRowOfPressureController, p, &net.Results.PressureController)
	populatePumps(p.Lookups.BranchRowOfPump, p, ctx, &net.Results.Pump)
	populateCompressors(net, p, ctx)
	populateCirculationPumps(net, p, ctx)
	populateHeatExchangers(net, p, ctx)
	populateHeatConsumers(net, p, ctx)
	populateExtGrids(net, p, ctx)
}

func populateJunctions(net *network.Network, p *pit.PIT) {
	net.Results.Junction = make([]network.JunctionResult, len(net.Junctions))
	for j := range net.Junctions {
		node := p.Nodes[p.Lookups.NodeOfJunction[j]]
		if !node.Active {
			net.Results.Junction[j] = network.NaNJunctionResult()
			continue
		}
		net.Results.Junction[j] = network.JunctionResult{PBar: node.P, TK: node.T}
	}
}

func branchMeanVelocity(p *pit.PIT, row pit.BranchRow, ctx *comp.Ctx) (v, vdot, rho float64) {
	area := math.Pi * row.DiameterM * row.DiameterM / 4
	if area <= 0 {
		return 0, 0, 0
	}
	pMean := 0.5 * (p.Nodes[row.From].P + p.Nodes[row.To].P)
	tMean := 0.5 * (row.TIn + row.TOut)
	rho = ctx.Fluid.Density(pMean, tMean)
	if rho <= 0 {
		return 0, 0, rho
	}
	v = row.Mdot / (rho * area)
	vdot = v * area
	return
}

func basicBranchResult(p *pit.PIT, row pit.BranchRow, ctx *comp.Ctx) network.BranchResult {
	v, vdot, _ := branchMeanVelocity(p, row, ctx)
	return network.BranchResult{
		VMeanMPerS:  v,
		PFromBar:    p.Nodes[row.From].P,
		PToBar:      p.Nodes[row.To].P,
		TFromK:      row.TIn,
		TToK:        row.TOut,
		MdotFromKgS: row.Mdot,
		MdotToKgS:   row.Mdot,
		VdotM3S:     vdot,
	}
}

func populatePipes(net *network.Network, p *pit.PIT, ctx *comp.Ctx) {
	net.Results.Pipe = make([]network.PipeResult, len(net.Pipes))
	for i := range net.Pipes {
		rows := p.Lookups.BranchRowsOfPipe[i]
		if len(rows) == 0 || !p.Branches[rows[0]].Active {
			nan := network.NaNBranchResult()
			net.Results.Pipe[i] = network.PipeResult{BranchResult: nan, TOutletK: math.NaN(), Reynolds: math.NaN(), Lambda: math.NaN()}
			continue
		}
		first := p.Branches[rows[0]]
		last := p.Branches[rows[len(rows)-1]]

		var reSum, lamSum float64
		sections := make([]network.SectionResult, len(rows))
		for s, bi := range rows {
			br := p.Branches[bi]
			reSum += br.Reynolds
			lamSum += br.Lambda
			sections[s] = network.SectionResult{
				PFromBar: p.Nodes[br.From].P,
				PToBar:   p.Nodes[br.To].P,
				TOutletK: br.TOut,
			}
		}

		v, vdot, _ := branchMeanVelocity(p, pit.BranchRow{
			DiameterM: first.DiameterM,
			Mdot:      first.Mdot,
			From:      first.From,
			To:        last.To,
			TIn:       first.TIn,
			TOut:      last.TOut,
		}, ctx)

		res := network.PipeResult{
			BranchResult: network.BranchResult{
				VMeanMPerS:  v,
				PFromBar:    p.Nodes[first.From].P,
				PToBar:      p.Nodes[last.To].P,
				TFromK:      first.TIn,
				TToK:        last.TOut,
				MdotFromKgS: first.Mdot,
				MdotToKgS:   last.Mdot,
				VdotM3S:     vdot,
			},
			TOutletK: last.TOut,
			Reynolds: reSum / float64(len(rows)),
			Lambda:   lamSum / float64(len(rows)),
		}
		if len(rows) > 1 {
			res.Sections = sections
		}
		net.Results.Pipe[i] = res
	}
}

func populateSimpleBranch(lookup []int, p *pit.PIT, out *[]network.BranchResult) {
	results := make([]network.BranchResult, len(lookup))
	for i, bi := range lookup {
		row := p.Branches[bi]
		if !row.Active {
			results[i] = network.NaNBranchResult()
			continue
		}
		results[i] = network.BranchResult{
			VMeanMPerS:  0,
			PFromBar:    p.Nodes[row.From].P,
			PToBar:      p.Nodes[row.To].P,
			TFromK:      row.TIn,
			TToK:        row.TOut,
			MdotFromKgS: row.Mdot,
			MdotToKgS:   row.Mdot,
		}
	}
	*out = results
}

// compressionPower estimates adiabatic compression/pumping power as the
// zeroth-order hydraulic-power figure Vdot*deltaP, the same order-of-magnitude simplification the
// thermal solver's compression-heating term uses.
func compressionPower(p *pit.PIT, row pit.BranchRow, ctx *comp.Ctx) (liftBar, powerW float64) {
	liftBar = p.Nodes[row.To].P - p.Nodes[row.From].P
	_, vdot, _ := branchMeanVelocity(p, row, ctx)
	powerW = vdot * liftBar * 1e5
	return
}

// populatePumps reads the converged lift from PumpParams.LastLiftBar
// (the same value the Newton residual converged against) rather than
// recomputing it from pTo-pFrom, so the result row reflects what the
// pump's own curve actually produced.
func populatePumps(lookup []int, p *pit.PIT, ctx *comp.Ctx, out *[]network.PumpResult) {
	results := make([]network.PumpResult, len(lookup))
	for i, bi := range lookup {
		row := p.Branches[bi]
		if !row.Active {
			nan := network.NaNBranchResult()
			results[i] = network.PumpResult{BranchResult: nan, LiftBar: math.NaN(), PowerW: math.NaN()}
			continue
		}
		lift := p.Nodes[row.To].P - p.Nodes[row.From].P
		if pp := p.Params.Pumps[row.ExtIndex]; pp != nil {
			lift = pp.LastLiftBar
		}
		_, vdot, _ := branchMeanVelocity(p, row, ctx)
		results[i] = network.PumpResult{
			BranchResult: basicBranchResult(p, row, ctx),
			LiftBar:      lift,
			PowerW:       vdot * lift * 1e5,
		}
	}
	*out = results
}

func populateCompressors(net *network.Network, p *pit.PIT, ctx *comp.Ctx) {
	lookup := p.Lookups.BranchRowOfCompressor
	results := make([]network.PumpResult, len(lookup))
	for i, bi := range lookup {
		row := p.Branches[bi]
		if !row.Active {
			nan := network.NaNBranchResult()
			results[i] = network.PumpResult{BranchResult: nan, LiftBar: math.NaN(), PowerW: math.NaN()}
			continue
		}
		lift, power := compressionPower(p, row, ctx)
		results[i] = network.PumpResult{
			BranchResult: basicBranchResult(p, row, ctx),
			LiftBar:      lift,
			PowerW:       power,
		}
	}
	net.Results.Compressor = results
}

func populateCirculationPumps(net *network.Network, p *pit.PIT, ctx *comp.Ctx) {
	lookup := p.Lookups.BranchRowOfCirculationPump
	results := make([]network.PumpResult, len(lookup))
	for i, bi := range lookup {
		row := p.Branches[bi]
		if !row.Active {
			nan := network.NaNBranchResult()
			results[i] = network.PumpResult{BranchResult: nan, LiftBar: math.NaN(), PowerW: math.NaN()}
			continue
		}
		lift, power := compressionPower(p, row, ctx)
		results[i] = network.PumpResult{
			BranchResult: basicBranchResult(p, row, ctx),
			LiftBar:      lift,
			PowerW:       power,
		}
	}
	net.Results.CirculationPump = results
}

func heatResult(p *pit.PIT, row pit.BranchRow, ctx *comp.Ctx, setpointW float64) network.HeatResult {
	if !row.Active {
		nan := network.NaNBranchResult()
		return network.HeatResult{BranchResult: nan, QTransferredW: math.NaN(), QSetpointW: math.NaN()}
	}
	tMean := 0.5 * (row.TIn + row.TOut)
	cp := ctx.Fluid.HeatCapacity(p.Nodes[row.From].P, tMean)
	actual := row.Mdot * cp * (row.TOut - row.TIn)
	return network.HeatResult{
		BranchResult:  basicBranchResult(p, row, ctx),
		QTransferredW: actual,
		QSetpointW:    setpointW,
	}
}

func populateHeatExchangers(net *network.Network, p *pit.PIT, ctx *comp.Ctx) {
	lookup := p.Lookups.BranchRowOfHeatExchanger
	results := make([]network.HeatResult, len(lookup))
	for i, bi := range lookup {
		setpoint := 0.0
		if hp := p.Params.HeatExchangers[i]; hp != nil {
			setpoint = hp.QSetpointW
		}
		results[i] = heatResult(p, p.Branches[bi], ctx, setpoint)
	}
	net.Results.HeatExchanger = results
}

func populateHeatConsumers(net *network.Network, p *pit.PIT, ctx *comp.Ctx) {
	lookup := p.Lookups.BranchRowOfHeatConsumer
	results := make([]network.HeatResult, len(lookup))
	for i, bi := range lookup {
		setpoint := 0.0
		if hp := p.Params.HeatConsumers[i]; hp != nil {
			setpoint = hp.QSetpointW
		}
		results[i] = heatResult(p, p.Branches[bi], ctx, setpoint)
	}
	net.Results.HeatConsumer = results
}

// populateExtGrids computes the slack mass flow and heat duty at each
// ext-grid junction: the flow an active slack node must supply equals
// what it would otherwise have needed to balance as a free node
// (outflow minus inflow minus external injection).
func populateExtGrids(net *network.Network, p *pit.PIT, ctx *comp.Ctx) {
	results := make([]network.ExtGridResult, len(net.ExtGrids))
	for i, eg := range net.ExtGrids {
		n := p.Lookups.NodeOfJunction[eg.Junction]
		node := p.Nodes[n]
		if !eg.InService || !node.Active {
			results[i] = network.ExtGridResult{MdotKgS: math.NaN(), QKW: math.NaN()}
			continue
		}
		supplied := node.InjectMdot
		for _, b := range p.Branches {
			if !b.Active {
				continue
			}
			if b.From == n {
				supplied -= b.Mdot
			}
			if b.To == n {
				supplied += b.Mdot
			}
		}
		supplied = -supplied
		cp := ctx.Fluid.HeatCapacity(node.P, node.T)
		qkw := supplied * cp * (node.T - ctx.AmbientTemperatureK) / 1000
		results[i] = network.ExtGridResult{MdotKgS: supplied, QKW: qkw}
	}
	net.Results.ExtGrid = results
}
