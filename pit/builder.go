package pit

import (
	"github.com/pandapipes-go/pipeflow/errs"
	"github.com/pandapipes-go/pipeflow/network"
)

// BuildOptions carries the subset of solver options the builder needs.
type BuildOptions struct {
	NominalMdotKgS float64
	ReusePrevious  bool
	Previous       *PIT // non-nil only when ReusePrevious && a prior solve succeeded
}

// Build translates net's element tables into a PIT.
func Build(net *network.Network, bo BuildOptions) (*PIT, error) {
	if len(net.Junctions) == 0 {
		return &PIT{Params: newParams()}, nil
	}

	p := &PIT{Params: newParams()}

	// 1. one NodePIT row per external junction, in order.
	p.Lookups.NodeOfJunction = make([]int, len(net.Junctions))
	for j, jct := range net.Junctions {
		row := NodeRow{
			TableID:  "junction",
			ExtIndex: j,
			P:        jct.PnBar,
			PInit:    jct.PnBar,
			HeightM:  jct.HeightM,
			T:        jct.TnK,
			TInit:    jct.TnK,
			TExtK:    jct.TnK,
			Kind:     NodeFree,
			Active:   jct.InService,
		}
		p.Lookups.NodeOfJunction[j] = len(p.Nodes)
		p.Nodes = append(p.Nodes, row)
	}

	checkJunction := func(idx int, elemKind string, elemIdx int) error {
		if idx < 0 || idx >= len(net.Junctions) {
			return errs.InvalidTopology("pit: %s[%d] references non-existent junction %d", elemKind, elemIdx, idx)
		}
		return nil
	}

	// 2. pipes (exploded into sections + internal nodes), grouped first
	//    among branches.
	p.Lookups.BranchRowsOfPipe = make([][]int, len(net.Pipes))
	p.Lookups.InternalNodesOfPipe = make([][]int, len(net.Pipes))
	for i, pipe := range net.Pipes {
		if err := checkJunction(pipe.FromJct, "pipe", i); err != nil {
			return nil, err
		}
		if err := checkJunction(pipe.ToJct, "pipe", i); err != nil {
			return nil, err
		}
		sections := pipe.Sections
		if sections < 1 {
			sections = 1
		}
		fromNode := p.Lookups.NodeOfJunction[pipe.FromJct]
		toNode := p.Lookups.NodeOfJunction[pipe.ToJct]

		var internalNodes []int
		for s := 0; s < sections-1; s++ {
			jct := net.Junctions[pipe.FromJct]
			internalRow := NodeRow{
				TableID:  "pipe_internal",
				ExtIndex: -1,
				P:        jct.PnBar,
				PInit:    jct.PnBar,
				HeightM:  lerp(net.Junctions[pipe.FromJct].HeightM, net.Junctions[pipe.ToJct].HeightM, float64(s+1)/float64(sections)),
				T:        jct.TnK,
				TInit:    jct.TnK,
				TExtK:    jct.TnK,
				Kind:     NodeFree,
				Active:   pipe.InService,
			}
			idx := len(p.Nodes)
			p.Nodes = append(p.Nodes, internalRow)
			internalNodes = append(internalNodes, idx)
		}
		p.Lookups.InternalNodesOfPipe[i] = internalNodes

		chain := append([]int{fromNode}, internalNodes...)
		chain = append(chain, toNode)

		lengthPerSection := pipe.LengthM / float64(sections)
		uw := pipe.UWPerM2K
		if !pipe.AdaptTemp {
			uw = 0
		}
		var rows []int
		for s := 0; s < sections; s++ {
			row := BranchRow{
				TableID:     "pipe",
				ExtIndex:    i,
				SectionIdx:  s,
				Kind:        KindPipe,
				From:        chain[s],
				To:          chain[s+1],
				Mdot:        bo.NominalMdotKgS,
				MdotInit:    bo.NominalMdotKgS,
				LengthM:     lengthPerSection,
				DiameterM:   pipe.DiameterM,
				RoughnessMM: pipe.RoughnessMM,
				LossCoeff:   pipe.LossCoeff,
				UWPerM2K:    uw,
				TAmbientK:   pipe.TAmbientK,
				TIn:         net.Junctions[pipe.FromJct].TnK,
				TOut:        net.Junctions[pipe.FromJct].TnK,
				Active:      pipe.InService,
				ThermallyActive: pipe.InService,
			}
			bidx := len(p.Branches)
			p.Branches = append(p.Branches, row)
			rows = append(rows, bidx)
		}
		p.Lookups.BranchRowsOfPipe[i] = rows
	}

	// 3. remaining branch kinds, each contiguous, one row per element.
	addSimple := func(from, to int, elemKind string, elemIdx int, kind BranchKind, tableID string, mdotGuess float64) (int, error) {
		if err := checkJunction(from, elemKind, elemIdx); err != nil {
			return 0, err
		}
		if err := checkJunction(to, elemKind, elemIdx); err != nil {
			return 0, err
		}
		row := BranchRow{
			TableID:  tableID,
			ExtIndex: elemIdx,
			Kind:     kind,
			From:     p.Lookups.NodeOfJunction[from],
			To:       p.Lookups.NodeOfJunction[to],
			Mdot:     mdotGuess,
			MdotInit: mdotGuess,
			TIn:      net.Junctions[from].TnK,
			TOut:     net.Junctions[from].TnK,
			Active:   true,
			ThermallyActive: true,
		}
		idx := len(p.Branches)
		p.Branches = append(p.Branches, row)
		return idx, nil
	}

	p.Lookups.BranchRowOfValve = make([]int, len(net.Valves))
	for i, v := range net.Valves {
		idx, err := addSimple(v.FromJct, v.ToJct, "valve", i, KindValve, "valve", bo.NominalMdotKgS)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = v.InService && v.Opened
		p.Branches[idx].DiameterM = v.DiameterM
		p.Branches[idx].LossCoeff = v.LossCoeff
		p.Lookups.BranchRowOfValve[i] = idx
	}

	p.Lookups.BranchRowOfPump = make([]int, len(net.Pumps))
	for i, pu := range net.Pumps {
		idx, err := addSimple(pu.FromJct, pu.ToJct, "pump", i, KindPump, "pump", bo.NominalMdotKgS)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = pu.InService
		p.Lookups.BranchRowOfPump[i] = idx
		p.Params.Pumps[i] = &PumpParams{PolyCoefs: pu.PolyCoefs, VMaxM3S: pu.VMaxM3S}
	}

	p.Lookups.BranchRowOfCompressor = make([]int, len(net.Compressors))
	for i, c := range net.Compressors {
		idx, err := addSimple(c.FromJct, c.ToJct, "compressor", i, KindCompressor, "compressor", bo.NominalMdotKgS)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = c.InService
		p.Lookups.BranchRowOfCompressor[i] = idx
		p.Params.Compressors[i] = &CompressorParams{PressureRatio: c.PressureRatio}
	}

	p.Lookups.BranchRowOfHeatExchanger = make([]int, len(net.HeatExchangers))
	for i, h := range net.HeatExchangers {
		idx, err := addSimple(h.FromJct, h.ToJct, "heat_exchanger", i, KindHeatExchanger, "heat_exchanger", bo.NominalMdotKgS)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = h.InService
		p.Branches[idx].DiameterM = h.DiameterM
		p.Branches[idx].LossCoeff = h.LossCoeff
		p.Lookups.BranchRowOfHeatExchanger[i] = idx
		p.Params.HeatExchangers[i] = &HeatParams{QExtW: h.QExtW, QSetpointW: h.QExtW}
	}

	p.Lookups.BranchRowOfHeatConsumer = make([]int, len(net.HeatConsumers))
	for i, h := range net.HeatConsumers {
		idx, err := addSimple(h.FromJct, h.ToJct, "heat_consumer", i, KindHeatConsumer, "heat_consumer", bo.NominalMdotKgS)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = h.InService
		p.Branches[idx].DiameterM = h.DiameterM
		p.Branches[idx].LossCoeff = h.LossCoeff
		p.Lookups.BranchRowOfHeatConsumer[i] = idx
		// a consumer's demand is heat taken out of the fluid
		p.Params.HeatConsumers[i] = &HeatParams{QExtW: -h.QDemandW, QSetpointW: -h.QDemandW, DeltaTSetK: h.DeltaTSetK}
	}

	p.Lookups.BranchRowOfFlowController = make([]int, len(net.FlowControllers))
	for i, f := range net.FlowControllers {
		idx, err := addSimple(f.FromJct, f.ToJct, "flow_controller", i, KindFlowController, "flow_controller", f.TargetKgS)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = f.InService
		p.Lookups.BranchRowOfFlowController[i] = idx
		p.Params.FlowControllers[i] = &FlowControllerParams{TargetKgS: f.TargetKgS, Active: f.Control}
	}

	p.Lookups.BranchRowOfPressureController = make([]int, len(net.PressureControllers))
	for i, f := range net.PressureControllers {
		idx, err := addSimple(f.FromJct, f.ToJct, "pressure_controller", i, KindPressureController, "pressure_controller", bo.NominalMdotKgS)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = f.InService
		p.Lookups.BranchRowOfPressureController[i] = idx
		p.Params.PressureControllers[i] = &PressureControllerParams{TargetBar: f.TargetBar, Active: f.Control}
	}

	p.Lookups.BranchRowOfCirculationPump = make([]int, len(net.CirculationPumps))
	for i, cp := range net.CirculationPumps {
		mdotGuess := cp.MdotKgS
		if !cp.MassMode {
			mdotGuess = bo.NominalMdotKgS
		}
		idx, err := addSimple(cp.FromJct, cp.ToJct, "circulation_pump", i, KindCirculationPump, "circulation_pump", mdotGuess)
		if err != nil {
			return nil, err
		}
		p.Branches[idx].Active = cp.InService
		if cp.MassMode {
			p.Branches[idx].TIn = cp.TFlowK
			p.Branches[idx].TOut = cp.TFlowK
		}
		p.Lookups.BranchRowOfCirculationPump[i] = idx
		p.Params.CirculationPumps[i] = &CirculationPumpParams{MassMode: cp.MassMode, MdotKgS: cp.MdotKgS, LiftBar: cp.LiftBar, TFlowK: cp.TFlowK}
	}

	// 4. apply ext-grid slack tags and sink/source injections.
	for i, eg := range net.ExtGrids {
		if err := checkJunction(eg.Junction, "ext_grid", i); err != nil {
			return nil, err
		}
		n := p.Lookups.NodeOfJunction[eg.Junction]
		if !eg.InService {
			continue
		}
		switch eg.Kind {
		case "p":
			p.Nodes[n].Kind = mergeNodeKind(p.Nodes[n].Kind, NodePFixed)
			p.Nodes[n].P = eg.PBar
			p.Nodes[n].PInit = eg.PBar
		case "t":
			p.Nodes[n].Kind = mergeNodeKind(p.Nodes[n].Kind, NodeTFixed)
			p.Nodes[n].TExtK = eg.TK
			p.Nodes[n].T = eg.TK
			p.Nodes[n].TInit = eg.TK
		case "pt":
			p.Nodes[n].Kind = NodePTFixed
			p.Nodes[n].P = eg.PBar
			p.Nodes[n].PInit = eg.PBar
			p.Nodes[n].TExtK = eg.TK
			p.Nodes[n].T = eg.TK
			p.Nodes[n].TInit = eg.TK
		default:
			return nil, errs.InvalidTopology("pit: ext_grid[%d] has unknown type %q (want p, t, or pt)", i, eg.Kind)
		}
	}
	for i, s := range net.Sinks {
		if err := checkJunction(s.Junction, "sink", i); err != nil {
			return nil, err
		}
		if !s.InService {
			continue
		}
		n := p.Lookups.NodeOfJunction[s.Junction]
		p.Nodes[n].InjectMdot -= s.MdotKgS
	}
	for i, s := range net.Sources {
		if err := checkJunction(s.Junction, "source", i); err != nil {
			return nil, err
		}
		if !s.InService {
			continue
		}
		n := p.Lookups.NodeOfJunction[s.Junction]
		p.Nodes[n].InjectMdot += s.MdotKgS
		p.Sources = append(p.Sources, SourceInjection{NodeIdx: n, MdotKgS: s.MdotKgS, TK: s.TK})
	}

	// 5. reuse previous solution if requested and available.
	if bo.ReusePrevious && bo.Previous != nil && sameShape(bo.Previous, p) {
		for i := range p.Nodes {
			p.Nodes[i].P = bo.Previous.Nodes[i].P
			p.Nodes[i].T = bo.Previous.Nodes[i].T
		}
		for i := range p.Branches {
			p.Branches[i].Mdot = bo.Previous.Branches[i].Mdot
		}
		p.PreviousSolutionPresent = true
	}

	return p, nil
}

func mergeNodeKind(existing, next NodeKind) NodeKind {
	if existing == NodeFree {
		return next
	}
	if (existing == NodePFixed && next == NodeTFixed) || (existing == NodeTFixed && next == NodePFixed) {
		return NodePTFixed
	}
	return existing
}

func sameShape(a, b *PIT) bool {
	return len(a.Nodes) == len(b.Nodes) && len(a.Branches) == len(b.Branches)
}

func lerp(a, b, frac float64) float64 { return a + frac*(b-a) }
