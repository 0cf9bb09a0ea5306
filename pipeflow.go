package pipeflow

import (
	"github.com/pandapipes-go/pipeflow/comp"
	"github.com/pandapipes-go/pipeflow/errs"
	"github.com/pandapipes-go/pipeflow/extract"
	"github.com/pandapipes-go/pipeflow/friction"
	"github.com/pandapipes-go/pipeflow/network"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/pandapipes-go/pipeflow/reduce"
	"github.com/pandapipes-go/pipeflow/solve"
	"github.com/pandapipes-go/pipeflow/topology"
)

// workspace is the solve-scoped cache attached to Network.Workspace when
// ReuseInternalData is set.
type workspace struct {
	pit *pit.PIT
}

// Pipeflow runs one solve of net per opts. It wires PIT construction, the
// connectivity check, the reducer, the hydraulic Newton solver, the
// thermal solver (per Mode), and the result extractor behind one call,
// following the same build-solve-write-output pipeline shape used for
// running a full analysis elsewhere in this codebase.
func Pipeflow(net *network.Network, opts *Options) error {
	if opts == nil {
		opts = NewOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewStdLogger()
	}

	needHydraulic := opts.Mode != ModeHeat
	needThermal := opts.Mode != ModeHydraulics

	frictionModel, err := newFrictionModel(opts)
	if err != nil {
		return err
	}

	bo := pit.BuildOptions{NominalMdotKgS: opts.NominalMdotKgS}
	if opts.ReuseInternalData {
		if ws, ok := net.Workspace.(*workspace); ok && ws != nil {
			bo.ReusePrevious = true
			bo.Previous = ws.pit
		}
	}

	p, err := pit.Build(net, bo)
	if err != nil {
		return err
	}

	if opts.CheckConnectivity {
		topology.Run(p, topology.Options{
			Enabled:       true,
			NeedHydraulic: needHydraulic,
			NeedThermal:   needThermal,
		})
	}

	if needHydraulic && !topology.HasSlack(p, pit.NodePFixed) {
		return errs.NoSlack("pipeflow: no in-service pressure-fixed (ext_grid) node reaches the network")
	}
	if needThermal && !topology.HasSlack(p, pit.NodeTFixed) {
		return errs.NoSlack("pipeflow: no in-service temperature-fixed (ext_grid) node reaches the network")
	}

	ctx := &comp.Ctx{
		Fluid:               net.Fluid,
		Friction:            frictionModel,
		AmbientPressureBar:  opts.AmbientPressureBar,
		AmbientTemperatureK: opts.AmbientTemperatureK,
		TolM:                opts.TolM,
	}

	active := reduce.Build(p)

	if err := runSolve(active, p, ctx, opts, needHydraulic, needThermal, logger); err != nil {
		net.Converged = false
		net.Results = network.Results{}
		if opts.ReuseInternalData {
			net.Workspace = nil
		}
		return err
	}

	active.ScatterNodes(p)
	active.ScatterBranches(p)

	extract.Populate(net, p, ctx)
	net.Converged = true

	if opts.ReuseInternalData {
		net.Workspace = &workspace{pit: p}
	}

	return nil
}

func runSolve(active *reduce.Active, p *pit.PIT, ctx *comp.Ctx, opts *Options, needHydraulic, needThermal bool, logger Logger) error {
	hopts := solve.HydraulicOptions{
		MaxIter:       opts.MaxIterHydraulic,
		TolP:          opts.TolP,
		TolM:          opts.TolM,
		TolRes:        opts.TolRes,
		ReuseMatrix:   opts.OnlyUpdateHydraulicMat,
		Logger:        logger,
	}
	topts := solve.ThermalOptions{
		MaxIter: opts.MaxIterThermal,
		TolT:    opts.TolT,
		TolM:    opts.TolM,
		Strict:  opts.StrictThermalSingularity,
		Logger:  logger,
	}

	switch opts.Mode {
	case ModeHydraulics:
		return runHydraulic(active, p.Params, ctx, hopts)

	case ModeHeat:
		_, err := solve.Thermal(active, p.Params, ctx, topts)
		return err

	case ModeSequential:
		if err := runHydraulic(active, p.Params, ctx, hopts); err != nil {
			return err
		}
		_, err := solve.Thermal(active, p.Params, ctx, topts)
		return err

	case ModeBidirectional:
		// Alternate hydraulic/thermal passes, each run to its own
		// convergence, and stop once a full outer round moves neither p
		// nor T beyond their own tolerances (the coupling is through
		// temperature-dependent density, so a converged hydraulic pass
		// can still need to re-run after thermal shifts T enough).
		outer := opts.MaxIterHydraulic
		if outer <= 0 {
			outer = 30
		}
		for i := 0; i < outer; i++ {
			prevP := pValues(active)
			prevT := tValues(active)

			hrep := solve.Hydraulic(active, p.Params, ctx, hopts)
			if !hrep.Converged {
				return errs.NoConvergence(hrep.Iterations, hrep.ResNorm, hrep.PNorm, hrep.MdotNorm)
			}
			trep, err := solve.Thermal(active, p.Params, ctx, topts)
			if err != nil {
				return err
			}
			if !trep.Converged {
				return errs.ThermalNoConvergence(trep.Iterations, trep.TNorm)
			}

			if maxAbsDelta(prevP, pValues(active)) < opts.TolP && maxAbsDelta(prevT, tValues(active)) < opts.TolT {
				break
			}
		}
		return nil

	default:
		return errs.SolverError("pipeflow: unknown mode %q", opts.Mode)
	}
}

func runHydraulic(active *reduce.Active, params *pit.Params, ctx *comp.Ctx, hopts solve.HydraulicOptions) error {
	report := solve.Hydraulic(active, params, ctx, hopts)
	if !report.Converged {
		return errs.NoConvergence(report.Iterations, report.ResNorm, report.PNorm, report.MdotNorm)
	}
	return nil
}

func newFrictionModel(opts *Options) (friction.Model, error) {
	name := string(opts.Friction)
	if name == "" {
		name = string(FrictionNikuradse)
	}
	if name == string(FrictionColebrook) {
		return friction.NewColebrook(opts.MaxIterColebrook), nil
	}
	return friction.New(name)
}

func pValues(active *reduce.Active) []float64 {
	v := make([]float64, len(active.Nodes))
	for i, n := range active.Nodes {
		v[i] = n.P
	}
	return v
}

func tValues(active *reduce.Active) []float64 {
	v := make([]float64, len(active.Nodes))
	for i, n := range active.Nodes {
		v[i] = n.T
	}
	return v
}

func maxAbsDelta(a, b []float64) float64 {
	m := 0.0
	for i := range a {
		if d := a[i] - b[i]; d > m || -d > m {
			if d < 0 {
				d = -d
			}
			m = d
		}
	}
	return m
}
