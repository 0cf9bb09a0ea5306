package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/pandapipes-go/pipeflow/comp"
	"github.com/pandapipes-go/pipeflow/fluid"
	"github.com/pandapipes-go/pipeflow/friction"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/pandapipes-go/pipeflow/reduce"
	"github.com/stretchr/testify/require"
)

func Test_hydraulic01(tst *testing.T) {

	chk.PrintTitle("hydraulic01: two junctions, one pipe, pressure slack plus a sink")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	fr, err := friction.New("nikuradse")
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water, Friction: fr, AmbientPressureBar: 1.01325, TolM: 1e-8}

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodePFixed, P: 5.0, PInit: 5.0, Active: true},
			{Kind: pit.NodeFree, P: 4.9, PInit: 4.9, InjectMdot: -1.0, Active: true},
		},
		Branches: []pit.BranchRow{
			{Kind: pit.KindPipe, From: 0, To: 1, DiameterM: 0.2, LengthM: 100, RoughnessMM: 0.1, Mdot: 1.0, TIn: 300, TOut: 300, Active: true},
		},
		Params: &pit.Params{},
	}

	active := reduce.Build(p)
	report := Hydraulic(active, p.Params, ctx, HydraulicOptions{MaxIter: 50, TolP: 1e-6, TolM: 1e-9, TolRes: 1e-8})
	require.True(tst, report.Converged)

	chk.Scalar(tst, "slack pressure unchanged", 1e-9, active.Nodes[0].P, 5.0)
	require.True(tst, active.Branches[0].Mdot > 0)
	chk.Scalar(tst, "mass balance at the sink node", 1e-6, active.Branches[0].Mdot, 1.0)
}

func Test_hydraulic02(tst *testing.T) {

	chk.PrintTitle("hydraulic02: empty active pit converges trivially")

	ctx := &comp.Ctx{}
	report := Hydraulic(&reduce.Active{}, &pit.Params{}, ctx, HydraulicOptions{MaxIter: 10})
	require.True(tst, report.Converged)
}
