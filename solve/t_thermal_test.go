package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/pandapipes-go/pipeflow/comp"
	"github.com/pandapipes-go/pipeflow/fluid"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/pandapipes-go/pipeflow/reduce"
	"github.com/stretchr/testify/require"
)

func Test_thermal01(tst *testing.T) {

	chk.PrintTitle("thermal01: adiabatic pipe leaves the temperature unchanged")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water}

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodeTFixed, T: 350, Active: true},
			{Kind: pit.NodeFree, T: 300, Active: true},
		},
		Branches: []pit.BranchRow{
			{Kind: pit.KindPipe, From: 0, To: 1, Mdot: 1.0, UWPerM2K: 0, Active: true, ThermallyActive: true},
		},
		Params: &pit.Params{},
	}

	active := reduce.Build(p)
	report, err := Thermal(active, p.Params, ctx, ThermalOptions{MaxIter: 10, TolT: 1e-6, TolM: 1e-9})
	require.NoError(tst, err)
	require.True(tst, report.Converged)
	chk.Scalar(tst, "downstream T equals upstream T", 1e-9, active.Nodes[1].T, 350)
}

func Test_thermal02(tst *testing.T) {

	chk.PrintTitle("thermal02: heat exchanger raises outlet temperature per QSetpointW")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water}

	params := &pit.Params{HeatExchangers: map[int]*pit.HeatParams{0: {QSetpointW: 4186 * 10}}}
	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodeTFixed, T: 300, Active: true},
			{Kind: pit.NodeFree, T: 300, Active: true},
		},
		Branches: []pit.BranchRow{
			{Kind: pit.KindHeatExchanger, ExtIndex: 0, From: 0, To: 1, Mdot: 1.0, Active: true, ThermallyActive: true},
		},
		Params: params,
	}

	active := reduce.Build(p)
	report, err := Thermal(active, p.Params, ctx, ThermalOptions{MaxIter: 10, TolT: 1e-6, TolM: 1e-9})
	require.NoError(tst, err)
	require.True(tst, report.Converged)
	chk.Scalar(tst, "outlet T rises by Q/(mdot*cp)", 1e-6, active.Nodes[1].T, 310)
}

func Test_thermal03(tst *testing.T) {

	chk.PrintTitle("thermal03: near-zero mdot branch is flagged thermally inactive, not fatal")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water}

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodeTFixed, T: 300, Active: true},
			{Kind: pit.NodeFree, T: 280, Active: true},
		},
		Branches: []pit.BranchRow{
			{Kind: pit.KindPipe, From: 0, To: 1, Mdot: 1e-12, Active: true, ThermallyActive: true},
		},
		Params: &pit.Params{},
	}

	active := reduce.Build(p)
	report, err := Thermal(active, p.Params, ctx, ThermalOptions{MaxIter: 5, TolT: 1e-6, TolM: 1e-8, Strict: false})
	require.NoError(tst, err)
	require.False(tst, active.Branches[0].ThermallyActive)
	_ = report
}

func Test_thermal05(tst *testing.T) {

	chk.PrintTitle("thermal05: a node fed only by a source mixes to the source's TK")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water}

	p := &pit.PIT{
		Nodes:   []pit.NodeRow{{Kind: pit.NodeFree, T: 300, Active: true}},
		Sources: []pit.SourceInjection{{NodeIdx: 0, MdotKgS: 1.0, TK: 280}},
		Params:  &pit.Params{},
	}

	active := reduce.Build(p)
	report, err := Thermal(active, p.Params, ctx, ThermalOptions{MaxIter: 10, TolT: 1e-6, TolM: 1e-9})
	require.NoError(tst, err)
	require.True(tst, report.Converged)
	chk.Scalar(tst, "node T equals source TK", 1e-9, active.Nodes[0].T, 280)
}

func Test_thermal04(tst *testing.T) {

	chk.PrintTitle("thermal04: strict mode turns near-zero mdot into an error")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water}

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodeTFixed, T: 300, Active: true},
			{Kind: pit.NodeFree, T: 280, Active: true},
		},
		Branches: []pit.BranchRow{
			{Kind: pit.KindPipe, From: 0, To: 1, Mdot: 1e-12, Active: true, ThermallyActive: true},
		},
		Params: &pit.Params{},
	}

	active := reduce.Build(p)
	_, err = Thermal(active, p.Params, ctx, ThermalOptions{MaxIter: 5, TolT: 1e-6, TolM: 1e-8, Strict: true})
	require.Error(tst, err)
}
