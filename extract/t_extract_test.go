package extract

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/pandapipes-go/pipeflow/comp"
	"github.com/pandapipes-go/pipeflow/fluid"
	"github.com/pandapipes-go/pipeflow/network"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/stretchr/testify/require"
)

func Test_extract01(tst *testing.T) {

	chk.PrintTitle("extract01: junction results carry p and T, NaN when out of service")

	net := &network.Network{
		Junctions: []network.Junction{
			{Index: 0, InService: true},
			{Index: 1, InService: false},
		},
	}
	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{P: 5.0, T: 310, Active: true},
			{P: 4.0, T: 300, Active: false},
		},
		Lookups: pit.Lookups{NodeOfJunction: []int{0, 1}},
		Params:  &pit.Params{},
	}
	ctx := &comp.Ctx{}

	Populate(net, p, ctx)
	chk.Scalar(tst, "p", 1e-12, net.Results.Junction[0].PBar, 5.0)
	chk.Scalar(tst, "t", 1e-12, net.Results.Junction[0].TK, 310)
	require.True(tst, math.IsNaN(net.Results.Junction[1].PBar))
}

func Test_extract02(tst *testing.T) {

	chk.PrintTitle("extract02: single-section pipe result mirrors its one branch row")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water}

	net := &network.Network{
		Junctions: []network.Junction{{Index: 0}, {Index: 1}},
		Pipes:     []network.Pipe{{BranchEnds: network.BranchEnds{Index: 0, FromJct: 0, ToJct: 1}}},
	}
	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{P: 5.0, Active: true},
			{P: 4.8, Active: true},
		},
		Branches: []pit.BranchRow{
			{Kind: pit.KindPipe, From: 0, To: 1, DiameterM: 0.1, Mdot: 1.0, TIn: 300, TOut: 298, Reynolds: 5000, Lambda: 0.02, Active: true},
		},
		Lookups: pit.Lookups{
			NodeOfJunction:   []int{0, 1},
			BranchRowsOfPipe: [][]int{{0}},
		},
		Params: &pit.Params{},
	}

	Populate(net, p, ctx)
	res := net.Results.Pipe[0]
	chk.Scalar(tst, "p_from", 1e-12, res.PFromBar, 5.0)
	chk.Scalar(tst, "p_to", 1e-12, res.PToBar, 4.8)
	chk.Scalar(tst, "t_outlet", 1e-12, res.TOutletK, 298)
	chk.Scalar(tst, "reynolds", 1e-12, res.Reynolds, 5000)
	require.Nil(tst, res.Sections)
}

func Test_extract03(tst *testing.T) {

	chk.PrintTitle("extract03: ext-grid supplies the net imbalance at its junction")

	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 1000}, {N: "mu", V: 1e-3}, {N: "cp", V: 4186}})
	require.NoError(tst, err)
	ctx := &comp.Ctx{Fluid: water, AmbientTemperatureK: 293.15}

	net := &network.Network{
		Junctions: []network.Junction{{Index: 0}, {Index: 1}},
		ExtGrids:  []network.ExtGrid{{Index: 0, Junction: 0, Kind: "p", InService: true}},
	}
	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{P: 5.0, T: 300, InjectMdot: 0, Active: true},
			{P: 4.8, T: 300, Active: true},
		},
		Branches: []pit.BranchRow{
			{From: 0, To: 1, Mdot: 2.0, Active: true},
		},
		Lookups: pit.Lookups{NodeOfJunction: []int{0, 1}},
		Params:  &pit.Params{},
	}

	Populate(net, p, ctx)
	chk.Scalar(tst, "slack supplies the outbound flow", 1e-9, net.Results.ExtGrid[0].MdotKgS, 2.0)
}
