package pipeflow

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/pandapipes-go/pipeflow/fluid"
	"github.com/pandapipes-go/pipeflow/network"
	"github.com/stretchr/testify/require"
)

func waterNet() (*network.Network, error) {
	water, err := fluid.New("constant", fun.Params{{N: "rho", V: 998.2}, {N: "mu", V: 1.002e-3}, {N: "cp", V: 4186}})
	if err != nil {
		return nil, err
	}
	return &network.Network{Fluid: water}, nil
}

func Test_pipeflow01(tst *testing.T) {

	chk.PrintTitle("pipeflow01: two-junction Darcy pipe, flat p/T start, hydraulics-only")

	net, err := waterNet()
	require.NoError(tst, err)
	net.Junctions = []network.Junction{
		{Index: 0, PnBar: 5, TnK: 300, InService: true},
		{Index: 1, PnBar: 5, TnK: 300, InService: true},
	}
	net.Pipes = []network.Pipe{
		{BranchEnds: network.BranchEnds{Index: 0, FromJct: 0, ToJct: 1, InService: true}, LengthM: 200, DiameterM: 0.15, RoughnessMM: 0.1, Sections: 1},
	}
	net.ExtGrids = []network.ExtGrid{
		{Index: 0, Junction: 0, Kind: "p", PBar: 5, InService: true},
	}
	net.Sinks = []network.Sink{{Index: 0, Junction: 1, MdotKgS: 2.0, InService: true}}

	opts := NewOptions()
	opts.Mode = ModeHydraulics
	opts.Logger = &NullLogger{}
	err = Pipeflow(net, opts)
	require.NoError(tst, err)
	require.True(tst, net.Converged)
	require.True(tst, net.Results.Junction[0].PBar > net.Results.Junction[1].PBar)
	chk.Scalar(tst, "pipe mass flow matches the sink demand", 1e-6, net.Results.Pipe[0].MdotToKgS, 2.0)
}

func Test_pipeflow02(tst *testing.T) {

	chk.PrintTitle("pipeflow02: closed valve disconnects a subgraph; it solves NaN, not an error")

	net, err := waterNet()
	require.NoError(tst, err)
	net.Junctions = []network.Junction{
		{Index: 0, PnBar: 5, TnK: 300, InService: true},
		{Index: 1, PnBar: 5, TnK: 300, InService: true},
		{Index: 2, PnBar: 5, TnK: 300, InService: true},
	}
	net.Valves = []network.Valve{
		{BranchEnds: network.BranchEnds{Index: 0, FromJct: 0, ToJct: 1, InService: true}, Opened: false, DiameterM: 0.1},
	}
	net.Pipes = []network.Pipe{
		{BranchEnds: network.BranchEnds{Index: 0, FromJct: 1, ToJct: 2, InService: true}, LengthM: 100, DiameterM: 0.1, Sections: 1},
	}
	net.ExtGrids = []network.ExtGrid{
		{Index: 0, Junction: 0, Kind: "p", PBar: 5, InService: true},
	}

	opts := NewOptions()
	opts.Mode = ModeHydraulics
	opts.Logger = &NullLogger{}
	err = Pipeflow(net, opts)
	require.NoError(tst, err)
	require.True(tst, net.Converged)
	chk.Scalar(tst, "the reachable slack junction still solves", 1e-9, net.Results.Junction[0].PBar, 5.0)
	require.True(tst, math.IsNaN(net.Results.Junction[1].PBar))
	require.True(tst, math.IsNaN(net.Results.Junction[2].PBar))
}

func Test_pipeflow03(tst *testing.T) {

	chk.PrintTitle("pipeflow03: sequential mode solves hydraulics then heat over a heat exchanger")

	net, err := waterNet()
	require.NoError(tst, err)
	net.Junctions = []network.Junction{
		{Index: 0, PnBar: 5, TnK: 320, InService: true},
		{Index: 1, PnBar: 5, TnK: 320, InService: true},
	}
	net.HeatExchangers = []network.HeatExchanger{
		{BranchEnds: network.BranchEnds{Index: 0, FromJct: 0, ToJct: 1, InService: true}, QExtW: 4186 * 2, DiameterM: 0.1},
	}
	net.ExtGrids = []network.ExtGrid{
		{Index: 0, Junction: 0, Kind: "pt", PBar: 5, TK: 320, InService: true},
	}
	net.Sinks = []network.Sink{{Index: 0, Junction: 1, MdotKgS: 1.0, InService: true}}

	opts := NewOptions()
	opts.Mode = ModeSequential
	opts.Logger = &NullLogger{}
	err = Pipeflow(net, opts)
	require.NoError(tst, err)
	require.True(tst, net.Converged)
	chk.Scalar(tst, "downstream junction warms by Q/(mdot*cp)", 1e-3, net.Results.Junction[1].TK, 322)
}

func Test_pipeflow04(tst *testing.T) {

	chk.PrintTitle("pipeflow04: a network with no pressure-fixed slack is rejected up front")

	net, err := waterNet()
	require.NoError(tst, err)
	net.Junctions = []network.Junction{
		{Index: 0, PnBar: 5, TnK: 300, InService: true},
		{Index: 1, PnBar: 5, TnK: 300, InService: true},
	}
	net.Pipes = []network.Pipe{
		{BranchEnds: network.BranchEnds{Index: 0, FromJct: 0, ToJct: 1, InService: true}, LengthM: 100, DiameterM: 0.1, Sections: 1},
	}

	opts := NewOptions()
	opts.Mode = ModeHydraulics
	opts.Logger = &NullLogger{}
	err = Pipeflow(net, opts)
	require.Error(tst, err)
}

func Test_pipeflow05(tst *testing.T) {

	chk.PrintTitle("pipeflow05: reusing internal data across solves caches the PIT in Network.Workspace")

	net, err := waterNet()
	require.NoError(tst, err)
	net.Junctions = []network.Junction{
		{Index: 0, PnBar: 5, TnK: 300, InService: true},
		{Index: 1, PnBar: 5, TnK: 300, InService: true},
	}
	net.Pipes = []network.Pipe{
		{BranchEnds: network.BranchEnds{Index: 0, FromJct: 0, ToJct: 1, InService: true}, LengthM: 100, DiameterM: 0.1, Sections: 1},
	}
	net.ExtGrids = []network.ExtGrid{
		{Index: 0, Junction: 0, Kind: "p", PBar: 5, InService: true},
	}
	net.Sinks = []network.Sink{{Index: 0, Junction: 1, MdotKgS: 0.5, InService: true}}

	opts := NewOptions()
	opts.Mode = ModeHydraulics
	opts.ReuseInternalData = true
	opts.Logger = &NullLogger{}

	require.NoError(tst, Pipeflow(net, opts))
	require.NotNil(tst, net.Workspace)
	require.NoError(tst, Pipeflow(net, opts))
	require.True(tst, net.Converged)
}
