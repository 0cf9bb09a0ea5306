package reduce

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/stretchr/testify/require"
)

func Test_reduce01(tst *testing.T) {

	chk.PrintTitle("reduce01: inactive rows are dropped and indices remapped")

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodePFixed, Active: true},
			{Kind: pit.NodeFree, Active: false}, // out of service
			{Kind: pit.NodeFree, Active: true},
		},
		Branches: []pit.BranchRow{
			{From: 0, To: 2, Active: true},
		},
	}

	a := Build(p)
	require.Equal(tst, 2, len(a.Nodes))
	require.Equal(tst, []int{0, 2}, a.NodeFull)
	require.Equal(tst, 0, a.Branches[0].From)
	require.Equal(tst, 1, a.Branches[0].To)
}

func Test_reduce02(tst *testing.T) {

	chk.PrintTitle("reduce02: scatter writes active results back onto the full pit")

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodePFixed, Active: true},
			{Kind: pit.NodeFree, Active: true},
		},
		Branches: []pit.BranchRow{
			{From: 0, To: 1, Active: true},
		},
	}

	a := Build(p)
	a.Nodes[1].P = 4.2
	a.Nodes[1].T = 310
	a.Branches[0].Mdot = 1.5
	a.Branches[0].Reynolds = 12345

	a.ScatterNodes(p)
	a.ScatterBranches(p)

	chk.Scalar(tst, "p", 1e-12, p.Nodes[1].P, 4.2)
	chk.Scalar(tst, "t", 1e-12, p.Nodes[1].T, 310)
	chk.Scalar(tst, "mdot", 1e-12, p.Branches[0].Mdot, 1.5)
	chk.Scalar(tst, "reynolds", 1e-12, p.Branches[0].Reynolds, 12345)
}

func Test_reduce03(tst *testing.T) {

	chk.PrintTitle("reduce03: a branch touching an inactive node is itself excluded upstream")

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Active: true},
			{Active: false},
		},
		Branches: []pit.BranchRow{
			{From: 0, To: 1, Active: false},
		},
	}
	a := Build(p)
	require.Equal(tst, 0, len(a.Branches))
	require.Equal(tst, 1, len(a.Nodes))
}
