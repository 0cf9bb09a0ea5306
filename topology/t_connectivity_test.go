package topology

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/stretchr/testify/require"
)

func mkpit3() *pit.PIT {
	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodePFixed, Active: true},
			{Kind: pit.NodeFree, Active: true},
			{Kind: pit.NodeFree, Active: true}, // disconnected
		},
		Branches: []pit.BranchRow{
			{From: 0, To: 1, Active: true},
		},
	}
	return p
}

func Test_connectivity01(tst *testing.T) {

	chk.PrintTitle("connectivity01: disconnected node is deactivated")

	p := mkpit3()
	Run(p, Options{Enabled: true, NeedHydraulic: true})
	require.True(tst, p.Nodes[0].Active)
	require.True(tst, p.Nodes[1].Active)
	require.False(tst, p.Nodes[2].Active)
}

func Test_connectivity02(tst *testing.T) {

	chk.PrintTitle("connectivity02: disabled check leaves everything untouched")

	p := mkpit3()
	Run(p, Options{Enabled: false})
	require.True(tst, p.Nodes[2].Active)
}

func Test_connectivity03(tst *testing.T) {

	chk.PrintTitle("connectivity03: branch with a deactivated endpoint is deactivated too")

	p := &pit.PIT{
		Nodes: []pit.NodeRow{
			{Kind: pit.NodePFixed, Active: true},
			{Kind: pit.NodeFree, Active: true},
			{Kind: pit.NodeFree, Active: true},
		},
		Branches: []pit.BranchRow{
			{From: 0, To: 1, Active: true},
			{From: 1, To: 2, Active: true},
		},
	}
	// break the chain: node 1 only reachable through a branch that is
	// itself disabled so node 2 never gets visited.
	p.Branches[0].Active = false
	Run(p, Options{Enabled: true, NeedHydraulic: true})
	require.False(tst, p.Nodes[1].Active)
	require.False(tst, p.Branches[1].Active)
}

func Test_connectivity04(tst *testing.T) {

	chk.PrintTitle("connectivity04: HasSlack detects pt-kind nodes for either p or t")

	p := &pit.PIT{Nodes: []pit.NodeRow{{Kind: pit.NodePTFixed, Active: true}}}
	require.True(tst, HasSlack(p, pit.NodePFixed))
	require.True(tst, HasSlack(p, pit.NodeTFixed))
}
