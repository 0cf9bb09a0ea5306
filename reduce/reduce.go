// Package reduce implements the reducer: projecting the full PIT into
// an active PIT containing only rows that participate in the current
// solve, plus the inverse projection needed to scatter results back onto
// the full pit. Follows the same per-stage active-subset derivation
// pattern used elsewhere in this codebase for deriving a reduced working
// set from a full structure.
package reduce

import "github.com/pandapipes-go/pipeflow/pit"

// Active is the reduced (active-only) pit plus the translation tables
// back to the full pit.
type Active struct {
	Nodes    []pit.NodeRow
	Branches []pit.BranchRow

	// Sources is p.Sources remapped onto active node indices; a source
	// whose node was deactivated by the connectivity check is dropped.
	Sources []pit.SourceInjection

	// NodeFull[i] is the full-pit row index for active row i.
	NodeFull []int
	// BranchFull[i] is the full-pit row index for active row i.
	BranchFull []int

	// fullToActiveNode[f] is the active row index for full row f, or -1
	// if that row is out of service.
	fullToActiveNode []int
}

// Build projects p into its active subset.
func Build(p *pit.PIT) *Active {
	a := &Active{}
	a.fullToActiveNode = make([]int, len(p.Nodes))
	for i := range a.fullToActiveNode {
		a.fullToActiveNode[i] = -1
	}
	for i, n := range p.Nodes {
		if !n.Active {
			continue
		}
		a.fullToActiveNode[i] = len(a.Nodes)
		a.NodeFull = append(a.NodeFull, i)
		a.Nodes = append(a.Nodes, n)
	}
	for i, b := range p.Branches {
		if !b.Active {
			continue
		}
		remapped := b
		remapped.From = a.fullToActiveNode[b.From]
		remapped.To = a.fullToActiveNode[b.To]
		a.BranchFull = append(a.BranchFull, i)
		a.Branches = append(a.Branches, remapped)
	}
	for _, s := range p.Sources {
		an := a.fullToActiveNode[s.NodeIdx]
		if an < 0 {
			continue
		}
		a.Sources = append(a.Sources, pit.SourceInjection{NodeIdx: an, MdotKgS: s.MdotKgS, TK: s.TK})
	}
	return a
}

// ScatterNodes writes the active pit's node state (p, T) back onto the
// full pit p.
func (a *Active) ScatterNodes(p *pit.PIT) {
	for i, full := range a.NodeFull {
		p.Nodes[full].P = a.Nodes[i].P
		p.Nodes[full].T = a.Nodes[i].T
	}
}

// ScatterBranches writes the active pit's branch state (mdot, Tin/Tout,
// scratch outputs) back onto the full pit p.
func (a *Active) ScatterBranches(p *pit.PIT) {
	for i, full := range a.BranchFull {
		p.Branches[full].Mdot = a.Branches[i].Mdot
		p.Branches[full].TIn = a.Branches[i].TIn
		p.Branches[full].TOut = a.Branches[i].TOut
		p.Branches[full].ThermallyActive = a.Branches[i].ThermallyActive
		p.Branches[full].Reynolds = a.Branches[i].Reynolds
		p.Branches[full].Lambda = a.Branches[i].Lambda
	}
}
