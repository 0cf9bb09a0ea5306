// Package topology implements the connectivity check: graph
// reachability from pressure-fixed and temperature-fixed slack nodes,
// marking unreachable nodes/branches out-of-service for one solve, via a
// queue + visited-array multi-source BFS over the PIT's own From/To
// columns rather than a generic graph library's node/edge types.
package topology

import "github.com/pandapipes-go/pipeflow/pit"

// Options configures the connectivity check: whether it runs at all, and
// which physics domains (hydraulic, thermal) it needs to reach a slack
// node.
type Options struct {
	Enabled       bool
	NeedHydraulic bool
	NeedThermal   bool
}

// Run marks unreachable nodes (and their incident branches) out of
// service in place. It never errors by itself; NoSlack detection (no
// P-fixed/T-fixed node at all) is the caller's responsibility once it
// knows whether the corresponding mode was actually requested.
func Run(p *pit.PIT, opts Options) {
	if !opts.Enabled {
		return
	}
	adjacency := buildAdjacency(p)

	if opts.NeedHydraulic {
		supplied := reachableFrom(p, adjacency, func(n pit.NodeRow) bool {
			return n.Kind == pit.NodePFixed || n.Kind == pit.NodePTFixed
		})
		deactivateUnreached(p, supplied)
	}
	if opts.NeedThermal {
		supplied := reachableFrom(p, adjacency, func(n pit.NodeRow) bool {
			return n.Kind == pit.NodeTFixed || n.Kind == pit.NodePTFixed
		})
		deactivateUnreached(p, supplied)
	}

	// any branch with an inactive endpoint is itself out of service.
	for i := range p.Branches {
		b := &p.Branches[i]
		if !b.Active {
			continue
		}
		if !p.Nodes[b.From].Active || !p.Nodes[b.To].Active {
			b.Active = false
		}
	}
}

func buildAdjacency(p *pit.PIT) [][]int {
	adj := make([][]int, len(p.Nodes))
	for _, b := range p.Branches {
		if !b.Active {
			continue
		}
		adj[b.From] = append(adj[b.From], b.To)
		adj[b.To] = append(adj[b.To], b.From)
	}
	return adj
}

// reachableFrom performs a multi-source BFS seeded at every active node
// satisfying isSource, over currently-active nodes only.
func reachableFrom(p *pit.PIT, adj [][]int, isSource func(pit.NodeRow) bool) []bool {
	n := len(p.Nodes)
	visited := make([]bool, n)
	var queue []int
	for i, node := range p.Nodes {
		if node.Active && isSource(node) {
			visited[i] = true
			queue = append(queue, i)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range adj[u] {
			if p.Nodes[v].Active && !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	return visited
}

func deactivateUnreached(p *pit.PIT, reached []bool) {
	for i := range p.Nodes {
		if p.Nodes[i].Active && !reached[i] {
			p.Nodes[i].Active = false
		}
	}
}

// HasSlack reports whether at least one active node satisfies the given
// predicate, used by the caller to raise NoSlack.
func HasSlack(p *pit.PIT, want pit.NodeKind) bool {
	for _, n := range p.Nodes {
		if !n.Active {
			continue
		}
		if n.Kind == want || n.Kind == pit.NodePTFixed {
			return true
		}
	}
	return false
}
