package graph

import mapset "github.com/deckarep/golang-set/v2"

// topology returns the topological order of the subgraph rooted at n:
// depth-first post-order, every node after all of its parents. The order is
// deterministic because parent lists preserve operand order.
//
// The order is computed once per root and cached. A node's parent set is
// fixed at construction and the public API only ever appends new nodes, so
// the ancestor set of a root cannot change after the order is cached.
func (n *Node) topology() []*Node {
	if n.topo != nil {
		return n.topo
	}

	visited := mapset.NewThreadUnsafeSet[*Node]()
	order := make([]*Node, 0, 16)
	var visit func(v *Node)
	visit = func(v *Node) {
		if visited.Contains(v) {
			return
		}
		visited.Add(v)
		for _, p := range v.parents {
			visit(p)
		}
		order = append(order, v)
	}
	visit(n)

	n.topo = order
	return n.topo
}

// Ancestors returns the nodes the root depends on, in evaluation order,
// ending with the root itself. Exposed for introspection and visualization
// tooling.
func (n *Node) Ancestors() []*Node {
	return append([]*Node(nil), n.topology()...)
}
