package graph

import (
	"go.uber.org/zap"

	"github.com/ascent-ml/ascent/internal/log"
	"github.com/ascent-ml/ascent/internal/tensor"
)

// Backward computes the gradient of n with respect to every ancestor.
//
// Every node's gradient is re-seeded first — ones for the root, zeros
// elsewhere — then the cached topological order is walked in reverse,
// each operation adding its contribution into its parents' accumulators.
// Re-seeding makes the call idempotent: gradients reflect exactly one pass.
//
// If the root's value is entirely NaN the forward pass was probably
// skipped; a warning is logged and the pass proceeds, propagating NaN.
func (n *Node) Backward() {
	n.runBackward(true)
}

// BackwardAccumulate propagates gradients without clearing leaf
// accumulators: interior gradients are re-seeded as scratch for the pass,
// but leaves, placeholders and constants keep what earlier passes left, so
// successive calls (with forward passes on different bindings in between)
// sum their leaf gradients. This mirrors manual gradient-accumulation
// workflows; use ZeroGrad to start over.
func (n *Node) BackwardAccumulate() {
	n.runBackward(false)
}

func (n *Node) runBackward(reseed bool) {
	if n.value.AllNaN() {
		log.Logger().Warn("root value is all NaN, run Forward before Backward",
			zap.String("node", n.String()))
	}

	topo := n.topology()
	for _, v := range topo {
		switch {
		case v.grad == nil:
			if v == n {
				v.grad = tensor.Ones(v.shape)
			} else {
				v.grad = tensor.Zeros(v.shape)
			}
		case v == n:
			v.grad.Fill(1)
		case reseed || v.op != nil:
			// Interior gradients are scratch space for the pass; only
			// leaf accumulators survive an accumulating pass.
			v.grad.Fill(0)
		}
	}

	for i := len(topo) - 1; i >= 0; i-- {
		if v := topo[i]; v.op != nil {
			v.op.backward(v)
		}
	}
}

// ZeroGrad clears the gradient accumulators of the whole subgraph, so a
// following BackwardAccumulate starts from zero.
func (n *Node) ZeroGrad() {
	for _, v := range n.topology() {
		if v.grad != nil {
			v.grad.Fill(0)
		}
	}
}
