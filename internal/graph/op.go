package graph

import "github.com/ascent-ml/ascent/internal/tensor"

// operation is the behavior attached to a computed node: one variant per
// operator kind, carrying only the parameters needed to recompute (axis
// lists, exponent, contraction depth). The node itself holds the operand
// references and the buffers.
type operation interface {
	// forward recomputes out.value from out.parents' current values. It has
	// no other visible side effect.
	forward(out *Node)

	// backward reads out.grad (already populated) and the operand values,
	// and adds its contribution into each parent's gradient. Contributions
	// are strictly additive: a parent consumed by several nodes accumulates
	// them all.
	backward(out *Node)
}

// reduceBroadcast folds a gradient back onto an operand shape that was
// broadcast during the forward pass: leading axes the operand never had are
// summed away, and axes the operand held at size 1 are summed back to 1.
// Gradients whose shape already matches are returned untouched.
func reduceBroadcast(grad *tensor.Dense, target tensor.Shape) *tensor.Dense {
	if grad.Shape().Equal(target) {
		return grad
	}

	// Sum away the leading axes added by rank extension.
	lead := grad.Rank() - len(target)
	if lead > 0 {
		axes := make([]int, lead)
		for i := range axes {
			axes[i] = i
		}
		grad = tensor.Sum(grad, axes...)
	}

	// Sum axes the operand held at size 1; keep them via a reshape so the
	// result lands exactly on the operand shape.
	for d := 0; d < len(target); d++ {
		if target[d] == 1 && grad.Shape()[d] != 1 {
			grad = tensor.Sum(grad, d).ExpandDims(d)
		}
	}
	if !grad.Shape().Equal(target) {
		grad = grad.Reshape(target)
	}
	return grad
}
