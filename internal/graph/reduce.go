package graph

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ascent-ml/ascent/internal/tensor"
)

// sumOp: out = sum of x over a fixed axis set. The backward rule
// broadcasts the output gradient back across the reduced axes: every
// element that fed a sum receives that sum's gradient undivided.
type sumOp struct {
	axes []int // normalized, ascending
}

func (op sumOp) forward(out *Node) {
	out.value = tensor.Sum(out.parents[0].value, op.axes...)
}

func (op sumOp) backward(out *Node) {
	x := out.parents[0]
	expanded := out.grad.ExpandDims(op.axes...)
	x.grad.Accumulate(expanded.BroadcastTo(x.shape))
}

// Sum reduces over the given axes, removing them from the shape. Negative
// axes count from the end; no axes means reduce everything to a scalar.
func (a *Node) Sum(axes ...int) *Node {
	norm, err := tensor.NormalizeAxes(a.Rank(), axes)
	if err != nil {
		panic(errors.Wrapf(ErrShapeMismatch, "sum: %v", err))
	}
	return newResult(tensor.Sum(a.value, norm...), []*Node{a}, sumOp{axes: norm}, "sum")
}

// Mean reduces over the given axes and divides by the number of reduced
// elements. It is defined as Sum scaled by the reciprocal of the product of
// the reduced axis sizes, so its gradient is the sum rule scaled the same
// way.
func (a *Node) Mean(axes ...int) *Node {
	norm, err := tensor.NormalizeAxes(a.Rank(), axes)
	if err != nil {
		panic(errors.Wrapf(ErrShapeMismatch, "mean: %v", err))
	}
	denom := lo.Reduce(norm, func(acc int, ax int, _ int) int {
		return acc * a.shape[ax]
	}, 1)
	return a.Sum(norm...).MulScalar(1 / float64(denom))
}
