package graph

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ascent-ml/ascent/internal/tensor"
)

// contractOp: generalized tensor product contracting the last depth axes
// of the left operand against the first depth axes of the right.
//
// The backward rules fall out of the same contraction applied over the
// complementary axes of the fully transposed operands:
//
//	grad_a = contract(grad_out, b^T, rank(b)-depth)
//	grad_b = contract(a^T, grad_out, rank(a)-depth)
//
// which for depth 1 on matrices are the familiar matmul identities
// grad_A = grad_C · B^T and grad_B = A^T · grad_C.
type contractOp struct {
	depth int
}

func (op contractOp) forward(out *Node) {
	value, err := tensor.Contract(out.parents[0].value, out.parents[1].value, op.depth)
	if err != nil {
		// Shapes are fixed at node construction, so this cannot fail here.
		panic(err)
	}
	out.value = value
}

func (op contractOp) backward(out *Node) {
	a, b := out.parents[0], out.parents[1]

	gradA, err := tensor.Contract(out.grad, b.value.Transpose(), b.Rank()-op.depth)
	if err != nil {
		panic(err)
	}
	a.grad.Accumulate(gradA)

	gradB, err := tensor.Contract(a.value.Transpose(), out.grad, a.Rank()-op.depth)
	if err != nil {
		panic(err)
	}
	b.grad.Accumulate(gradB)
}

// Contract computes the generalized tensor product of a and b: the last
// depth axes of a contract against the first depth axes of b, innermost
// first. The result has rank(a) + rank(b) - 2*depth axes. A depth that
// exceeds either operand's rank, or paired axes of different sizes, fail
// with ErrShapeMismatch.
func Contract(a, b *Node, depth int) (*Node, error) {
	value, err := tensor.Contract(a.value, b.value, depth)
	if err != nil {
		return nil, errors.Wrapf(ErrShapeMismatch, "contract: %v", err)
	}
	return newResult(value, []*Node{a, b}, contractOp{depth: depth}, fmt.Sprintf("@%d", depth)), nil
}

// MatMul is Contract with depth 1: the ordinary matrix product for rank-2
// operands, and its natural generalization otherwise. Panics on
// incompatible shapes.
func MatMul(a, b *Node) *Node {
	out, err := Contract(a, b, 1)
	if err != nil {
		panic(err)
	}
	return out
}
