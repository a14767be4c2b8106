package graph

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/ascent-ml/ascent/internal/tensor"
)

// mustBroadcast validates that two operand shapes can combine elementwise.
// Shape errors are programmer errors at graph-construction time and panic
// with a wrapped ErrShapeMismatch.
func mustBroadcast(opName string, a, b *Node) {
	if _, err := tensor.BroadcastShapes(a.shape, b.shape); err != nil {
		panic(errors.Wrapf(ErrShapeMismatch, "%s: %v", opName, err))
	}
}

// addOp: out = a + b, elementwise with broadcasting.
//
// d(a+b)/da = d(a+b)/db = 1, so the output gradient passes through to both
// operands, folded back over any broadcast axes.
type addOp struct{}

func (addOp) forward(out *Node) {
	out.value = tensor.Add(out.parents[0].value, out.parents[1].value)
}

func (addOp) backward(out *Node) {
	for _, p := range out.parents {
		p.grad.Accumulate(reduceBroadcast(out.grad, p.shape))
	}
}

// Add returns the elementwise sum of a and b with standard broadcasting.
func (a *Node) Add(b *Node) *Node {
	mustBroadcast("add", a, b)
	return newResult(tensor.Add(a.value, b.value), []*Node{a, b}, addOp{}, "+")
}

// mulOp: out = a * b, elementwise with broadcasting.
//
// d(a*b)/da = b and d(a*b)/db = a: each operand's gradient is the output
// gradient times the other operand, folded back over broadcast axes.
type mulOp struct{}

func (mulOp) forward(out *Node) {
	out.value = tensor.Mul(out.parents[0].value, out.parents[1].value)
}

func (mulOp) backward(out *Node) {
	a, b := out.parents[0], out.parents[1]
	a.grad.Accumulate(reduceBroadcast(tensor.Mul(b.value, out.grad), a.shape))
	b.grad.Accumulate(reduceBroadcast(tensor.Mul(a.value, out.grad), b.shape))
}

// Mul returns the elementwise product of a and b with standard broadcasting.
func (a *Node) Mul(b *Node) *Node {
	mustBroadcast("mul", a, b)
	return newResult(tensor.Mul(a.value, b.value), []*Node{a, b}, mulOp{}, "*")
}

// powOp: out = x^k for a fixed real exponent k.
//
// dx^k/dx = k * x^(k-1).
type powOp struct {
	exponent float64
}

func (op powOp) forward(out *Node) {
	out.value = tensor.Pow(out.parents[0].value, op.exponent)
}

func (op powOp) backward(out *Node) {
	x := out.parents[0]
	local := tensor.Scale(tensor.Pow(x.value, op.exponent-1), op.exponent)
	x.grad.Accumulate(tensor.Mul(local, out.grad))
}

// Pow raises every element to a fixed real exponent. The exponent is a
// plain number, not a tensor; a non-finite exponent fails with
// ErrUnsupportedOperand.
func (a *Node) Pow(exponent float64) *Node {
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) {
		panic(errors.Wrapf(ErrUnsupportedOperand, "power exponent must be a finite real, got %v", exponent))
	}
	return newResult(tensor.Pow(a.value, exponent), []*Node{a},
		powOp{exponent: exponent}, fmt.Sprintf("**%g", exponent))
}

// Neg returns -a, defined as multiplication by -1.
func (a *Node) Neg() *Node {
	return a.MulScalar(-1)
}

// Sub returns a - b, defined as a + (-b).
func (a *Node) Sub(b *Node) *Node {
	return a.Add(b.Neg())
}

// Div returns a / b, defined as a * b^-1.
func (a *Node) Div(b *Node) *Node {
	return a.Mul(b.Pow(-1))
}

// AddScalar adds a plain number, wrapped as a constant node.
func (a *Node) AddScalar(s float64) *Node {
	return a.Add(Scalar(s))
}

// SubScalar subtracts a plain number.
func (a *Node) SubScalar(s float64) *Node {
	return a.AddScalar(-s)
}

// MulScalar multiplies by a plain number, wrapped as a constant node.
func (a *Node) MulScalar(s float64) *Node {
	return a.Mul(Scalar(s))
}

// DivScalar divides by a plain number.
func (a *Node) DivScalar(s float64) *Node {
	return a.Mul(Scalar(s).Pow(-1))
}
