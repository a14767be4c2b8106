package graph

import "github.com/ascent-ml/ascent/internal/tensor"

// The unary operator family. Domain-invalid inputs (log of a negative,
// arctanh beyond ±1, ...) never raise: they produce NaN in the forward
// value and NaN in the backward contribution, mirroring the masked-NaN
// treatment of the gradients below.

// reluOp: out = max(x, 0).
//
// The gradient passes through where the output is positive and is zero
// elsewhere; NaN outputs pass zero gradient.
type reluOp struct{}

func (reluOp) forward(out *Node) {
	out.value = tensor.MaximumScalar(out.parents[0].value, 0)
}

func (reluOp) backward(out *Node) {
	x := out.parents[0]
	contrib := tensor.Where(out.value.Greater(0), out.grad, tensor.Zeros(x.shape))
	x.grad.Accumulate(contrib)
}

// ReLU returns elementwise max(a, 0).
func (a *Node) ReLU() *Node {
	return newResult(tensor.MaximumScalar(a.value, 0), []*Node{a}, reluOp{}, "ReLU")
}

// logOp: out = ln(x), gradient 1/x. Negative inputs are masked to NaN
// before the reciprocal so the invalid domain stays NaN instead of
// producing a misleading finite gradient.
type logOp struct{}

func (logOp) forward(out *Node) {
	out.value = tensor.Log(out.parents[0].value)
}

func (logOp) backward(out *Node) {
	x := out.parents[0]
	valid := tensor.Where(x.value.GreaterEqual(0), x.value, tensor.FullNaN(x.shape))
	x.grad.Accumulate(tensor.Mul(tensor.Pow(valid, -1), out.grad))
}

// Log returns the elementwise natural logarithm.
func (a *Node) Log() *Node {
	return newResult(tensor.Log(a.value), []*Node{a}, logOp{}, "log")
}

// log1pOp: out = ln(1+x), gradient 1/(1+x); inputs below -1 are masked
// to NaN.
type log1pOp struct{}

func (log1pOp) forward(out *Node) {
	out.value = tensor.Log1p(out.parents[0].value)
}

func (log1pOp) backward(out *Node) {
	x := out.parents[0]
	valid := tensor.Where(x.value.GreaterEqual(-1), x.value, tensor.FullNaN(x.shape))
	x.grad.Accumulate(tensor.Mul(tensor.Pow(tensor.AddScalar(valid, 1), -1), out.grad))
}

// Log1p returns elementwise log(1 + a).
func (a *Node) Log1p() *Node {
	return newResult(tensor.Log1p(a.value), []*Node{a}, log1pOp{}, "log1p")
}

// tanhOp: out = tanh(x), gradient 1 - tanh(x)^2. The forward value is the
// tanh already, so the local gradient reuses it.
type tanhOp struct{}

func (tanhOp) forward(out *Node) {
	out.value = tensor.Tanh(out.parents[0].value)
}

func (tanhOp) backward(out *Node) {
	x := out.parents[0]
	local := tensor.AddScalar(tensor.Scale(tensor.Mul(out.value, out.value), -1), 1)
	x.grad.Accumulate(tensor.Mul(local, out.grad))
}

// Tanh returns the elementwise hyperbolic tangent.
func (a *Node) Tanh() *Node {
	return newResult(tensor.Tanh(a.value), []*Node{a}, tanhOp{}, "tanh")
}

// arctanhOp: out = atanh(x), gradient 1/(1-x^2); inputs outside [-1, 1]
// are masked to NaN.
type arctanhOp struct{}

func (arctanhOp) forward(out *Node) {
	out.value = tensor.Arctanh(out.parents[0].value)
}

func (arctanhOp) backward(out *Node) {
	x := out.parents[0]
	valid := tensor.Where(x.value.Within(-1, 1), x.value, tensor.FullNaN(x.shape))
	denom := tensor.AddScalar(tensor.Scale(tensor.Mul(valid, valid), -1), 1)
	x.grad.Accumulate(tensor.Mul(tensor.Pow(denom, -1), out.grad))
}

// Arctanh returns the elementwise inverse hyperbolic tangent.
func (a *Node) Arctanh() *Node {
	return newResult(tensor.Arctanh(a.value), []*Node{a}, arctanhOp{}, "arctanh")
}

// arcsinOp: out = asin(x), gradient 1/sqrt(1-x^2); inputs outside [-1, 1]
// are masked to NaN.
type arcsinOp struct{}

func (arcsinOp) forward(out *Node) {
	out.value = tensor.Arcsin(out.parents[0].value)
}

func (arcsinOp) backward(out *Node) {
	x := out.parents[0]
	valid := tensor.Where(x.value.Within(-1, 1), x.value, tensor.FullNaN(x.shape))
	denom := tensor.AddScalar(tensor.Scale(tensor.Mul(valid, valid), -1), 1)
	x.grad.Accumulate(tensor.Mul(tensor.Pow(denom, -0.5), out.grad))
}

// Arcsin returns the elementwise inverse sine.
func (a *Node) Arcsin() *Node {
	return newResult(tensor.Arcsin(a.value), []*Node{a}, arcsinOp{}, "arcsin")
}
