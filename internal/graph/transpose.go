package graph

// transposeOp: out = x with the axis order reversed. The gradient of a
// transpose is the transpose of the incoming gradient.
type transposeOp struct{}

func (transposeOp) forward(out *Node) {
	out.value = out.parents[0].value.Transpose()
}

func (transposeOp) backward(out *Node) {
	out.parents[0].grad.Accumulate(out.grad.Transpose())
}

// T returns the node with its axis order reversed (the ordinary transpose
// for matrices, identity for scalars and vectors).
func (a *Node) T() *Node {
	return newResult(a.value.Transpose(), []*Node{a}, transposeOp{}, "T")
}
