// Package graph implements a reverse-mode automatic-differentiation engine
// over dense tensors.
//
// Callers build a directed acyclic graph of Nodes with the operator methods
// (Add, Mul, Pow, Sum, Contract, ...), evaluate it with Forward against a
// set of named placeholder bindings, and obtain exact gradients of the root
// with respect to every ancestor with Backward. Graphs are build-once,
// evaluate-many: a root's topological order is computed on first use and
// reused, and the parent set of a node is fixed at construction, so a cached
// order can never go stale.
//
// Invalid numeric domains (log of a negative, arcsin outside [-1, 1], an
// unbound placeholder) propagate as NaN values rather than faults.
package graph

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ascent-ml/ascent/internal/tensor"
)

// Node is a vertex of the computation graph. It owns a value tensor of a
// fixed shape, an accumulated-gradient tensor populated by Backward, and
// references to the nodes it was derived from.
type Node struct {
	value   *tensor.Dense
	grad    *tensor.Dense
	shape   tensor.Shape
	parents []*Node
	op      operation // nil for leaves, placeholders and constants
	label   string    // diagnostic tag of the producing operation
	name    string    // placeholder name, empty otherwise
	topo    []*Node   // cached topological order when used as a root
}

// NewNode constructs either a leaf holding a concrete value or a named
// placeholder of an explicit shape. Exactly one of the two forms must be
// given: a value with no name, or a name and shape with no value. Anything
// else fails with ErrInvalidConstruction.
func NewNode(value *tensor.Dense, name string, shape tensor.Shape) (*Node, error) {
	switch {
	case value != nil && name == "" && shape == nil:
		return Leaf(value), nil
	case value == nil && name != "":
		if shape == nil {
			return nil, errors.Wrapf(ErrInvalidConstruction, "placeholder %q has no shape", name)
		}
		return Placeholder(name, shape)
	case value != nil:
		return nil, errors.Wrapf(ErrInvalidConstruction, "value given together with name %q / shape %v", name, shape)
	default:
		return nil, errors.Wrap(ErrInvalidConstruction, "no value and no name given")
	}
}

// Leaf wraps a concrete tensor as a graph leaf. The tensor is adopted, not
// copied: external mutation of its buffer is visible to later forward
// passes, which is how optimizers update parameters in place.
func Leaf(value *tensor.Dense) *Node {
	return &Node{
		value: value,
		shape: value.Shape().Clone(),
	}
}

// Scalar wraps a plain number as a rank-0 constant node.
func Scalar(v float64) *Node {
	n := Leaf(tensor.Scalar(v))
	n.label = "const"
	return n
}

// Placeholder declares a named external input of a fixed shape. Its value
// is the all-NaN sentinel until a Forward call binds it.
func Placeholder(name string, shape tensor.Shape) (*Node, error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidConstruction, "placeholder name is empty")
	}
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(ErrShapeMismatch, "placeholder %q: %v", name, err)
	}
	return &Node{
		value: tensor.FullNaN(shape),
		shape: shape.Clone(),
		name:  name,
		label: "input",
	}, nil
}

// Lift coerces a non-Node operand into a constant node. Supported operand
// types are *Node (returned as is), *tensor.Dense, float64 and int.
func Lift(v any) (*Node, error) {
	switch x := v.(type) {
	case *Node:
		return x, nil
	case *tensor.Dense:
		n := Leaf(x)
		n.label = "const"
		return n, nil
	case float64:
		return Scalar(x), nil
	case int:
		return Scalar(float64(x)), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperand, "cannot lift %T into the graph", v)
	}
}

// newResult wires up a computed node: the eagerly evaluated output of op
// over the given parents. Shape is derived from the value and is fixed for
// the node's lifetime.
func newResult(value *tensor.Dense, parents []*Node, op operation, label string) *Node {
	return &Node{
		value:   value,
		shape:   value.Shape().Clone(),
		parents: parents,
		op:      op,
		label:   label,
	}
}

// Value returns the node's current value tensor.
func (n *Node) Value() *tensor.Dense {
	return n.value
}

// Grad returns the node's accumulated gradient, or nil before any backward
// pass has run.
func (n *Node) Grad() *tensor.Dense {
	return n.grad
}

// Shape returns the node's immutable shape.
func (n *Node) Shape() tensor.Shape {
	return n.shape
}

// Rank returns the number of axes of the node's shape.
func (n *Node) Rank() int {
	return len(n.shape)
}

// Label returns the diagnostic tag of the operation that produced the node.
// It carries no computational meaning.
func (n *Node) Label() string {
	return n.label
}

// Name returns the placeholder name, or "" for non-placeholder nodes.
func (n *Node) Name() string {
	return n.name
}

// IsPlaceholder reports whether the node is an external input bound by name
// during Forward.
func (n *Node) IsPlaceholder() bool {
	return n.name != ""
}

// Parents returns a copy of the node's parent references.
func (n *Node) Parents() []*Node {
	return append([]*Node(nil), n.parents...)
}

// String renders a short diagnostic form.
func (n *Node) String() string {
	switch {
	case n.name != "":
		return fmt.Sprintf("Node(input %q, shape=%v)", n.name, n.shape)
	case n.op == nil:
		return fmt.Sprintf("Node(leaf, shape=%v)", n.shape)
	default:
		return fmt.Sprintf("Node(op=%s, shape=%v)", n.label, n.shape)
	}
}
