package graph

import "github.com/pkg/errors"

// Sentinel errors for the fatal failure modes of graph construction and
// evaluation. Match with errors.Is; call sites wrap them with context.
var (
	// ErrInvalidConstruction: a node was given both a concrete value and a
	// placeholder name/shape, or neither.
	ErrInvalidConstruction = errors.New("graph: node requires either a value or a placeholder name and shape")

	// ErrShapeMismatch: operand shapes are incompatible, a bound placeholder
	// value disagrees with its declared shape, or a contraction depth
	// exceeds an operand's rank.
	ErrShapeMismatch = errors.New("graph: shape mismatch")

	// ErrUnsupportedOperand: an operand has a type or value an operator
	// cannot accept, e.g. a non-finite power exponent or an unliftable
	// constant.
	ErrUnsupportedOperand = errors.New("graph: unsupported operand")
)
