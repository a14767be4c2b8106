// Package tensor implements the dense float64 n-dimensional array that the
// graph engine computes over.
//
// The package is deliberately narrow: shape introspection, elementwise
// arithmetic with NumPy-style broadcasting, where-style selection,
// elementwise transcendental functions, axis-parameterized sum reduction,
// axis permutation, depth-k tensor contraction, and NaN predicates. Rank 0
// (Shape{}) is a scalar holding a single element.
package tensor

import "fmt"

// Shape represents the dimensions of a tensor. Shape{} is a scalar.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at axis %d: %d", i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes have the same rank and dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates row-major strides: stride[i] is the flat-index step of
// one increment along axis i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape like a slice literal, e.g. "(3, 4)".
func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(dim)
	}
	return out + ")"
}

// BroadcastShapes applies NumPy broadcasting rules to a pair of shapes.
//
// Shapes are aligned from the right; two dimensions are compatible when they
// are equal or one of them is 1, and missing leading dimensions count as 1.
//
//	(3, 1) + (3, 5) → (3, 5)
//	(3, 4) + (4,)   → (3, 4)
//	(3, 4) + (3, 5) → error
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := max(len(a), len(b))
	result := make(Shape, rank)

	for i := 0; i < rank; i++ {
		aDim, bDim := 1, 1
		if idx := len(a) - 1 - i; idx >= 0 {
			aDim = a[idx]
		}
		if idx := len(b) - 1 - i; idx >= 0 {
			bDim = b[idx]
		}

		switch {
		case aDim == bDim:
			result[rank-1-i] = aDim
		case aDim == 1:
			result[rank-1-i] = bDim
		case bDim == 1:
			result[rank-1-i] = aDim
		default:
			return nil, fmt.Errorf("shapes %v and %v are not broadcast-compatible at axis %d", a, b, rank-1-i)
		}
	}
	return result, nil
}
