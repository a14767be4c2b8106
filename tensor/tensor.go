// Copyright 2026 Ascent ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API of the dense float64 array primitive the
// graph engine computes over.
//
// It exposes shape introspection, creation helpers, elementwise arithmetic
// with NumPy-style broadcasting, where-style selection, elementwise
// transcendental functions, axis-parameterized sum reduction, axis
// permutation, depth-k tensor contraction, and NaN predicates.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := tensor.Ones(tensor.Shape{3})
//	z := tensor.Add(x, y) // shape (2, 3), y broadcast over axis 0
package tensor

import "github.com/ascent-ml/ascent/internal/tensor"

// Shape represents the dimensions of a tensor. Shape{} is a scalar.
type Shape = tensor.Shape

// Dense is a dense, row-major float64 tensor.
type Dense = tensor.Dense

// BroadcastShapes applies NumPy broadcasting rules to a pair of shapes.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// New allocates a zero-filled tensor of the given shape.
func New(shape Shape) (*Dense, error) {
	return tensor.New(shape)
}

// FromSlice builds a tensor from a flat row-major slice.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros. Panics on an invalid shape.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *Dense {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with the given value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// FullNaN creates a tensor with every element set to NaN.
func FullNaN(shape Shape) *Dense {
	return tensor.FullNaN(shape)
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar(value float64) *Dense {
	return tensor.Scalar(value)
}

// Randn creates a tensor with samples from the standard normal distribution.
func Randn(shape Shape) *Dense {
	return tensor.Randn(shape)
}

// Add performs elementwise addition with broadcasting.
func Add(a, b *Dense) *Dense {
	return tensor.Add(a, b)
}

// Sub performs elementwise subtraction with broadcasting.
func Sub(a, b *Dense) *Dense {
	return tensor.Sub(a, b)
}

// Mul performs elementwise multiplication with broadcasting.
func Mul(a, b *Dense) *Dense {
	return tensor.Mul(a, b)
}

// Div performs elementwise division with broadcasting.
func Div(a, b *Dense) *Dense {
	return tensor.Div(a, b)
}

// Pow raises every element to a fixed real exponent.
func Pow(t *Dense, exponent float64) *Dense {
	return tensor.Pow(t, exponent)
}

// Scale multiplies every element by s.
func Scale(t *Dense, s float64) *Dense {
	return tensor.Scale(t, s)
}

// Where selects elements from x where cond is non-zero and from y
// elsewhere, broadcasting all three operands.
func Where(cond, x, y *Dense) *Dense {
	return tensor.Where(cond, x, y)
}

// Sum reduces over the given axes; with no axes it sums everything to a
// scalar.
func Sum(t *Dense, axes ...int) *Dense {
	return tensor.Sum(t, axes...)
}

// Contract computes the generalized tensor product of a and b: the last
// depth axes of a contract against the first depth axes of b.
func Contract(a, b *Dense, depth int) (*Dense, error) {
	return tensor.Contract(a, b, depth)
}
