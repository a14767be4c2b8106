// Copyright 2026 Ascent ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph is the public API of the reverse-mode automatic-
// differentiation engine.
//
// Build a computation graph from leaves, placeholders and operator methods,
// evaluate it with Forward, and read exact gradients after Backward:
//
//	x, _ := graph.Placeholder("x", tensor.Shape{2, 2})
//	w := graph.Leaf(tensor.Randn(tensor.Shape{2, 2}))
//	loss := graph.MatMul(x, w).ReLU().Sum()
//
//	input, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	_ = loss.Forward(map[string]*tensor.Dense{"x": input})
//	loss.Backward()
//	_ = w.Grad() // dloss/dw
//
// Graphs are build-once, evaluate-many: rebind placeholders and call
// Forward again instead of reconstructing.
package graph

import (
	"github.com/ascent-ml/ascent/internal/graph"
	"github.com/ascent-ml/ascent/internal/tensor"
)

// Node is a vertex of the computation graph: a tensor value, its
// accumulated gradient, and the recompute/gradient behavior of the
// operation that produced it.
type Node = graph.Node

// Sentinel errors, matched with errors.Is.
var (
	ErrInvalidConstruction = graph.ErrInvalidConstruction
	ErrShapeMismatch       = graph.ErrShapeMismatch
	ErrUnsupportedOperand  = graph.ErrUnsupportedOperand
)

// NewNode constructs either a leaf holding a concrete value or a named
// placeholder of an explicit shape; exactly one of the two forms must be
// given.
func NewNode(value *tensor.Dense, name string, shape tensor.Shape) (*Node, error) {
	return graph.NewNode(value, name, shape)
}

// Leaf wraps a concrete tensor as a graph leaf.
func Leaf(value *tensor.Dense) *Node {
	return graph.Leaf(value)
}

// Scalar wraps a plain number as a rank-0 constant node.
func Scalar(v float64) *Node {
	return graph.Scalar(v)
}

// Placeholder declares a named external input of a fixed shape, bound on
// every Forward call.
func Placeholder(name string, shape tensor.Shape) (*Node, error) {
	return graph.Placeholder(name, shape)
}

// Lift coerces a non-Node operand (*tensor.Dense, float64, int) into a
// constant node.
func Lift(v any) (*Node, error) {
	return graph.Lift(v)
}

// Contract computes the generalized tensor product of a and b with the
// given contraction depth.
func Contract(a, b *Node, depth int) (*Node, error) {
	return graph.Contract(a, b, depth)
}

// MatMul is Contract with depth 1.
func MatMul(a, b *Node) *Node {
	return graph.MatMul(a, b)
}
