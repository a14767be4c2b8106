// Copyright 2026 Ascent ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides small neural-network building blocks on top of the
// graph engine.
//
// Layers hold their parameters as graph leaves and consume inputs as graph
// nodes, typically placeholders, so one graph serves every training step:
//
//	x, _ := graph.Placeholder("x", tensor.Shape{batch, 3})
//	model := nn.NewMLP(3, []int{8, 1})
//	loss := nn.MSE(model.Forward(x), target)
//	// per step: loss.Forward(bindings); loss.Backward(); optimizer.Step()
package nn

import (
	"math"

	"github.com/samber/lo"

	"github.com/ascent-ml/ascent/graph"
	"github.com/ascent-ml/ascent/tensor"
)

// Module is a graph-building unit with trainable parameters.
type Module interface {
	// Forward wires the module's computation onto the input node.
	Forward(x *graph.Node) *graph.Node

	// Parameters returns the leaf nodes an optimizer should update.
	Parameters() []*graph.Node
}

// Linear is a fully connected layer: y = x @ W + b, with x shaped
// (batch, in), W shaped (in, out) and b shaped (out,) broadcast over the
// batch axis.
type Linear struct {
	W *graph.Node
	B *graph.Node
}

// NewLinear creates a Linear layer with scaled-normal weights and zero bias.
func NewLinear(in, out int) *Linear {
	weights := tensor.Scale(tensor.Randn(tensor.Shape{in, out}), 1/math.Sqrt(float64(in)))
	return &Linear{
		W: graph.Leaf(weights),
		B: graph.Leaf(tensor.Zeros(tensor.Shape{out})),
	}
}

// Forward computes x @ W + b.
func (l *Linear) Forward(x *graph.Node) *graph.Node {
	return graph.MatMul(x, l.W).Add(l.B)
}

// Parameters returns [W, b].
func (l *Linear) Parameters() []*graph.Node {
	return []*graph.Node{l.W, l.B}
}

// MLP is a stack of Linear layers with ReLU between them (none after the
// last layer).
type MLP struct {
	Layers []*Linear
}

// NewMLP creates an MLP mapping in features through the given layer widths.
func NewMLP(in int, widths []int) *MLP {
	layers := make([]*Linear, len(widths))
	for i, width := range widths {
		layers[i] = NewLinear(in, width)
		in = width
	}
	return &MLP{Layers: layers}
}

// Forward chains the layers over the input node.
func (m *MLP) Forward(x *graph.Node) *graph.Node {
	for i, layer := range m.Layers {
		x = layer.Forward(x)
		if i < len(m.Layers)-1 {
			x = x.ReLU()
		}
	}
	return x
}

// Parameters returns the parameters of every layer.
func (m *MLP) Parameters() []*graph.Node {
	return lo.FlatMap(m.Layers, func(l *Linear, _ int) []*graph.Node {
		return l.Parameters()
	})
}

// MSE builds the mean squared error between a prediction node and a target
// node as a scalar graph node.
func MSE(pred, target *graph.Node) *graph.Node {
	diff := pred.Sub(target)
	return diff.Mul(diff).Mean()
}
