// Copyright 2026 Ascent ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-ml/ascent/graph"
	"github.com/ascent-ml/ascent/tensor"
)

func TestLinearShapes(t *testing.T) {
	layer := NewLinear(3, 5)
	assert.True(t, layer.W.Shape().Equal(tensor.Shape{3, 5}))
	assert.True(t, layer.B.Shape().Equal(tensor.Shape{5}))

	x := graph.Leaf(tensor.Randn(tensor.Shape{4, 3}))
	out := layer.Forward(x)
	assert.True(t, out.Shape().Equal(tensor.Shape{4, 5}))
}

func TestLinearForwardValues(t *testing.T) {
	w, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b, _ := tensor.FromSlice([]float64{10, 20}, tensor.Shape{2})
	layer := &Linear{W: graph.Leaf(w), B: graph.Leaf(b)}

	x, _ := tensor.FromSlice([]float64{1, 1}, tensor.Shape{1, 2})
	out := layer.Forward(graph.Leaf(x))

	// [1 1] @ [[1 2] [3 4]] + [10 20] = [4+10, 6+20]
	assert.Equal(t, []float64{14, 26}, out.Value().Data())
}

func TestLinearParameters(t *testing.T) {
	layer := NewLinear(2, 3)
	params := layer.Parameters()
	require.Len(t, params, 2)
	assert.Same(t, layer.W, params[0])
	assert.Same(t, layer.B, params[1])
}

func TestMLPForwardShapeAndParams(t *testing.T) {
	model := NewMLP(3, []int{8, 4, 1})
	require.Len(t, model.Layers, 3)
	assert.Len(t, model.Parameters(), 6)

	x := graph.Leaf(tensor.Randn(tensor.Shape{5, 3}))
	out := model.Forward(x)
	assert.True(t, out.Shape().Equal(tensor.Shape{5, 1}))
}

func TestMLPNoActivationAfterLastLayer(t *testing.T) {
	// A single-layer MLP can produce negatives; a trailing ReLU could not.
	w := tensor.Full(tensor.Shape{1, 1}, -1)
	model := &MLP{Layers: []*Linear{{
		W: graph.Leaf(w),
		B: graph.Leaf(tensor.Zeros(tensor.Shape{1})),
	}}}

	x := graph.Leaf(tensor.Ones(tensor.Shape{1, 1}))
	out := model.Forward(x)
	assert.Equal(t, -1.0, out.Value().Item())
}

func TestMSE(t *testing.T) {
	pred, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	target, _ := tensor.FromSlice([]float64{0, 0}, tensor.Shape{2})

	loss := MSE(graph.Leaf(pred), graph.Leaf(target))
	require.Equal(t, 0, loss.Rank())
	assert.Equal(t, 2.5, loss.Value().Item())
}

func TestMSEGradientFlowsToParameters(t *testing.T) {
	layer := NewLinear(2, 1)
	x := graph.Leaf(tensor.Randn(tensor.Shape{4, 2}))
	target := graph.Leaf(tensor.Randn(tensor.Shape{4, 1}))

	loss := MSE(layer.Forward(x), target)
	loss.Backward()

	for _, p := range layer.Parameters() {
		require.NotNil(t, p.Grad())
		assert.True(t, p.Grad().Shape().Equal(p.Shape()))
	}
}

func TestMLPWithPlaceholderInput(t *testing.T) {
	x, err := graph.Placeholder("x", tensor.Shape{2, 3})
	require.NoError(t, err)

	model := NewMLP(3, []int{4, 1})
	loss := model.Forward(x).Mul(model.Forward(x)).Mean()

	batch := tensor.Randn(tensor.Shape{2, 3})
	require.NoError(t, loss.Forward(map[string]*tensor.Dense{"x": batch}))
	assert.False(t, loss.Value().AnyNaN())
}
