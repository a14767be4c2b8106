// Copyright 2026 Ascent ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ascent-ml/ascent/graph"
	"github.com/ascent-ml/ascent/nn"
	"github.com/ascent-ml/ascent/tensor"
)

func TestStepPlainSGD(t *testing.T) {
	v, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	p := graph.Leaf(v)

	// L = sum(p^2), dL/dp = 2p.
	loss := p.Pow(2).Sum()
	loss.Backward()

	sgd := NewSGD([]*graph.Node{p}, SGDConfig{LR: 0.1})
	sgd.Step()

	assert.InDeltaSlice(t, []float64{1 - 0.1*2, 2 - 0.1*4}, p.Value().Data(), 1e-15)
}

func TestStepSkipsUnpopulatedGradients(t *testing.T) {
	p := graph.Leaf(tensor.Ones(tensor.Shape{2}))
	sgd := NewSGD([]*graph.Node{p}, SGDConfig{LR: 0.5})

	sgd.Step()
	assert.Equal(t, []float64{1, 1}, p.Value().Data())
}

func TestStepMomentum(t *testing.T) {
	p := graph.Leaf(tensor.Scalar(1))
	loss := p.Pow(2).Sum()

	sgd := NewSGD([]*graph.Node{p}, SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: g = 2, v = 2, p = 1 - 0.2 = 0.8
	require.NoError(t, loss.Forward(nil))
	loss.Backward()
	sgd.Step()
	assert.InDelta(t, 0.8, p.Value().Item(), 1e-15)

	// Step 2: g = 1.6, v = 0.9*2 + 1.6 = 3.4, p = 0.8 - 0.34 = 0.46
	require.NoError(t, loss.Forward(nil))
	loss.Backward()
	sgd.Step()
	assert.InDelta(t, 0.46, p.Value().Item(), 1e-12)
}

func TestZeroGrad(t *testing.T) {
	p := graph.Leaf(tensor.Scalar(3))
	loss := p.Pow(2).Sum()
	loss.Backward()
	require.Equal(t, 6.0, p.Grad().Item())

	sgd := NewSGD([]*graph.Node{p}, SGDConfig{LR: 0.1})
	sgd.ZeroGrad()
	assert.Equal(t, 0.0, p.Grad().Item())
}

// A full training loop: fit y = 2x - 1 with a single Linear layer.
func TestTrainingReducesLoss(t *testing.T) {
	xs, _ := tensor.FromSlice([]float64{-1, 0, 1, 2}, tensor.Shape{4, 1})
	ys, _ := tensor.FromSlice([]float64{-3, -1, 1, 3}, tensor.Shape{4, 1})

	layer := nn.NewLinear(1, 1)
	loss := nn.MSE(layer.Forward(graph.Leaf(xs)), graph.Leaf(ys))

	sgd := NewSGD(layer.Parameters(), SGDConfig{LR: 0.05})

	require.NoError(t, loss.Forward(nil))
	initial := loss.Value().Item()

	for i := 0; i < 200; i++ {
		require.NoError(t, loss.Forward(nil))
		loss.Backward()
		sgd.Step()
	}

	require.NoError(t, loss.Forward(nil))
	final := loss.Value().Item()

	assert.Less(t, final, initial)
	assert.Less(t, final, 1e-2)
	assert.InDelta(t, 2.0, layer.W.Value().Item(), 0.1)
	assert.InDelta(t, -1.0, layer.B.Value().Item(), 0.1)
}

func TestMomentumConvergesOnRegression(t *testing.T) {
	xs, _ := tensor.FromSlice([]float64{0, 1, 2, 3}, tensor.Shape{4, 1})
	ys, _ := tensor.FromSlice([]float64{1, 3, 5, 7}, tensor.Shape{4, 1})

	layer := nn.NewLinear(1, 1)
	loss := nn.MSE(layer.Forward(graph.Leaf(xs)), graph.Leaf(ys))

	sgd := NewSGD(layer.Parameters(), SGDConfig{LR: 0.01, Momentum: 0.9})
	for i := 0; i < 300; i++ {
		require.NoError(t, loss.Forward(nil))
		loss.Backward()
		sgd.Step()
	}

	require.NoError(t, loss.Forward(nil))
	assert.Less(t, loss.Value().Item(), 0.05)
}
