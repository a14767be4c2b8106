// Copyright 2026 Ascent ML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers over graph leaves.
package optim

import "github.com/ascent-ml/ascent/graph"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// With momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Parameters are graph leaves; Step mutates their value buffers in place,
// so the next Forward pass sees the updated weights without rebuilding the
// graph.
type SGD struct {
	params     []*graph.Node
	lr         float64
	momentum   float64
	velocities map[*graph.Node][]float64
}

// SGDConfig holds the SGD hyperparameters.
type SGDConfig struct {
	LR       float64 // learning rate
	Momentum float64 // momentum factor in [0, 1)
}

// NewSGD creates an SGD optimizer over the given parameter leaves.
func NewSGD(params []*graph.Node, config SGDConfig) *SGD {
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*graph.Node][]float64),
	}
}

// Step applies one update from each parameter's accumulated gradient.
// Parameters whose gradient has not been populated are skipped.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		value := p.Value().Data()
		gradData := grad.Data()

		if s.momentum == 0 {
			for i := range value {
				value[i] -= s.lr * gradData[i]
			}
			continue
		}

		velocity, ok := s.velocities[p]
		if !ok {
			velocity = make([]float64, len(value))
			s.velocities[p] = velocity
		}
		for i := range value {
			velocity[i] = s.momentum*velocity[i] + gradData[i]
			value[i] -= s.lr * velocity[i]
		}
	}
}

// ZeroGrad clears every parameter's gradient accumulator, for use with
// BackwardAccumulate workflows.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		if grad := p.Grad(); grad != nil {
			grad.Fill(0)
		}
	}
}
