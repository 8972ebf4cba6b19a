// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
)

// Optimizer is the interface training loops drive.
type Optimizer = optim.Optimizer

// SGD

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig configures SGD. A zero LR defaults to 0.01; zero Momentum
// means plain gradient descent.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer over the given parameters.
//
// Example:
//
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1, Momentum: 0.9})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam

// Adam implements the Adam optimizer with bias-corrected first and second
// moment estimates.
type Adam = optim.Adam

// AdamConfig configures Adam. Zero values default to LR 0.001, Beta1 0.9,
// Beta2 0.999, Eps 1e-8.
type AdamConfig = optim.AdamConfig

// NewAdam creates an Adam optimizer over the given parameters.
//
// Example:
//
//	opt := optim.NewAdam(model.Parameters(), optim.AdamConfig{})
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
