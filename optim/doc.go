// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural
// networks.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation with bias correction
//   - Optimizer: the interface training loops drive
//
// # Basic Usage
//
//	import (
//	    "github.com/sprout-ml/sprout/nn"
//	    "github.com/sprout-ml/sprout/optim"
//	)
//
//	func main() {
//	    model, _ := nn.NewMLP(784, []int{128}, 10, rng)
//	    opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    // per batch: forward, loss, then
//	    opt.ZeroGrad()
//	    // backward, then
//	    _ = opt.Step()
//	}
//
// Optimizers read each parameter's accumulated gradient as-is. Zeroing
// between steps is the caller's responsibility; skipping it makes batches
// sum into each other.
package optim
