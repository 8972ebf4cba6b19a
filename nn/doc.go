// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the Sprout
// training engine.
//
// # Overview
//
// This package contains:
//   - Module: the interface every layer and model implements
//   - Linear: fully connected layer y = x·Wᵀ + b
//   - ReLU, Sigmoid, Tanh: activation layers
//   - Sequential: composes modules into a chain
//   - MLP: multi-layer perceptron with named, checkpointable parameters
//   - MSELoss, CrossEntropyLoss: differentiable losses
//   - Argmax, Accuracy: classification metrics
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/sprout-ml/sprout/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model, _ := nn.NewMLP(784, []int{128, 64}, 10, rng)
//
//	    logits, _ := model.Forward(batch)   // [batch, 10]
//	    classes, _ := model.Predict(batch)  // [batch] int32
//	}
//
// Parameters are float32, initialized with Xavier uniform weights and
// zero biases from an explicit random source, so a fixed seed rebuilds
// the same model.
package nn
