// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Module is the interface every layer and model implements.
type Module = nn.Module

// Parameter is a named trainable tensor.
type Parameter = nn.Parameter

// NewParameter wraps a tensor as a named trainable parameter, enabling
// gradient tracking on it.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Linear is a fully connected layer computing y = x·Wᵀ + b.
type Linear = nn.Linear

// NewLinear creates a Linear layer with Xavier-initialized weights and
// zero biases drawn from rng.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) (*Linear, error) {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// ReLU applies max(x, 0) elementwise.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation layer.
func NewReLU() *ReLU { return nn.NewReLU() }

// Sigmoid applies 1/(1+e^-x) elementwise.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation layer.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// Tanh applies the hyperbolic tangent elementwise.
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation layer.
func NewTanh() *Tanh { return nn.NewTanh() }

// Sequential chains modules, feeding each output into the next module.
type Sequential = nn.Sequential

// NewSequential composes modules into a chain.
//
// Example:
//
//	model := nn.NewSequential(layer1, nn.NewReLU(), layer2)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// MLP is a multi-layer perceptron: Linear+ReLU hidden layers followed by
// a Linear output layer producing logits. Its parameters carry stable
// qualified names, so models round-trip through checkpoints.
type MLP = nn.MLP

// NewMLP creates an MLP with the given input width, hidden layer widths,
// and output width.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model, err := nn.NewMLP(784, []int{128, 64}, 10, rng)
func NewMLP(inputSize int, hiddenSizes []int, outputSize int, rng *rand.Rand) (*MLP, error) {
	return nn.NewMLP(inputSize, hiddenSizes, outputSize, rng)
}

// Losses

// Loss reduces predictions and targets to a scalar differentiable loss.
type Loss = nn.Loss

// MSELoss computes mean((pred - target)²).
type MSELoss = nn.MSELoss

// NewMSELoss creates a mean squared error loss.
func NewMSELoss() *MSELoss { return nn.NewMSELoss() }

// CrossEntropyLoss computes the mean negative log-likelihood of int32
// class labels under softmax(logits).
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewCrossEntropyLoss creates a cross-entropy loss over logits.
func NewCrossEntropyLoss() *CrossEntropyLoss { return nn.NewCrossEntropyLoss() }

// Initialization

// XavierUniform samples uniform values in ±sqrt(6/(fanIn+fanOut)), the
// Glorot initialization that keeps activation variance stable across
// layers.
func XavierUniform(fanIn, fanOut int, shape tensor.Shape, dtype tensor.DataType, rng *rand.Rand) (*tensor.Tensor, error) {
	return nn.XavierUniform(fanIn, fanOut, shape, dtype, rng)
}

// Metrics

// Argmax returns the index of the largest value in each row of 2D logits
// as an int32 tensor. Ties resolve to the lowest index.
func Argmax(logits *tensor.Tensor) (*tensor.Tensor, error) {
	return nn.Argmax(logits)
}

// Accuracy returns the fraction of rows whose argmax matches the int32
// label.
func Accuracy(logits, labels *tensor.Tensor) (float64, error) {
	return nn.Accuracy(logits, labels)
}

// Errors

// Mismatch describes one parameter whose stored and expected state
// disagree.
type Mismatch = nn.Mismatch

// ShapeMismatchError reports every parameter that prevented a state load.
// Loads are all-or-nothing: when this error is returned, no parameter was
// modified.
type ShapeMismatchError = nn.ShapeMismatchError
