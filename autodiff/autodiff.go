// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operations on tensors that require gradients record nodes in a dynamic
// computation graph. Backward traverses the graph from a scalar root and
// adds each operation's contribution into its inputs' gradient
// accumulators.
//
// Example:
//
//	import (
//	    "github.com/sprout-ml/sprout/autodiff"
//	    "github.com/sprout-ml/sprout/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromFloat64([]float64{1, 2, 3}, tensor.Shape{3})
//	    x.SetRequiresGrad(true)
//
//	    y, _ := autodiff.Mul(x, x)
//	    loss, _ := autodiff.Sum(y)
//
//	    _ = autodiff.Backward(loss)
//	    _ = x.Grad() // dloss/dx = 2x
//	}
//
// Gradients accumulate additively across Backward calls until the caller
// zeroes them; nothing is reset implicitly.
package autodiff

import (
	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// GraphError reports a backward pass that cannot run, such as a non-scalar
// root or a malformed graph.
type GraphError = autodiff.GraphError

// Use replaces the backend all operations evaluate on. The default is the
// CPU backend.
func Use(b tensor.Backend) {
	autodiff.Use(b)
}

// Backend returns the backend operations currently evaluate on.
func Backend() tensor.Backend {
	return autodiff.Backend()
}

// Backward runs reverse-mode differentiation from a scalar root,
// accumulating gradients into every reachable tensor that requires them.
func Backward(root *tensor.Tensor) error {
	return autodiff.Backward(root)
}

// NoGrad disables gradient tracking until the returned function is called.
// Scopes nest.
//
//	defer autodiff.NoGrad()()
func NoGrad() func() {
	return autodiff.NoGrad()
}

// GradEnabled reports whether operations currently record graph nodes.
func GradEnabled() bool {
	return autodiff.GradEnabled()
}

// Apply dispatches an operation by kind. The named functions below are
// usually clearer; Apply exists for generic graph construction.
func Apply(kind tensor.OpKind, inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Apply(kind, inputs...)
}

// Binary operations with NumPy-style broadcasting.

// Add computes a + b.
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Add(a, b)
}

// Sub computes a - b.
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Sub(a, b)
}

// Mul computes the elementwise product a * b.
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Mul(a, b)
}

// Div computes the elementwise quotient a / b.
func Div(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Div(a, b)
}

// MatMul multiplies two 2D tensors: (M, K) @ (K, N) → (M, N).
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.MatMul(a, b)
}

// Transpose swaps the axes of a 2D tensor.
func Transpose(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Transpose(t)
}

// Reshape returns t with a new shape holding the same element count.
func Reshape(t *tensor.Tensor, shape tensor.Shape) (*tensor.Tensor, error) {
	return autodiff.Reshape(t, shape)
}

// Unary operations.

// Neg computes -t.
func Neg(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Neg(t)
}

// Exp computes e^t elementwise.
func Exp(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Exp(t)
}

// Log computes the natural logarithm elementwise.
func Log(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Log(t)
}

// ReLU computes max(t, 0) elementwise.
func ReLU(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.ReLU(t)
}

// Sigmoid computes 1/(1+e^-t) elementwise.
func Sigmoid(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Sigmoid(t)
}

// Tanh computes the hyperbolic tangent elementwise.
func Tanh(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Tanh(t)
}

// Reductions.

// Sum reduces t to the scalar sum of its elements.
func Sum(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Sum(t)
}

// Mean reduces t to the scalar mean of its elements.
func Mean(t *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Mean(t)
}

// CrossEntropy computes the mean negative log-likelihood of int32 class
// labels under softmax(logits), fused with log-sum-exp for numeric
// stability. logits is [batch, classes], labels is [batch].
func CrossEntropy(logits, labels *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.CrossEntropy(logits, labels)
}
