// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Backend executes the numeric kernels behind tensor operations. The
// interface covers only forward math: shape and dtype validation happens
// in the autodiff engine before a kernel runs, so implementations may
// assume operands are float tensors with compatible shapes.
type Backend = tensor.Backend

// Graph plumbing, exposed for backend implementors and for inspecting
// recorded computation graphs.

// OpKind identifies a differentiable operation in the computation graph.
type OpKind = tensor.OpKind

// Operation kinds understood by the autodiff engine.
const (
	OpAdd          OpKind = tensor.OpAdd
	OpSub          OpKind = tensor.OpSub
	OpMul          OpKind = tensor.OpMul
	OpDiv          OpKind = tensor.OpDiv
	OpMatMul       OpKind = tensor.OpMatMul
	OpTranspose    OpKind = tensor.OpTranspose
	OpReshape      OpKind = tensor.OpReshape
	OpNeg          OpKind = tensor.OpNeg
	OpExp          OpKind = tensor.OpExp
	OpLog          OpKind = tensor.OpLog
	OpReLU         OpKind = tensor.OpReLU
	OpSigmoid      OpKind = tensor.OpSigmoid
	OpTanh         OpKind = tensor.OpTanh
	OpSum          OpKind = tensor.OpSum
	OpMean         OpKind = tensor.OpMean
	OpCrossEntropy OpKind = tensor.OpCrossEntropy
)

// Node records how a tensor was produced: the operation, its inputs, and
// the gradient rule that distributes an incoming gradient to them.
type Node = tensor.Node

// BackwardFunc computes input gradients from an output gradient. A nil
// entry in the returned slice means the corresponding input receives no
// gradient.
type BackwardFunc = tensor.BackwardFunc

// NewShapeError builds a ShapeError with a formatted message. Exposed for
// Backend implementations.
func NewShapeError(op, format string, args ...any) *ShapeError {
	return tensor.NewShapeError(op, format, args...)
}
