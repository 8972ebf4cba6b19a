// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Type aliases for the public API

// Tensor is a dense row-major tensor with optional gradient state.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2×3 matrix.
type Shape = tensor.Shape

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
)

// ShapeError reports operand or parameter shapes an operation cannot
// accept.
type ShapeError = tensor.ShapeError

// DTypeError reports an element type an operation cannot work with.
type DTypeError = tensor.DTypeError

// ParseDataType resolves a data type from its string name ("float32",
// "float64", "int32").
func ParseDataType(name string) (DataType, bool) {
	return tensor.ParseDataType(name)
}

// BroadcastShapes computes the result shape of broadcasting a against b,
// or an error when the shapes are incompatible.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// Creation functions

// New creates a zero-filled tensor with the given shape and element type.
func New(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.New(shape, dtype)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.Zeros(shape, dtype)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) (*Tensor, error) {
	return tensor.Ones(shape, dtype)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, dtype DataType, value float64) (*Tensor, error) {
	return tensor.Full(shape, dtype, value)
}

// Scalar creates a single-element tensor holding value.
func Scalar(dtype DataType, value float64) (*Tensor, error) {
	return tensor.Scalar(dtype, value)
}

// FromFloat32 creates a float32 tensor from a slice. The slice is copied.
//
// Example:
//
//	x, err := tensor.FromFloat32([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromFloat32(values []float32, shape Shape) (*Tensor, error) {
	return tensor.FromFloat32(values, shape)
}

// FromFloat64 creates a float64 tensor from a slice. The slice is copied.
func FromFloat64(values []float64, shape Shape) (*Tensor, error) {
	return tensor.FromFloat64(values, shape)
}

// FromInt32 creates an int32 tensor from a slice. The slice is copied.
// Int32 tensors carry class labels and index results; differentiable
// operations reject them.
func FromInt32(values []int32, shape Shape) (*Tensor, error) {
	return tensor.FromInt32(values, shape)
}

// Randn creates a tensor of standard normal samples drawn from rng.
func Randn(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	return tensor.Randn(shape, dtype, rng)
}

// Rand creates a tensor of uniform [0, 1) samples drawn from rng.
func Rand(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	return tensor.Rand(shape, dtype, rng)
}
