// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense in-memory tensors underlying the
// Sprout training engine.
//
// # Overview
//
// Tensors are flat row-major buffers with a shape, an element type, and
// an optional gradient accumulator. This package provides:
//   - Tensor: dense storage with float32, float64, and int32 elements
//   - Shape: dimension list with broadcasting rules
//   - Gradient state: RequiresGrad, Grad, AccumulateGrad, ZeroGrad
//   - Backend: the compute interface the autodiff engine evaluates on
//
// # Basic Usage
//
//	import "github.com/sprout-ml/sprout/tensor"
//
//	func main() {
//	    x, _ := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    x.SetRequiresGrad(true)
//
//	    y, _ := tensor.Ones(tensor.Shape{2, 2}, tensor.Float32)
//	    _ = y
//	}
//
// Gradients accumulate additively: every backward pass adds into Grad
// until ZeroGrad is called. Training loops zero between steps.
package tensor
