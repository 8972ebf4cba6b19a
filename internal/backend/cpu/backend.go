// Package cpu implements tensor.Backend with plain Go kernels.
//
// Kernels assume operands were validated by the caller: shapes are
// broadcast-compatible, matmul operands are 2D with matching inner
// dimensions, and differentiable math runs on float tensors. Violations are
// programmer errors and panic.
package cpu

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/parallel"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// CPUBackend executes kernels on the host CPU.
type CPUBackend struct {
	par parallel.Config
}

// New creates a CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{par: parallel.DefaultConfig()}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "cpu"
}

// Add computes a + b with broadcasting.
func (c *CPUBackend) Add(a, b *tensor.Tensor) *tensor.Tensor {
	return binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub computes a - b with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.Tensor) *tensor.Tensor {
	return binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul computes the elementwise product a * b with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.Tensor) *tensor.Tensor {
	return binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div computes a / b with broadcasting. Division by zero follows IEEE 754.
func (c *CPUBackend) Div(a, b *tensor.Tensor) *tensor.Tensor {
	return binaryOp("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// mustNew allocates a result tensor, panicking on invalid shape. Kernel
// callers pre-validate shapes, so failure here is a bug.
func mustNew(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.Tensor {
	t, err := tensor.New(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	return t
}

// binaryOp dispatches a broadcasting binary kernel by dtype.
func binaryOp(op string, a, b *tensor.Tensor, f32 func(x, y float32) float32, f64 func(x, y float64) float64) *tensor.Tensor {
	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	out := mustNew(op, outShape, a.DType())

	switch a.DType() {
	case tensor.Float32:
		broadcastF32(out.AsFloat32(), outShape, a.AsFloat32(), a.Shape(), b.AsFloat32(), b.Shape(), f32)
	case tensor.Float64:
		broadcastF64(out.AsFloat64(), outShape, a.AsFloat64(), a.Shape(), b.AsFloat64(), b.Shape(), f64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}
	return out
}
