package cpu

import (
	"fmt"
	"math"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Neg computes -t.
func (c *CPUBackend) Neg(t *tensor.Tensor) *tensor.Tensor {
	return unaryOp("neg", t,
		func(x float32) float32 { return -x },
		func(x float64) float64 { return -x })
}

// Exp computes e^t elementwise.
func (c *CPUBackend) Exp(t *tensor.Tensor) *tensor.Tensor {
	return unaryOp("exp", t,
		func(x float32) float32 { return float32(math.Exp(float64(x))) },
		math.Exp)
}

// Log computes the natural logarithm elementwise.
func (c *CPUBackend) Log(t *tensor.Tensor) *tensor.Tensor {
	return unaryOp("log", t,
		func(x float32) float32 { return float32(math.Log(float64(x))) },
		math.Log)
}

// ReLU computes max(x, 0) elementwise.
func (c *CPUBackend) ReLU(t *tensor.Tensor) *tensor.Tensor {
	return unaryOp("relu", t,
		func(x float32) float32 {
			if x > 0 {
				return x
			}
			return 0
		},
		func(x float64) float64 {
			if x > 0 {
				return x
			}
			return 0
		})
}

// Sigmoid computes 1 / (1 + e^-x) elementwise.
func (c *CPUBackend) Sigmoid(t *tensor.Tensor) *tensor.Tensor {
	return unaryOp("sigmoid", t,
		func(x float32) float32 { return float32(1 / (1 + math.Exp(-float64(x)))) },
		func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
}

// Tanh computes the hyperbolic tangent elementwise.
func (c *CPUBackend) Tanh(t *tensor.Tensor) *tensor.Tensor {
	return unaryOp("tanh", t,
		func(x float32) float32 { return float32(math.Tanh(float64(x))) },
		math.Tanh)
}

// unaryOp dispatches an elementwise unary kernel by dtype.
func unaryOp(op string, t *tensor.Tensor, f32 func(x float32) float32, f64 func(x float64) float64) *tensor.Tensor {
	out := mustNew(op, t.Shape(), t.DType())
	switch t.DType() {
	case tensor.Float32:
		src, dst := t.AsFloat32(), out.AsFloat32()
		for i := range src {
			dst[i] = f32(src[i])
		}
	case tensor.Float64:
		src, dst := t.AsFloat64(), out.AsFloat64()
		for i := range src {
			dst[i] = f64(src[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, t.DType()))
	}
	return out
}
