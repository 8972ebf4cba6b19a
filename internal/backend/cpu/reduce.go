package cpu

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Sum reduces every element to a scalar-shaped tensor.
func (c *CPUBackend) Sum(t *tensor.Tensor) *tensor.Tensor {
	out := mustNew("sum", tensor.Shape{}, t.DType())
	switch t.DType() {
	case tensor.Float32:
		var s float32
		for _, v := range t.AsFloat32() {
			s += v
		}
		out.AsFloat32()[0] = s
	case tensor.Float64:
		var s float64
		for _, v := range t.AsFloat64() {
			s += v
		}
		out.AsFloat64()[0] = s
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", t.DType()))
	}
	return out
}

// Mean reduces every element to its arithmetic mean as a scalar tensor.
func (c *CPUBackend) Mean(t *tensor.Tensor) *tensor.Tensor {
	out := c.Sum(t)
	n := t.NumElements()
	switch t.DType() {
	case tensor.Float32:
		out.AsFloat32()[0] /= float32(n)
	case tensor.Float64:
		out.AsFloat64()[0] /= float64(n)
	}
	return out
}

// SumTo reduce-sums t down to a shape it was broadcast from: axes where the
// target extent is 1 (or missing) are summed, the rest must match. The
// backward rules of broadcasting binary ops use this to route gradients back
// to their original operand shapes.
func (c *CPUBackend) SumTo(t *tensor.Tensor, shape tensor.Shape) *tensor.Tensor {
	if t.Shape().Equal(shape) {
		return t.Clone()
	}
	out := mustNew("sum_to", shape, t.DType())

	srcShape := t.Shape()
	srcStrides := srcShape.Strides()
	dstStrides := broadcastStrides(srcShape, shape)

	switch t.DType() {
	case tensor.Float32:
		src, dst := t.AsFloat32(), out.AsFloat32()
		for i := range src {
			rem, di := i, 0
			for d, s := range srcStrides {
				coord := rem / s
				rem %= s
				di += coord * dstStrides[d]
			}
			dst[di] += src[i]
		}
	case tensor.Float64:
		src, dst := t.AsFloat64(), out.AsFloat64()
		for i := range src {
			rem, di := i, 0
			for d, s := range srcStrides {
				coord := rem / s
				rem %= s
				di += coord * dstStrides[d]
			}
			dst[di] += src[i]
		}
	default:
		panic(fmt.Sprintf("sum_to: unsupported dtype %s", t.DType()))
	}
	return out
}
