package cpu

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Transpose swaps the axes of a 2D tensor.
func (c *CPUBackend) Transpose(t *tensor.Tensor) *tensor.Tensor {
	shape := t.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("transpose: want 2D tensor, got shape %v", shape))
	}
	rows, cols := shape[0], shape[1]
	out := mustNew("transpose", tensor.Shape{cols, rows}, t.DType())

	switch t.DType() {
	case tensor.Float32:
		src, dst := t.AsFloat32(), out.AsFloat32()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j*rows+i] = src[i*cols+j]
			}
		}
	case tensor.Float64:
		src, dst := t.AsFloat64(), out.AsFloat64()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				dst[j*rows+i] = src[i*cols+j]
			}
		}
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}
	return out
}

// Reshape copies the tensor into a new shape with the same element count.
func (c *CPUBackend) Reshape(t *tensor.Tensor, shape tensor.Shape) *tensor.Tensor {
	if shape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			t.Shape(), t.NumElements(), shape, shape.NumElements()))
	}
	out := mustNew("reshape", shape, t.DType())
	copy(out.Data(), t.Data())
	return out
}
