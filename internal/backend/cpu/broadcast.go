package cpu

import "github.com/sprout-ml/sprout/internal/tensor"

// broadcastStrides returns, for each dimension of out, the flat stride into
// a tensor of shape in. Dimensions where in is missing or has extent 1 get
// stride 0, which repeats the same elements across the broadcast axis.
func broadcastStrides(out, in tensor.Shape) []int {
	strides := make([]int, len(out))
	inStrides := in.Strides()
	offset := len(out) - len(in)
	for i := range out {
		j := i - offset
		if j < 0 || in[j] == 1 {
			strides[i] = 0
		} else {
			strides[i] = inStrides[j]
		}
	}
	return strides
}

func broadcastF32(dst []float32, outShape tensor.Shape, a []float32, aShape tensor.Shape, b []float32, bShape tensor.Shape, f func(x, y float32) float32) {
	if aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = f(a[i], b[i])
		}
		return
	}

	outStrides := outShape.Strides()
	aStrides := broadcastStrides(outShape, aShape)
	bStrides := broadcastStrides(outShape, bShape)

	for i := range dst {
		rem := i
		ai, bi := 0, 0
		for d, s := range outStrides {
			c := rem / s
			rem %= s
			ai += c * aStrides[d]
			bi += c * bStrides[d]
		}
		dst[i] = f(a[ai], b[bi])
	}
}

func broadcastF64(dst []float64, outShape tensor.Shape, a []float64, aShape tensor.Shape, b []float64, bShape tensor.Shape, f func(x, y float64) float64) {
	if aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = f(a[i], b[i])
		}
		return
	}

	outStrides := outShape.Strides()
	aStrides := broadcastStrides(outShape, aShape)
	bStrides := broadcastStrides(outShape, bShape)

	for i := range dst {
		rem := i
		ai, bi := 0, 0
		for d, s := range outStrides {
			c := rem / s
			rem %= s
			ai += c * aStrides[d]
			bi += c * bStrides[d]
		}
		dst[i] = f(a[ai], b[bi])
	}
}
