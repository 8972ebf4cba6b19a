package cpu

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/parallel"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// MatMul multiplies two 2D tensors: (M, K) @ (K, N) → (M, N).
// Rows of the result are computed independently, so the row loop runs on the
// backend's worker pool for larger matrices.
func (c *CPUBackend) MatMul(a, b *tensor.Tensor) *tensor.Tensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: want 2D operands, got %dD and %dD", len(aShape), len(bShape)))
	}
	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	out := mustNew("matmul", tensor.Shape{m, n}, a.DType())

	cfg := c.par
	// Parallelize over rows only when each chunk carries real work.
	if m*n*k < 1<<14 {
		cfg.Enabled = false
	}

	switch a.DType() {
	case tensor.Float32:
		matmulF32(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cfg)
	case tensor.Float64:
		matmulF64(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cfg)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}
	return out
}

// matmulF32 computes C[i,j] = sum_k A[i,k] * B[k,j].
func matmulF32(c, a, b []float32, m, k, n int, cfg parallel.Config) {
	cfg.MinChunkSize = 1
	parallel.For(m, cfg, func(i int) {
		row := a[i*k : (i+1)*k]
		outRow := c[i*n : (i+1)*n]
		for kIdx, av := range row {
			if av == 0 {
				continue
			}
			bRow := b[kIdx*n : (kIdx+1)*n]
			for j, bv := range bRow {
				outRow[j] += av * bv
			}
		}
	})
}

func matmulF64(c, a, b []float64, m, k, n int, cfg parallel.Config) {
	cfg.MinChunkSize = 1
	parallel.For(m, cfg, func(i int) {
		row := a[i*k : (i+1)*k]
		outRow := c[i*n : (i+1)*n]
		for kIdx, av := range row {
			if av == 0 {
				continue
			}
			bRow := b[kIdx*n : (kIdx+1)*n]
			for j, bv := range bRow {
				outRow[j] += av * bv
			}
		}
	})
}
