package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestMatMulKnownProduct(t *testing.T) {
	c := New()
	// [1 2; 3 4] @ [5 6; 7 8] = [19 22; 43 50]
	a := fromF32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromF32(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})

	got := c.MatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
	assert.InDeltaSlice(t, []float32{19, 22, 43, 50}, got.AsFloat32(), 1e-5)
}

func TestMatMulRectangular(t *testing.T) {
	c := New()
	a := fromF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := fromF64(t, []float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	got := c.MatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
	assert.InDeltaSlice(t, []float64{58, 64, 139, 154}, got.AsFloat64(), 1e-12)
}

func TestMatMulIdentity(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(3))
	a, err := tensor.Randn(tensor.Shape{4, 4}, tensor.Float64, rng)
	require.NoError(t, err)

	eye, err := tensor.Zeros(tensor.Shape{4, 4}, tensor.Float64)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		eye.AsFloat64()[i*4+i] = 1
	}

	got := c.MatMul(a, eye)
	assert.InDeltaSlice(t, a.AsFloat64(), got.AsFloat64(), 1e-12)
}

// TestMatMulParallelMatchesSequential pins the worker-pool path against the
// sequential one on a matrix large enough to trigger parallelism.
func TestMatMulParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a, err := tensor.Randn(tensor.Shape{64, 48}, tensor.Float64, rng)
	require.NoError(t, err)
	b, err := tensor.Randn(tensor.Shape{48, 32}, tensor.Float64, rng)
	require.NoError(t, err)

	par := New()
	seq := New()
	seq.par.Enabled = false

	got := par.MatMul(a, b).AsFloat64()
	want := seq.MatMul(a, b).AsFloat64()
	assert.InDeltaSlice(t, want, got, 1e-9)
}
