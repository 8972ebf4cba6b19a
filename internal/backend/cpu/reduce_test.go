package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestSumAndMean(t *testing.T) {
	c := New()
	in := fromF64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	sum := c.Sum(in)
	assert.True(t, sum.IsScalar())
	v, err := sum.Item()
	assert.NoError(t, err)
	assert.InDelta(t, 10, v, 1e-12)

	mean := c.Mean(in)
	v, err = mean.Item()
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, v, 1e-12)
}

func TestSumToRowVector(t *testing.T) {
	c := New()
	in := fromF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := c.SumTo(in, tensor.Shape{3})
	assert.Equal(t, tensor.Shape{3}, got.Shape())
	assert.InDeltaSlice(t, []float64{5, 7, 9}, got.AsFloat64(), 1e-12)
}

func TestSumToColumn(t *testing.T) {
	c := New()
	in := fromF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := c.SumTo(in, tensor.Shape{2, 1})
	assert.Equal(t, tensor.Shape{2, 1}, got.Shape())
	assert.InDeltaSlice(t, []float64{6, 15}, got.AsFloat64(), 1e-12)
}

func TestSumToScalar(t *testing.T) {
	c := New()
	in := fromF32(t, []float32{1, 2, 3}, tensor.Shape{3})

	got := c.SumTo(in, tensor.Shape{})
	assert.True(t, got.IsScalar())
	assert.InDelta(t, 6, float64(got.AsFloat32()[0]), 1e-6)
}

func TestSumToSameShapeCopies(t *testing.T) {
	c := New()
	in := fromF32(t, []float32{1, 2}, tensor.Shape{2})

	got := c.SumTo(in, tensor.Shape{2})
	got.AsFloat32()[0] = 99
	assert.Equal(t, float32(1), in.AsFloat32()[0])
}

func TestTranspose(t *testing.T) {
	c := New()
	in := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := c.Transpose(in)
	assert.Equal(t, tensor.Shape{3, 2}, got.Shape())
	assert.InDeltaSlice(t, []float32{1, 4, 2, 5, 3, 6}, got.AsFloat32(), 1e-6)
}

func TestReshapePreservesData(t *testing.T) {
	c := New()
	in := fromF32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := c.Reshape(in, tensor.Shape{3, 2})
	assert.Equal(t, tensor.Shape{3, 2}, got.Shape())
	assert.InDeltaSlice(t, in.AsFloat32(), got.AsFloat32(), 1e-6)
}
