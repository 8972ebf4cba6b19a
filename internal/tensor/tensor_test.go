package tensor

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZeroFilled(t *testing.T) {
	tr, err := New(Shape{2, 3}, Float32)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, tr.Shape())
	assert.Equal(t, Float32, tr.DType())
	assert.Equal(t, 6, tr.NumElements())
	assert.Equal(t, 24, tr.ByteSize())
	for _, v := range tr.AsFloat32() {
		assert.Zero(t, v)
	}
}

func TestNewRejectsInvalidShape(t *testing.T) {
	_, err := New(Shape{2, -1}, Float32)
	require.Error(t, err)

	_, err = New(Shape{0}, Float64)
	require.Error(t, err)
}

func TestScalarShape(t *testing.T) {
	tr, err := Scalar(Float64, 3.5)
	require.NoError(t, err)
	assert.True(t, tr.IsScalar())
	assert.Equal(t, 1, tr.NumElements())

	v, err := tr.Item()
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromFloat32([]float32{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)

	var shapeErr *ShapeError
	assert.True(t, errors.As(err, &shapeErr))
}

func TestLeafHasNoNode(t *testing.T) {
	tr, err := FromFloat32([]float32{1, 2}, Shape{2})
	require.NoError(t, err)
	assert.True(t, tr.IsLeaf())
	assert.Nil(t, tr.Node())
	assert.False(t, tr.RequiresGrad())
	assert.Nil(t, tr.Grad())

	tr.SetRequiresGrad(true)
	assert.True(t, tr.RequiresGrad())
	// Marking a tensor for tracking does not allocate an accumulator.
	assert.Nil(t, tr.Grad())
}

func TestAccumulateGradSumsContributions(t *testing.T) {
	tr, err := FromFloat32([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	g1, err := FromFloat32([]float32{1, 1, 1}, Shape{3})
	require.NoError(t, err)
	g2, err := FromFloat32([]float32{0.5, 1.5, 2.5}, Shape{3})
	require.NoError(t, err)

	require.NoError(t, tr.AccumulateGrad(g1))
	require.NoError(t, tr.AccumulateGrad(g2))

	got := tr.Grad().AsFloat32()
	assert.InDeltaSlice(t, []float32{1.5, 2.5, 3.5}, got, 1e-6)
}

func TestAccumulateGradShapeMismatch(t *testing.T) {
	tr, err := New(Shape{2, 2}, Float32)
	require.NoError(t, err)
	g, err := New(Shape{4}, Float32)
	require.NoError(t, err)

	err = tr.AccumulateGrad(g)
	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
}

func TestZeroGradDiscardsAccumulator(t *testing.T) {
	tr, err := New(Shape{2}, Float64)
	require.NoError(t, err)
	g, err := FromFloat64([]float64{1, 2}, Shape{2})
	require.NoError(t, err)

	require.NoError(t, tr.AccumulateGrad(g))
	require.NotNil(t, tr.Grad())

	tr.ZeroGrad()
	assert.Nil(t, tr.Grad())

	// A fresh pass starts from zero.
	require.NoError(t, tr.AccumulateGrad(g))
	assert.InDeltaSlice(t, []float64{1, 2}, tr.Grad().AsFloat64(), 1e-12)
}

func TestDetachSharesStorage(t *testing.T) {
	tr, err := FromFloat32([]float32{1, 2}, Shape{2})
	require.NoError(t, err)
	tr.SetRequiresGrad(true)
	tr.SetNode(NewNode(OpAdd, nil, nil))

	d := tr.Detach()
	assert.True(t, d.IsLeaf())
	assert.False(t, d.RequiresGrad())

	d.AsFloat32()[0] = 42
	assert.Equal(t, float32(42), tr.AsFloat32()[0])
}

func TestCloneCopiesStorage(t *testing.T) {
	tr, err := FromFloat32([]float32{1, 2}, Shape{2})
	require.NoError(t, err)

	c := tr.Clone()
	c.AsFloat32()[0] = 42
	assert.Equal(t, float32(1), tr.AsFloat32()[0])
}

func TestItemNonScalar(t *testing.T) {
	tr, err := New(Shape{2}, Float32)
	require.NoError(t, err)
	_, err = tr.Item()
	require.Error(t, err)
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want Shape
		ok   bool
	}{
		{"equal", Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, true},
		{"row vector", Shape{2, 4}, Shape{4}, Shape{2, 4}, true},
		{"column ones", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{"scalar", Shape{}, Shape{2, 2}, Shape{2, 2}, true},
		{"incompatible", Shape{3, 4}, Shape{3, 5}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.a, tt.b)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.Strides())
	assert.Equal(t, []int{1}, Shape{5}.Strides())
	assert.Empty(t, Shape{}.Strides())
}

func TestRandnDeterministic(t *testing.T) {
	a, err := Randn(Shape{16}, Float64, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Randn(Shape{16}, Float64, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.AsFloat64(), b.AsFloat64())

	c, err := Randn(Shape{16}, Float64, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	assert.NotEqual(t, a.AsFloat64(), c.AsFloat64())
}

func TestRandnRejectsInt(t *testing.T) {
	_, err := Randn(Shape{2}, Int32, rand.New(rand.NewSource(1)))
	var dtErr *DTypeError
	require.True(t, errors.As(err, &dtErr))
}
