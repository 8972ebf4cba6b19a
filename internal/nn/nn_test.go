package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestActivations_ForwardValues(t *testing.T) {
	input, err := tensor.FromFloat32([]float32{-2, 0, 2}, tensor.Shape{3})
	require.NoError(t, err)

	relu, err := NewReLU().Forward(input)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 2}, relu.AsFloat32())

	sig, err := NewSigmoid().Forward(input)
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+math.Exp(2)), float64(sig.AsFloat32()[0]), 1e-6)
	assert.InDelta(t, 0.5, float64(sig.AsFloat32()[1]), 1e-6)

	th, err := NewTanh().Forward(input)
	require.NoError(t, err)
	assert.InDelta(t, math.Tanh(-2), float64(th.AsFloat32()[0]), 1e-6)
	assert.Zero(t, th.AsFloat32()[1])
}

func TestSequential_ChainsModules(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l1, err := NewLinear(4, 3, rng)
	require.NoError(t, err)
	l2, err := NewLinear(3, 2, rng)
	require.NoError(t, err)
	model := NewSequential(l1, NewReLU(), l2)

	assert.Len(t, model.Parameters(), 4)

	input, err := tensor.Rand(tensor.Shape{5, 4}, tensor.Float32, testRng())
	require.NoError(t, err)

	got, err := model.Forward(input)
	require.NoError(t, err)

	// Same computation by hand.
	h, err := l1.Forward(input)
	require.NoError(t, err)
	h, err = NewReLU().Forward(h)
	require.NoError(t, err)
	want, err := l2.Forward(h)
	require.NoError(t, err)
	assert.Equal(t, want.AsFloat32(), got.AsFloat32())
}

func TestSequential_PropagatesErrors(t *testing.T) {
	l1, err := NewLinear(4, 3, testRng())
	require.NoError(t, err)
	model := NewSequential(l1)

	bad, err := tensor.Rand(tensor.Shape{2, 9}, tensor.Float32, testRng())
	require.NoError(t, err)
	_, err = model.Forward(bad)
	require.Error(t, err)
}

func TestXavierUniform_BoundAndDeterminism(t *testing.T) {
	const fanIn, fanOut = 30, 20
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	a, err := XavierUniform(fanIn, fanOut, tensor.Shape{fanOut, fanIn}, tensor.Float32, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	for _, v := range a.AsFloat32() {
		assert.LessOrEqual(t, math.Abs(float64(v)), bound)
	}

	b, err := XavierUniform(fanIn, fanOut, tensor.Shape{fanOut, fanIn}, tensor.Float32, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.Equal(t, a.AsFloat32(), b.AsFloat32(), "same seed gives same weights")

	_, err = XavierUniform(0, 5, tensor.Shape{5}, tensor.Float32, testRng())
	require.Error(t, err)
	_, err = XavierUniform(3, 5, tensor.Shape{5, 3}, tensor.Int32, testRng())
	require.Error(t, err)
}
