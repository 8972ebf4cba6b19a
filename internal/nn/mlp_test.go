package nn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestMLP_ForwardShape(t *testing.T) {
	model, err := NewMLP(8, []int{5, 3}, 2, testRng())
	require.NoError(t, err)

	input, err := tensor.Rand(tensor.Shape{6, 8}, tensor.Float32, testRng())
	require.NoError(t, err)

	out, err := model.Forward(input)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{6, 2}))
}

func TestMLP_NoHiddenLayers(t *testing.T) {
	model, err := NewMLP(4, nil, 3, testRng())
	require.NoError(t, err)
	assert.Len(t, model.Parameters(), 2)

	input, err := tensor.Rand(tensor.Shape{2, 4}, tensor.Float32, testRng())
	require.NoError(t, err)
	out, err := model.Forward(input)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{2, 3}))
}

func TestMLP_StateDictNames(t *testing.T) {
	model, err := NewMLP(8, []int{5, 3}, 2, testRng())
	require.NoError(t, err)

	state := model.StateDict()
	want := []string{
		"hidden_layers.0.weight",
		"hidden_layers.0.bias",
		"hidden_layers.1.weight",
		"hidden_layers.1.bias",
		"output.weight",
		"output.bias",
	}
	require.Len(t, state, len(want))
	for _, name := range want {
		require.Contains(t, state, name)
	}
	assert.True(t, state["hidden_layers.0.weight"].Shape().Equal(tensor.Shape{5, 8}))
	assert.True(t, state["hidden_layers.1.weight"].Shape().Equal(tensor.Shape{3, 5}))
	assert.True(t, state["output.weight"].Shape().Equal(tensor.Shape{2, 3}))
	assert.True(t, state["output.bias"].Shape().Equal(tensor.Shape{2}))
}

func TestMLP_LoadStateDictRoundTrip(t *testing.T) {
	src, err := NewMLP(8, []int{5, 3}, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	dst, err := NewMLP(8, []int{5, 3}, 2, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	srcState, dstState := src.StateDict(), dst.StateDict()
	for name, st := range srcState {
		assert.Equal(t, st.Data(), dstState[name].Data(), "parameter %s", name)
	}

	input, err := tensor.Rand(tensor.Shape{4, 8}, tensor.Float32, testRng())
	require.NoError(t, err)
	a, err := src.Forward(input)
	require.NoError(t, err)
	b, err := dst.Forward(input)
	require.NoError(t, err)
	assert.Equal(t, a.AsFloat32(), b.AsFloat32())
}

// Restoring into different hidden widths must enumerate every mismatched
// tensor in one error, and leave the target untouched.
func TestMLP_LoadStateDictEnumeratesAllMismatches(t *testing.T) {
	src, err := NewMLP(784, []int{512, 256, 128}, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	dst, err := NewMLP(784, []int{400, 200, 100}, 10, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	before := make(map[string][]byte)
	for name, st := range dst.StateDict() {
		before[name] = append([]byte(nil), st.Data()...)
	}

	err = dst.LoadStateDict(src.StateDict())
	require.Error(t, err)
	var sme *ShapeMismatchError
	require.True(t, errors.As(err, &sme))

	named := make(map[string]Mismatch, len(sme.Mismatches))
	for _, m := range sme.Mismatches {
		named[m.Name] = m
	}
	// All six hidden tensors differ, and output.weight follows the last
	// hidden width. output.bias is [10] either way and must not appear.
	for _, want := range []string{
		"hidden_layers.0.weight", "hidden_layers.0.bias",
		"hidden_layers.1.weight", "hidden_layers.1.bias",
		"hidden_layers.2.weight", "hidden_layers.2.bias",
		"output.weight",
	} {
		require.Contains(t, named, want)
	}
	assert.NotContains(t, named, "output.bias")
	assert.Len(t, sme.Mismatches, 7)

	m := named["hidden_layers.0.weight"]
	assert.True(t, m.Expected.Equal(tensor.Shape{400, 784}))
	assert.True(t, m.Found.Equal(tensor.Shape{512, 784}))

	// All-or-nothing: the failed load changed nothing.
	for name, st := range dst.StateDict() {
		assert.Equal(t, before[name], st.Data(), "parameter %s", name)
	}
}

func TestMLP_LoadStateDictMissingAndExtra(t *testing.T) {
	model, err := NewMLP(4, []int{3}, 2, testRng())
	require.NoError(t, err)

	state := model.StateDict()
	delete(state, "hidden_layers.0.bias")
	stray, err := tensor.Zeros(tensor.Shape{9}, tensor.Float32)
	require.NoError(t, err)
	state["hidden_layers.9.weight"] = stray

	err = model.LoadStateDict(state)
	require.Error(t, err)
	var sme *ShapeMismatchError
	require.True(t, errors.As(err, &sme))
	require.Len(t, sme.Mismatches, 2)

	byName := map[string]Mismatch{}
	for _, m := range sme.Mismatches {
		byName[m.Name] = m
	}
	missing := byName["hidden_layers.0.bias"]
	assert.Nil(t, missing.Found)
	assert.True(t, missing.Expected.Equal(tensor.Shape{3}))
	extra := byName["hidden_layers.9.weight"]
	assert.Nil(t, extra.Expected)
	assert.True(t, extra.Found.Equal(tensor.Shape{9}))
}

func TestMLP_GradientsFlowToAllParameters(t *testing.T) {
	model, err := NewMLP(6, []int{4}, 3, testRng())
	require.NoError(t, err)

	input, err := tensor.Rand(tensor.Shape{5, 6}, tensor.Float32, testRng())
	require.NoError(t, err)
	labels, err := tensor.FromInt32([]int32{0, 1, 2, 1, 0}, tensor.Shape{5})
	require.NoError(t, err)

	logits, err := model.Forward(input)
	require.NoError(t, err)
	loss, err := autodiff.CrossEntropy(logits, labels)
	require.NoError(t, err)
	require.NoError(t, autodiff.Backward(loss))

	for i, p := range model.Parameters() {
		require.NotNil(t, p.Grad(), "parameter %d (%s)", i, p.Name())
		assert.True(t, p.Grad().Shape().Equal(p.Tensor().Shape()))
	}
}

func TestMLP_PredictIsUntracked(t *testing.T) {
	model, err := NewMLP(4, []int{3}, 2, testRng())
	require.NoError(t, err)

	input, err := tensor.Rand(tensor.Shape{2, 4}, tensor.Float32, testRng())
	require.NoError(t, err)

	pred, err := model.Predict(input)
	require.NoError(t, err)
	assert.Equal(t, tensor.Int32, pred.DType())
	assert.True(t, pred.Shape().Equal(tensor.Shape{2}))
	assert.Nil(t, pred.Node())
	for _, p := range model.Parameters() {
		assert.Nil(t, p.Grad(), "prediction must not touch gradients")
	}
}
