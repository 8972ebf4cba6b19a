package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestMSELoss_KnownValue(t *testing.T) {
	pred, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{4})
	require.NoError(t, err)
	target, err := tensor.FromFloat32([]float32{1, 1, 1, 1}, tensor.Shape{4})
	require.NoError(t, err)

	loss, err := NewMSELoss().Forward(pred, target)
	require.NoError(t, err)
	require.True(t, loss.IsScalar())

	v, err := loss.Item()
	require.NoError(t, err)
	// (0 + 1 + 4 + 9) / 4
	assert.InDelta(t, 3.5, v, 1e-6)
}

func TestMSELoss_GradientPointsAtTarget(t *testing.T) {
	pred, err := tensor.FromFloat32([]float32{3, -1}, tensor.Shape{2})
	require.NoError(t, err)
	pred.SetRequiresGrad(true)
	target, err := tensor.FromFloat32([]float32{1, 1}, tensor.Shape{2})
	require.NoError(t, err)

	loss, err := NewMSELoss().Forward(pred, target)
	require.NoError(t, err)
	require.NoError(t, autodiff.Backward(loss))

	// d/dpred mean((pred-target)²) = 2(pred-target)/n
	grads := pred.Grad().AsFloat32()
	assert.InDelta(t, 2.0, grads[0], 1e-6)
	assert.InDelta(t, -2.0, grads[1], 1e-6)
}

func TestMSELoss_ShapeMismatch(t *testing.T) {
	pred, err := tensor.FromFloat32([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	target, err := tensor.FromFloat32([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	_, err = NewMSELoss().Forward(pred, target)
	require.Error(t, err)
}

func TestCrossEntropyLoss_MatchesEngineOp(t *testing.T) {
	logits, err := tensor.FromFloat32([]float32{2, 0, 1, 0, 3, 0}, tensor.Shape{2, 3})
	require.NoError(t, err)
	labels, err := tensor.FromInt32([]int32{0, 1}, tensor.Shape{2})
	require.NoError(t, err)

	viaLoss, err := NewCrossEntropyLoss().Forward(logits, labels)
	require.NoError(t, err)
	direct, err := autodiff.CrossEntropy(logits, labels)
	require.NoError(t, err)

	a, err := viaLoss.Item()
	require.NoError(t, err)
	b, err := direct.Item()
	require.NoError(t, err)
	assert.InDelta(t, b, a, 1e-7)
	assert.False(t, math.IsNaN(a))
}
