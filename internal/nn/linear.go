package nn

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Linear is a fully connected layer computing y = x @ Wᵀ + b where
//
//   - x is [batch, inFeatures]
//   - W is [outFeatures, inFeatures]
//   - b is [outFeatures]
//   - y is [batch, outFeatures]
//
// Weights are initialized with Xavier uniform values from the supplied
// random source; biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
}

// NewLinear creates a dense layer mapping inFeatures to outFeatures. A nil
// rng initializes weights from a freshly seeded source.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) (*Linear, error) {
	if inFeatures <= 0 || outFeatures <= 0 {
		return nil, tensor.NewShapeError("linear", "feature counts must be positive, got in=%d out=%d", inFeatures, outFeatures)
	}
	w, err := XavierUniform(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, tensor.Float32, rng)
	if err != nil {
		return nil, err
	}
	b, err := tensor.Zeros(tensor.Shape{outFeatures}, tensor.Float32)
	if err != nil {
		return nil, err
	}
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", w),
		bias:        NewParameter("bias", b),
	}, nil
}

// Forward applies the affine transformation to a [batch, inFeatures] input.
// A batch whose width disagrees with the layer fails with a ShapeError
// naming both widths.
func (l *Linear) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	shape := input.Shape()
	if len(shape) != 2 {
		return nil, tensor.NewShapeError("linear", "expected 2D input [batch, features], got %v", shape)
	}
	if shape[1] != l.inFeatures {
		return nil, tensor.NewShapeError("linear", "expected input with %d features, got %d", l.inFeatures, shape[1])
	}

	wT, err := autodiff.Transpose(l.weight.Tensor())
	if err != nil {
		return nil, err
	}
	out, err := autodiff.MatMul(input, wT)
	if err != nil {
		return nil, err
	}
	// Bias broadcasts as a [1, outFeatures] row across the batch.
	bRow, err := autodiff.Reshape(l.bias.Tensor(), tensor.Shape{1, l.outFeatures})
	if err != nil {
		return nil, err
	}
	return autodiff.Add(out, bRow)
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the [outFeatures, inFeatures] weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the [outFeatures] bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the expected input width.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
