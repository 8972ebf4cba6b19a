package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Reshape returns t with a new shape holding the same number of elements.
//
// Reshape moves no values, so the gradient is the output gradient reshaped
// back to the input's shape.
func Reshape(t *tensor.Tensor, shape tensor.Shape) (*tensor.Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, tensor.NewShapeError("reshape", "%v", err)
	}
	if shape.NumElements() != t.NumElements() {
		return nil, tensor.NewShapeError("reshape", "cannot reshape %v (%d elements) to %v (%d elements)",
			t.Shape(), t.NumElements(), shape, shape.NumElements())
	}
	out := be.Reshape(t, shape)
	inShape := t.Shape()
	return record(tensor.OpReshape, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{be.Reshape(g, inShape)}, nil
	}), nil
}
