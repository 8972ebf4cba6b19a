package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Transpose swaps the two axes of a 2D tensor.
//
// The gradient of a transpose is the transpose of the gradient.
func Transpose(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpTranspose, t); err != nil {
		return nil, err
	}
	if len(t.Shape()) != 2 {
		return nil, tensor.NewShapeError("transpose", "requires a 2D tensor, got %v", t.Shape())
	}
	out := be.Transpose(t)
	return record(tensor.OpTranspose, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{be.Transpose(g)}, nil
	}), nil
}
