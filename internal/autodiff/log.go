package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Log computes the natural logarithm elementwise.
//
// d(ln x)/dx = 1/x. Non-positive inputs produce Inf or NaN, matching the
// underlying math library.
func Log(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpLog, t); err != nil {
		return nil, err
	}
	out := be.Log(t)
	return record(tensor.OpLog, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{be.Div(g, t)}, nil
	}), nil
}
