package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Add computes a + b with broadcasting.
//
// d(a+b)/da = 1 and d(a+b)/db = 1, so each input's gradient is the output
// gradient reduced back to that input's shape.
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBinary(tensor.OpAdd, a, b); err != nil {
		return nil, err
	}
	out := be.Add(a, b)
	return record(tensor.OpAdd, []*tensor.Tensor{a, b}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{
			be.SumTo(g, a.Shape()),
			be.SumTo(g, b.Shape()),
		}, nil
	}), nil
}
