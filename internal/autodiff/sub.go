package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Sub computes a - b with broadcasting.
//
// d(a-b)/da = 1 and d(a-b)/db = -1.
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBinary(tensor.OpSub, a, b); err != nil {
		return nil, err
	}
	out := be.Sub(a, b)
	return record(tensor.OpSub, []*tensor.Tensor{a, b}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{
			be.SumTo(g, a.Shape()),
			be.SumTo(be.Neg(g), b.Shape()),
		}, nil
	}), nil
}
