package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Mul computes the elementwise product a * b with broadcasting.
//
// d(a*b)/da = b and d(a*b)/db = a.
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBinary(tensor.OpMul, a, b); err != nil {
		return nil, err
	}
	out := be.Mul(a, b)
	return record(tensor.OpMul, []*tensor.Tensor{a, b}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{
			be.SumTo(be.Mul(g, b), a.Shape()),
			be.SumTo(be.Mul(g, a), b.Shape()),
		}, nil
	}), nil
}
