package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Div computes the elementwise quotient a / b with broadcasting.
//
// d(a/b)/da = 1/b and d(a/b)/db = -a/b².
func Div(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBinary(tensor.OpDiv, a, b); err != nil {
		return nil, err
	}
	out := be.Div(a, b)
	return record(tensor.OpDiv, []*tensor.Tensor{a, b}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		gradA := be.SumTo(be.Div(g, b), a.Shape())
		gradB := be.SumTo(be.Neg(be.Div(be.Mul(g, a), be.Mul(b, b))), b.Shape())
		return []*tensor.Tensor{gradA, gradB}, nil
	}), nil
}
