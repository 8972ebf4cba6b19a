package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Exp computes e^t elementwise.
//
// d(eˣ)/dx = eˣ, so the rule reuses the forward output.
func Exp(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpExp, t); err != nil {
		return nil, err
	}
	out := be.Exp(t)
	return record(tensor.OpExp, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{be.Mul(g, out)}, nil
	}), nil
}
