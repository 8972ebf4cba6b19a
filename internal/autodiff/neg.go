package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Neg computes -t.
func Neg(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpNeg, t); err != nil {
		return nil, err
	}
	out := be.Neg(t)
	return record(tensor.OpNeg, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{be.Neg(g)}, nil
	}), nil
}
