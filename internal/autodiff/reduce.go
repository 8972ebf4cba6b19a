package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Sum reduces t to a scalar holding the total of its elements.
//
// Every element contributes with weight 1, so the gradient broadcasts the
// scalar output gradient across the input's shape.
func Sum(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpSum, t); err != nil {
		return nil, err
	}
	out := be.Sum(t)
	return record(tensor.OpSum, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		gv, err := g.Item()
		if err != nil {
			return nil, err
		}
		full, err := tensor.Full(t.Shape(), t.DType(), gv)
		if err != nil {
			return nil, err
		}
		return []*tensor.Tensor{full}, nil
	}), nil
}

// Mean reduces t to a scalar holding the average of its elements.
//
// Each element contributes with weight 1/N.
func Mean(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpMean, t); err != nil {
		return nil, err
	}
	out := be.Mean(t)
	n := float64(t.NumElements())
	return record(tensor.OpMean, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		gv, err := g.Item()
		if err != nil {
			return nil, err
		}
		full, err := tensor.Full(t.Shape(), t.DType(), gv/n)
		if err != nil {
			return nil, err
		}
		return []*tensor.Tensor{full}, nil
	}), nil
}
