package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Tanh computes the hyperbolic tangent elementwise.
//
// With y = tanh(x), dy/dx = 1 - y².
func Tanh(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpTanh, t); err != nil {
		return nil, err
	}
	out := be.Tanh(t)
	return record(tensor.OpTanh, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		grad, err := tensor.New(t.Shape(), t.DType())
		if err != nil {
			return nil, err
		}
		switch t.DType() {
		case tensor.Float32:
			y, gv, dst := out.AsFloat32(), g.AsFloat32(), grad.AsFloat32()
			for i := range dst {
				dst[i] = gv[i] * (1 - y[i]*y[i])
			}
		case tensor.Float64:
			y, gv, dst := out.AsFloat64(), g.AsFloat64(), grad.AsFloat64()
			for i := range dst {
				dst[i] = gv[i] * (1 - y[i]*y[i])
			}
		}
		return []*tensor.Tensor{grad}, nil
	}), nil
}
