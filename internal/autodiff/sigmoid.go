package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// Sigmoid computes 1/(1+e⁻ˣ) elementwise.
//
// With s = sigmoid(x), ds/dx = s(1-s), so the rule reuses the forward
// output instead of recomputing the exponential.
func Sigmoid(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpSigmoid, t); err != nil {
		return nil, err
	}
	out := be.Sigmoid(t)
	return record(tensor.OpSigmoid, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		grad, err := tensor.New(t.Shape(), t.DType())
		if err != nil {
			return nil, err
		}
		switch t.DType() {
		case tensor.Float32:
			s, gv, dst := out.AsFloat32(), g.AsFloat32(), grad.AsFloat32()
			for i := range dst {
				dst[i] = gv[i] * s[i] * (1 - s[i])
			}
		case tensor.Float64:
			s, gv, dst := out.AsFloat64(), g.AsFloat64(), grad.AsFloat64()
			for i := range dst {
				dst[i] = gv[i] * s[i] * (1 - s[i])
			}
		}
		return []*tensor.Tensor{grad}, nil
	}), nil
}
