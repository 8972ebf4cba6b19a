package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// ReLU computes max(0, t) elementwise.
//
// The gradient passes through where the input was positive and is zero
// elsewhere. The subgradient at exactly zero is taken as zero.
func ReLU(t *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpReLU, t); err != nil {
		return nil, err
	}
	out := be.ReLU(t)
	return record(tensor.OpReLU, []*tensor.Tensor{t}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		masked, err := tensor.New(t.Shape(), t.DType())
		if err != nil {
			return nil, err
		}
		switch t.DType() {
		case tensor.Float32:
			x, gv, dst := t.AsFloat32(), g.AsFloat32(), masked.AsFloat32()
			for i := range dst {
				if x[i] > 0 {
					dst[i] = gv[i]
				}
			}
		case tensor.Float64:
			x, gv, dst := t.AsFloat64(), g.AsFloat64(), masked.AsFloat64()
			for i := range dst {
				if x[i] > 0 {
					dst[i] = gv[i]
				}
			}
		}
		return []*tensor.Tensor{masked}, nil
	}), nil
}
