package autodiff

import "github.com/sprout-ml/sprout/internal/tensor"

// MatMul computes the matrix product a @ b for 2D operands, [m,k] x [k,n]
// giving [m,n].
//
// With output gradient G: dL/da = G @ bᵀ and dL/db = aᵀ @ G.
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpMatMul, a); err != nil {
		return nil, err
	}
	if a.DType() != b.DType() {
		return nil, &tensor.DTypeError{
			Op:      tensor.OpMatMul.String(),
			DType:   b.DType(),
			Message: "dtype mismatch: " + a.DType().String() + " vs " + b.DType().String(),
		}
	}
	as, bs := a.Shape(), b.Shape()
	if len(as) != 2 || len(bs) != 2 {
		return nil, tensor.NewShapeError("matmul", "requires 2D operands, got %v and %v", as, bs)
	}
	if as[1] != bs[0] {
		return nil, tensor.NewShapeError("matmul", "inner dimensions disagree: %v and %v", as, bs)
	}
	out := be.MatMul(a, b)
	return record(tensor.OpMatMul, []*tensor.Tensor{a, b}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		return []*tensor.Tensor{
			be.MatMul(g, be.Transpose(b)),
			be.MatMul(be.Transpose(a), g),
		}, nil
	}), nil
}
