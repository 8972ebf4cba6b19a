package autodiff

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// be executes forward kernels and the tensor math inside gradient rules.
var be tensor.Backend = cpu.New()

// Use swaps the backend for all subsequent operations. Not safe to call
// concurrently with running operations.
func Use(b tensor.Backend) {
	be = b
}

// Backend returns the active backend.
func Backend() tensor.Backend {
	return be
}

// record attaches a graph node to out when tracking is on and at least one
// input is tracked. Otherwise out is returned as a plain tensor.
func record(kind tensor.OpKind, inputs []*tensor.Tensor, out *tensor.Tensor, rule tensor.BackwardFunc) *tensor.Tensor {
	if !GradEnabled() {
		return out
	}
	tracked := false
	for _, in := range inputs {
		if in.RequiresGrad() {
			tracked = true
			break
		}
	}
	if !tracked {
		return out
	}
	out.SetRequiresGrad(true)
	out.SetNode(tensor.NewNode(kind, inputs, rule))
	return out
}

// checkFloat rejects operands whose dtype cannot carry gradients.
func checkFloat(kind tensor.OpKind, t *tensor.Tensor) error {
	if !t.DType().IsFloat() {
		return &tensor.DTypeError{Op: kind.String(), DType: t.DType()}
	}
	return nil
}

// checkBinary validates a float elementwise pair: matching dtypes and
// broadcast-compatible shapes.
func checkBinary(kind tensor.OpKind, a, b *tensor.Tensor) error {
	if err := checkFloat(kind, a); err != nil {
		return err
	}
	if a.DType() != b.DType() {
		return &tensor.DTypeError{
			Op:      kind.String(),
			DType:   b.DType(),
			Message: fmt.Sprintf("dtype mismatch: %s vs %s", a.DType(), b.DType()),
		}
	}
	if _, err := tensor.BroadcastShapes(a.Shape(), b.Shape()); err != nil {
		return tensor.NewShapeError(kind.String(), "%v", err)
	}
	return nil
}

// Apply dispatches an operation by kind. It is the uniform entry point the
// graph records; the named functions (Add, MatMul, ...) are thin fronts over
// the same dispatch and are usually more convenient.
func Apply(kind tensor.OpKind, inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	switch kind {
	case tensor.OpAdd:
		if err := arity(kind, 2, inputs); err != nil {
			return nil, err
		}
		return Add(inputs[0], inputs[1])
	case tensor.OpSub:
		if err := arity(kind, 2, inputs); err != nil {
			return nil, err
		}
		return Sub(inputs[0], inputs[1])
	case tensor.OpMul:
		if err := arity(kind, 2, inputs); err != nil {
			return nil, err
		}
		return Mul(inputs[0], inputs[1])
	case tensor.OpDiv:
		if err := arity(kind, 2, inputs); err != nil {
			return nil, err
		}
		return Div(inputs[0], inputs[1])
	case tensor.OpMatMul:
		if err := arity(kind, 2, inputs); err != nil {
			return nil, err
		}
		return MatMul(inputs[0], inputs[1])
	case tensor.OpTranspose:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Transpose(inputs[0])
	case tensor.OpReshape:
		return nil, fmt.Errorf("%s: requires a target shape, call Reshape directly", kind)
	case tensor.OpNeg:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Neg(inputs[0])
	case tensor.OpExp:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Exp(inputs[0])
	case tensor.OpLog:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Log(inputs[0])
	case tensor.OpReLU:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return ReLU(inputs[0])
	case tensor.OpSigmoid:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Sigmoid(inputs[0])
	case tensor.OpTanh:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Tanh(inputs[0])
	case tensor.OpSum:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Sum(inputs[0])
	case tensor.OpMean:
		if err := arity(kind, 1, inputs); err != nil {
			return nil, err
		}
		return Mean(inputs[0])
	case tensor.OpCrossEntropy:
		if err := arity(kind, 2, inputs); err != nil {
			return nil, err
		}
		return CrossEntropy(inputs[0], inputs[1])
	default:
		return nil, fmt.Errorf("unknown op kind %d", int(kind))
	}
}

func arity(kind tensor.OpKind, want int, inputs []*tensor.Tensor) error {
	if len(inputs) != want {
		return fmt.Errorf("%s: want %d inputs, got %d", kind, want, len(inputs))
	}
	return nil
}
