// Package optim implements gradient-descent optimizers for training neural
// networks: plain SGD, SGD with momentum, and Adam.
//
// Optimizers read each parameter's accumulated gradient straight off the
// parameter tensor and update values in place. The usual step order is
//
//	logits, _ := model.Forward(batch)
//	loss, _ := lossFn.Forward(logits, labels)
//	optimizer.ZeroGrad()
//	autodiff.Backward(loss)
//	optimizer.Step()
package optim

import (
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter with an accumulated
	// gradient. Parameters whose gradient is nil are skipped.
	Step() error

	// ZeroGrad discards all parameter gradients. Call between steps so
	// batches do not silently sum into each other.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR changes the learning rate for subsequent steps.
	SetLR(lr float64)
}

// floatView reads and writes a float tensor's elements as float64, hiding
// the dtype from update-rule loops.
type floatView struct {
	f32 []float32
	f64 []float64
}

func viewOf(t *tensor.Tensor) (floatView, error) {
	switch t.DType() {
	case tensor.Float32:
		return floatView{f32: t.AsFloat32()}, nil
	case tensor.Float64:
		return floatView{f64: t.AsFloat64()}, nil
	default:
		return floatView{}, &tensor.DTypeError{Op: "optimizer", DType: t.DType()}
	}
}

func (v floatView) at(i int) float64 {
	if v.f32 != nil {
		return float64(v.f32[i])
	}
	return v.f64[i]
}

func (v floatView) set(i int, x float64) {
	if v.f32 != nil {
		v.f32[i] = float32(x)
		return
	}
	v.f64[i] = x
}

func zeroAll(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
