package nn

import "github.com/sprout-ml/sprout/internal/tensor"

// Parameter is a named leaf tensor with gradient tracking enabled. Its
// gradient accumulator lives on the tensor itself and persists across
// backward passes until explicitly zeroed.
type Parameter struct {
	name string
	t    *tensor.Tensor
}

// NewParameter wraps t as a trainable parameter. The tensor is marked as
// requiring gradients; its accumulator is allocated on first use.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	t.SetRequiresGrad(true)
	return &Parameter{name: name, t: t}
}

// Name returns the parameter's local name, such as "weight" or "bias".
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the underlying value.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.t
}

// Grad returns the accumulated gradient, or nil before the first backward
// pass (and after ZeroGrad).
func (p *Parameter) Grad() *tensor.Tensor {
	return p.t.Grad()
}

// ZeroGrad discards the accumulated gradient.
func (p *Parameter) ZeroGrad() {
	p.t.ZeroGrad()
}
