package nn

import (
	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// ReLU applies max(0, x) elementwise.
type ReLU struct{}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU { return &ReLU{} }

// Forward applies the activation.
func (*ReLU) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.ReLU(input)
}

// Parameters returns nil; activations have no trainable state.
func (*ReLU) Parameters() []*Parameter { return nil }

// Sigmoid applies 1/(1+e⁻ˣ) elementwise.
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

// Forward applies the activation.
func (*Sigmoid) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Sigmoid(input)
}

// Parameters returns nil; activations have no trainable state.
func (*Sigmoid) Parameters() []*Parameter { return nil }

// Tanh applies the hyperbolic tangent elementwise.
type Tanh struct{}

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh { return &Tanh{} }

// Forward applies the activation.
func (*Tanh) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Tanh(input)
}

// Parameters returns nil; activations have no trainable state.
func (*Tanh) Parameters() []*Parameter { return nil }
