// Package nn implements neural network building blocks for the Sprout ML
// library: trainable parameters, the Linear layer, activations, loss
// functions, and the MLP container with named-state save/restore support.
//
// Design follows PyTorch's nn.Module, reduced to what feed-forward networks
// need. Modules compose freely:
//
//	l1, _ := nn.NewLinear(784, 128, rng)
//	l2, _ := nn.NewLinear(128, 10, rng)
//	model := nn.NewSequential(l1, nn.NewReLU(), l2)
package nn

import "github.com/sprout-ml/sprout/internal/tensor"

// Module is the base interface for all neural network components.
type Module interface {
	// Forward computes the module's output for the given input.
	Forward(input *tensor.Tensor) (*tensor.Tensor, error)

	// Parameters returns all trainable parameters of this module, in a
	// stable order. Modules without trainable state return nil.
	Parameters() []*Parameter
}
