package nn

import (
	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Loss reduces predictions and targets to a scalar differentiable loss.
type Loss interface {
	Forward(pred, target *tensor.Tensor) (*tensor.Tensor, error)
}

// MSELoss computes mean((pred - target)²), the standard regression loss.
type MSELoss struct{}

// NewMSELoss creates a mean squared error loss.
func NewMSELoss() *MSELoss { return &MSELoss{} }

// Forward computes the loss. pred and target must have the same shape and
// dtype; the result is a scalar.
func (*MSELoss) Forward(pred, target *tensor.Tensor) (*tensor.Tensor, error) {
	diff, err := autodiff.Sub(pred, target)
	if err != nil {
		return nil, err
	}
	sq, err := autodiff.Mul(diff, diff)
	if err != nil {
		return nil, err
	}
	return autodiff.Mean(sq)
}

// CrossEntropyLoss computes the mean negative log-likelihood of int32 class
// labels under softmax(logits). The softmax and log are fused for numeric
// stability, so the logits should be raw scores, not probabilities.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a cross-entropy loss over logits.
func NewCrossEntropyLoss() *CrossEntropyLoss { return &CrossEntropyLoss{} }

// Forward computes the loss for [batch, classes] logits and [batch] labels.
func (*CrossEntropyLoss) Forward(logits, labels *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.CrossEntropy(logits, labels)
}
