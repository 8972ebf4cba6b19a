package checkpoint

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Model is the capability checkpoints need from a network: named parameter
// access in both directions. nn.MLP satisfies it.
type Model interface {
	// StateDict returns the model's parameter tensors keyed by their
	// dot-qualified names.
	StateDict() map[string]*tensor.Tensor

	// LoadStateDict copies stored values into the model's parameters,
	// all-or-nothing. Shape or name disagreements fail with an error
	// enumerating every mismatch.
	LoadStateDict(state map[string]*tensor.Tensor) error
}

// Constructor builds a freshly initialized model matching an architecture.
type Constructor func(arch Architecture) (Model, error)

// Restore loads the checkpoint at path, reconstructs a model from its
// architecture via the constructor, and copies the stored parameters in.
//
// A file that cannot be read fails with a FormatError. Stored values that
// do not fit the reconstructed model fail with the model's mismatch error
// (nn.ShapeMismatchError for MLP), listing every offending parameter; the
// returned model is discarded in that case.
func Restore(path string, construct Constructor) (Model, error) {
	arch, params, err := Load(path)
	if err != nil {
		return nil, err
	}
	model, err := construct(arch)
	if err != nil {
		return nil, fmt.Errorf("restore %s: construct model: %w", path, err)
	}
	if err := model.LoadStateDict(params); err != nil {
		return nil, err
	}
	return model, nil
}
