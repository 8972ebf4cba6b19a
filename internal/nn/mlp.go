package nn

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// MLP is a feed-forward network of fully connected layers with ReLU between
// the hidden layers and raw logits at the output.
//
// Its parameters carry stable dot-qualified names derived from structural
// position (hidden_layers.<i>.weight, hidden_layers.<i>.bias, output.weight,
// output.bias), which is the naming contract checkpoints rely on.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model, err := nn.NewMLP(784, []int{128, 64}, 10, rng)
//	logits, err := model.Forward(batch) // [batchSize, 10]
type MLP struct {
	inputSize   int
	outputSize  int
	hiddenSizes []int
	hidden      []*Linear
	output      *Linear
	act         *ReLU
}

// NewMLP builds a network mapping inputSize features through the given
// hidden widths to outputSize logits. hiddenSizes may be empty, giving a
// single linear layer. A nil rng initializes weights from a freshly seeded
// source; pass a seeded rng for reproducible initialization.
func NewMLP(inputSize int, hiddenSizes []int, outputSize int, rng *rand.Rand) (*MLP, error) {
	m := &MLP{
		inputSize:   inputSize,
		outputSize:  outputSize,
		hiddenSizes: append([]int(nil), hiddenSizes...),
		act:         NewReLU(),
	}
	width := inputSize
	for i, h := range hiddenSizes {
		layer, err := NewLinear(width, h, rng)
		if err != nil {
			return nil, fmt.Errorf("hidden layer %d: %w", i, err)
		}
		m.hidden = append(m.hidden, layer)
		width = h
	}
	out, err := NewLinear(width, outputSize, rng)
	if err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}
	m.output = out
	return m, nil
}

// Forward maps a [batch, inputSize] tensor to [batch, outputSize] logits.
func (m *MLP) Forward(input *tensor.Tensor) (*tensor.Tensor, error) {
	x := input
	var err error
	for _, layer := range m.hidden {
		if x, err = layer.Forward(x); err != nil {
			return nil, err
		}
		if x, err = m.act.Forward(x); err != nil {
			return nil, err
		}
	}
	return m.output.Forward(x)
}

// Predict runs Forward with gradient tracking disabled and returns the
// argmax class per row as an int32 tensor of shape [batch].
func (m *MLP) Predict(input *tensor.Tensor) (*tensor.Tensor, error) {
	restore := autodiff.NoGrad()
	defer restore()
	logits, err := m.Forward(input)
	if err != nil {
		return nil, err
	}
	return Argmax(logits)
}

// Parameters returns all trainable parameters in structural order: hidden
// layers first, each weight before bias, then the output layer.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range m.hidden {
		params = append(params, layer.Parameters()...)
	}
	return append(params, m.output.Parameters()...)
}

// InputSize returns the expected input width.
func (m *MLP) InputSize() int { return m.inputSize }

// OutputSize returns the number of output logits.
func (m *MLP) OutputSize() int { return m.outputSize }

// HiddenSizes returns a copy of the ordered hidden-layer widths.
func (m *MLP) HiddenSizes() []int {
	return append([]int(nil), m.hiddenSizes...)
}

// namedEntry pairs a qualified parameter name with its tensor.
type namedEntry struct {
	name string
	t    *tensor.Tensor
}

func (m *MLP) namedEntries() []namedEntry {
	var entries []namedEntry
	for i, layer := range m.hidden {
		entries = append(entries,
			namedEntry{fmt.Sprintf("hidden_layers.%d.weight", i), layer.Weight().Tensor()},
			namedEntry{fmt.Sprintf("hidden_layers.%d.bias", i), layer.Bias().Tensor()},
		)
	}
	return append(entries,
		namedEntry{"output.weight", m.output.Weight().Tensor()},
		namedEntry{"output.bias", m.output.Bias().Tensor()},
	)
}

// StateDict returns the model's parameter tensors keyed by their qualified
// names. The tensors are the live parameters, not copies.
func (m *MLP) StateDict() map[string]*tensor.Tensor {
	entries := m.namedEntries()
	state := make(map[string]*tensor.Tensor, len(entries))
	for _, e := range entries {
		state[e.name] = e.t
	}
	return state
}

// LoadStateDict copies stored values into the model's parameters by name.
//
// The stored set must match the model exactly: every model parameter present
// with the same shape and dtype, and no extra entries. Any disagreement
// fails with a ShapeMismatchError listing all offending names, and in that
// case no parameter is modified.
func (m *MLP) LoadStateDict(state map[string]*tensor.Tensor) error {
	entries := m.namedEntries()
	var mismatches []Mismatch

	for _, e := range entries {
		stored, ok := state[e.name]
		if !ok {
			mismatches = append(mismatches, Mismatch{
				Name:          e.name,
				Expected:      e.t.Shape(),
				ExpectedDType: e.t.DType(),
			})
			continue
		}
		if !stored.Shape().Equal(e.t.Shape()) || stored.DType() != e.t.DType() {
			mismatches = append(mismatches, Mismatch{
				Name:          e.name,
				Expected:      e.t.Shape(),
				Found:         stored.Shape(),
				ExpectedDType: e.t.DType(),
				FoundDType:    stored.DType(),
			})
		}
	}

	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.name] = true
	}
	var extra []string
	for name := range state {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		mismatches = append(mismatches, Mismatch{
			Name:       name,
			Found:      state[name].Shape(),
			FoundDType: state[name].DType(),
		})
	}

	if len(mismatches) > 0 {
		return &ShapeMismatchError{Mismatches: mismatches}
	}

	// Every entry checked out; copy values in place so existing references
	// to the parameters (optimizers, views) stay valid.
	for _, e := range entries {
		copy(e.t.Data(), state[e.name].Data())
	}
	return nil
}
