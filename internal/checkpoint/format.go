package checkpoint

import (
	"fmt"
	"time"
)

// Format constants.
const (
	MagicBytes      = "SPRT"
	FormatVersion   = 1
	HeaderAlignment = 64 // tensor data starts on a 64-byte boundary

	// maxHeaderSize bounds the JSON header so a corrupt size field cannot
	// trigger an enormous allocation.
	maxHeaderSize = 16 << 20
)

// Architecture is the structural metadata stored alongside parameters: the
// widths needed to reconstruct a structurally identical model before values
// are copied in.
type Architecture struct {
	InputSize    int   `json:"input_size"`
	OutputSize   int   `json:"output_size"`
	HiddenLayers []int `json:"hidden_layers"`
}

// Validate checks that every width is positive.
func (a Architecture) Validate() error {
	if a.InputSize < 1 {
		return fmt.Errorf("input size must be positive, got %d", a.InputSize)
	}
	if a.OutputSize < 1 {
		return fmt.Errorf("output size must be positive, got %d", a.OutputSize)
	}
	for i, h := range a.HiddenLayers {
		if h < 1 {
			return fmt.Errorf("hidden layer %d width must be positive, got %d", i, h)
		}
	}
	return nil
}

// ParameterNames returns the canonical dot-qualified parameter names for
// this architecture in structural order: hidden_layers.<i>.weight and
// hidden_layers.<i>.bias per layer, then output.weight and output.bias.
// Checkpoints serialize tensors in exactly this order.
func (a Architecture) ParameterNames() []string {
	names := make([]string, 0, 2*len(a.HiddenLayers)+2)
	for i := range a.HiddenLayers {
		names = append(names,
			fmt.Sprintf("hidden_layers.%d.weight", i),
			fmt.Sprintf("hidden_layers.%d.bias", i),
		)
	}
	return append(names, "output.weight", "output.bias")
}

// Header is the JSON metadata block of a .sprt file. Architecture fields
// are embedded at the top level.
type Header struct {
	FormatVersion int       `json:"format_version"`
	CreatedAt     time.Time `json:"created_at"`
	Architecture
	Tensors []TensorMeta `json:"tensors"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	DType  string `json:"dtype"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`   // payload length in bytes
}
