package nn

import (
	"fmt"
	"strings"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Mismatch records one parameter whose stored entry cannot be applied to the
// model. A nil Found means the state lacks the parameter; a nil Expected
// means the state names a parameter the model does not have.
type Mismatch struct {
	Name          string
	Expected      tensor.Shape
	Found         tensor.Shape
	ExpectedDType tensor.DataType
	FoundDType    tensor.DataType
}

func (m Mismatch) String() string {
	switch {
	case m.Found == nil:
		return fmt.Sprintf("%s: missing from state (want %v)", m.Name, m.Expected)
	case m.Expected == nil:
		return fmt.Sprintf("%s: unexpected entry (found %v)", m.Name, m.Found)
	case !m.Expected.Equal(m.Found):
		return fmt.Sprintf("%s: want shape %v, found %v", m.Name, m.Expected, m.Found)
	default:
		return fmt.Sprintf("%s: want dtype %s, found %s", m.Name, m.ExpectedDType, m.FoundDType)
	}
}

// ShapeMismatchError enumerates every parameter whose stored entry disagrees
// with the model, not just the first. Loading is all-or-nothing: when this
// error is returned, no parameter was modified.
type ShapeMismatchError struct {
	Mismatches []Mismatch
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return fmt.Sprintf("state mismatch on %d parameter(s): %s", len(e.Mismatches), strings.Join(parts, "; "))
}
