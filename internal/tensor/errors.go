package tensor

import "fmt"

// ShapeError reports operand or parameter shapes an operation cannot accept.
// It is returned synchronously from forward evaluation, model construction,
// and checkpoint restore paths.
type ShapeError struct {
	Op      string // operation or parameter that rejected the shapes
	Message string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewShapeError builds a ShapeError with a formatted message.
func NewShapeError(op, format string, args ...any) *ShapeError {
	return &ShapeError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// DTypeError reports an element type an operation cannot work with, such as
// an int32 tensor fed to a differentiable op or mixed-precision operands.
type DTypeError struct {
	Op      string
	DType   DataType
	Message string // optional detail; empty means "unsupported dtype"
}

// Error implements the error interface.
func (e *DTypeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: unsupported dtype %s", e.Op, e.DType)
}
