package checkpoint

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by FormatError.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrTruncated          = errors.New("file truncated")
)

// FormatError reports a checkpoint file that cannot be read: missing,
// corrupt, or structurally invalid.
type FormatError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("checkpoint %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is and errors.As.
func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErr(path string, format string, args ...any) *FormatError {
	return &FormatError{Path: path, Err: fmt.Errorf(format, args...)}
}
