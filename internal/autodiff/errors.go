package autodiff

// GraphError reports a backward call the computation graph cannot satisfy:
// a nil or non-scalar root, or a tensor with no recorded operation behind it
// (a leaf, or an output produced while gradients were disabled).
type GraphError struct {
	Message string
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return "autodiff: " + e.Message
}
