// Package autodiff implements reverse-mode automatic differentiation over
// tensors.
//
// Every differentiable operation exported by this package runs its forward
// kernel on the active backend and, when gradient tracking is enabled and at
// least one input is tracked, attaches a graph node to the result. The node
// remembers the operation kind, the input tensors, and a local rule that maps
// the output gradient to one gradient per input. Backward walks the graph
// from a scalar root in reverse topological order and sums each contribution
// into the input tensors' gradient accumulators.
//
// Accumulators are never cleared implicitly. Callers that reuse leaf tensors
// across training steps must zero gradients between steps, typically through
// an optimizer's ZeroGrad.
package autodiff
