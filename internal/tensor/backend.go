package tensor

// Backend executes the numeric kernels behind tensor operations. The
// interface covers only forward math: shape and dtype validation happens in
// the autodiff engine before a kernel runs, so implementations may assume
// operands are float tensors with compatible shapes. Kernel outputs carry no
// graph metadata; the engine attaches nodes afterwards.
type Backend interface {
	// Name identifies the backend for diagnostics.
	Name() string

	// Binary elementwise operations with NumPy-style broadcasting.
	Add(a, b *Tensor) *Tensor
	Sub(a, b *Tensor) *Tensor
	Mul(a, b *Tensor) *Tensor
	Div(a, b *Tensor) *Tensor

	// MatMul multiplies two 2D tensors: (M, K) @ (K, N) → (M, N).
	MatMul(a, b *Tensor) *Tensor

	// Transpose swaps the axes of a 2D tensor.
	Transpose(t *Tensor) *Tensor

	// Reshape copies the tensor into a new shape with the same element count.
	Reshape(t *Tensor, shape Shape) *Tensor

	// Unary elementwise operations.
	Neg(t *Tensor) *Tensor
	Exp(t *Tensor) *Tensor
	Log(t *Tensor) *Tensor
	ReLU(t *Tensor) *Tensor
	Sigmoid(t *Tensor) *Tensor
	Tanh(t *Tensor) *Tensor

	// Reductions to a scalar-shaped tensor.
	Sum(t *Tensor) *Tensor
	Mean(t *Tensor) *Tensor

	// SumTo reduce-sums t down to a shape it was broadcast from. Used by
	// backward rules of broadcasting binary operations.
	SumTo(t *Tensor, shape Shape) *Tensor
}
