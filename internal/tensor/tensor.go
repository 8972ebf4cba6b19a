package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor is an n-dimensional numeric array plus optional autograd metadata:
// a requires-grad flag, a gradient accumulator of the same shape, and a
// back-reference to the graph node that produced it. Leaves created directly
// by a user or model have no producing node.
//
// The accumulator is mutated only by the backward traversal and ZeroGrad; it
// is never reset implicitly. Callers that run several backward passes over
// the same tensors must zero gradients in between or the contributions sum.
type Tensor struct {
	data  []byte
	shape Shape
	dtype DataType

	requiresGrad bool
	grad         *Tensor
	node         *Node
}

// New allocates a zero-filled tensor with the given shape and dtype.
func New(shape Shape, dtype DataType) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor{
		data:  make([]byte, shape.NumElements()*dtype.Size()),
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// ByteSize returns the total storage size in bytes.
func (t *Tensor) ByteSize() int {
	return len(t.data)
}

// Data returns the raw backing bytes in little-endian element order.
func (t *Tensor) Data() []byte {
	return t.data
}

// AsFloat32 interprets the storage as []float32.
// Panics if the tensor's dtype is not Float32.
func (t *Tensor) AsFloat32() []float32 {
	if t.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", t.dtype))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsFloat64 interprets the storage as []float64.
// Panics if the tensor's dtype is not Float64.
func (t *Tensor) AsFloat64() []float64 {
	if t.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", t.dtype))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsInt32 interprets the storage as []int32.
// Panics if the tensor's dtype is not Int32.
func (t *Tensor) AsInt32() []int32 {
	if t.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", t.dtype))
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// RequiresGrad reports whether backward passes track this tensor.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// SetRequiresGrad marks the tensor for gradient tracking and returns it.
func (t *Tensor) SetRequiresGrad(v bool) *Tensor {
	t.requiresGrad = v
	return t
}

// Node returns the producing graph node, or nil for leaf tensors.
func (t *Tensor) Node() *Node {
	return t.node
}

// SetNode attaches the producing graph node. Used by the autodiff engine
// when an operation output is recorded.
func (t *Tensor) SetNode(n *Node) {
	t.node = n
}

// IsLeaf reports whether the tensor has no producing node.
func (t *Tensor) IsLeaf() bool {
	return t.node == nil
}

// IsScalar reports whether the tensor holds exactly one element.
func (t *Tensor) IsScalar() bool {
	return t.shape.IsScalar()
}

// Grad returns the accumulated gradient, or nil if no contribution has
// arrived since the last ZeroGrad.
func (t *Tensor) Grad() *Tensor {
	return t.grad
}

// AccumulateGrad adds a contribution into the gradient accumulator,
// allocating it on first use. Contributions sum: a tensor consumed by
// several downstream operations receives the total over all paths.
func (t *Tensor) AccumulateGrad(g *Tensor) error {
	if g.dtype != t.dtype {
		return &DTypeError{Op: "accumulate_grad", DType: g.dtype}
	}
	if !g.shape.Equal(t.shape) {
		return NewShapeError("accumulate_grad", "gradient shape %v does not match tensor shape %v", g.shape, t.shape)
	}

	if t.grad == nil {
		zero, err := New(t.shape, t.dtype)
		if err != nil {
			return err
		}
		t.grad = zero
	}

	switch t.dtype {
	case Float32:
		dst, src := t.grad.AsFloat32(), g.AsFloat32()
		for i := range dst {
			dst[i] += src[i]
		}
	case Float64:
		dst, src := t.grad.AsFloat64(), g.AsFloat64()
		for i := range dst {
			dst[i] += src[i]
		}
	default:
		return &DTypeError{Op: "accumulate_grad", DType: t.dtype}
	}
	return nil
}

// ZeroGrad discards the gradient accumulator. The next backward pass starts
// from zero for this tensor.
func (t *Tensor) ZeroGrad() {
	t.grad = nil
}

// Detach returns a tensor sharing this tensor's storage but carrying no
// graph metadata. Useful for reading values without extending the graph.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{
		data:  t.data,
		shape: t.shape.Clone(),
		dtype: t.dtype,
	}
}

// Clone returns a deep copy of the tensor's value with no graph metadata.
func (t *Tensor) Clone() *Tensor {
	clone := &Tensor{
		data:  make([]byte, len(t.data)),
		shape: t.shape.Clone(),
		dtype: t.dtype,
	}
	copy(clone.data, t.data)
	return clone
}

// Item returns the value of a scalar tensor as float64.
func (t *Tensor) Item() (float64, error) {
	if !t.IsScalar() {
		return 0, NewShapeError("item", "tensor shape %v is not scalar", t.shape)
	}
	switch t.dtype {
	case Float32:
		return float64(t.AsFloat32()[0]), nil
	case Float64:
		return t.AsFloat64()[0], nil
	case Int32:
		return float64(t.AsInt32()[0]), nil
	default:
		return 0, &DTypeError{Op: "item", DType: t.dtype}
	}
}

// String returns a short description such as "Tensor(float32, [2 3])".
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%s, %v)", t.dtype, []int(t.shape))
}
