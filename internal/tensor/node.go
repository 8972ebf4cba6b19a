package tensor

// OpKind tags the differentiable operation recorded by a graph node.
type OpKind int

// Operation kinds understood by the autodiff engine.
const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMatMul
	OpTranspose
	OpReshape
	OpNeg
	OpExp
	OpLog
	OpReLU
	OpSigmoid
	OpTanh
	OpSum
	OpMean
	OpCrossEntropy
)

// String returns the operation name used in error messages.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMatMul:
		return "matmul"
	case OpTranspose:
		return "transpose"
	case OpReshape:
		return "reshape"
	case OpNeg:
		return "neg"
	case OpExp:
		return "exp"
	case OpLog:
		return "log"
	case OpReLU:
		return "relu"
	case OpSigmoid:
		return "sigmoid"
	case OpTanh:
		return "tanh"
	case OpSum:
		return "sum"
	case OpMean:
		return "mean"
	case OpCrossEntropy:
		return "cross_entropy"
	default:
		return "unknown"
	}
}

// BackwardFunc is a node's local gradient rule. Given the gradient at the
// node's output it returns one gradient contribution per input, in input
// order. A nil entry means no gradient flows to that input (for example an
// integer label tensor).
type BackwardFunc func(outputGrad *Tensor) ([]*Tensor, error)

// Node records one application of a differentiable operation. Nodes hold
// shared references to their input tensors; the same tensor may feed several
// nodes, so the graph is a DAG rather than a tree. A node lives as long as
// some tensor references it, which in practice means from a forward pass
// until the backward pass that consumes it.
type Node struct {
	kind     OpKind
	inputs   []*Tensor
	backward BackwardFunc
}

// NewNode builds a graph node for the given operation, inputs, and local
// gradient rule.
func NewNode(kind OpKind, inputs []*Tensor, backward BackwardFunc) *Node {
	return &Node{kind: kind, inputs: inputs, backward: backward}
}

// Kind returns the operation tag.
func (n *Node) Kind() OpKind {
	return n.kind
}

// Inputs returns the tensors the operation consumed.
func (n *Node) Inputs() []*Tensor {
	return n.inputs
}

// Backward applies the local gradient rule to the output gradient.
func (n *Node) Backward(outputGrad *Tensor) ([]*Tensor, error) {
	return n.backward(outputGrad)
}
