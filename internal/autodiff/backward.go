package autodiff

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Backward computes gradients of a scalar root with respect to every tracked
// tensor in its graph. It seeds the root's accumulator with 1, walks the
// graph in reverse topological order, and adds each local contribution into
// the input tensors' accumulators. Tensors reachable through several paths
// receive the sum of all path contributions.
//
// Accumulators are not cleared first. Calling Backward again without zeroing
// adds a second full pass on top of the first.
func Backward(root *tensor.Tensor) error {
	if root == nil {
		return &GraphError{Message: "backward on nil tensor"}
	}
	if root.Node() == nil {
		return &GraphError{Message: "backward on a tensor with no recorded graph; it is a leaf or was produced with gradients disabled"}
	}
	if !root.IsScalar() {
		return &GraphError{Message: fmt.Sprintf("backward requires a scalar root, got shape %v", root.Shape())}
	}

	seed, err := tensor.Ones(root.Shape(), root.DType())
	if err != nil {
		return err
	}
	if err := root.AccumulateGrad(seed); err != nil {
		return err
	}

	order := topoSort(root)
	for i := len(order) - 1; i >= 0; i-- {
		t := order[i]
		node := t.Node()
		if node == nil {
			continue
		}
		outGrad := t.Grad()
		if outGrad == nil {
			// No gradient flowed into this branch.
			continue
		}
		inputGrads, err := node.Backward(outGrad)
		if err != nil {
			return err
		}
		inputs := node.Inputs()
		if len(inputGrads) != len(inputs) {
			return &GraphError{Message: fmt.Sprintf("%s: rule produced %d gradients for %d inputs", node.Kind(), len(inputGrads), len(inputs))}
		}
		for j, in := range inputs {
			g := inputGrads[j]
			if g == nil || !in.RequiresGrad() {
				continue
			}
			if err := in.AccumulateGrad(g); err != nil {
				return err
			}
		}
	}
	return nil
}

// topoSort returns the tensors reachable from root in topological order:
// every node's inputs appear before the node itself. Walking the result
// backwards visits each tensor only after all of its consumers.
func topoSort(root *tensor.Tensor) []*tensor.Tensor {
	var order []*tensor.Tensor
	seen := make(map[*tensor.Tensor]bool)
	var visit func(t *tensor.Tensor)
	visit = func(t *tensor.Tensor) {
		if seen[t] {
			return
		}
		seen[t] = true
		if n := t.Node(); n != nil {
			for _, in := range n.Inputs() {
				visit(in)
			}
		}
		order = append(order, t)
	}
	visit(root)
	return order
}
