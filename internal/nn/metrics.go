package nn

import "github.com/sprout-ml/sprout/internal/tensor"

// Argmax returns the index of the largest value in each row of a
// [batch, classes] float tensor as an int32 tensor of shape [batch]. Ties
// resolve to the lowest index.
func Argmax(logits *tensor.Tensor) (*tensor.Tensor, error) {
	shape := logits.Shape()
	if len(shape) != 2 {
		return nil, tensor.NewShapeError("argmax", "expected 2D logits, got %v", shape)
	}
	if !logits.DType().IsFloat() {
		return nil, &tensor.DTypeError{Op: "argmax", DType: logits.DType()}
	}
	batch, classes := shape[0], shape[1]
	out, err := tensor.New(tensor.Shape{batch}, tensor.Int32)
	if err != nil {
		return nil, err
	}
	dst := out.AsInt32()
	rowMax := func(row []float64) int32 {
		best := 0
		for c := 1; c < len(row); c++ {
			if row[c] > row[best] {
				best = c
			}
		}
		return int32(best)
	}
	switch logits.DType() {
	case tensor.Float32:
		data := logits.AsFloat32()
		row := make([]float64, classes)
		for i := 0; i < batch; i++ {
			for c := 0; c < classes; c++ {
				row[c] = float64(data[i*classes+c])
			}
			dst[i] = rowMax(row)
		}
	case tensor.Float64:
		data := logits.AsFloat64()
		for i := 0; i < batch; i++ {
			dst[i] = rowMax(data[i*classes : (i+1)*classes])
		}
	}
	return out, nil
}

// Accuracy returns the fraction of rows whose argmax prediction matches the
// int32 label, in [0, 1].
func Accuracy(logits, labels *tensor.Tensor) (float64, error) {
	pred, err := Argmax(logits)
	if err != nil {
		return 0, err
	}
	if labels.DType() != tensor.Int32 {
		return 0, &tensor.DTypeError{Op: "accuracy", DType: labels.DType()}
	}
	if len(labels.Shape()) != 1 || labels.Shape()[0] != pred.Shape()[0] {
		return 0, tensor.NewShapeError("accuracy", "labels must be [%d], got %v", pred.Shape()[0], labels.Shape())
	}
	p, l := pred.AsInt32(), labels.AsInt32()
	correct := 0
	for i := range p {
		if p[i] == l[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(p)), nil
}
