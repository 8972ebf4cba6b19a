package autodiff

import (
	"math"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// CrossEntropy computes the mean negative log-likelihood of integer class
// labels under softmax(logits). logits is [batch, classes] float, labels is
// [batch] int32, and the result is a scalar in the logits dtype.
//
// The softmax and the log are fused through the log-sum-exp identity
// loss_i = lse(x_i) - x_i[label_i], which stays finite for large logits
// where a separate softmax would underflow. The gradient with respect to
// the logits is (softmax(x_i) - onehot(label_i)) / batch; labels receive
// no gradient.
func CrossEntropy(logits, labels *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat(tensor.OpCrossEntropy, logits); err != nil {
		return nil, err
	}
	if labels.DType() != tensor.Int32 {
		return nil, &tensor.DTypeError{
			Op:      tensor.OpCrossEntropy.String(),
			DType:   labels.DType(),
			Message: "labels must be int32, got " + labels.DType().String(),
		}
	}
	ls := logits.Shape()
	if len(ls) != 2 {
		return nil, tensor.NewShapeError("cross_entropy", "logits must be [batch, classes], got %v", ls)
	}
	if len(labels.Shape()) != 1 || labels.Shape()[0] != ls[0] {
		return nil, tensor.NewShapeError("cross_entropy", "labels must be [%d], got %v", ls[0], labels.Shape())
	}
	batch, classes := ls[0], ls[1]
	if batch == 0 || classes == 0 {
		return nil, tensor.NewShapeError("cross_entropy", "empty logits %v", ls)
	}

	x := logitsAsF64(logits)
	lab := labels.AsInt32()
	for i, l := range lab {
		if l < 0 || int(l) >= classes {
			return nil, tensor.NewShapeError("cross_entropy", "label %d at row %d outside [0, %d)", l, i, classes)
		}
	}

	var total float64
	for i := 0; i < batch; i++ {
		row := x[i*classes : (i+1)*classes]
		total += logSumExp(row) - row[lab[i]]
	}
	out, err := tensor.Scalar(logits.DType(), total/float64(batch))
	if err != nil {
		return nil, err
	}

	return record(tensor.OpCrossEntropy, []*tensor.Tensor{logits, labels}, out, func(g *tensor.Tensor) ([]*tensor.Tensor, error) {
		gv, err := g.Item()
		if err != nil {
			return nil, err
		}
		scale := gv / float64(batch)
		grad, err := tensor.New(logits.Shape(), logits.DType())
		if err != nil {
			return nil, err
		}
		for i := 0; i < batch; i++ {
			row := x[i*classes : (i+1)*classes]
			lse := logSumExp(row)
			for c := 0; c < classes; c++ {
				d := math.Exp(row[c] - lse)
				if int32(c) == lab[i] {
					d -= 1
				}
				setF64(grad, i*classes+c, d*scale)
			}
		}
		// Labels are not differentiable.
		return []*tensor.Tensor{grad, nil}, nil
	}), nil
}

// logSumExp computes ln(Σ eˣ) shifted by the row maximum for stability.
func logSumExp(row []float64) float64 {
	m := row[0]
	for _, v := range row[1:] {
		if v > m {
			m = v
		}
	}
	var s float64
	for _, v := range row {
		s += math.Exp(v - m)
	}
	return m + math.Log(s)
}

// logitsAsF64 reads a float tensor as float64 values. Float64 tensors are
// viewed in place; callers must not write through the result.
func logitsAsF64(t *tensor.Tensor) []float64 {
	if t.DType() == tensor.Float64 {
		return t.AsFloat64()
	}
	src := t.AsFloat32()
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

func setF64(t *tensor.Tensor, i int, v float64) {
	if t.DType() == tensor.Float64 {
		t.AsFloat64()[i] = v
		return
	}
	t.AsFloat32()[i] = float32(v)
}
