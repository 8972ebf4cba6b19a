package train

import (
	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/nn"
)

// Evaluate computes the average loss over one pass of the batch source.
// Runs with gradients disabled, so it touches neither the graph nor the
// parameters' accumulated gradients.
func (tr *Trainer) Evaluate(source BatchSource) (float64, error) {
	defer autodiff.NoGrad()()
	source.Reset()
	var total float64
	batches := 0
	for {
		x, y, ok := source.Next()
		if !ok {
			break
		}
		pred, err := tr.model.Forward(x)
		if err != nil {
			return 0, err
		}
		loss, err := tr.loss.Forward(pred, y)
		if err != nil {
			return 0, err
		}
		v, err := loss.Item()
		if err != nil {
			return 0, err
		}
		total += v
		batches++
	}
	if batches == 0 {
		return 0, ErrNoBatches
	}
	return total / float64(batches), nil
}

// Accuracy runs the model over one pass of the batch source and returns
// the fraction of samples whose argmax prediction matches the label.
// Per-batch accuracies are weighted by batch size, so a smaller final
// batch counts proportionally.
func Accuracy(model nn.Module, source BatchSource) (float64, error) {
	defer autodiff.NoGrad()()
	source.Reset()
	var correct float64
	samples := 0
	for {
		x, y, ok := source.Next()
		if !ok {
			break
		}
		pred, err := model.Forward(x)
		if err != nil {
			return 0, err
		}
		acc, err := nn.Accuracy(pred, y)
		if err != nil {
			return 0, err
		}
		rows := x.Shape()[0]
		correct += acc * float64(rows)
		samples += rows
	}
	if samples == 0 {
		return 0, ErrNoBatches
	}
	return correct / float64(samples), nil
}
