// Package train drives gradient-descent training: epochs of
// forward/backward/update steps over a restartable batch source, with a
// running average loss reported per epoch.
package train

import (
	"errors"
	"fmt"
	"log"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// ErrNoBatches is returned when a batch source yields nothing for a full
// pass.
var ErrNoBatches = errors.New("train: batch source yielded no batches")

// BatchSource produces a finite, restartable sequence of (input, label)
// pairs. data.Batches satisfies it.
type BatchSource interface {
	// Reset restarts the sequence from the beginning.
	Reset()

	// Next returns the next pair, or ok=false when the pass is exhausted.
	Next() (x, y *tensor.Tensor, ok bool)
}

// Config configures a Trainer.
type Config struct {
	// Epochs is the number of full passes over the batch source.
	Epochs int

	// Logger, when set, receives one line per epoch with the running
	// average loss. Nil disables logging.
	Logger *log.Logger
}

// Trainer runs the training loop. Per batch: forward through the model,
// compute the scalar loss, zero accumulated gradients, backpropagate, and
// apply one optimizer update.
//
// Example:
//
//	model, _ := nn.NewMLP(784, []int{128, 64}, 10, rng)
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//	trainer, _ := train.New(model, &nn.CrossEntropyLoss{}, opt, train.Config{Epochs: 5})
//	history, err := trainer.Fit(batches)
type Trainer struct {
	model nn.Module
	loss  nn.Loss
	opt   optim.Optimizer
	cfg   Config
}

// New creates a Trainer over a model, a loss function, and an optimizer
// already bound to the model's parameters.
func New(model nn.Module, loss nn.Loss, opt optim.Optimizer, cfg Config) (*Trainer, error) {
	if model == nil || loss == nil || opt == nil {
		return nil, errors.New("train: model, loss and optimizer are all required")
	}
	if cfg.Epochs < 1 {
		return nil, fmt.Errorf("train: epochs must be positive, got %d", cfg.Epochs)
	}
	return &Trainer{model: model, loss: loss, opt: opt, cfg: cfg}, nil
}

// Step runs one training step on a single batch and returns the batch
// loss. The order is fixed: forward, loss, zero gradients, backward,
// update. Gradients accumulate additively across backward calls, so
// zeroing before backward keeps each update based on this batch alone.
func (tr *Trainer) Step(x, y *tensor.Tensor) (float64, error) {
	pred, err := tr.model.Forward(x)
	if err != nil {
		return 0, err
	}
	loss, err := tr.loss.Forward(pred, y)
	if err != nil {
		return 0, err
	}
	tr.opt.ZeroGrad()
	if err := autodiff.Backward(loss); err != nil {
		return 0, err
	}
	if err := tr.opt.Step(); err != nil {
		return 0, err
	}
	return loss.Item()
}

// Fit trains for the configured number of epochs and returns the running
// average loss per epoch (sum of per-batch losses divided by batch count).
// Any step error is fatal: the loop stops and the error is returned along
// with the history of completed epochs.
func (tr *Trainer) Fit(source BatchSource) ([]float64, error) {
	history := make([]float64, 0, tr.cfg.Epochs)
	for epoch := 1; epoch <= tr.cfg.Epochs; epoch++ {
		source.Reset()
		var total float64
		batches := 0
		for {
			x, y, ok := source.Next()
			if !ok {
				break
			}
			v, err := tr.Step(x, y)
			if err != nil {
				return history, err
			}
			total += v
			batches++
		}
		if batches == 0 {
			return history, ErrNoBatches
		}
		avg := total / float64(batches)
		history = append(history, avg)
		if tr.cfg.Logger != nil {
			tr.cfg.Logger.Printf("epoch %d/%d: loss=%.6f", epoch, tr.cfg.Epochs, avg)
		}
	}
	return history, nil
}
