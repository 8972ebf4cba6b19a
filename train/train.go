// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train drives gradient-descent training over a batch source.
//
// Example:
//
//	model, _ := nn.NewMLP(784, []int{128, 64}, 10, rng)
//	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//	trainer, _ := train.New(model, nn.NewCrossEntropyLoss(), opt, train.Config{Epochs: 5})
//
//	history, err := trainer.Fit(batches) // avg loss per epoch
//
// Each step runs forward, loss, gradient zeroing, backward, and one
// optimizer update, in that order. A batch whose shape the model rejects
// aborts the epoch with the forward pass's ShapeError.
package train

import (
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/optim"
	"github.com/sprout-ml/sprout/internal/train"
)

// Trainer runs forward/backward/update cycles and reports per-epoch
// average losses.
type Trainer = train.Trainer

// Config configures a Trainer: epoch count and optional per-epoch
// logging.
type Config = train.Config

// BatchSource produces a finite, restartable sequence of (input, label)
// pairs. data.Batches satisfies it.
type BatchSource = train.BatchSource

// ErrNoBatches is returned when a batch source yields nothing for a full
// pass.
var ErrNoBatches = train.ErrNoBatches

// New creates a Trainer over a model, a loss function, and an optimizer
// already bound to the model's parameters.
func New(model nn.Module, loss nn.Loss, opt optim.Optimizer, cfg Config) (*Trainer, error) {
	return train.New(model, loss, opt, cfg)
}

// Accuracy runs the model over one pass of the batch source with
// gradients disabled and returns the fraction of samples classified
// correctly.
func Accuracy(model nn.Module, source BatchSource) (float64, error) {
	return train.Accuracy(model, source)
}
