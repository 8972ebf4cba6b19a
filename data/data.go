// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides in-memory batch sources for training: slicing
// datasets into fixed-size batches, a deterministic synthetic
// classification generator, and a CSV loader for labeled numeric
// datasets.
//
// Example:
//
//	x, y, _ := data.LoadCSV("mnist_train.csv", data.CSVOptions{HasHeader: true, Scale: 255})
//	batches, _ := data.NewBatches(x, y, 32)
//	history, _ := trainer.Fit(batches)
package data

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/data"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Batches cuts an in-memory dataset into fixed-size (input, label) pairs.
// The final batch may be smaller when the sample count is not a multiple
// of the batch size.
type Batches = data.Batches

// CSVOptions configures LoadCSV.
type CSVOptions = data.CSVOptions

// NewBatches creates a restartable batch source over x and y, whose first
// dimensions must agree.
func NewBatches(x, y *tensor.Tensor, batchSize int) (*Batches, error) {
	return data.NewBatches(x, y, batchSize)
}

// SyntheticClassification generates a deterministic labeled dataset: one
// Gaussian cluster per class, with samples assigned round-robin so
// classes stay balanced. The same seed always produces the same dataset.
func SyntheticClassification(samples, features, classes int, rng *rand.Rand) (*tensor.Tensor, *tensor.Tensor, error) {
	return data.SyntheticClassification(samples, features, classes, rng)
}

// LoadCSV reads a labeled numeric dataset whose first column is an
// integer class label and remaining columns are features.
func LoadCSV(path string, opts CSVOptions) (*tensor.Tensor, *tensor.Tensor, error) {
	return data.LoadCSV(path, opts)
}
