// Package data provides in-memory batch sources for training: slicing a
// dataset into fixed-size batches, a deterministic synthetic classification
// generator, and a CSV loader for labeled numeric datasets.
package data

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Batches cuts an in-memory dataset into fixed-size (input, label) pairs.
// The first dimension of both tensors is the sample dimension. The final
// batch may be smaller when the sample count is not a multiple of the batch
// size. Batches is restartable via Reset and yields copies, so consumers
// can hold onto batch tensors across steps.
type Batches struct {
	x         *tensor.Tensor
	y         *tensor.Tensor
	batchSize int
	pos       int
}

// NewBatches creates a batch source over x and y, whose first dimensions
// must agree.
func NewBatches(x, y *tensor.Tensor, batchSize int) (*Batches, error) {
	if len(x.Shape()) == 0 || len(y.Shape()) == 0 {
		return nil, tensor.NewShapeError("batches", "inputs and labels need a sample dimension")
	}
	if x.Shape()[0] != y.Shape()[0] {
		return nil, tensor.NewShapeError("batches", "sample counts disagree: %d inputs, %d labels", x.Shape()[0], y.Shape()[0])
	}
	if batchSize < 1 {
		return nil, tensor.NewShapeError("batches", "batch size must be positive, got %d", batchSize)
	}
	return &Batches{x: x, y: y, batchSize: batchSize}, nil
}

// Len returns the number of batches per pass.
func (b *Batches) Len() int {
	n := b.x.Shape()[0]
	return (n + b.batchSize - 1) / b.batchSize
}

// Reset restarts iteration from the first batch.
func (b *Batches) Reset() {
	b.pos = 0
}

// Next returns the next (input, label) pair, or ok=false when the pass is
// exhausted.
func (b *Batches) Next() (*tensor.Tensor, *tensor.Tensor, bool) {
	n := b.x.Shape()[0]
	if b.pos >= n {
		return nil, nil, false
	}
	end := b.pos + b.batchSize
	if end > n {
		end = n
	}
	x := sliceRows(b.x, b.pos, end)
	y := sliceRows(b.y, b.pos, end)
	b.pos = end
	return x, y, true
}

// sliceRows copies rows [from, to) of t into a fresh tensor. Rows are
// contiguous in row-major storage, so this is a single byte copy.
func sliceRows(t *tensor.Tensor, from, to int) *tensor.Tensor {
	shape := t.Shape().Clone()
	shape[0] = to - from
	out, err := tensor.New(shape, t.DType())
	if err != nil {
		// Shape is derived from a valid tensor; this cannot fail.
		panic(err)
	}
	rowBytes := t.ByteSize() / t.Shape()[0]
	copy(out.Data(), t.Data()[from*rowBytes:to*rowBytes])
	return out
}
