package data

import (
	"math/rand"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// SyntheticClassification generates a deterministic labeled dataset for
// tests and examples: one Gaussian cluster per class around a random
// center, with samples assigned round-robin so classes stay balanced.
//
// Inputs are [samples, features] float32, labels are [samples] int32 in
// [0, classes). The same seed always produces the same dataset.
func SyntheticClassification(samples, features, classes int, rng *rand.Rand) (*tensor.Tensor, *tensor.Tensor, error) {
	if samples < 1 || features < 1 || classes < 1 {
		return nil, nil, tensor.NewShapeError("synthetic", "sizes must be positive, got samples=%d features=%d classes=%d", samples, features, classes)
	}

	centers := make([][]float32, classes)
	for c := range centers {
		center := make([]float32, features)
		for i := range center {
			center[i] = float32(rng.NormFloat64())
		}
		centers[c] = center
	}

	x, err := tensor.New(tensor.Shape{samples, features}, tensor.Float32)
	if err != nil {
		return nil, nil, err
	}
	y, err := tensor.New(tensor.Shape{samples}, tensor.Int32)
	if err != nil {
		return nil, nil, err
	}

	xs, ys := x.AsFloat32(), y.AsInt32()
	const spread = 0.3
	for i := 0; i < samples; i++ {
		label := i % classes
		ys[i] = int32(label)
		center := centers[label]
		for j := 0; j < features; j++ {
			xs[i*features+j] = center[j] + float32(rng.NormFloat64())*spread
		}
	}
	return x, y, nil
}
