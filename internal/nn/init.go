package nn

import (
	"math"
	"math/rand"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// XavierUniform initializes a tensor with values drawn from the Glorot
// uniform distribution U(-b, b) with b = sqrt(6/(fanIn+fanOut)), which keeps
// activation variance roughly constant across layers.
//
// The caller supplies the random source so initialization is reproducible
// under a fixed seed. A nil rng draws from a freshly seeded source instead.
func XavierUniform(fanIn, fanOut int, shape tensor.Shape, dtype tensor.DataType, rng *rand.Rand) (*tensor.Tensor, error) {
	if fanIn <= 0 || fanOut <= 0 {
		return nil, tensor.NewShapeError("xavier", "fan sizes must be positive, got in=%d out=%d", fanIn, fanOut)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	t, err := tensor.New(shape, dtype)
	if err != nil {
		return nil, err
	}
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	switch dtype {
	case tensor.Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32((rng.Float64()*2 - 1) * bound)
		}
	case tensor.Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = (rng.Float64()*2 - 1) * bound
		}
	default:
		return nil, &tensor.DTypeError{Op: "xavier", DType: dtype}
	}
	return t, nil
}
