package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) (*Tensor, error) {
	return New(shape, dtype)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) (*Tensor, error) {
	return Full(shape, dtype, 1)
}

// Full creates a tensor with every element set to value.
func Full(shape Shape, dtype DataType, value float64) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case Float32:
		data := t.AsFloat32()
		v := float32(value)
		for i := range data {
			data[i] = v
		}
	case Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = value
		}
	case Int32:
		data := t.AsInt32()
		v := int32(value)
		for i := range data {
			data[i] = v
		}
	}
	return t, nil
}

// Scalar creates a zero-dimensional tensor holding a single value.
func Scalar(dtype DataType, value float64) (*Tensor, error) {
	return Full(Shape{}, dtype, value)
}

// FromFloat32 creates a Float32 tensor from a copy of values.
func FromFloat32(values []float32, shape Shape) (*Tensor, error) {
	t, err := New(shape, Float32)
	if err != nil {
		return nil, err
	}
	if len(values) != t.NumElements() {
		return nil, NewShapeError("from_float32", "got %d values for shape %v (%d elements)",
			len(values), shape, t.NumElements())
	}
	copy(t.AsFloat32(), values)
	return t, nil
}

// FromFloat64 creates a Float64 tensor from a copy of values.
func FromFloat64(values []float64, shape Shape) (*Tensor, error) {
	t, err := New(shape, Float64)
	if err != nil {
		return nil, err
	}
	if len(values) != t.NumElements() {
		return nil, NewShapeError("from_float64", "got %d values for shape %v (%d elements)",
			len(values), shape, t.NumElements())
	}
	copy(t.AsFloat64(), values)
	return t, nil
}

// FromInt32 creates an Int32 tensor from a copy of values.
func FromInt32(values []int32, shape Shape) (*Tensor, error) {
	t, err := New(shape, Int32)
	if err != nil {
		return nil, err
	}
	if len(values) != t.NumElements() {
		return nil, NewShapeError("from_int32", "got %d values for shape %v (%d elements)",
			len(values), shape, t.NumElements())
	}
	copy(t.AsInt32(), values)
	return t, nil
}

// Randn creates a tensor with standard-normal samples drawn from rng via the
// Box-Muller transform. Passing an explicit rng keeps initialization and
// synthetic data reproducible under a fixed seed; a nil rng draws from a
// freshly seeded source.
func Randn(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	rng = defaultRng(rng)
	switch dtype {
	case Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32(boxMuller(rng))
		}
	case Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = boxMuller(rng)
		}
	default:
		return nil, &DTypeError{Op: "randn", DType: dtype}
	}
	return t, nil
}

// Rand creates a tensor with uniform samples in [0, 1) drawn from rng.
// A nil rng draws from a freshly seeded source.
func Rand(shape Shape, dtype DataType, rng *rand.Rand) (*Tensor, error) {
	t, err := New(shape, dtype)
	if err != nil {
		return nil, err
	}
	rng = defaultRng(rng)
	switch dtype {
	case Float32:
		data := t.AsFloat32()
		for i := range data {
			data[i] = float32(rng.Float64())
		}
	case Float64:
		data := t.AsFloat64()
		for i := range data {
			data[i] = rng.Float64()
		}
	default:
		return nil, &DTypeError{Op: "rand", DType: dtype}
	}
	return t, nil
}

// defaultRng substitutes a freshly seeded source for a nil rng.
func defaultRng(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(rand.Int63()))
}

// boxMuller draws one standard-normal sample.
func boxMuller(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
