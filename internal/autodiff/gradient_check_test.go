package autodiff

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// scalarFunc evaluates a differentiable expression of x down to a scalar.
type scalarFunc func(x *tensor.Tensor) (*tensor.Tensor, error)

// checkGradient compares the gradient Backward reports for x against a
// central finite-difference probe of f at the same point. x must be float64
// so the probe is not drowned by rounding.
func checkGradient(t *testing.T, f scalarFunc, x *tensor.Tensor, tol float64) {
	t.Helper()
	require.Equal(t, tensor.Float64, x.DType())
	x.SetRequiresGrad(true)
	x.ZeroGrad()

	y, err := f(x)
	require.NoError(t, err)
	require.NoError(t, Backward(y))
	require.NotNil(t, x.Grad())
	analytic := append([]float64(nil), x.Grad().AsFloat64()...)

	const eps = 1e-5
	restore := NoGrad()
	defer restore()
	xs := x.AsFloat64()
	eval := func() float64 {
		out, err := f(x)
		require.NoError(t, err)
		v, err := out.Item()
		require.NoError(t, err)
		return v
	}
	for i := range xs {
		orig := xs[i]
		xs[i] = orig + eps
		plus := eval()
		xs[i] = orig - eps
		minus := eval()
		xs[i] = orig
		numeric := (plus - minus) / (2 * eps)
		require.InDelta(t, numeric, analytic[i], tol, "gradient element %d", i)
	}
}

func leafF64(t *testing.T, values []float64, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	tr, err := tensor.FromFloat64(values, shape)
	require.NoError(t, err)
	return tr
}

func TestGradientCheck_Binary(t *testing.T) {
	point := []float64{0.8, -1.3, 2.1, 0.4, -0.6, 1.7}
	shape := tensor.Shape{2, 3}
	cVals := []float64{1.5, -2.0, 0.7, 3.1, -1.1, 0.9}

	cases := []struct {
		name string
		f    func(x, c *tensor.Tensor) (*tensor.Tensor, error)
	}{
		{"add", Add},
		{"sub", Sub},
		{"mul", Mul},
		{"div", Div},
		{"div_reversed", func(x, c *tensor.Tensor) (*tensor.Tensor, error) { return Div(c, x) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := leafF64(t, point, shape)
			c := leafF64(t, cVals, shape)
			checkGradient(t, func(x *tensor.Tensor) (*tensor.Tensor, error) {
				y, err := tc.f(x, c)
				if err != nil {
					return nil, err
				}
				return Mean(y)
			}, x, 1e-4)
		})
	}
}

func TestGradientCheck_BroadcastBinary(t *testing.T) {
	// x is a row vector broadcast across a [2,3] constant; the gradient
	// must come back reduced to x's shape.
	x := leafF64(t, []float64{0.5, -1.0, 2.0}, tensor.Shape{3})
	c := leafF64(t, []float64{1.0, 2.0, 3.0, 4.0, 5.0, 6.0}, tensor.Shape{2, 3})
	checkGradient(t, func(x *tensor.Tensor) (*tensor.Tensor, error) {
		y, err := Mul(c, x)
		if err != nil {
			return nil, err
		}
		return Sum(y)
	}, x, 1e-4)
	require.True(t, x.Grad().Shape().Equal(tensor.Shape{3}))
}

func TestGradientCheck_Unary(t *testing.T) {
	cases := []struct {
		name  string
		f     func(*tensor.Tensor) (*tensor.Tensor, error)
		point []float64
	}{
		{"neg", Neg, []float64{0.8, -1.3, 2.1, -0.4}},
		{"exp", Exp, []float64{0.8, -1.3, 1.1, -0.4}},
		{"log", Log, []float64{0.5, 1.2, 3.0, 0.9}},
		// Points are kept away from zero so the probe never crosses the kink.
		{"relu", ReLU, []float64{0.5, -1.5, 2.0, -0.75}},
		{"sigmoid", Sigmoid, []float64{0.8, -1.3, 2.1, -0.4}},
		{"tanh", Tanh, []float64{0.8, -1.3, 2.1, -0.4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x := leafF64(t, tc.point, tensor.Shape{2, 2})
			checkGradient(t, func(x *tensor.Tensor) (*tensor.Tensor, error) {
				y, err := tc.f(x)
				if err != nil {
					return nil, err
				}
				return Mean(y)
			}, x, 1e-4)
		})
	}
}

func TestGradientCheck_MatMul(t *testing.T) {
	a := leafF64(t, []float64{0.5, -1.2, 0.3, 2.0, 1.1, -0.7}, tensor.Shape{2, 3})
	b := leafF64(t, []float64{1.0, -0.5, 0.25, 2.0, -1.5, 0.75}, tensor.Shape{3, 2})

	t.Run("left operand", func(t *testing.T) {
		checkGradient(t, func(x *tensor.Tensor) (*tensor.Tensor, error) {
			y, err := MatMul(x, b)
			if err != nil {
				return nil, err
			}
			return Sum(y)
		}, a, 1e-4)
	})
	t.Run("right operand", func(t *testing.T) {
		checkGradient(t, func(x *tensor.Tensor) (*tensor.Tensor, error) {
			y, err := MatMul(a, x)
			if err != nil {
				return nil, err
			}
			return Sum(y)
		}, b, 1e-4)
	})
}

func TestGradientCheck_TransposeAndReshape(t *testing.T) {
	t.Run("transpose", func(t *testing.T) {
		x := leafF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
		checkGradient(t, func(x *tensor.Tensor) (*tensor.Tensor, error) {
			xt, err := Transpose(x)
			if err != nil {
				return nil, err
			}
			y, err := Mul(xt, xt)
			if err != nil {
				return nil, err
			}
			return Sum(y)
		}, x, 1e-4)
	})
	t.Run("reshape", func(t *testing.T) {
		x := leafF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
		checkGradient(t, func(x *tensor.Tensor) (*tensor.Tensor, error) {
			r, err := Reshape(x, tensor.Shape{3, 2})
			if err != nil {
				return nil, err
			}
			y, err := Mul(r, r)
			if err != nil {
				return nil, err
			}
			return Mean(y)
		}, x, 1e-4)
	})
}

func TestGradientCheck_SumAndMean(t *testing.T) {
	x := leafF64(t, []float64{0.5, -1.2, 0.3, 2.0}, tensor.Shape{4})

	checkGradient(t, Sum, x, 1e-4)
	for _, g := range x.Grad().AsFloat64() {
		require.InDelta(t, 1.0, g, 1e-12)
	}

	x.ZeroGrad()
	checkGradient(t, Mean, x, 1e-4)
	for _, g := range x.Grad().AsFloat64() {
		require.InDelta(t, 0.25, g, 1e-12)
	}
}

// TestGradientCheck_CompositeAgainstGonum pits Backward against gonum's
// finite-difference gradient on a composite expression mixing several rules.
func TestGradientCheck_CompositeAgainstGonum(t *testing.T) {
	point := []float64{0.6, -0.9, 1.4, 0.2, -1.8, 0.75}
	shape := tensor.Shape{6}
	cVals := []float64{0.3, 1.1, -0.5, 2.2, 0.8, -1.4}

	x := leafF64(t, point, shape).SetRequiresGrad(true)
	c := leafF64(t, cVals, shape)

	build := func(x *tensor.Tensor) (*tensor.Tensor, error) {
		s, err := Sigmoid(x)
		if err != nil {
			return nil, err
		}
		th, err := Tanh(x)
		if err != nil {
			return nil, err
		}
		prod, err := Mul(s, th)
		if err != nil {
			return nil, err
		}
		shifted, err := Add(prod, c)
		if err != nil {
			return nil, err
		}
		e, err := Exp(shifted)
		if err != nil {
			return nil, err
		}
		return Mean(e)
	}

	y, err := build(x)
	require.NoError(t, err)
	require.NoError(t, Backward(y))
	analytic := append([]float64(nil), x.Grad().AsFloat64()...)

	restore := NoGrad()
	defer restore()
	objective := func(vals []float64) float64 {
		copy(x.AsFloat64(), vals)
		out, err := build(x)
		require.NoError(t, err)
		v, err := out.Item()
		require.NoError(t, err)
		return v
	}
	numeric := fd.Gradient(nil, objective, point, &fd.Settings{Formula: fd.Central})
	require.True(t, floats.EqualApprox(numeric, analytic, 1e-4),
		"analytic gradient %v disagrees with finite differences %v", analytic, numeric)
}
