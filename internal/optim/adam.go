package optim

import (
	"math"

	"github.com/sprout-ml/sprout/internal/nn"
)

// Adam implements the Adam optimizer (Kingma & Ba, 2014).
//
// Update rule, with t counting steps from 1:
//
//	m = beta1*m + (1-beta1)*grad
//	v = beta2*v + (1-beta2)*grad²
//	mHat = m / (1 - beta1^t)
//	vHat = v / (1 - beta2^t)
//	param = param - lr * mHat / (sqrt(vHat) + eps)
//
// Moment buffers are kept in float64 regardless of the parameter dtype.
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int
	m      map[*nn.Parameter][]float64
	v      map[*nn.Parameter][]float64
}

// AdamConfig holds Adam hyperparameters. Zero values take the customary
// defaults: LR 0.001, Beta1 0.9, Beta2 0.999, Eps 1e-8.
type AdamConfig struct {
	LR    float64
	Beta1 float64
	Beta2 float64
	Eps   float64
}

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Beta1,
		beta2:  config.Beta2,
		eps:    config.Eps,
		m:      make(map[*nn.Parameter][]float64),
		v:      make(map[*nn.Parameter][]float64),
	}
}

// Step applies one Adam update per parameter with an accumulated gradient.
func (a *Adam) Step() error {
	a.t++
	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, p := range a.params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		pv, err := viewOf(p.Tensor())
		if err != nil {
			return err
		}
		gv, err := viewOf(grad)
		if err != nil {
			return err
		}
		n := p.Tensor().NumElements()

		m, ok := a.m[p]
		if !ok {
			m = make([]float64, n)
			a.m[p] = m
		}
		v, ok := a.v[p]
		if !ok {
			v = make([]float64, n)
			a.v[p] = v
		}

		for i := 0; i < n; i++ {
			g := gv.at(i)
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g
			mHat := m[i] / c1
			vHat := v[i] / c2
			pv.set(i, pv.at(i)-a.lr*mHat/(math.Sqrt(vHat)+a.eps))
		}
	}
	return nil
}

// ZeroGrad discards all parameter gradients.
func (a *Adam) ZeroGrad() {
	zeroAll(a.params)
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 { return a.lr }

// SetLR changes the learning rate for subsequent steps.
func (a *Adam) SetLR(lr float64) { a.lr = lr }
