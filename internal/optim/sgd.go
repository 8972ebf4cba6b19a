package optim

import (
	"github.com/sprout-ml/sprout/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
type SGD struct {
	params   []*nn.Parameter
	lr       float64
	momentum float64
	velocity map[*nn.Parameter][]float64
}

// SGDConfig holds SGD hyperparameters.
type SGDConfig struct {
	LR       float64 // learning rate (default 0.01)
	Momentum float64 // momentum factor in [0, 1) (default 0)
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
		velocity: make(map[*nn.Parameter][]float64),
	}
}

// Step applies one descent update per parameter using its accumulated
// gradient. Parameters without a gradient are skipped.
func (s *SGD) Step() error {
	for _, p := range s.params {
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

		if s.momentum == 0 {
			for i := 0; i < n; i++ {
				pv.set(i, pv.at(i)-s.lr*gv.at(i))
			}
			continue
		}

		vel, ok := s.velocity[p]
		if !ok {
			vel = make([]float64, n)
			s.velocity[p] = vel
		}
		for i := 0; i < n; i++ {
			vel[i] = s.momentum*vel[i] + gv.at(i)
			pv.set(i, pv.at(i)-s.lr*vel[i])
		}
	}
	return nil
}

// ZeroGrad discards all parameter gradients.
func (s *SGD) ZeroGrad() {
	zeroAll(s.params)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 { return s.lr }

// SetLR changes the learning rate for subsequent steps.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
