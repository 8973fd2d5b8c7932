package optim

import (
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule (with momentum):
//
//	v_t = momentum * v_{t-1} + gradient
//	param = param - lr * v_t
type SGD struct {
	params   []*nn.Parameter
	lr       float64
	momentum float64
	velocity map[*nn.Parameter][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum coefficient (default: 0, plain SGD)
}

// NewSGD creates a new SGD optimizer.
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

// Step performs a single optimization step.
func (s *SGD) Step(grads map[*tensor.Raw]*tensor.Raw) {
	for _, param := range s.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}
		gradData := grad.Data()
		paramData := param.Tensor().Data()

		if s.momentum == 0 {
			for i := range paramData {
				paramData[i] -= s.lr * gradData[i]
			}
			continue
		}

		v, ok := s.velocity[param]
		if !ok {
			v = make([]float64, len(paramData))
			s.velocity[param] = v
		}
		for i := range paramData {
			v[i] = s.momentum*v[i] + gradData[i]
			paramData[i] -= s.lr * v[i]
		}
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 { return s.lr }

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
