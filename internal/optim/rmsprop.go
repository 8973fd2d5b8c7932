package optim

import (
	"math"

	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/tensor"
)

// RMSProp implements the RMSProp optimizer.
//
// Update rule:
//
//	s_t = alpha * s_{t-1} + (1-alpha) * gradient^2
//	param = param - lr * gradient / (sqrt(s_t) + eps)
type RMSProp struct {
	params []*nn.Parameter
	lr     float64
	alpha  float64
	eps    float64
	s      map[*nn.Parameter][]float64
}

// RMSPropConfig holds configuration for the RMSProp optimizer.
type RMSPropConfig struct {
	LR    float64 // learning rate (default: 0.01)
	Alpha float64 // smoothing constant (default: 0.99)
	Eps   float64 // numerical stability term (default: 1e-8)
}

// NewRMSProp creates a new RMSProp optimizer with defaults filled in.
func NewRMSProp(params []*nn.Parameter, config RMSPropConfig) *RMSProp {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Alpha == 0 {
		config.Alpha = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &RMSProp{
		params: params,
		lr:     config.LR,
		alpha:  config.Alpha,
		eps:    config.Eps,
		s:      make(map[*nn.Parameter][]float64),
	}
}

// Step performs a single optimization step.
func (r *RMSProp) Step(grads map[*tensor.Raw]*tensor.Raw) {
	for _, param := range r.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}
		gradData := grad.Data()
		paramData := param.Tensor().Data()

		s, ok := r.s[param]
		if !ok {
			s = make([]float64, len(paramData))
			r.s[param] = s
		}
		for i := range paramData {
			g := gradData[i]
			s[i] = r.alpha*s[i] + (1.0-r.alpha)*g*g
			paramData[i] -= r.lr * g / (math.Sqrt(s[i]) + r.eps)
		}
	}
}

// GetLR returns the current learning rate.
func (r *RMSProp) GetLR() float64 { return r.lr }

// SetLR updates the learning rate.
func (r *RMSProp) SetLR(lr float64) { r.lr = lr }
