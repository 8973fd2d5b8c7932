package optim

import (
	"math"

	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient^2
//	m_hat = m_t / (1 - beta1^t)
//	v_hat = v_t / (1 - beta2^t)
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
//
// Example:
//
//	optimizer := optim.NewAdam(params, optim.AdamConfig{LR: 0.001})
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // timestep for bias correction
	m      map[*nn.Parameter][]float64
	v      map[*nn.Parameter][]float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // learning rate (default: 0.001)
	Betas [2]float64 // running-average coefficients (default: [0.9, 0.999])
	Eps   float64    // numerical stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer with defaults filled in.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*nn.Parameter][]float64),
		v:      make(map[*nn.Parameter][]float64),
	}
}

// Step performs a single optimization step.
func (a *Adam) Step(grads map[*tensor.Raw]*tensor.Raw) {
	a.t++
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}
		gradData := grad.Data()
		paramData := param.Tensor().Data()

		m, ok := a.m[param]
		if !ok {
			m = make([]float64, len(paramData))
			a.m[param] = m
		}
		v, ok := a.v[param]
		if !ok {
			v = make([]float64, len(paramData))
			a.v[param] = v
		}

		for i := range paramData {
			g := gradData[i]
			m[i] = a.beta1*m[i] + (1.0-a.beta1)*g
			v[i] = a.beta2*v[i] + (1.0-a.beta2)*g*g
			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2
			paramData[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 { return a.lr }

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) { a.lr = lr }

// Timestep returns the current timestep.
func (a *Adam) Timestep() int { return a.t }
