// Package optim implements gradient-based optimizers.
//
// Optimizers update parameter tensors in place using the gradient map
// produced by the autodiff tape. Parameters whose Raw identity has no
// entry in the map did not participate in the forward pass and are
// skipped.
package optim

import (
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/tensor"
)

// Optimizer is the common interface for all optimizers.
type Optimizer interface {
	// Step applies one update using the gradients from a backward pass.
	Step(grads map[*tensor.Raw]*tensor.Raw)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate (for schedules).
	SetLR(lr float64)
}

// getGradient looks up the gradient for a parameter, or nil.
func getGradient(param *nn.Parameter, grads map[*tensor.Raw]*tensor.Raw) *tensor.Raw {
	return grads[param.Tensor().Raw()]
}
