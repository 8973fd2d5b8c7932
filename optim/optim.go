// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers.
//
// Optimizers update parameters from the gradient map produced by a
// tape's Backward call. Variational inference uses them to fit guide
// parameters; adversarial inference uses one per player.
//
// Example:
//
//	opt := optim.NewAdam(params, optim.AdamConfig{LR: 0.001})
//	grads := tape.Backward(loss.Raw(), ones, backend)
//	opt.Step(grads)
package optim

import (
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/optim"
)

// Optimizer is the interface all optimizers implement.
type Optimizer = optim.Optimizer

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds SGD hyperparameters.
type SGDConfig = optim.SGDConfig

// Adam implements the Adam optimizer with bias correction.
type Adam = optim.Adam

// AdamConfig holds Adam hyperparameters.
type AdamConfig = optim.AdamConfig

// RMSProp implements the RMSProp optimizer.
type RMSProp = optim.RMSProp

// RMSPropConfig holds RMSProp hyperparameters.
type RMSPropConfig = optim.RMSPropConfig

// NewSGD creates an SGD optimizer. Zero config fields get defaults.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// NewAdam creates an Adam optimizer. Zero config fields get defaults.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// NewRMSProp creates an RMSProp optimizer. Zero config fields get defaults.
func NewRMSProp(params []*nn.Parameter, config RMSPropConfig) *RMSProp {
	return optim.NewRMSProp(params, config)
}
