// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks.
//
// Modules are composable layers that transform tensors and expose their
// trainable parameters. In probabilistic programs they parameterize
// distributions: a decoder network maps latent codes to likelihood
// parameters, an encoder network amortizes the variational guide.
//
// Example:
//
//	decoder := nn.NewSequential(
//		nn.NewLinear(2, 256, backend),
//		nn.NewReLU(),
//		nn.NewLinear(256, 784, backend),
//	)
//	logits := decoder.Forward(z)
package nn

import (
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/tensor"
)

// Module is the interface all layers implement.
type Module = nn.Module

// Parameter is a named trainable tensor.
type Parameter = nn.Parameter

// Linear is a fully connected layer computing y = x*W^T + b.
type Linear = nn.Linear

// Sequential chains modules, feeding each output to the next input.
type Sequential = nn.Sequential

// ReLU applies max(0, x) element-wise.
type ReLU = nn.ReLU

// Sigmoid applies 1/(1+exp(-x)) element-wise.
type Sigmoid = nn.Sigmoid

// Tanh applies the hyperbolic tangent element-wise.
type Tanh = nn.Tanh

// Softplus applies log(1+exp(x)) element-wise.
type Softplus = nn.Softplus

// NewParameter creates a named trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// NewLinear creates a fully connected layer with Xavier-initialized
// weights and zero bias.
func NewLinear(inFeatures, outFeatures int, backend tensor.Backend) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// NewSequential creates a container chaining the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU { return nn.NewReLU() }

// NewSigmoid creates a sigmoid activation.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// NewTanh creates a tanh activation.
func NewTanh() *Tanh { return nn.NewTanh() }

// NewSoftplus creates a softplus activation.
func NewSoftplus() *Softplus { return nn.NewSoftplus() }
