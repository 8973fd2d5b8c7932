package nn

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// ReLU applies max(0, x) element-wise.
type ReLU struct{}

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU { return &ReLU{} }

// Forward applies the activation.
func (a *ReLU) Forward(input *tensor.Tensor) *tensor.Tensor { return input.ReLU() }

// Parameters returns an empty slice (no trainable parameters).
func (a *ReLU) Parameters() []*Parameter { return nil }

// Sigmoid applies the logistic function element-wise.
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid { return &Sigmoid{} }

// Forward applies the activation.
func (a *Sigmoid) Forward(input *tensor.Tensor) *tensor.Tensor { return input.Sigmoid() }

// Parameters returns an empty slice (no trainable parameters).
func (a *Sigmoid) Parameters() []*Parameter { return nil }

// Tanh applies the hyperbolic tangent element-wise.
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh { return &Tanh{} }

// Forward applies the activation.
func (a *Tanh) Forward(input *tensor.Tensor) *tensor.Tensor { return input.Tanh() }

// Parameters returns an empty slice (no trainable parameters).
func (a *Tanh) Parameters() []*Parameter { return nil }

// Softplus applies log(1+e^x) element-wise. Guides use it to map
// unconstrained outputs to positive scale parameters.
type Softplus struct{}

// NewSoftplus creates a Softplus activation.
func NewSoftplus() *Softplus { return &Softplus{} }

// Forward applies the activation.
func (a *Softplus) Forward(input *tensor.Tensor) *tensor.Tensor { return input.Softplus() }

// Parameters returns an empty slice (no trainable parameters).
func (a *Softplus) Parameters() []*Parameter { return nil }
