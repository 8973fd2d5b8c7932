package nn

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// Parameter is a named trainable tensor.
//
// Optimizers look up gradients by the parameter tensor's Raw identity in
// the gradient map produced by the tape, then update the data in place.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter creates a named parameter wrapping a tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Tensor returns the underlying tensor.
func (p *Parameter) Tensor() *tensor.Tensor { return p.tensor }

// NumElements returns the parameter's element count.
func (p *Parameter) NumElements() int { return p.tensor.NumElements() }
