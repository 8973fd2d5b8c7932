package nn

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// Sequential chains modules, feeding each output into the next module.
//
// Example:
//
//	disc := nn.NewSequential(
//	    nn.NewLinear(2, 64, backend),
//	    nn.NewReLU(),
//	    nn.NewLinear(64, 1, backend),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a sequential container from the given modules.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward runs the input through every module in order.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input
	for _, m := range s.modules {
		out = m.Forward(out)
	}
	return out
}

// Parameters returns the parameters of all contained modules.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, m := range s.modules {
		params = append(params, m.Parameters()...)
	}
	return params
}

// Modules returns the contained modules in order.
func (s *Sequential) Modules() []Module { return s.modules }
