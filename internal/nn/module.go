// Package nn implements neural network modules for Edda.
//
// The building blocks here are what the probabilistic layer composes into
// deep models: VAE encoders and decoders, GAN generators and
// discriminators, and amortized variational guides.
//
//   - Module interface: base interface for all NN components
//   - Parameter: named trainable tensor
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh, Softplus
//   - Sequential: container for stacking layers
package nn

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build architectures:
//
//	decoder := nn.NewSequential(
//	    nn.NewLinear(2, 64, backend),
//	    nn.NewTanh(),
//	    nn.NewLinear(64, 784, backend),
//	)
type Module interface {
	// Forward computes the output of the module given an input tensor.
	// Linear expects [batch, in_features].
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this module,
	// including nested module parameters. Modules without trainable
	// parameters (activations) return an empty slice.
	Parameters() []*Parameter
}
