// Package dist implements probability distributions over tensors.
//
// Distribution parameters are tensors, and LogProb is always built from
// backend operations, so running a model on an autodiff backend makes
// every log-density differentiable with respect to the parameters.
//
// Sampling comes in two flavors:
//
//   - Reparameterized families (Normal, Uniform, Exponential, PointMass)
//     express their draw as a deterministic transform of parameter-free
//     noise using backend ops. On a recording tape the draw itself is
//     differentiable, which is what pathwise variational gradients need.
//   - The remaining families draw host-side and return constant tensors;
//     variational inference falls back to the score-function estimator
//     for guides that use them.
package dist

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// Distribution is the interface implemented by all distributions.
type Distribution interface {
	// Sample draws one batch of values. The batch shape is determined by
	// the (broadcast) parameter shapes.
	Sample() *tensor.Tensor

	// LogProb evaluates the log density (or log mass) at value,
	// element-wise over the batch. Event dimensions are reduced, so the
	// result of a Dirichlet over [B, K] values has shape [B].
	LogProb(value *tensor.Tensor) *tensor.Tensor

	// Mean returns the distribution mean.
	Mean() *tensor.Tensor

	// Reparameterized reports whether Sample is a differentiable
	// transform of parameter-free noise.
	Reparameterized() bool

	// String returns a short description.
	String() string
}

// batchShape broadcasts two parameter shapes. Panics if incompatible,
// which is a model construction error.
func batchShape(a, b tensor.Shape) tensor.Shape {
	s, err := tensor.BroadcastShapes(a, b)
	if err != nil {
		panic(err)
	}
	return s
}
