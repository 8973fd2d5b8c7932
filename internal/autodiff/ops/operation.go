// Package ops defines the recorded operations of the gradient tape.
//
// Each operation captures its input and output Raw tensors during the
// forward pass and knows how to turn an output gradient into input
// gradients during the backward pass (reverse-mode chain rule).
package ops

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// Operation is a single recorded tape entry.
type Operation interface {
	// Name returns the operation name (for debugging).
	Name() string

	// Inputs returns the forward-pass inputs, in order.
	Inputs() []*tensor.Raw

	// Output returns the forward-pass output.
	Output() *tensor.Raw

	// Backward computes the gradient of each input given the gradient of
	// the output. The returned slice is aligned with Inputs().
	Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw
}
