package dist

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// PointMass is a degenerate distribution concentrated at a single value.
//
// It is the guide family behind MAP estimation: the "sample" is the value
// tensor itself, so gradients of the model log-joint flow straight into
// whatever parameters the value was computed from, and the guide entropy
// term is identically zero.
type PointMass struct {
	value *tensor.Tensor
}

// NewPointMass creates a point mass at value.
func NewPointMass(value *tensor.Tensor) *PointMass {
	return &PointMass{value: value}
}

// Sample returns the value tensor itself (fully reparameterized).
func (d *PointMass) Sample() *tensor.Tensor { return d.value }

// LogProb returns zeros: the point mass contributes no density term.
func (d *PointMass) LogProb(value *tensor.Tensor) *tensor.Tensor {
	return tensor.Zeros(value.Shape(), value.Backend())
}

// Mean returns the value.
func (d *PointMass) Mean() *tensor.Tensor { return d.value }

// Reparameterized returns true.
func (d *PointMass) Reparameterized() bool { return true }

func (d *PointMass) String() string {
	return fmt.Sprintf("PointMass(batch=%v)", d.value.Shape())
}
