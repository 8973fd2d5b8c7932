package dist

import (
	"fmt"
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

const logSqrt2Pi = 0.9189385332046727 // log(sqrt(2*pi))

// Normal is the Gaussian distribution parameterized by location and scale.
//
// Sample is reparameterized as loc + scale * eps with eps ~ N(0, 1), built
// from backend ops so gradients flow to loc and scale on a recording tape.
type Normal struct {
	loc   *tensor.Tensor
	scale *tensor.Tensor
}

// NewNormal creates a Normal distribution. loc and scale must broadcast.
func NewNormal(loc, scale *tensor.Tensor) *Normal {
	batchShape(loc.Shape(), scale.Shape()) // validate early
	return &Normal{loc: loc, scale: scale}
}

// Sample draws loc + scale*eps.
func (d *Normal) Sample() *tensor.Tensor {
	shape := batchShape(d.loc.Shape(), d.scale.Shape())
	eps := tensor.Randn(shape, d.loc.Backend())
	return d.loc.Add(d.scale.Mul(eps))
}

// LogProb computes -log(scale) - log(sqrt(2*pi)) - (x-loc)^2 / (2*scale^2).
func (d *Normal) LogProb(value *tensor.Tensor) *tensor.Tensor {
	z := value.Sub(d.loc).Div(d.scale)
	return z.Mul(z).Scale(-0.5).Sub(d.scale.Log()).AddScalar(-logSqrt2Pi)
}

// Mean returns loc.
func (d *Normal) Mean() *tensor.Tensor { return d.loc }

// Stddev returns scale.
func (d *Normal) Stddev() *tensor.Tensor { return d.scale }

// Reparameterized returns true.
func (d *Normal) Reparameterized() bool { return true }

// Entropy returns the differential entropy, 0.5*log(2*pi*e) + log(scale),
// summed over the batch.
func (d *Normal) Entropy() *tensor.Tensor {
	return d.scale.Log().AddScalar(0.5 * math.Log(2*math.Pi*math.E)).Sum()
}

func (d *Normal) String() string {
	return fmt.Sprintf("Normal(batch=%v)", batchShape(d.loc.Shape(), d.scale.Shape()))
}
