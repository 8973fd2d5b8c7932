package dist

import (
	"fmt"
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

// Uniform is the continuous uniform distribution on [low, high).
//
// Sample is reparameterized as low + (high-low)*U.
type Uniform struct {
	low  *tensor.Tensor
	high *tensor.Tensor
}

// NewUniform creates a Uniform distribution. low and high must broadcast
// with low < high element-wise.
func NewUniform(low, high *tensor.Tensor) *Uniform {
	batchShape(low.Shape(), high.Shape())
	return &Uniform{low: low, high: high}
}

// Sample draws low + (high-low)*U through backend ops.
func (d *Uniform) Sample() *tensor.Tensor {
	shape := batchShape(d.low.Shape(), d.high.Shape())
	u := tensor.Rand(shape, d.low.Backend())
	return d.low.Add(d.high.Sub(d.low).Mul(u))
}

// LogProb computes -log(high-low) inside the support and -inf outside.
func (d *Uniform) LogProb(value *tensor.Tensor) *tensor.Tensor {
	inside := d.high.Sub(d.low).Log().Neg().
		Add(tensor.Zeros(value.Shape(), value.Backend()))

	// Out-of-support values contribute -inf through a constant mask; the
	// mask carries no gradients, which is fine because the density is
	// flat inside the support.
	lo := broadcastData(d.low, value.Shape())
	hi := broadcastData(d.high, value.Shape())
	mask := tensor.Zeros(value.Shape(), value.Backend())
	md, vd := mask.Data(), value.Data()
	for i := range md {
		if vd[i] < lo[i] || vd[i] >= hi[i] {
			md[i] = math.Inf(-1)
		}
	}
	return inside.Add(mask)
}

// Mean returns (low + high) / 2.
func (d *Uniform) Mean() *tensor.Tensor {
	return d.low.Add(d.high).Scale(0.5)
}

// Reparameterized returns true.
func (d *Uniform) Reparameterized() bool { return true }

func (d *Uniform) String() string {
	return fmt.Sprintf("Uniform(batch=%v)", batchShape(d.low.Shape(), d.high.Shape()))
}
