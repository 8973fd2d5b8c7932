package dist

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// Beta is the distribution on (0, 1) with concentrations conc1 (alpha)
// and conc0 (beta).
type Beta struct {
	conc1 *tensor.Tensor
	conc0 *tensor.Tensor
}

// NewBeta creates a Beta distribution. Concentrations must broadcast and
// be positive.
func NewBeta(conc1, conc0 *tensor.Tensor) *Beta {
	batchShape(conc1.Shape(), conc0.Shape())
	return &Beta{conc1: conc1, conc0: conc0}
}

// Sample draws host-side via two gamma draws (not reparameterized).
func (d *Beta) Sample() *tensor.Tensor {
	shape := batchShape(d.conc1.Shape(), d.conc0.Shape())
	out := tensor.Zeros(shape, d.conc1.Backend())
	od := out.Data()
	a := broadcastData(d.conc1, shape)
	b := broadcastData(d.conc0, shape)
	for i := range od {
		od[i] = betaSample(a[i], b[i])
	}
	return out
}

// LogProb computes
// (a-1)*log(x) + (b-1)*log(1-x) + lgamma(a+b) - lgamma(a) - lgamma(b).
func (d *Beta) LogProb(value *tensor.Tensor) *tensor.Tensor {
	a, b := d.conc1, d.conc0
	term := a.AddScalar(-1).Mul(value.Log()).
		Add(b.AddScalar(-1).Mul(value.Neg().AddScalar(1).Log()))
	logNorm := a.Add(b).Lgamma().Sub(a.Lgamma()).Sub(b.Lgamma())
	return term.Add(logNorm)
}

// Mean returns a / (a+b).
func (d *Beta) Mean() *tensor.Tensor {
	return d.conc1.Div(d.conc1.Add(d.conc0))
}

// Reparameterized returns false.
func (d *Beta) Reparameterized() bool { return false }

func (d *Beta) String() string {
	return fmt.Sprintf("Beta(batch=%v)", batchShape(d.conc1.Shape(), d.conc0.Shape()))
}

// broadcastData materializes a parameter's values at the broadcast batch
// shape for host-side sampling.
func broadcastData(t *tensor.Tensor, shape tensor.Shape) []float64 {
	if t.Shape().Equal(shape) {
		return t.Data()
	}
	// Broadcast by adding a zero tensor of the target shape on the plain
	// values; host-side sampling must not touch the tape, so this works
	// on raw data directly.
	out := make([]float64, shape.NumElements())
	src := t.Data()
	if len(src) == 1 {
		for i := range out {
			out[i] = src[0]
		}
		return out
	}
	// General case: right-aligned stride walk.
	rank := len(shape)
	own := tensor.ComputeStrides(t.Shape())
	strides := make([]int, rank)
	offset := rank - len(t.Shape())
	for i, dim := range t.Shape() {
		if dim != 1 {
			strides[offset+i] = own[i]
		}
	}
	idx := make([]int, rank)
	off := 0
	for i := range out {
		out[i] = src[off]
		for d := rank - 1; d >= 0; d-- {
			idx[d]++
			off += strides[d]
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
			off -= strides[d] * shape[d]
		}
	}
	return out
}
