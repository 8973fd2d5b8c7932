package dist

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// Gamma is the distribution on (0, inf) with shape conc and rate.
type Gamma struct {
	conc *tensor.Tensor
	rate *tensor.Tensor
}

// NewGamma creates a Gamma distribution. Parameters must broadcast and be
// positive.
func NewGamma(conc, rate *tensor.Tensor) *Gamma {
	batchShape(conc.Shape(), rate.Shape())
	return &Gamma{conc: conc, rate: rate}
}

// Sample draws host-side via Marsaglia-Tsang (not reparameterized).
func (d *Gamma) Sample() *tensor.Tensor {
	shape := batchShape(d.conc.Shape(), d.rate.Shape())
	out := tensor.Zeros(shape, d.conc.Backend())
	od := out.Data()
	a := broadcastData(d.conc, shape)
	r := broadcastData(d.rate, shape)
	for i := range od {
		od[i] = gammaSample(a[i]) / r[i]
	}
	return out
}

// LogProb computes a*log(rate) + (a-1)*log(x) - rate*x - lgamma(a).
func (d *Gamma) LogProb(value *tensor.Tensor) *tensor.Tensor {
	a, r := d.conc, d.rate
	return a.Mul(r.Log()).
		Add(a.AddScalar(-1).Mul(value.Log())).
		Sub(r.Mul(value)).
		Sub(a.Lgamma())
}

// Mean returns conc / rate.
func (d *Gamma) Mean() *tensor.Tensor { return d.conc.Div(d.rate) }

// Reparameterized returns false.
func (d *Gamma) Reparameterized() bool { return false }

func (d *Gamma) String() string {
	return fmt.Sprintf("Gamma(batch=%v)", batchShape(d.conc.Shape(), d.rate.Shape()))
}
