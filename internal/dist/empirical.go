package dist

import (
	"fmt"
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

// Empirical is the distribution defined by a bag of draws, typically the
// output of an MCMC chain. All draws must share one shape.
type Empirical struct {
	samples []*tensor.Tensor
}

// NewEmpirical creates an Empirical distribution from draws.
func NewEmpirical(samples []*tensor.Tensor) *Empirical {
	if len(samples) == 0 {
		panic("Empirical: need at least one sample")
	}
	shape := samples[0].Shape()
	for _, s := range samples[1:] {
		if !s.Shape().Equal(shape) {
			panic(fmt.Sprintf("Empirical: sample shape %v differs from %v", s.Shape(), shape))
		}
	}
	return &Empirical{samples: samples}
}

// Sample returns a uniformly chosen draw (copied).
func (d *Empirical) Sample() *tensor.Tensor {
	return d.samples[tensor.RandIntn(len(d.samples))].Clone()
}

// LogProb is not defined for an empirical bag of draws.
func (d *Empirical) LogProb(value *tensor.Tensor) *tensor.Tensor {
	panic("Empirical: LogProb is not defined")
}

// Mean averages the draws element-wise.
func (d *Empirical) Mean() *tensor.Tensor {
	out := tensor.Zeros(d.samples[0].Shape(), d.samples[0].Backend())
	od := out.Data()
	for _, s := range d.samples {
		sd := s.Data()
		for i := range od {
			od[i] += sd[i]
		}
	}
	n := float64(len(d.samples))
	for i := range od {
		od[i] /= n
	}
	return out
}

// Stddev computes the element-wise standard deviation of the draws.
func (d *Empirical) Stddev() *tensor.Tensor {
	mean := d.Mean()
	out := tensor.Zeros(mean.Shape(), mean.Backend())
	md, od := mean.Data(), out.Data()
	for _, s := range d.samples {
		sd := s.Data()
		for i := range od {
			diff := sd[i] - md[i]
			od[i] += diff * diff
		}
	}
	n := float64(len(d.samples))
	for i := range od {
		od[i] = math.Sqrt(od[i] / n)
	}
	return out
}

// NumSamples returns the number of draws.
func (d *Empirical) NumSamples() int { return len(d.samples) }

// Samples returns the underlying draws.
func (d *Empirical) Samples() []*tensor.Tensor { return d.samples }

// Reparameterized returns false.
func (d *Empirical) Reparameterized() bool { return false }

func (d *Empirical) String() string {
	return fmt.Sprintf("Empirical(%d samples, batch=%v)", len(d.samples), d.samples[0].Shape())
}
