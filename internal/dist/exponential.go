package dist

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// Exponential is the distribution on (0, inf) with the given rate.
//
// Sample is reparameterized as -log(U)/rate.
type Exponential struct {
	rate *tensor.Tensor
}

// NewExponential creates an Exponential distribution with positive rate.
func NewExponential(rate *tensor.Tensor) *Exponential {
	return &Exponential{rate: rate}
}

// Sample draws -log(U)/rate through backend ops.
func (d *Exponential) Sample() *tensor.Tensor {
	u := tensor.Rand(d.rate.Shape(), d.rate.Backend())
	return u.Log().Neg().Div(d.rate)
}

// LogProb computes log(rate) - rate*x.
func (d *Exponential) LogProb(value *tensor.Tensor) *tensor.Tensor {
	return d.rate.Log().Sub(d.rate.Mul(value))
}

// Mean returns 1 / rate.
func (d *Exponential) Mean() *tensor.Tensor {
	return tensor.Ones(d.rate.Shape(), d.rate.Backend()).Div(d.rate)
}

// Reparameterized returns true.
func (d *Exponential) Reparameterized() bool { return true }

func (d *Exponential) String() string {
	return fmt.Sprintf("Exponential(batch=%v)", d.rate.Shape())
}
