package dist

import (
	"fmt"
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

// Bernoulli is the distribution over {0, 1}, parameterized by logits.
//
// The logits parameterization keeps LogProb numerically stable:
// log p(x) = x*logits - softplus(logits).
type Bernoulli struct {
	logits *tensor.Tensor
}

// NewBernoulliLogits creates a Bernoulli from logits.
func NewBernoulliLogits(logits *tensor.Tensor) *Bernoulli {
	return &Bernoulli{logits: logits}
}

// NewBernoulli creates a Bernoulli from probabilities in (0, 1).
// The conversion log(p/(1-p)) is built from backend ops, so gradients
// flow back to probs.
func NewBernoulli(probs *tensor.Tensor) *Bernoulli {
	oneMinus := probs.Neg().AddScalar(1)
	return &Bernoulli{logits: probs.Log().Sub(oneMinus.Log())}
}

// Sample draws host-side (not reparameterized).
func (d *Bernoulli) Sample() *tensor.Tensor {
	out := tensor.Zeros(d.logits.Shape(), d.logits.Backend())
	ld, od := d.logits.Data(), out.Data()
	for i := range ld {
		p := 1.0 / (1.0 + math.Exp(-ld[i]))
		if tensor.RandUniform() < p {
			od[i] = 1
		}
	}
	return out
}

// LogProb computes x*logits - softplus(logits) element-wise.
func (d *Bernoulli) LogProb(value *tensor.Tensor) *tensor.Tensor {
	return value.Mul(d.logits).Sub(d.logits.Softplus())
}

// Mean returns sigmoid(logits).
func (d *Bernoulli) Mean() *tensor.Tensor { return d.logits.Sigmoid() }

// Logits returns the logits tensor.
func (d *Bernoulli) Logits() *tensor.Tensor { return d.logits }

// Reparameterized returns false.
func (d *Bernoulli) Reparameterized() bool { return false }

func (d *Bernoulli) String() string {
	return fmt.Sprintf("Bernoulli(batch=%v)", d.logits.Shape())
}
