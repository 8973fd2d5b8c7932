package dist

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// Categorical is the distribution over K classes, parameterized by logits
// whose last dimension is the event dimension. Values are one-hot tensors
// of the same shape as the logits, which keeps LogProb a pure tensor
// expression (no integer gather needed).
type Categorical struct {
	logits *tensor.Tensor // [..., K]
}

// NewCategoricalLogits creates a Categorical from logits.
func NewCategoricalLogits(logits *tensor.Tensor) *Categorical {
	if len(logits.Shape()) == 0 {
		panic("Categorical: logits must have at least one dimension")
	}
	return &Categorical{logits: logits}
}

// NewCategorical creates a Categorical from probabilities; the log is
// built from backend ops so gradients flow back to probs.
func NewCategorical(probs *tensor.Tensor) *Categorical {
	return &Categorical{logits: probs.Log()}
}

// Sample draws one-hot rows host-side (not reparameterized).
func (d *Categorical) Sample() *tensor.Tensor {
	shape := d.logits.Shape()
	k := shape[len(shape)-1]
	out := tensor.Zeros(shape, d.logits.Backend())
	ld, od := d.logits.Data(), out.Data()
	row := make([]float64, k)
	for r := 0; r < len(ld)/k; r++ {
		copy(row, ld[r*k:(r+1)*k])
		softmaxInPlace(row)
		od[r*k+categoricalSample(row)] = 1
	}
	return out
}

// LogProb computes sum(value * logsoftmax(logits), -1) for one-hot values.
func (d *Categorical) LogProb(value *tensor.Tensor) *tensor.Tensor {
	return value.Mul(d.logits.LogSoftmax(-1)).SumDim(-1, false)
}

// Mean returns the class probabilities.
func (d *Categorical) Mean() *tensor.Tensor { return d.logits.Softmax(-1) }

// Reparameterized returns false.
func (d *Categorical) Reparameterized() bool { return false }

func (d *Categorical) String() string {
	return fmt.Sprintf("Categorical(batch=%v)", d.logits.Shape())
}
