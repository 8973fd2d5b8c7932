package dist

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// Multinomial is the distribution over count vectors with a fixed number
// of trials per row. The last dimension of probs is the event dimension.
type Multinomial struct {
	totalCount int
	probs      *tensor.Tensor // [..., K], rows sum to 1
}

// NewMultinomial creates a Multinomial with totalCount trials per row.
func NewMultinomial(totalCount int, probs *tensor.Tensor) *Multinomial {
	if totalCount <= 0 {
		panic(fmt.Sprintf("Multinomial: totalCount must be positive, got %d", totalCount))
	}
	if len(probs.Shape()) == 0 {
		panic("Multinomial: probs must have at least one dimension")
	}
	return &Multinomial{totalCount: totalCount, probs: probs}
}

// Sample draws count vectors host-side (not reparameterized).
func (d *Multinomial) Sample() *tensor.Tensor {
	shape := d.probs.Shape()
	k := shape[len(shape)-1]
	out := tensor.Zeros(shape, d.probs.Backend())
	pd, od := d.probs.Data(), out.Data()
	row := make([]float64, k)
	for r := 0; r < len(pd)/k; r++ {
		copy(row, pd[r*k:(r+1)*k])
		for trial := 0; trial < d.totalCount; trial++ {
			od[r*k+categoricalSample(row)]++
		}
	}
	return out
}

// LogProb computes, per row,
// lgamma(n+1) - sum(lgamma(c+1), -1) + sum(c*log(p), -1)
// where n = sum(c, -1). The coefficient terms involve only the (constant)
// counts; the data-dependent term carries gradients to probs.
func (d *Multinomial) LogProb(counts *tensor.Tensor) *tensor.Tensor {
	coef := counts.SumDim(-1, false).AddScalar(1).Lgamma().
		Sub(counts.AddScalar(1).Lgamma().SumDim(-1, false))
	return coef.Add(counts.Mul(d.probs.Log()).SumDim(-1, false))
}

// Mean returns totalCount * probs.
func (d *Multinomial) Mean() *tensor.Tensor {
	return d.probs.Scale(float64(d.totalCount))
}

// Reparameterized returns false.
func (d *Multinomial) Reparameterized() bool { return false }

func (d *Multinomial) String() string {
	return fmt.Sprintf("Multinomial(n=%d, batch=%v)", d.totalCount, d.probs.Shape())
}
