package dist

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// Dirichlet is the distribution over the probability simplex. The last
// dimension of the concentration tensor is the event dimension.
type Dirichlet struct {
	conc *tensor.Tensor // [..., K], positive
}

// NewDirichlet creates a Dirichlet distribution.
func NewDirichlet(conc *tensor.Tensor) *Dirichlet {
	if len(conc.Shape()) == 0 {
		panic("Dirichlet: concentration must have at least one dimension")
	}
	return &Dirichlet{conc: conc}
}

// Sample draws host-side via normalized gamma draws (not reparameterized).
func (d *Dirichlet) Sample() *tensor.Tensor {
	shape := d.conc.Shape()
	k := shape[len(shape)-1]
	out := tensor.Zeros(shape, d.conc.Backend())
	cd, od := d.conc.Data(), out.Data()
	for row := 0; row < len(cd)/k; row++ {
		total := 0.0
		for j := 0; j < k; j++ {
			g := gammaSample(cd[row*k+j])
			od[row*k+j] = g
			total += g
		}
		for j := 0; j < k; j++ {
			od[row*k+j] /= total
		}
	}
	return out
}

// LogProb computes
// sum((a-1)*log(x), -1) + lgamma(sum(a, -1)) - sum(lgamma(a), -1),
// reducing the event dimension.
func (d *Dirichlet) LogProb(value *tensor.Tensor) *tensor.Tensor {
	a := d.conc
	term := a.AddScalar(-1).Mul(value.Log()).SumDim(-1, false)
	logNorm := a.SumDim(-1, false).Lgamma().Sub(a.Lgamma().SumDim(-1, false))
	return term.Add(logNorm)
}

// Mean returns conc normalized along the event dimension.
func (d *Dirichlet) Mean() *tensor.Tensor {
	return d.conc.Div(d.conc.SumDim(-1, true))
}

// Reparameterized returns false.
func (d *Dirichlet) Reparameterized() bool { return false }

func (d *Dirichlet) String() string {
	return fmt.Sprintf("Dirichlet(batch=%v)", d.conc.Shape())
}
