package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edda-ml/edda/internal/backend/cpu"
	"github.com/edda-ml/edda/internal/tensor"
)

func scalar(v float64, b tensor.Backend) *tensor.Tensor {
	return tensor.New(tensor.FromData([]float64{v}, tensor.Shape{1}), b)
}

func TestNormalLogProb(t *testing.T) {
	b := cpu.New()
	d := NewNormal(scalar(0, b), scalar(1, b))

	// Standard normal at 0: -0.5*log(2*pi).
	lp := d.LogProb(scalar(0, b)).Item()
	assert.InDelta(t, -0.9189385332046727, lp, 1e-10)

	lp = d.LogProb(scalar(2, b)).Item()
	assert.InDelta(t, -0.9189385332046727-2, lp, 1e-10)
}

func TestNormalReparameterized(t *testing.T) {
	b := cpu.New()
	d := NewNormal(scalar(1, b), scalar(2, b))
	assert.True(t, d.Reparameterized())
	assert.InDelta(t, 1, d.Mean().Item(), 1e-12)
}

func TestNormalSampleMoments(t *testing.T) {
	tensor.SeedRNG(3)
	b := cpu.New()
	loc := tensor.Full(tensor.Shape{20000}, 2, b)
	sc := tensor.Full(tensor.Shape{20000}, 0.5, b)
	x := NewNormal(loc, sc).Sample().Data()

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	assert.InDelta(t, 2, mean, 0.02)
}

func TestBernoulliLogProb(t *testing.T) {
	b := cpu.New()
	d := NewBernoulli(scalar(0.7, b))

	assert.InDelta(t, math.Log(0.7), d.LogProb(scalar(1, b)).Item(), 1e-9)
	assert.InDelta(t, math.Log(0.3), d.LogProb(scalar(0, b)).Item(), 1e-9)
	assert.False(t, d.Reparameterized())
}

func TestBetaLogProb(t *testing.T) {
	b := cpu.New()
	// Beta(2, 2): density 6x(1-x), at 0.5 log(1.5).
	d := NewBeta(scalar(2, b), scalar(2, b))
	assert.InDelta(t, math.Log(1.5), d.LogProb(scalar(0.5, b)).Item(), 1e-9)
	assert.InDelta(t, 0.5, d.Mean().Item(), 1e-12)
}

func TestBetaSampleSupport(t *testing.T) {
	tensor.SeedRNG(5)
	b := cpu.New()
	conc := tensor.Full(tensor.Shape{1000}, 0.5, b)
	x := NewBeta(conc, conc).Sample().Data()
	for _, v := range x {
		require.Greater(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestGammaLogProb(t *testing.T) {
	b := cpu.New()
	// Gamma(1, rate) is Exponential(rate): logp(x) = log(rate) - rate*x.
	d := NewGamma(scalar(1, b), scalar(2, b))
	assert.InDelta(t, math.Log(2)-2*1.5, d.LogProb(scalar(1.5, b)).Item(), 1e-9)
	assert.InDelta(t, 0.5, d.Mean().Item(), 1e-12)
}

func TestGammaSampleMoments(t *testing.T) {
	tensor.SeedRNG(11)
	b := cpu.New()
	conc := tensor.Full(tensor.Shape{20000}, 3, b)
	rate := tensor.Full(tensor.Shape{20000}, 2, b)
	x := NewGamma(conc, rate).Sample().Data()

	mean := 0.0
	for _, v := range x {
		require.Greater(t, v, 0.0)
		mean += v
	}
	mean /= float64(len(x))
	assert.InDelta(t, 1.5, mean, 0.05)
}

func TestExponential(t *testing.T) {
	b := cpu.New()
	d := NewExponential(scalar(2, b))
	assert.True(t, d.Reparameterized())
	assert.InDelta(t, math.Log(2)-2*0.5, d.LogProb(scalar(0.5, b)).Item(), 1e-9)

	tensor.SeedRNG(13)
	rate := tensor.Full(tensor.Shape{20000}, 2, b)
	x := NewExponential(rate).Sample().Data()
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	assert.InDelta(t, 0.5, mean/float64(len(x)), 0.02)
}

func TestUniform(t *testing.T) {
	b := cpu.New()
	d := NewUniform(scalar(1, b), scalar(3, b))
	assert.True(t, d.Reparameterized())
	assert.InDelta(t, math.Log(0.5), d.LogProb(scalar(2, b)).Item(), 1e-9)
	assert.True(t, math.IsInf(d.LogProb(scalar(5, b)).Item(), -1))
	assert.InDelta(t, 2, d.Mean().Item(), 1e-12)
}

func TestDirichletSimplex(t *testing.T) {
	tensor.SeedRNG(17)
	b := cpu.New()
	conc := tensor.Full(tensor.Shape{4, 5}, 2, b)
	x := NewDirichlet(conc).Sample()

	require.True(t, x.Shape().Equal(tensor.Shape{4, 5}))
	data := x.Data()
	for row := 0; row < 4; row++ {
		total := 0.0
		for j := 0; j < 5; j++ {
			v := data[row*5+j]
			require.Greater(t, v, 0.0)
			total += v
		}
		assert.InDelta(t, 1, total, 1e-9)
	}
}

func TestDirichletLogProb(t *testing.T) {
	b := cpu.New()
	// Dirichlet(1, 1, 1) is uniform on the simplex: density Gamma(3) = 2.
	conc := tensor.New(tensor.FromData([]float64{1, 1, 1}, tensor.Shape{3}), b)
	value := tensor.New(tensor.FromData([]float64{0.2, 0.3, 0.5}, tensor.Shape{3}), b)
	lp := NewDirichlet(conc).LogProb(value).Item()
	assert.InDelta(t, math.Log(2), lp, 1e-9)
}

func TestCategoricalOneHot(t *testing.T) {
	tensor.SeedRNG(19)
	b := cpu.New()
	probs := tensor.New(tensor.FromData([]float64{0.1, 0.2, 0.7}, tensor.Shape{3}), b)
	d := NewCategorical(probs)

	x := d.Sample()
	total := 0.0
	for _, v := range x.Data() {
		total += v
	}
	assert.InDelta(t, 1, total, 1e-12, "sample is one-hot")

	// LogProb of the third outcome.
	hot := tensor.New(tensor.FromData([]float64{0, 0, 1}, tensor.Shape{3}), b)
	assert.InDelta(t, math.Log(0.7), d.LogProb(hot).Item(), 1e-9)
}

func TestMultinomialLogProb(t *testing.T) {
	b := cpu.New()
	probs := tensor.New(tensor.FromData([]float64{0.5, 0.5}, tensor.Shape{2}), b)
	counts := tensor.New(tensor.FromData([]float64{1, 1}, tensor.Shape{2}), b)

	// Two trials, one of each: 2 * 0.5 * 0.5 = 0.5.
	lp := NewMultinomial(2, probs).LogProb(counts).Item()
	assert.InDelta(t, math.Log(0.5), lp, 1e-9)
}

func TestMultinomialSampleCounts(t *testing.T) {
	tensor.SeedRNG(23)
	b := cpu.New()
	probs := tensor.New(tensor.FromData([]float64{0.3, 0.7}, tensor.Shape{2}), b)
	x := NewMultinomial(50, probs).Sample().Data()

	total := 0.0
	for _, v := range x {
		total += v
	}
	assert.InDelta(t, 50, total, 1e-12)
}

func TestPointMass(t *testing.T) {
	b := cpu.New()
	v := scalar(3, b)
	d := NewPointMass(v)

	assert.Same(t, v, d.Sample(), "sample returns the value itself")
	assert.True(t, d.Reparameterized())
	assert.InDelta(t, 0, d.LogProb(v).Item(), 1e-12)
}

func TestEmpirical(t *testing.T) {
	b := cpu.New()
	samples := []*tensor.Tensor{scalar(1, b), scalar(2, b), scalar(3, b)}
	d := NewEmpirical(samples)

	assert.InDelta(t, 2, d.Mean().Item(), 1e-12)
	assert.Panics(t, func() { d.LogProb(scalar(2, b)) })
}
