package infer

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/backend/cpu"
	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/rv"
	"github.com/edda-ml/edda/internal/tensor"
)

func scalar(v float64, b tensor.Backend) *tensor.Tensor {
	return tensor.New(tensor.FromData([]float64{v}, tensor.Shape{1}), b)
}

// conjugateNormalModel builds z ~ N(0, 1), x ~ N(z, 1) with x observed
// at 2. The exact posterior is N(1, 1/sqrt(2)).
func conjugateNormalModel(backend tensor.Backend) rv.Model {
	zero := scalar(0, backend)
	one := scalar(1, backend)
	x := scalar(2, backend)
	return func(t *rv.Trace) {
		z := t.Sample("z", dist.NewNormal(zero, one))
		t.Observe("x", dist.NewNormal(z, one), x)
	}
}

func TestKLqpRecoversConjugatePosterior(t *testing.T) {
	tensor.SeedRNG(42)
	backend := autodiff.New(cpu.New())

	loc := nn.NewParameter("q_loc", tensor.Zeros(tensor.Shape{1}, backend))
	logScale := nn.NewParameter("q_log_scale", tensor.Zeros(tensor.Shape{1}, backend))
	guide := func(tr *rv.Trace) {
		tr.Sample("z", dist.NewNormal(loc.Tensor(), logScale.Tensor().Exp()))
	}

	k := NewKLqp(conjugateNormalModel(backend), guide, []*nn.Parameter{loc, logScale}, backend, KLqpConfig{
		Steps: 3000,
		LR:    0.02,
	})
	result, err := k.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Losses, 3000)
	assert.NotEmpty(t, result.RunID)

	assert.InDelta(t, 1.0, loc.Tensor().Item(), 0.15, "posterior mean")
	assert.InDelta(t, 1/math.Sqrt2, math.Exp(logScale.Tensor().Item()), 0.15, "posterior stddev")
}

func TestKLqpScoreFunctionFallback(t *testing.T) {
	// A Beta guide is not reparameterized, so KLqp must fall back to
	// the score function estimator and still move toward the target.
	tensor.SeedRNG(7)
	backend := autodiff.New(cpu.New())

	one := scalar(1, backend)
	heads := tensor.Full(tensor.Shape{20}, 1, backend)
	model := func(tr *rv.Trace) {
		p := tr.Sample("p", dist.NewBeta(one, one))
		tr.Observe("x", dist.NewBernoulli(p), heads)
	}

	qa := nn.NewParameter("qa", tensor.Zeros(tensor.Shape{1}, backend))
	qb := nn.NewParameter("qb", tensor.Zeros(tensor.Shape{1}, backend))
	guide := func(tr *rv.Trace) {
		tr.Sample("p", dist.NewBeta(qa.Tensor().Softplus(), qb.Tensor().Softplus()))
	}

	k := NewKLqp(model, guide, []*nn.Parameter{qa, qb}, backend, KLqpConfig{
		Steps: 1500,
		LR:    0.05,
	})
	_, err := k.Run(context.Background())
	require.NoError(t, err)

	// All-heads data: the guide mean should move well above 1/2.
	a := math.Log1p(math.Exp(qa.Tensor().Item()))
	b := math.Log1p(math.Exp(qb.Tensor().Item()))
	assert.Greater(t, a/(a+b), 0.6)
}

func TestKLqpContextCancellation(t *testing.T) {
	backend := autodiff.New(cpu.New())

	loc := nn.NewParameter("q_loc", tensor.Zeros(tensor.Shape{1}, backend))
	guide := func(tr *rv.Trace) {
		tr.Sample("z", dist.NewNormal(loc.Tensor(), scalar(1, backend)))
	}
	k := NewKLqp(conjugateNormalModel(backend), guide, []*nn.Parameter{loc}, backend, KLqpConfig{Steps: 100000})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := k.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMAPFindsPosteriorMode(t *testing.T) {
	tensor.SeedRNG(42)
	backend := autodiff.New(cpu.New())

	point := nn.NewParameter("z_map", tensor.Zeros(tensor.Shape{1}, backend))
	k := NewMAP(conjugateNormalModel(backend), map[string]*nn.Parameter{"z": point}, backend, KLqpConfig{
		Steps: 2000,
		LR:    0.05,
	})
	result, err := k.Run(context.Background())
	require.NoError(t, err)

	// Gaussian posterior: mode equals mean.
	assert.InDelta(t, 1.0, point.Tensor().Item(), 0.05)
	assert.False(t, math.IsNaN(result.FinalLoss()))
}
