package infer

import (
	"context"

	"go.uber.org/zap"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/optim"
	"github.com/edda-ml/edda/internal/rv"
)

// KLqpConfig holds configuration for variational inference.
type KLqpConfig struct {
	Steps     int             // optimization steps (default: 1000)
	LR        float64         // learning rate for the default Adam (default: 0.01)
	Optimizer optim.Optimizer // overrides LR when set
	Logger    *zap.Logger     // progress logging (default: no-op)
	LogEvery  int             // steps between log lines (default: 100)
}

// KLqp minimizes KL(q || p) by stochastic gradient ascent on the ELBO.
//
// The guide is a model whose Sample sites mirror the latent sites of the
// model; its distribution parameters are computed from the variational
// parameters passed in params. Each step draws once from the guide, pins
// the model's latents to that draw, and differentiates
//
//	ELBO = log p(x, z) - log q(z)
//
// through the tape. Fully reparameterized guides get the pathwise
// gradient; guides with any non-reparameterized site fall back to the
// mixed surrogate elbo + log q * stopgrad(elbo), whose gradient adds the
// score-function term.
//
// Example:
//
//	k := infer.NewKLqp(model, guide, params, backend, infer.KLqpConfig{Steps: 2000})
//	result, err := k.Run(ctx)
type KLqp struct {
	model   rv.Model
	guide   rv.Model
	params  []*nn.Parameter
	backend *autodiff.Backend

	opt      optim.Optimizer
	logger   *zap.Logger
	runID    string
	steps    int
	logEvery int
	losses   []float64
}

// NewKLqp creates a KLqp inference with defaults filled in.
func NewKLqp(model, guide rv.Model, params []*nn.Parameter, backend *autodiff.Backend, config KLqpConfig) *KLqp {
	if config.Steps == 0 {
		config.Steps = 1000
	}
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.LogEvery == 0 {
		config.LogEvery = 100
	}
	opt := config.Optimizer
	if opt == nil {
		opt = optim.NewAdam(params, optim.AdamConfig{LR: config.LR})
	}
	return &KLqp{
		model:    model,
		guide:    guide,
		params:   params,
		backend:  backend,
		opt:      opt,
		logger:   orNop(config.Logger),
		runID:    newRunID(),
		steps:    config.Steps,
		logEvery: config.LogEvery,
	}
}

// Step performs one ELBO gradient step and returns the negative ELBO
// estimate. Exposed so minibatch loops (VAE training) can drive the
// iteration themselves.
func (k *KLqp) Step() float64 {
	tape := k.backend.Tape()
	tape.Clear()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
	}()

	guideTrace := rv.Run(k.guide, k.backend)
	modelTrace := rv.Run(k.model, k.backend, rv.WithValues(guideTrace.LatentValues()))

	logp := modelTrace.LogJoint()
	logq := guideTrace.LogJoint()
	elbo := logp.Sub(logq)

	loss := elbo.Neg()
	if !fullyReparameterized(guideTrace) {
		// Score-function surrogate: the logq * stopgrad(elbo) term carries
		// the gradient for the non-reparameterized sites.
		loss = elbo.Add(logq.Mul(elbo.Detach())).Neg()
	}

	grads := tape.Backward(loss.Raw(), seedOnes(), k.backend)
	k.opt.Step(grads)

	negELBO := -elbo.Item()
	k.losses = append(k.losses, negELBO)
	return negELBO
}

// Run performs the configured number of steps.
func (k *KLqp) Run(ctx context.Context) (*Result, error) {
	k.logger.Info("klqp start",
		zap.String("run_id", k.runID),
		zap.Int("steps", k.steps),
		zap.Int("params", len(k.params)))
	for i := 0; i < k.steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		loss := k.Step()
		if (i+1)%k.logEvery == 0 {
			k.logger.Info("klqp step",
				zap.String("run_id", k.runID),
				zap.Int("step", i+1),
				zap.Float64("loss", loss))
		}
	}
	return &Result{RunID: k.runID, Losses: k.losses}, nil
}

// RunID returns the run identifier.
func (k *KLqp) RunID() string { return k.runID }

// fullyReparameterized reports whether every guide site supports the
// pathwise gradient.
func fullyReparameterized(guide *rv.Trace) bool {
	for _, s := range guide.Sites() {
		if !s.Dist.Reparameterized() {
			return false
		}
	}
	return true
}
