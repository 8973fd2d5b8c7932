package infer

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/rv"
	"github.com/edda-ml/edda/internal/tensor"
)

// MHConfig holds configuration for random-walk Metropolis-Hastings.
type MHConfig struct {
	ProposalStd float64     // Gaussian proposal scale (default: 0.1)
	NumSamples  int         // recorded draws (default: 1000)
	BurnIn      int         // discarded warm-up draws (default: 100)
	Logger      *zap.Logger // progress logging (default: no-op)
	LogEvery    int         // draws between log lines (default: 500)
}

// MetropolisHastings implements gradient-free random-walk MH over the
// model's latent sites. Slower to mix than HMC but works for any latent
// support, including the bounded ones HMC cannot handle directly.
type MetropolisHastings struct {
	sampler *latentSampler
	logger  *zap.Logger
	runID   string

	proposalStd float64
	numSamples  int
	burnIn      int
	logEvery    int
}

// NewMetropolisHastings creates an MH sampler with defaults filled in.
func NewMetropolisHastings(model rv.Model, backend *autodiff.Backend, config MHConfig) *MetropolisHastings {
	if config.ProposalStd == 0 {
		config.ProposalStd = 0.1
	}
	if config.NumSamples == 0 {
		config.NumSamples = 1000
	}
	if config.BurnIn == 0 {
		config.BurnIn = 100
	}
	if config.LogEvery == 0 {
		config.LogEvery = 500
	}
	return &MetropolisHastings{
		sampler:     newLatentSampler(model, backend),
		logger:      orNop(config.Logger),
		runID:       newRunID(),
		proposalStd: config.ProposalStd,
		numSamples:  config.NumSamples,
		burnIn:      config.BurnIn,
		logEvery:    config.LogEvery,
	}
}

// Run draws the configured number of samples.
func (m *MetropolisHastings) Run(ctx context.Context) (*Chain, error) {
	chain := newChain(m.runID, m.sampler.names)
	pos := m.sampler.initPositions()
	curLJ := m.sampler.logJoint(pos)

	m.logger.Info("mh start",
		zap.String("run_id", m.runID),
		zap.Int("samples", m.numSamples),
		zap.Float64("proposal_std", m.proposalStd))

	total := m.numSamples + m.burnIn
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		newPos := clonePositions(pos)
		for _, v := range newPos {
			for j := range v {
				v[j] += m.proposalStd * tensor.RandNormal()
			}
		}
		newLJ := m.sampler.logJoint(newPos)

		chain.total++
		logAccept := newLJ - curLJ
		if !math.IsNaN(logAccept) && math.Log(tensor.RandUniform()) < logAccept {
			pos = newPos
			curLJ = newLJ
			chain.accepted++
		}

		if i >= m.burnIn {
			chain.record(m.sampler.snapshot(pos))
		}
		if (i+1)%m.logEvery == 0 {
			m.logger.Info("mh step",
				zap.String("run_id", m.runID),
				zap.Int("step", i+1),
				zap.Float64("log_joint", curLJ),
				zap.Float64("accept_rate", chain.AcceptRate()))
		}
	}
	return chain, nil
}

// RunID returns the run identifier.
func (m *MetropolisHastings) RunID() string { return m.runID }
