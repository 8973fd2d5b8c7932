package infer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/optim"
	"github.com/edda-ml/edda/internal/tensor"
)

// GANConfig holds configuration for adversarial inference.
type GANConfig struct {
	Steps     int         // generator updates (default: 1000)
	DSteps    int         // discriminator updates per generator update (default: 1)
	LR        float64     // Adam learning rate for both players (default: 1e-3)
	BatchSize int         // data minibatch size (default: 32)
	Logger    *zap.Logger // progress logging (default: no-op)
	LogEvery  int         // steps between log lines (default: 100)
}

// GANResult holds the per-player loss curves of an adversarial run.
type GANResult struct {
	RunID   string
	DLosses []float64
	GLosses []float64
}

// GAN implements adversarial inference: an implicit generative model
// (a generator network pushing noise forward) is trained against a
// discriminator that scores real data versus generated samples.
//
// Losses are the non-saturating GAN objectives,
//
//	L_D = E[softplus(-D(x))] + E[softplus(D(G(z)))]
//	L_G = E[softplus(-D(G(z)))]
//
// with alternating Adam updates.
//
// Example:
//
//	g := infer.NewGAN(generator, discriminator, data, noise, backend, infer.GANConfig{Steps: 5000})
//	result, err := g.Run(ctx)
type GAN struct {
	generator     nn.Module
	discriminator nn.Module
	data          *tensor.Tensor // [N, D]
	noise         dist.Distribution
	backend       *autodiff.Backend

	optG   optim.Optimizer
	optD   optim.Optimizer
	logger *zap.Logger
	runID  string

	steps     int
	dSteps    int
	batchSize int
	logEvery  int
}

// NewGAN creates adversarial inference with defaults filled in.
// data holds one observation per row; noise is the generator's input
// distribution, shaped [batch, latent_dim].
func NewGAN(generator, discriminator nn.Module, data *tensor.Tensor, noise dist.Distribution, backend *autodiff.Backend, config GANConfig) *GAN {
	if len(data.Shape()) != 2 {
		panic(fmt.Sprintf("GAN: data must be 2-D [samples, features], got %v", data.Shape()))
	}
	if config.Steps == 0 {
		config.Steps = 1000
	}
	if config.DSteps == 0 {
		config.DSteps = 1
	}
	if config.LR == 0 {
		config.LR = 1e-3
	}
	if config.BatchSize == 0 {
		config.BatchSize = 32
	}
	if config.LogEvery == 0 {
		config.LogEvery = 100
	}
	return &GAN{
		generator:     generator,
		discriminator: discriminator,
		data:          data,
		noise:         noise,
		backend:       backend,
		optG:          optim.NewAdam(generator.Parameters(), optim.AdamConfig{LR: config.LR}),
		optD:          optim.NewAdam(discriminator.Parameters(), optim.AdamConfig{LR: config.LR}),
		logger:        orNop(config.Logger),
		runID:         newRunID(),
		steps:         config.Steps,
		dSteps:        config.DSteps,
		batchSize:     config.BatchSize,
		logEvery:      config.LogEvery,
	}
}

// Step performs dSteps discriminator updates and one generator update,
// returning the last loss of each player.
func (g *GAN) Step() (dLoss, gLoss float64) {
	tape := g.backend.Tape()

	for i := 0; i < g.dSteps; i++ {
		tape.Clear()
		tape.StartRecording()

		x := g.sampleBatch()
		fake := g.generator.Forward(g.noise.Sample())
		real := g.discriminator.Forward(x)
		scored := g.discriminator.Forward(fake)
		loss := real.Neg().Softplus().Mean().Add(scored.Softplus().Mean())

		grads := tape.Backward(loss.Raw(), seedOnes(), g.backend)
		tape.StopRecording()
		g.optD.Step(grads)
		dLoss = loss.Item()
	}

	tape.Clear()
	tape.StartRecording()

	scored := g.discriminator.Forward(g.generator.Forward(g.noise.Sample()))
	loss := scored.Neg().Softplus().Mean()

	grads := tape.Backward(loss.Raw(), seedOnes(), g.backend)
	tape.StopRecording()
	tape.Clear()
	g.optG.Step(grads)
	gLoss = loss.Item()

	return dLoss, gLoss
}

// Run performs the configured number of alternating updates.
func (g *GAN) Run(ctx context.Context) (*GANResult, error) {
	result := &GANResult{RunID: g.runID}
	g.logger.Info("gan start",
		zap.String("run_id", g.runID),
		zap.Int("steps", g.steps),
		zap.Int("d_steps", g.dSteps))
	for i := 0; i < g.steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		dLoss, gLoss := g.Step()
		result.DLosses = append(result.DLosses, dLoss)
		result.GLosses = append(result.GLosses, gLoss)
		if (i+1)%g.logEvery == 0 {
			g.logger.Info("gan step",
				zap.String("run_id", g.runID),
				zap.Int("step", i+1),
				zap.Float64("d_loss", dLoss),
				zap.Float64("g_loss", gLoss))
		}
	}
	return result, nil
}

// RunID returns the run identifier.
func (g *GAN) RunID() string { return g.runID }

// sampleBatch picks batchSize random rows of the data.
func (g *GAN) sampleBatch() *tensor.Tensor {
	n, d := g.data.Shape()[0], g.data.Shape()[1]
	out := make([]float64, g.batchSize*d)
	src := g.data.Data()
	for i := 0; i < g.batchSize; i++ {
		row := tensor.RandIntn(n)
		copy(out[i*d:(i+1)*d], src[row*d:(row+1)*d])
	}
	return tensor.New(tensor.FromData(out, tensor.Shape{g.batchSize, d}), g.backend)
}
