// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package infer provides inference algorithms over traced models.
//
// Three families are available:
//   - Variational: KLqp fits a guide program by maximizing the ELBO;
//     NewMAP is the point-estimate special case.
//   - Monte Carlo: HMC, MetropolisHastings and SGLD draw posterior
//     samples into a Chain.
//   - Adversarial: GAN trains an implicit generative model against a
//     discriminator.
//
// Example:
//
//	k := infer.NewKLqp(model, guide, params, backend, infer.KLqpConfig{Steps: 2000})
//	result, err := k.Run(ctx)
//	fmt.Println(result.FinalLoss())
package infer

import (
	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/infer"
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/rv"
	"github.com/edda-ml/edda/internal/tensor"
)

// Result holds the loss curve of a variational run.
type Result = infer.Result

// Chain holds the posterior draws of a Monte Carlo run.
type Chain = infer.Chain

// KLqp minimizes KL(q || p) by stochastic gradient ascent on the ELBO.
type KLqp = infer.KLqp

// KLqpConfig holds variational inference configuration.
type KLqpConfig = infer.KLqpConfig

// HMC is the Hamiltonian Monte Carlo sampler.
type HMC = infer.HMC

// HMCConfig holds HMC configuration.
type HMCConfig = infer.HMCConfig

// MetropolisHastings is the random-walk MH sampler.
type MetropolisHastings = infer.MetropolisHastings

// MHConfig holds MH configuration.
type MHConfig = infer.MHConfig

// SGLD is the stochastic gradient Langevin dynamics sampler.
type SGLD = infer.SGLD

// SGLDConfig holds SGLD configuration.
type SGLDConfig = infer.SGLDConfig

// GAN is the adversarial inference trainer.
type GAN = infer.GAN

// GANConfig holds adversarial inference configuration.
type GANConfig = infer.GANConfig

// GANResult holds the per-player loss curves of an adversarial run.
type GANResult = infer.GANResult

// NewKLqp creates variational inference fitting guide to the posterior
// of model. params are the guide's trainable parameters.
func NewKLqp(model, guide rv.Model, params []*nn.Parameter, backend *autodiff.Backend, config KLqpConfig) *KLqp {
	return infer.NewKLqp(model, guide, params, backend, config)
}

// NewMAP creates maximum a posteriori estimation: KLqp with a point
// mass guide at the given trainable points, one per latent site.
func NewMAP(model rv.Model, points map[string]*nn.Parameter, backend *autodiff.Backend, config KLqpConfig) *KLqp {
	return infer.NewMAP(model, points, backend, config)
}

// NewHMC creates a Hamiltonian Monte Carlo sampler over the model's
// latent sites.
func NewHMC(model rv.Model, backend *autodiff.Backend, config HMCConfig) *HMC {
	return infer.NewHMC(model, backend, config)
}

// NewMetropolisHastings creates a random-walk MH sampler over the
// model's latent sites.
func NewMetropolisHastings(model rv.Model, backend *autodiff.Backend, config MHConfig) *MetropolisHastings {
	return infer.NewMetropolisHastings(model, backend, config)
}

// NewSGLD creates a stochastic gradient Langevin dynamics sampler.
func NewSGLD(model rv.Model, backend *autodiff.Backend, config SGLDConfig) *SGLD {
	return infer.NewSGLD(model, backend, config)
}

// NewGAN creates adversarial inference training generator against
// discriminator on the rows of data.
func NewGAN(generator, discriminator nn.Module, data *tensor.Tensor, noise dist.Distribution, backend *autodiff.Backend, config GANConfig) *GAN {
	return infer.NewGAN(generator, discriminator, data, noise, backend, config)
}
