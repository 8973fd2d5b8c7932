// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dist provides probability distributions.
//
// Every distribution supports sampling and log-density evaluation.
// Parameters are tensors, so densities broadcast over batch dimensions
// and stay differentiable when built on an autodiff backend.
//
// Distributions that sample through tensor operations (Normal, Uniform,
// Exponential, PointMass) report Reparameterized() == true: their
// samples carry gradients back to the parameters. The rest sample on
// the host and their draws are constants on the tape.
//
// Example:
//
//	loc := tensor.Zeros(tensor.Shape{2}, backend)
//	scale := tensor.Ones(tensor.Shape{2}, backend)
//	d := dist.NewNormal(loc, scale)
//	x := d.Sample()
//	lp := d.LogProb(x)
package dist

import (
	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/tensor"
)

// Distribution is the interface all distributions implement.
type Distribution = dist.Distribution

// Normal is the Gaussian distribution with location and scale.
type Normal = dist.Normal

// Bernoulli is the distribution over {0, 1}, parameterized by logits.
type Bernoulli = dist.Bernoulli

// Beta is the distribution on (0, 1) with two concentrations.
type Beta = dist.Beta

// Gamma is the distribution on (0, inf) with concentration and rate.
type Gamma = dist.Gamma

// Exponential is the distribution on (0, inf) with a rate.
type Exponential = dist.Exponential

// Uniform is the flat distribution on [low, high).
type Uniform = dist.Uniform

// Dirichlet is the distribution over probability vectors.
type Dirichlet = dist.Dirichlet

// Categorical is the distribution over one-hot outcome vectors.
type Categorical = dist.Categorical

// Multinomial is the distribution over count vectors.
type Multinomial = dist.Multinomial

// PointMass is the degenerate distribution at a single value.
type PointMass = dist.PointMass

// Empirical is the distribution defined by a set of draws.
type Empirical = dist.Empirical

// NewNormal creates a Normal(loc, scale) distribution.
func NewNormal(loc, scale *tensor.Tensor) *Normal {
	return dist.NewNormal(loc, scale)
}

// NewBernoulli creates a Bernoulli distribution from probabilities.
func NewBernoulli(probs *tensor.Tensor) *Bernoulli {
	return dist.NewBernoulli(probs)
}

// NewBernoulliLogits creates a Bernoulli distribution from logits.
func NewBernoulliLogits(logits *tensor.Tensor) *Bernoulli {
	return dist.NewBernoulliLogits(logits)
}

// NewBeta creates a Beta(conc1, conc0) distribution.
func NewBeta(conc1, conc0 *tensor.Tensor) *Beta {
	return dist.NewBeta(conc1, conc0)
}

// NewGamma creates a Gamma(conc, rate) distribution.
func NewGamma(conc, rate *tensor.Tensor) *Gamma {
	return dist.NewGamma(conc, rate)
}

// NewExponential creates an Exponential(rate) distribution.
func NewExponential(rate *tensor.Tensor) *Exponential {
	return dist.NewExponential(rate)
}

// NewUniform creates a Uniform(low, high) distribution.
func NewUniform(low, high *tensor.Tensor) *Uniform {
	return dist.NewUniform(low, high)
}

// NewDirichlet creates a Dirichlet distribution from a concentration
// vector along the last dimension.
func NewDirichlet(conc *tensor.Tensor) *Dirichlet {
	return dist.NewDirichlet(conc)
}

// NewCategorical creates a Categorical distribution from probabilities
// along the last dimension.
func NewCategorical(probs *tensor.Tensor) *Categorical {
	return dist.NewCategorical(probs)
}

// NewCategoricalLogits creates a Categorical distribution from logits.
func NewCategoricalLogits(logits *tensor.Tensor) *Categorical {
	return dist.NewCategoricalLogits(logits)
}

// NewMultinomial creates a Multinomial distribution over totalCount
// trials with the given event probabilities.
func NewMultinomial(totalCount int, probs *tensor.Tensor) *Multinomial {
	return dist.NewMultinomial(totalCount, probs)
}

// NewPointMass creates a degenerate distribution at value. Sampling
// returns the value itself, so gradients flow to it. Used for MAP
// estimation.
func NewPointMass(value *tensor.Tensor) *PointMass {
	return dist.NewPointMass(value)
}

// NewEmpirical creates a distribution backed by the given draws, such
// as the output of an MCMC chain.
func NewEmpirical(samples []*tensor.Tensor) *Empirical {
	return dist.NewEmpirical(samples)
}
