// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rv provides the random variable and model tracing API.
//
// A probabilistic model is a Go function that declares random
// variables on a trace. Running the model records every sample and
// observe site along with its log-density, which is all an inference
// algorithm needs: substitute values at latent sites, read off the
// log-joint, differentiate it.
//
// Example:
//
//	model := func(t *rv.Trace) {
//		p := t.Sample("p", dist.NewBeta(one, one))
//		t.Observe("x", dist.NewBernoulli(p), data)
//	}
//	trace := rv.Run(model, backend)
//	lj := trace.LogJoint()
package rv

import (
	"github.com/edda-ml/edda/internal/rv"
	"github.com/edda-ml/edda/internal/tensor"
)

// Model is a probabilistic program: a function declaring random
// variables on a trace.
type Model = rv.Model

// Trace records the sites of one model execution.
type Trace = rv.Trace

// Site is one recorded random variable.
type Site = rv.Site

// Option configures a model run.
type Option = rv.Option

// Run executes the model and returns its trace.
func Run(m Model, backend tensor.Backend, opts ...Option) *Trace {
	return rv.Run(m, backend, opts...)
}

// WithValues substitutes values at the named sample sites instead of
// drawing from their distributions.
func WithValues(values map[string]*tensor.Tensor) Option {
	return rv.WithValues(values)
}

// Predictive makes Observe sites draw from their distributions instead
// of scoring the observed values. Used for posterior predictive checks.
func Predictive() Option {
	return rv.Predictive()
}
