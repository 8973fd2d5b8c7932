// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package criticism provides model evaluation tools.
//
// After inference, criticism asks whether the fitted model describes
// the data: score held-out observations under the posterior, or compare
// a statistic of the observed data against its distribution under the
// posterior predictive.
package criticism

import (
	"fmt"
	"sort"

	"github.com/edda-ml/edda/internal/rv"
	"github.com/edda-ml/edda/internal/tensor"
)

// LogLikelihood runs the model with the latent sites bound to values
// and returns the total log-density of the observed sites. Higher is
// better; compare across candidate models on the same data.
func LogLikelihood(model rv.Model, values map[string]*tensor.Tensor, backend tensor.Backend) float64 {
	trace := rv.Run(model, backend, rv.WithValues(values))
	return trace.LogLikelihood().Item()
}

// Statistic reduces the replicated observations of one predictive run
// to a scalar. The map holds one tensor per observed site.
type Statistic func(observed map[string]*tensor.Tensor) float64

// PPCResult holds the outcome of a posterior predictive check.
type PPCResult struct {
	Observed   float64   // statistic of the real data
	Replicated []float64 // statistic of each predictive replication
}

// PValue returns the fraction of replications with a statistic at
// least as large as the observed one. Values near 0 or 1 indicate the
// model fails to reproduce that aspect of the data.
func (r *PPCResult) PValue() float64 {
	if len(r.Replicated) == 0 {
		return 0
	}
	count := 0
	for _, v := range r.Replicated {
		if v >= r.Observed {
			count++
		}
	}
	return float64(count) / float64(len(r.Replicated))
}

// Quantiles returns the empirical quantiles of the replicated
// statistic at the given probabilities.
func (r *PPCResult) Quantiles(probs ...float64) []float64 {
	sorted := append([]float64(nil), r.Replicated...)
	sort.Float64s(sorted)
	out := make([]float64, len(probs))
	for i, p := range probs {
		if len(sorted) == 0 {
			continue
		}
		idx := int(p * float64(len(sorted)-1))
		out[i] = sorted[idx]
	}
	return out
}

// PPC performs a posterior predictive check.
//
// draw supplies one posterior draw of the latent values per call, such
// as a chain's Draw method or repeated guide samples. For each of n
// replications, the model runs in predictive mode with the latents
// bound to a draw, and stat reduces the replicated observations to a
// scalar. The same statistic of the real observations is taken from a
// scoring run under the first draw.
//
// Example:
//
//	result := criticism.PPC(model, chain.Draw, meanOfX, 200, backend)
//	fmt.Println(result.PValue())
func PPC(model rv.Model, draw func() map[string]*tensor.Tensor, stat Statistic, n int, backend tensor.Backend) *PPCResult {
	if n <= 0 {
		panic(fmt.Sprintf("criticism: replications must be positive, got %d", n))
	}

	first := draw()
	scoring := rv.Run(model, backend, rv.WithValues(first))
	observed := make(map[string]*tensor.Tensor)
	for _, name := range scoring.ObservedNames() {
		observed[name] = scoring.Value(name)
	}

	result := &PPCResult{Observed: stat(observed)}
	for i := 0; i < n; i++ {
		values := first
		if i > 0 {
			values = draw()
		}
		rep := rv.Run(model, backend, rv.WithValues(values), rv.Predictive())
		replicated := make(map[string]*tensor.Tensor)
		for _, name := range rep.ObservedNames() {
			replicated[name] = rep.Value(name)
		}
		result.Replicated = append(result.Replicated, stat(replicated))
	}
	return result
}
