// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package criticism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edda-ml/edda/backend/cpu"
	"github.com/edda-ml/edda/dist"
	"github.com/edda-ml/edda/rv"
	"github.com/edda-ml/edda/tensor"
)

func scalar(v float64, b tensor.Backend) *tensor.Tensor {
	return tensor.New(tensor.FromData([]float64{v}, tensor.Shape{1}), b)
}

func normalModel(x *tensor.Tensor, b tensor.Backend) rv.Model {
	return func(t *rv.Trace) {
		mu := t.Sample("mu", dist.NewNormal(scalar(0, b), scalar(10, b)))
		t.Observe("x", dist.NewNormal(mu, scalar(1, b)), x)
	}
}

func TestLogLikelihoodPrefersCloserFit(t *testing.T) {
	b := cpu.New()
	x, err := tensor.FromSlice([]float64{4.9, 5.1, 5.0}, tensor.Shape{3}, b)
	require.NoError(t, err)
	model := normalModel(x, b)

	good := LogLikelihood(model, map[string]*tensor.Tensor{"mu": scalar(5, b)}, b)
	bad := LogLikelihood(model, map[string]*tensor.Tensor{"mu": scalar(0, b)}, b)
	assert.Greater(t, good, bad)
}

func TestPPCWellSpecifiedModel(t *testing.T) {
	tensor.SeedRNG(42)
	b := cpu.New()
	x, err := tensor.FromSlice([]float64{1.2, 0.8, 1.1, 0.9, 1.0}, tensor.Shape{5}, b)
	require.NoError(t, err)
	model := normalModel(x, b)

	// Draws near the truth: the observed mean should sit comfortably
	// inside the predictive distribution.
	draw := func() map[string]*tensor.Tensor {
		return map[string]*tensor.Tensor{"mu": scalar(1+0.2*tensor.RandNormal(), b)}
	}
	meanOfX := func(observed map[string]*tensor.Tensor) float64 {
		return observed["x"].Mean().Item()
	}

	result := PPC(model, draw, meanOfX, 200, b)
	assert.Len(t, result.Replicated, 200)
	assert.InDelta(t, 1.0, result.Observed, 0.2)
	assert.Greater(t, result.PValue(), 0.05)
	assert.Less(t, result.PValue(), 0.95)
}

func TestPPCMisspecifiedModel(t *testing.T) {
	tensor.SeedRNG(42)
	b := cpu.New()
	x, err := tensor.FromSlice([]float64{6.0, 5.8, 6.2, 5.9}, tensor.Shape{4}, b)
	require.NoError(t, err)
	model := normalModel(x, b)

	// Posterior draws stuck far below the data: nearly every
	// replication should have a smaller mean than observed.
	draw := func() map[string]*tensor.Tensor {
		return map[string]*tensor.Tensor{"mu": scalar(0.1*tensor.RandNormal(), b)}
	}
	meanOfX := func(observed map[string]*tensor.Tensor) float64 {
		return observed["x"].Mean().Item()
	}

	result := PPC(model, draw, meanOfX, 100, b)
	assert.Less(t, result.PValue(), 0.05)
}

func TestPPCQuantiles(t *testing.T) {
	r := &PPCResult{Replicated: []float64{3, 1, 2, 5, 4}}
	q := r.Quantiles(0, 0.5, 1)
	assert.Equal(t, []float64{1, 3, 5}, q)
}

func TestPPCRejectsBadReplications(t *testing.T) {
	b := cpu.New()
	assert.Panics(t, func() {
		PPC(func(t *rv.Trace) {}, func() map[string]*tensor.Tensor { return nil }, nil, 0, b)
	})
}
