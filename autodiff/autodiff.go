// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// The autodiff Backend wraps any tensor.Backend and records every
// operation on a gradient tape. Calling Tape().Backward walks the tape
// in reverse and accumulates gradients for every tensor that
// contributed to the result.
//
// This is what makes both variational inference and Hamiltonian Monte
// Carlo work: log-densities built from tensor operations are
// differentiable with respect to their inputs.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	tape := backend.Tape()
//	tape.StartRecording()
//
//	x := tensor.Randn(tensor.Shape{3}, backend)
//	loss := x.Mul(x).Sum()
//
//	grads := tape.Backward(loss.Raw(), ones, backend)
//	tape.StopRecording()
package autodiff

import (
	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/tensor"
)

// Backend wraps a compute backend and records operations on a tape.
type Backend = autodiff.Backend

// Tape records operations for reverse-mode differentiation.
type Tape = autodiff.Tape

// New creates an autodiff backend wrapping the given compute backend.
func New(inner tensor.Backend) *Backend {
	return autodiff.New(inner)
}

// NewTape creates an empty gradient tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}
