// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU compute backend.
//
// The CPU backend is the reference implementation of tensor.Backend.
// It has no external dependencies and works on any platform Go
// supports.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Randn(tensor.Shape{64, 10}, backend)
//	y := x.Sigmoid()
package cpu

import (
	"github.com/edda-ml/edda/internal/backend/cpu"
)

// Backend is the pure Go CPU implementation of tensor.Backend.
type Backend = cpu.Backend

// New creates a CPU backend.
func New() *Backend {
	return cpu.New()
}
