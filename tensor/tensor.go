// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in Edda.
//
// The package defines the core types for dense float64 tensors:
//   - Tensor: high-level tensor bound to a compute backend
//   - Raw: low-level contiguous buffer for advanced use cases
//   - Backend: interface for device-specific compute implementations
//   - Shape: dimension list with NumPy broadcasting rules
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	y := tensor.Ones(tensor.Shape{2, 3}, backend)
//	z := x.Add(y) // element-wise addition
package tensor

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3-D tensor with dimensions 2x3x4.
type Shape = tensor.Shape

// Raw is the low-level dense float64 tensor.
type Raw = tensor.Raw

// Tensor is a dense float64 tensor bound to a compute backend.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	x := tensor.Randn(tensor.Shape{2, 3}, backend)
//	loss := x.Mul(x).Sum()
type Tensor = tensor.Tensor

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	return tensor.Full(shape, value, b)
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float64, b Backend) *Tensor {
	return tensor.Scalar(value, b)
}

// Randn creates a tensor with draws from the standard normal N(0, 1).
func Randn(shape Shape, b Backend) *Tensor {
	return tensor.Randn(shape, b)
}

// Rand creates a tensor with draws from the uniform U(0, 1).
func Rand(shape Shape, b Backend) *Tensor {
	return tensor.Rand(shape, b)
}

// Arange creates a 1-D tensor with values from start to end (exclusive).
func Arange(start, end float64, b Backend) *Tensor {
	return tensor.Arange(start, end, b)
}

// Eye creates an n-by-n identity matrix.
func Eye(n int, b Backend) *Tensor {
	return tensor.Eye(n, b)
}

// OneHot creates a [len(indices), depth] tensor with a single 1 per row.
func OneHot(indices []int, depth int, b Backend) *Tensor {
	return tensor.OneHot(indices, depth, b)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function; most users should use creation functions
// like Zeros, Randn, or FromSlice instead.
func New(raw *Raw, b Backend) *Tensor {
	return tensor.New(raw, b)
}

// NewRaw creates a zero-initialized raw tensor with the given shape.
func NewRaw(shape Shape) (*Raw, error) {
	return tensor.NewRaw(shape)
}

// Utility functions

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// SeedRNG reseeds the package RNG used for tensor creation and
// distribution sampling. Call once at program start for reproducibility.
func SeedRNG(seed int64) {
	tensor.SeedRNG(seed)
}

// RandNormal draws one value from the standard normal N(0, 1).
func RandNormal() float64 {
	return tensor.RandNormal()
}

// RandUniform draws one value from the uniform U(0, 1).
func RandUniform() float64 {
	return tensor.RandUniform()
}

// RandIntn draws a uniform integer in [0, n).
func RandIntn(n int) int {
	return tensor.RandIntn(n)
}

// FromData creates a raw tensor taking ownership of the slice.
func FromData(data []float64, shape Shape) *Raw {
	return tensor.FromData(data, shape)
}
