// Copyright 2025 The Edda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// Backend defines the interface for tensor compute backends.
//
// Implementations provide device-specific kernels for the element-wise,
// linear algebra and reduction operations tensors delegate to. The cpu
// package provides the reference implementation; the autodiff package
// wraps any Backend to record operations for gradient computation.
type Backend = tensor.Backend
