// Package autodiff implements automatic differentiation using the
// decorator pattern.
//
// Backend wraps any tensor.Backend and records every operation on a Tape
// during the forward pass. Tape.Backward then walks the recorded
// operations in reverse to produce gradients (reverse-mode AD).
//
// Usage:
//
//	backend := autodiff.New(cpu.New())
//	backend.Tape().StartRecording()
//	loss := buildLoss(backend)
//	grads := backend.Tape().Backward(loss.Raw(), seed, backend)
package autodiff

import (
	"github.com/edda-ml/edda/internal/autodiff/ops"
	"github.com/edda-ml/edda/internal/tensor"
)

// Backend wraps a compute backend and adds gradient recording.
type Backend struct {
	inner tensor.Backend
	tape  *Tape
}

// New creates an autodiff backend wrapping the given backend.
func New(inner tensor.Backend) *Backend {
	return &Backend{inner: inner, tape: NewTape()}
}

// Tape returns the gradient tape for recording control.
func (b *Backend) Tape() *Tape { return b.tape }

// Inner returns the wrapped backend.
func (b *Backend) Inner() tensor.Backend { return b.inner }

// Name returns the backend name.
func (b *Backend) Name() string { return "Autodiff(" + b.inner.Name() + ")" }

// Add performs element-wise addition and records the operation.
func (b *Backend) Add(a, c *tensor.Raw) *tensor.Raw {
	out := b.inner.Add(a, c)
	b.tape.Record(ops.NewAddOp(a, c, out))
	return out
}

// Sub performs element-wise subtraction and records the operation.
func (b *Backend) Sub(a, c *tensor.Raw) *tensor.Raw {
	out := b.inner.Sub(a, c)
	b.tape.Record(ops.NewSubOp(a, c, out))
	return out
}

// Mul performs element-wise multiplication and records the operation.
func (b *Backend) Mul(a, c *tensor.Raw) *tensor.Raw {
	out := b.inner.Mul(a, c)
	b.tape.Record(ops.NewMulOp(a, c, out))
	return out
}

// Div performs element-wise division and records the operation.
func (b *Backend) Div(a, c *tensor.Raw) *tensor.Raw {
	out := b.inner.Div(a, c)
	b.tape.Record(ops.NewDivOp(a, c, out))
	return out
}

// Neg negates and records the operation.
func (b *Backend) Neg(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Neg(x)
	b.tape.Record(ops.NewNegOp(x, out))
	return out
}

// Exp exponentiates and records the operation.
func (b *Backend) Exp(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Exp(x)
	b.tape.Record(ops.NewExpOp(x, out))
	return out
}

// Log takes the natural logarithm and records the operation.
func (b *Backend) Log(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Log(x)
	b.tape.Record(ops.NewLogOp(x, out))
	return out
}

// Sqrt takes the square root and records the operation.
func (b *Backend) Sqrt(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Sqrt(x)
	b.tape.Record(ops.NewSqrtOp(x, out))
	return out
}

// Abs takes the absolute value and records the operation.
func (b *Backend) Abs(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Abs(x)
	b.tape.Record(ops.NewAbsOp(x, out))
	return out
}

// Pow raises to a scalar power and records the operation.
func (b *Backend) Pow(x *tensor.Raw, p float64) *tensor.Raw {
	out := b.inner.Pow(x, p)
	b.tape.Record(ops.NewPowOp(x, out, p))
	return out
}

// Scale multiplies by a scalar and records the operation.
func (b *Backend) Scale(x *tensor.Raw, s float64) *tensor.Raw {
	out := b.inner.Scale(x, s)
	b.tape.Record(ops.NewScaleOp(x, out, s))
	return out
}

// AddScalar adds a scalar and records the operation.
func (b *Backend) AddScalar(x *tensor.Raw, s float64) *tensor.Raw {
	out := b.inner.AddScalar(x, s)
	b.tape.Record(ops.NewAddScalarOp(x, out))
	return out
}

// Sigmoid applies the logistic function and records the operation.
func (b *Backend) Sigmoid(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Sigmoid(x)
	b.tape.Record(ops.NewSigmoidOp(x, out))
	return out
}

// Tanh applies the hyperbolic tangent and records the operation.
func (b *Backend) Tanh(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Tanh(x)
	b.tape.Record(ops.NewTanhOp(x, out))
	return out
}

// Softplus applies log(1+e^x) and records the operation.
func (b *Backend) Softplus(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Softplus(x)
	b.tape.Record(ops.NewSoftplusOp(x, out))
	return out
}

// ReLU applies max(0,x) and records the operation.
func (b *Backend) ReLU(x *tensor.Raw) *tensor.Raw {
	out := b.inner.ReLU(x)
	b.tape.Record(ops.NewReLUOp(x, out))
	return out
}

// Lgamma applies log-gamma and records the operation.
func (b *Backend) Lgamma(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Lgamma(x)
	b.tape.Record(ops.NewLgammaOp(x, out))
	return out
}

// Digamma applies digamma and records the operation.
func (b *Backend) Digamma(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Digamma(x)
	b.tape.Record(ops.NewDigammaOp(x, out))
	return out
}

// MatMul multiplies matrices and records the operation.
func (b *Backend) MatMul(a, c *tensor.Raw) *tensor.Raw {
	out := b.inner.MatMul(a, c)
	b.tape.Record(ops.NewMatMulOp(a, c, out))
	return out
}

// Transpose transposes a 2-D tensor and records the operation.
func (b *Backend) Transpose(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Transpose(x)
	b.tape.Record(ops.NewTransposeOp(x, out))
	return out
}

// Reshape reshapes and records the operation.
func (b *Backend) Reshape(x *tensor.Raw, shape tensor.Shape) *tensor.Raw {
	out := b.inner.Reshape(x, shape)
	b.tape.Record(ops.NewReshapeOp(x, out))
	return out
}

// Sum reduces to a scalar and records the operation.
func (b *Backend) Sum(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Sum(x)
	b.tape.Record(ops.NewSumOp(x, out))
	return out
}

// SumDim sums along a dimension and records the operation.
func (b *Backend) SumDim(x *tensor.Raw, dim int, keepDim bool) *tensor.Raw {
	out := b.inner.SumDim(x, dim, keepDim)
	b.tape.Record(ops.NewSumDimOp(x, out, dim, keepDim))
	return out
}

// Mean reduces to the scalar mean and records the operation.
func (b *Backend) Mean(x *tensor.Raw) *tensor.Raw {
	out := b.inner.Mean(x)
	b.tape.Record(ops.NewMeanOp(x, out))
	return out
}

// LogSumExp reduces along a dimension and records the operation.
func (b *Backend) LogSumExp(x *tensor.Raw, dim int) *tensor.Raw {
	out := b.inner.LogSumExp(x, dim)
	b.tape.Record(ops.NewLogSumExpOp(x, out, dim))
	return out
}

// LogSoftmax normalizes along a dimension and records the operation.
func (b *Backend) LogSoftmax(x *tensor.Raw, dim int) *tensor.Raw {
	out := b.inner.LogSoftmax(x, dim)
	b.tape.Record(ops.NewLogSoftmaxOp(x, out, dim))
	return out
}
