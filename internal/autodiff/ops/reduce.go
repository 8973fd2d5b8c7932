package ops

import (
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

// SumOp records out = sum(x) (a 0-D scalar).
type SumOp struct{ unary }

func NewSumOp(x, out *tensor.Raw) *SumOp { return &SumOp{unary{x: x, out: out, name: "Sum"}} }

func (op *SumOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{fullLike(op.x.Shape(), grad.Data()[0])}
}

// MeanOp records out = mean(x) (a 0-D scalar).
type MeanOp struct{ unary }

func NewMeanOp(x, out *tensor.Raw) *MeanOp { return &MeanOp{unary{x: x, out: out, name: "Mean"}} }

func (op *MeanOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	n := float64(op.x.NumElements())
	return []*tensor.Raw{fullLike(op.x.Shape(), grad.Data()[0]/n)}
}

// SumDimOp records out = sum(x, dim).
type SumDimOp struct {
	unary
	dim     int
	keepDim bool
}

func NewSumDimOp(x, out *tensor.Raw, dim int, keepDim bool) *SumDimOp {
	return &SumDimOp{unary: unary{x: x, out: out, name: "SumDim"}, dim: dim, keepDim: keepDim}
}

func (op *SumDimOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// Replicate the gradient along the reduced dimension.
	gx := tensor.MustRaw(op.x.Shape())
	outer, size, inner := splitDim(op.x.Shape(), op.dim)
	gd, od := grad.Data(), gx.Data()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			g := gd[o*inner+i]
			base := o*size*inner + i
			for s := 0; s < size; s++ {
				od[base+s*inner] = g
			}
		}
	}
	return []*tensor.Raw{gx}
}

// LogSumExpOp records out = logsumexp(x, dim).
type LogSumExpOp struct {
	unary
	dim int
}

func NewLogSumExpOp(x, out *tensor.Raw, dim int) *LogSumExpOp {
	return &LogSumExpOp{unary: unary{x: x, out: out, name: "LogSumExp"}, dim: dim}
}

func (op *LogSumExpOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// dL/dx = softmax(x, dim) * g (with g expanded along dim).
	gx := tensor.MustRaw(op.x.Shape())
	outer, size, inner := splitDim(op.x.Shape(), op.dim)
	xd, gd, lse, od := op.x.Data(), grad.Data(), op.out.Data(), gx.Data()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			g := gd[o*inner+i]
			norm := lse[o*inner+i]
			base := o*size*inner + i
			for s := 0; s < size; s++ {
				od[base+s*inner] = g * math.Exp(xd[base+s*inner]-norm)
			}
		}
	}
	return []*tensor.Raw{gx}
}

// LogSoftmaxOp records out = x - logsumexp(x, dim).
type LogSoftmaxOp struct {
	unary
	dim int
}

func NewLogSoftmaxOp(x, out *tensor.Raw, dim int) *LogSoftmaxOp {
	return &LogSoftmaxOp{unary: unary{x: x, out: out, name: "LogSoftmax"}, dim: dim}
}

func (op *LogSoftmaxOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// dL/dx = g - softmax(x) * sum(g, dim)
	sg := backend.SumDim(grad, op.dim, true)
	return []*tensor.Raw{backend.Sub(grad, backend.Mul(backend.Exp(op.out), sg))}
}
