package ops

import (
	"github.com/edda-ml/edda/internal/backend/cpu"
	"github.com/edda-ml/edda/internal/tensor"
)

// unary carries the shared bookkeeping of single-input operations.
type unary struct {
	x, out *tensor.Raw
	name   string
}

func (op *unary) Name() string          { return op.name }
func (op *unary) Inputs() []*tensor.Raw { return []*tensor.Raw{op.x} }
func (op *unary) Output() *tensor.Raw   { return op.out }

// NegOp records out = -x.
type NegOp struct{ unary }

func NewNegOp(x, out *tensor.Raw) *NegOp { return &NegOp{unary{x: x, out: out, name: "Neg"}} }

func (op *NegOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Neg(grad)}
}

// ExpOp records out = exp(x).
type ExpOp struct{ unary }

func NewExpOp(x, out *tensor.Raw) *ExpOp { return &ExpOp{unary{x: x, out: out, name: "Exp"}} }

func (op *ExpOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Mul(grad, op.out)}
}

// LogOp records out = log(x).
type LogOp struct{ unary }

func NewLogOp(x, out *tensor.Raw) *LogOp { return &LogOp{unary{x: x, out: out, name: "Log"}} }

func (op *LogOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Div(grad, op.x)}
}

// SqrtOp records out = sqrt(x).
type SqrtOp struct{ unary }

func NewSqrtOp(x, out *tensor.Raw) *SqrtOp { return &SqrtOp{unary{x: x, out: out, name: "Sqrt"}} }

func (op *SqrtOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// d/dx sqrt(x) = 1 / (2 sqrt(x))
	return []*tensor.Raw{backend.Div(backend.Scale(grad, 0.5), op.out)}
}

// AbsOp records out = |x|.
type AbsOp struct{ unary }

func NewAbsOp(x, out *tensor.Raw) *AbsOp { return &AbsOp{unary{x: x, out: out, name: "Abs"}} }

func (op *AbsOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	gx := tensor.MustRaw(op.x.Shape())
	xd, gd, od := op.x.Data(), grad.Data(), gx.Data()
	for i := range xd {
		switch {
		case xd[i] > 0:
			od[i] = gd[i]
		case xd[i] < 0:
			od[i] = -gd[i]
		}
	}
	return []*tensor.Raw{gx}
}

// PowOp records out = x^p for a scalar exponent.
type PowOp struct {
	unary
	p float64
}

func NewPowOp(x, out *tensor.Raw, p float64) *PowOp {
	return &PowOp{unary: unary{x: x, out: out, name: "Pow"}, p: p}
}

func (op *PowOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// d/dx x^p = p x^(p-1)
	return []*tensor.Raw{backend.Mul(grad, backend.Scale(backend.Pow(op.x, op.p-1), op.p))}
}

// ScaleOp records out = s * x.
type ScaleOp struct {
	unary
	s float64
}

func NewScaleOp(x, out *tensor.Raw, s float64) *ScaleOp {
	return &ScaleOp{unary: unary{x: x, out: out, name: "Scale"}, s: s}
}

func (op *ScaleOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Scale(grad, op.s)}
}

// AddScalarOp records out = x + s.
type AddScalarOp struct{ unary }

func NewAddScalarOp(x, out *tensor.Raw) *AddScalarOp {
	return &AddScalarOp{unary{x: x, out: out, name: "AddScalar"}}
}

func (op *AddScalarOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{grad}
}

// SigmoidOp records out = sigmoid(x).
type SigmoidOp struct{ unary }

func NewSigmoidOp(x, out *tensor.Raw) *SigmoidOp {
	return &SigmoidOp{unary{x: x, out: out, name: "Sigmoid"}}
}

func (op *SigmoidOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// d/dx sigmoid(x) = sigmoid(x) (1 - sigmoid(x))
	oneMinus := backend.AddScalar(backend.Neg(op.out), 1)
	return []*tensor.Raw{backend.Mul(grad, backend.Mul(op.out, oneMinus))}
}

// TanhOp records out = tanh(x).
type TanhOp struct{ unary }

func NewTanhOp(x, out *tensor.Raw) *TanhOp { return &TanhOp{unary{x: x, out: out, name: "Tanh"}} }

func (op *TanhOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// d/dx tanh(x) = 1 - tanh(x)^2
	sq := backend.Mul(op.out, op.out)
	return []*tensor.Raw{backend.Mul(grad, backend.AddScalar(backend.Neg(sq), 1))}
}

// SoftplusOp records out = log(1 + exp(x)).
type SoftplusOp struct{ unary }

func NewSoftplusOp(x, out *tensor.Raw) *SoftplusOp {
	return &SoftplusOp{unary{x: x, out: out, name: "Softplus"}}
}

func (op *SoftplusOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Mul(grad, backend.Sigmoid(op.x))}
}

// ReLUOp records out = max(0, x).
type ReLUOp struct{ unary }

func NewReLUOp(x, out *tensor.Raw) *ReLUOp { return &ReLUOp{unary{x: x, out: out, name: "ReLU"}} }

func (op *ReLUOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	gx := tensor.MustRaw(op.x.Shape())
	xd, gd, od := op.x.Data(), grad.Data(), gx.Data()
	for i := range xd {
		if xd[i] > 0 {
			od[i] = gd[i]
		}
	}
	return []*tensor.Raw{gx}
}

// LgammaOp records out = lgamma(x). Its derivative is the digamma function.
type LgammaOp struct{ unary }

func NewLgammaOp(x, out *tensor.Raw) *LgammaOp {
	return &LgammaOp{unary{x: x, out: out, name: "Lgamma"}}
}

func (op *LgammaOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Mul(grad, backend.Digamma(op.x))}
}

// DigammaOp records out = digamma(x). Its derivative is the trigamma
// function, which is not a Backend op; the Raw layout is dense float64 on
// every backend, so the kernel is applied directly here.
type DigammaOp struct{ unary }

func NewDigammaOp(x, out *tensor.Raw) *DigammaOp {
	return &DigammaOp{unary{x: x, out: out, name: "Digamma"}}
}

func (op *DigammaOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	gx := tensor.MustRaw(op.x.Shape())
	xd, gd, od := op.x.Data(), grad.Data(), gx.Data()
	for i := range xd {
		od[i] = gd[i] * cpu.Trigamma(xd[i])
	}
	return []*tensor.Raw{gx}
}
