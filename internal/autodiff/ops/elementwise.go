package ops

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// AddOp records element-wise addition with broadcasting.
type AddOp struct {
	a, b, out *tensor.Raw
}

// NewAddOp records out = a + b.
func NewAddOp(a, b, out *tensor.Raw) *AddOp { return &AddOp{a: a, b: b, out: out} }

func (op *AddOp) Name() string            { return "Add" }
func (op *AddOp) Inputs() []*tensor.Raw   { return []*tensor.Raw{op.a, op.b} }
func (op *AddOp) Output() *tensor.Raw     { return op.out }

func (op *AddOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{
		unbroadcast(grad, op.a.Shape(), backend),
		unbroadcast(grad, op.b.Shape(), backend),
	}
}

// SubOp records element-wise subtraction with broadcasting.
type SubOp struct {
	a, b, out *tensor.Raw
}

// NewSubOp records out = a - b.
func NewSubOp(a, b, out *tensor.Raw) *SubOp { return &SubOp{a: a, b: b, out: out} }

func (op *SubOp) Name() string          { return "Sub" }
func (op *SubOp) Inputs() []*tensor.Raw { return []*tensor.Raw{op.a, op.b} }
func (op *SubOp) Output() *tensor.Raw   { return op.out }

func (op *SubOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{
		unbroadcast(grad, op.a.Shape(), backend),
		unbroadcast(backend.Neg(grad), op.b.Shape(), backend),
	}
}

// MulOp records element-wise multiplication with broadcasting.
type MulOp struct {
	a, b, out *tensor.Raw
}

// NewMulOp records out = a * b.
func NewMulOp(a, b, out *tensor.Raw) *MulOp { return &MulOp{a: a, b: b, out: out} }

func (op *MulOp) Name() string          { return "Mul" }
func (op *MulOp) Inputs() []*tensor.Raw { return []*tensor.Raw{op.a, op.b} }
func (op *MulOp) Output() *tensor.Raw   { return op.out }

func (op *MulOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{
		unbroadcast(backend.Mul(grad, op.b), op.a.Shape(), backend),
		unbroadcast(backend.Mul(grad, op.a), op.b.Shape(), backend),
	}
}

// DivOp records element-wise division with broadcasting.
type DivOp struct {
	a, b, out *tensor.Raw
}

// NewDivOp records out = a / b.
func NewDivOp(a, b, out *tensor.Raw) *DivOp { return &DivOp{a: a, b: b, out: out} }

func (op *DivOp) Name() string          { return "Div" }
func (op *DivOp) Inputs() []*tensor.Raw { return []*tensor.Raw{op.a, op.b} }
func (op *DivOp) Output() *tensor.Raw   { return op.out }

func (op *DivOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// d/da (a/b) = 1/b, d/db (a/b) = -a/b^2
	ga := backend.Div(grad, op.b)
	gb := backend.Neg(backend.Div(backend.Mul(grad, op.out), op.b))
	return []*tensor.Raw{
		unbroadcast(ga, op.a.Shape(), backend),
		unbroadcast(gb, op.b.Shape(), backend),
	}
}
