package ops

import (
	"github.com/edda-ml/edda/internal/tensor"
)

// MatMulOp records out = a @ b for 2-D operands.
type MatMulOp struct {
	a, b, out *tensor.Raw
}

// NewMatMulOp records out = a @ b.
func NewMatMulOp(a, b, out *tensor.Raw) *MatMulOp { return &MatMulOp{a: a, b: b, out: out} }

func (op *MatMulOp) Name() string          { return "MatMul" }
func (op *MatMulOp) Inputs() []*tensor.Raw { return []*tensor.Raw{op.a, op.b} }
func (op *MatMulOp) Output() *tensor.Raw   { return op.out }

func (op *MatMulOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	// dL/da = g @ b^T, dL/db = a^T @ g
	ga := backend.MatMul(grad, backend.Transpose(op.b))
	gb := backend.MatMul(backend.Transpose(op.a), grad)
	return []*tensor.Raw{ga, gb}
}

// TransposeOp records out = x^T for a 2-D tensor.
type TransposeOp struct{ unary }

func NewTransposeOp(x, out *tensor.Raw) *TransposeOp {
	return &TransposeOp{unary{x: x, out: out, name: "Transpose"}}
}

func (op *TransposeOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Transpose(grad)}
}

// ReshapeOp records out = reshape(x).
type ReshapeOp struct{ unary }

func NewReshapeOp(x, out *tensor.Raw) *ReshapeOp {
	return &ReshapeOp{unary{x: x, out: out, name: "Reshape"}}
}

func (op *ReshapeOp) Backward(grad *tensor.Raw, backend tensor.Backend) []*tensor.Raw {
	return []*tensor.Raw{backend.Reshape(grad, op.x.Shape())}
}
