package tensor

import "fmt"

// Tensor is a dense float64 tensor bound to a compute backend.
//
// Every method delegates to the backend, so wrapping the backend with the
// autodiff decorator is enough to make any expression differentiable.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Randn(tensor.Shape{2, 3}, backend)
//	y := x.Mul(x).Sum() // scalar
type Tensor struct {
	raw     *Raw
	backend Backend
}

// New creates a Tensor from a Raw and a backend.
func New(raw *Raw, b Backend) *Tensor {
	return &Tensor{raw: raw, backend: b}
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(raw.Data(), data)
	return New(raw, b), nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape { return t.raw.Shape() }

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int { return t.raw.NumElements() }

// Raw returns the underlying raw tensor.
func (t *Tensor) Raw() *Raw { return t.raw }

// Backend returns the computation backend.
func (t *Tensor) Backend() Backend { return t.backend }

// Data returns the underlying buffer (zero-copy).
//
// WARNING: modifications to the returned slice modify the tensor.
func (t *Tensor) Data() []float64 { return t.raw.Data() }

// Item returns the value of a tensor holding exactly one element.
func (t *Tensor) Item() float64 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() requires a single-element tensor, got shape %v", t.Shape()))
	}
	return t.raw.Data()[0]
}

// At returns the element at the given indices.
func (t *Tensor) At(indices ...int) float64 { return t.raw.At(indices...) }

// Set writes the element at the given indices.
func (t *Tensor) Set(value float64, indices ...int) { t.raw.Set(value, indices...) }

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return New(t.raw.Clone(), t.backend)
}

// Detach returns a copy that is disconnected from the autodiff tape.
// The copy has a fresh Raw identity, so no gradient flows past it.
func (t *Tensor) Detach() *Tensor {
	return New(t.raw.Clone(), t.backend)
}

// String returns a short description.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v on %s", t.Shape(), t.backend.Name())
}

// Element-wise binary operations.

// Add performs element-wise addition with broadcasting.
func (t *Tensor) Add(o *Tensor) *Tensor { return New(t.backend.Add(t.raw, o.raw), t.backend) }

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor) Sub(o *Tensor) *Tensor { return New(t.backend.Sub(t.raw, o.raw), t.backend) }

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor) Mul(o *Tensor) *Tensor { return New(t.backend.Mul(t.raw, o.raw), t.backend) }

// Div performs element-wise division with broadcasting.
func (t *Tensor) Div(o *Tensor) *Tensor { return New(t.backend.Div(t.raw, o.raw), t.backend) }

// Element-wise unary operations.

// Neg returns -t.
func (t *Tensor) Neg() *Tensor { return New(t.backend.Neg(t.raw), t.backend) }

// Exp returns e^t element-wise.
func (t *Tensor) Exp() *Tensor { return New(t.backend.Exp(t.raw), t.backend) }

// Log returns the natural logarithm element-wise.
func (t *Tensor) Log() *Tensor { return New(t.backend.Log(t.raw), t.backend) }

// Sqrt returns the square root element-wise.
func (t *Tensor) Sqrt() *Tensor { return New(t.backend.Sqrt(t.raw), t.backend) }

// Abs returns the absolute value element-wise.
func (t *Tensor) Abs() *Tensor { return New(t.backend.Abs(t.raw), t.backend) }

// Pow raises each element to the power p.
func (t *Tensor) Pow(p float64) *Tensor { return New(t.backend.Pow(t.raw, p), t.backend) }

// Scale multiplies each element by s.
func (t *Tensor) Scale(s float64) *Tensor { return New(t.backend.Scale(t.raw, s), t.backend) }

// AddScalar adds s to each element.
func (t *Tensor) AddScalar(s float64) *Tensor { return New(t.backend.AddScalar(t.raw, s), t.backend) }

// Sigmoid applies the logistic function element-wise.
func (t *Tensor) Sigmoid() *Tensor { return New(t.backend.Sigmoid(t.raw), t.backend) }

// Tanh applies the hyperbolic tangent element-wise.
func (t *Tensor) Tanh() *Tensor { return New(t.backend.Tanh(t.raw), t.backend) }

// Softplus applies log(1+e^x) element-wise.
func (t *Tensor) Softplus() *Tensor { return New(t.backend.Softplus(t.raw), t.backend) }

// ReLU applies max(0, x) element-wise.
func (t *Tensor) ReLU() *Tensor { return New(t.backend.ReLU(t.raw), t.backend) }

// Lgamma applies the log-gamma function element-wise.
func (t *Tensor) Lgamma() *Tensor { return New(t.backend.Lgamma(t.raw), t.backend) }

// Digamma applies the digamma function element-wise.
func (t *Tensor) Digamma() *Tensor { return New(t.backend.Digamma(t.raw), t.backend) }

// Linear algebra and shape manipulation.

// MatMul performs 2-D matrix multiplication: [M,K] @ [K,N] -> [M,N].
func (t *Tensor) MatMul(o *Tensor) *Tensor { return New(t.backend.MatMul(t.raw, o.raw), t.backend) }

// Transpose swaps the two dimensions of a 2-D tensor.
func (t *Tensor) Transpose() *Tensor { return New(t.backend.Transpose(t.raw), t.backend) }

// Reshape returns a tensor with the same data and a new shape.
func (t *Tensor) Reshape(dims ...int) *Tensor {
	return New(t.backend.Reshape(t.raw, Shape(dims)), t.backend)
}

// Reductions.

// Sum reduces all elements to a scalar tensor.
func (t *Tensor) Sum() *Tensor { return New(t.backend.Sum(t.raw), t.backend) }

// SumDim sums along a dimension. Negative dims count from the end.
func (t *Tensor) SumDim(dim int, keepDim bool) *Tensor {
	d := normDim(dim, len(t.Shape()))
	return New(t.backend.SumDim(t.raw, d, keepDim), t.backend)
}

// Mean reduces all elements to their mean as a scalar tensor.
func (t *Tensor) Mean() *Tensor { return New(t.backend.Mean(t.raw), t.backend) }

// LogSumExp computes log(sum(exp(x))) along a dimension (removed from the
// output shape). Negative dims count from the end.
func (t *Tensor) LogSumExp(dim int) *Tensor {
	d := normDim(dim, len(t.Shape()))
	return New(t.backend.LogSumExp(t.raw, d), t.backend)
}

// LogSoftmax computes x - logsumexp(x, dim) along a dimension.
// Negative dims count from the end.
func (t *Tensor) LogSoftmax(dim int) *Tensor {
	d := normDim(dim, len(t.Shape()))
	return New(t.backend.LogSoftmax(t.raw, d), t.backend)
}

// Softmax computes exp(logsoftmax(x, dim)).
func (t *Tensor) Softmax(dim int) *Tensor {
	return t.LogSoftmax(dim).Exp()
}
