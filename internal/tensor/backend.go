package tensor

// Backend is the interface for compute implementations.
//
// All operations allocate a fresh output Raw; inputs are never modified.
// Binary operations broadcast following NumPy rules. The autodiff package
// decorates a Backend to record operations on a gradient tape, so every
// differentiable computation in Edda has to pass through this interface.
type Backend interface {
	// Name returns the backend name (for logging and errors).
	Name() string

	// Element-wise binary operations (with broadcasting).
	Add(a, b *Raw) *Raw
	Sub(a, b *Raw) *Raw
	Mul(a, b *Raw) *Raw
	Div(a, b *Raw) *Raw

	// Element-wise unary operations.
	Neg(x *Raw) *Raw
	Exp(x *Raw) *Raw
	Log(x *Raw) *Raw
	Sqrt(x *Raw) *Raw
	Abs(x *Raw) *Raw
	Pow(x *Raw, p float64) *Raw
	Scale(x *Raw, s float64) *Raw
	AddScalar(x *Raw, s float64) *Raw
	Sigmoid(x *Raw) *Raw
	Tanh(x *Raw) *Raw
	Softplus(x *Raw) *Raw
	ReLU(x *Raw) *Raw

	// Log-gamma and its derivative. These are first-class ops because the
	// Beta, Gamma, Dirichlet, and Multinomial log-densities need them.
	Lgamma(x *Raw) *Raw
	Digamma(x *Raw) *Raw

	// Linear algebra and shape manipulation.
	MatMul(a, b *Raw) *Raw
	Transpose(x *Raw) *Raw
	Reshape(x *Raw, shape Shape) *Raw

	// Reductions. SumDim, LogSumExp, and LogSoftmax take a normalized
	// (non-negative) dimension index.
	Sum(x *Raw) *Raw
	SumDim(x *Raw, dim int, keepDim bool) *Raw
	Mean(x *Raw) *Raw
	LogSumExp(x *Raw, dim int) *Raw
	LogSoftmax(x *Raw, dim int) *Raw
}
