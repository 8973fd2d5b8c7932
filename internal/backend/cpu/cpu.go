// Package cpu implements the pure-Go float64 compute backend.
//
// Every kernel allocates a fresh output and leaves its inputs untouched,
// which is what the autodiff decorator relies on: recorded inputs must
// still hold their forward values when the tape is walked backwards.
package cpu

import (
	"fmt"
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

// Backend is the CPU compute backend.
type Backend struct{}

// New creates a new CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "CPU"
}

// unaryApply allocates an output of the same shape and applies f element-wise.
func unaryApply(x *tensor.Raw, f func(float64) float64) *tensor.Raw {
	out := tensor.MustRaw(x.Shape())
	xd, od := x.Data(), out.Data()
	for i := range xd {
		od[i] = f(xd[i])
	}
	return out
}

// broadcastApply applies f element-wise with NumPy broadcasting.
func broadcastApply(a, c *tensor.Raw, f func(x, y float64) float64) *tensor.Raw {
	// Fast path: identical shapes.
	if a.Shape().Equal(c.Shape()) {
		out := tensor.MustRaw(a.Shape())
		ad, cd, od := a.Data(), c.Data(), out.Data()
		for i := range od {
			od[i] = f(ad[i], cd[i])
		}
		return out
	}

	outShape, err := tensor.BroadcastShapes(a.Shape(), c.Shape())
	if err != nil {
		panic(err)
	}
	out := tensor.MustRaw(outShape)

	rank := len(outShape)
	aStrides := broadcastStrides(a.Shape(), outShape)
	cStrides := broadcastStrides(c.Shape(), outShape)

	ad, cd, od := a.Data(), c.Data(), out.Data()
	idx := make([]int, rank)
	aOff, cOff := 0, 0
	for i := range od {
		od[i] = f(ad[aOff], cd[cOff])

		// Advance the multi-index (row-major) and both offsets.
		for d := rank - 1; d >= 0; d-- {
			idx[d]++
			aOff += aStrides[d]
			cOff += cStrides[d]
			if idx[d] < outShape[d] {
				break
			}
			idx[d] = 0
			aOff -= aStrides[d] * outShape[d]
			cOff -= cStrides[d] * outShape[d]
		}
	}
	return out
}

// broadcastStrides right-aligns shape against outShape and zeroes the
// stride of every broadcast dimension.
func broadcastStrides(shape, outShape tensor.Shape) []int {
	rank := len(outShape)
	strides := make([]int, rank)
	own := tensor.ComputeStrides(shape)
	offset := rank - len(shape)
	for i := range shape {
		if shape[i] == 1 && outShape[offset+i] != 1 {
			strides[offset+i] = 0
		} else {
			strides[offset+i] = own[i]
		}
	}
	return strides
}

// Add performs element-wise addition with broadcasting.
func (b *Backend) Add(a, c *tensor.Raw) *tensor.Raw {
	return broadcastApply(a, c, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (b *Backend) Sub(a, c *tensor.Raw) *tensor.Raw {
	return broadcastApply(a, c, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (b *Backend) Mul(a, c *tensor.Raw) *tensor.Raw {
	return broadcastApply(a, c, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (b *Backend) Div(a, c *tensor.Raw) *tensor.Raw {
	return broadcastApply(a, c, func(x, y float64) float64 { return x / y })
}

// Neg returns -x.
func (b *Backend) Neg(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, func(v float64) float64 { return -v })
}

// Exp returns e^x element-wise.
func (b *Backend) Exp(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, math.Exp)
}

// Log returns the natural logarithm element-wise.
func (b *Backend) Log(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, math.Log)
}

// Sqrt returns the square root element-wise.
func (b *Backend) Sqrt(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, math.Sqrt)
}

// Abs returns the absolute value element-wise.
func (b *Backend) Abs(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, math.Abs)
}

// Pow raises each element to the power p.
func (b *Backend) Pow(x *tensor.Raw, p float64) *tensor.Raw {
	return unaryApply(x, func(v float64) float64 { return math.Pow(v, p) })
}

// Scale multiplies each element by s.
func (b *Backend) Scale(x *tensor.Raw, s float64) *tensor.Raw {
	return unaryApply(x, func(v float64) float64 { return v * s })
}

// AddScalar adds s to each element.
func (b *Backend) AddScalar(x *tensor.Raw, s float64) *tensor.Raw {
	return unaryApply(x, func(v float64) float64 { return v + s })
}

// Sigmoid applies the logistic function element-wise.
func (b *Backend) Sigmoid(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, sigmoid)
}

// Tanh applies the hyperbolic tangent element-wise.
func (b *Backend) Tanh(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, math.Tanh)
}

// Softplus applies log(1+e^x) element-wise, with overflow protection for
// large positive inputs.
func (b *Backend) Softplus(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, softplus)
}

// ReLU applies max(0, x) element-wise.
func (b *Backend) ReLU(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// Lgamma applies the log-gamma function element-wise.
func (b *Backend) Lgamma(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, func(v float64) float64 {
		lg, _ := math.Lgamma(v)
		return lg
	})
}

// Digamma applies the digamma function element-wise.
func (b *Backend) Digamma(x *tensor.Raw) *tensor.Raw {
	return unaryApply(x, Digamma)
}

// MatMul performs 2-D matrix multiplication: [M,K] @ [K,N] -> [M,N].
func (b *Backend) MatMul(a, c *tensor.Raw) *tensor.Raw {
	as, cs := a.Shape(), c.Shape()
	if len(as) != 2 || len(cs) != 2 {
		panic(fmt.Sprintf("MatMul: expected 2-D operands, got %v and %v", as, cs))
	}
	if as[1] != cs[0] {
		panic(fmt.Sprintf("MatMul: inner dimensions mismatch: %v @ %v", as, cs))
	}
	m, k, n := as[0], as[1], cs[1]
	out := tensor.MustRaw(tensor.Shape{m, n})
	ad, cd, od := a.Data(), c.Data(), out.Data()
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := ad[i*k+l]
			if av == 0 {
				continue
			}
			row := cd[l*n : (l+1)*n]
			outRow := od[i*n : (i+1)*n]
			for j, cv := range row {
				outRow[j] += av * cv
			}
		}
	}
	return out
}

// Transpose swaps the two dimensions of a 2-D tensor.
func (b *Backend) Transpose(x *tensor.Raw) *tensor.Raw {
	xs := x.Shape()
	if len(xs) != 2 {
		panic(fmt.Sprintf("Transpose: expected 2-D tensor, got %v", xs))
	}
	m, n := xs[0], xs[1]
	out := tensor.MustRaw(tensor.Shape{n, m})
	xd, od := x.Data(), out.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			od[j*m+i] = xd[i*n+j]
		}
	}
	return out
}

// Reshape copies the data into a tensor with a new shape.
func (b *Backend) Reshape(x *tensor.Raw, shape tensor.Shape) *tensor.Raw {
	if shape.NumElements() != x.NumElements() {
		panic(fmt.Sprintf("Reshape: cannot reshape %v into %v", x.Shape(), shape))
	}
	out := tensor.MustRaw(shape)
	copy(out.Data(), x.Data())
	return out
}

// Sum reduces all elements to a 0-D scalar.
func (b *Backend) Sum(x *tensor.Raw) *tensor.Raw {
	out := tensor.MustRaw(tensor.Shape{})
	total := 0.0
	for _, v := range x.Data() {
		total += v
	}
	out.Data()[0] = total
	return out
}

// SumDim sums along one dimension.
func (b *Backend) SumDim(x *tensor.Raw, dim int, keepDim bool) *tensor.Raw {
	xs := x.Shape()
	outer, size, inner := splitDim(xs, dim)
	out := tensor.MustRaw(reducedShape(xs, dim, keepDim))
	xd, od := x.Data(), out.Data()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			total := 0.0
			base := o*size*inner + i
			for s := 0; s < size; s++ {
				total += xd[base+s*inner]
			}
			od[o*inner+i] = total
		}
	}
	return out
}

// Mean reduces all elements to their mean as a 0-D scalar.
func (b *Backend) Mean(x *tensor.Raw) *tensor.Raw {
	out := b.Sum(x)
	out.Data()[0] /= float64(x.NumElements())
	return out
}

// LogSumExp computes log(sum(exp(x))) along a dimension with the usual
// max-subtraction stabilization. The dimension is removed from the output.
func (b *Backend) LogSumExp(x *tensor.Raw, dim int) *tensor.Raw {
	xs := x.Shape()
	outer, size, inner := splitDim(xs, dim)
	out := tensor.MustRaw(reducedShape(xs, dim, false))
	xd, od := x.Data(), out.Data()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*size*inner + i
			maxv := math.Inf(-1)
			for s := 0; s < size; s++ {
				if v := xd[base+s*inner]; v > maxv {
					maxv = v
				}
			}
			total := 0.0
			for s := 0; s < size; s++ {
				total += math.Exp(xd[base+s*inner] - maxv)
			}
			od[o*inner+i] = maxv + math.Log(total)
		}
	}
	return out
}

// LogSoftmax computes x - logsumexp(x, dim) along a dimension.
func (b *Backend) LogSoftmax(x *tensor.Raw, dim int) *tensor.Raw {
	xs := x.Shape()
	outer, size, inner := splitDim(xs, dim)
	lse := b.LogSumExp(x, dim)
	out := tensor.MustRaw(xs)
	xd, od, ld := x.Data(), out.Data(), lse.Data()
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*size*inner + i
			norm := ld[o*inner+i]
			for s := 0; s < size; s++ {
				od[base+s*inner] = xd[base+s*inner] - norm
			}
		}
	}
	return out
}

// splitDim decomposes a shape around dim into (outer, size, inner) extents.
func splitDim(shape tensor.Shape, dim int) (outer, size, inner int) {
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("dimension %d out of range for shape %v", dim, shape))
	}
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, shape[dim], inner
}

// reducedShape removes (or keeps as 1) the reduced dimension.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	out := make(tensor.Shape, 0, len(shape))
	for i, d := range shape {
		if i == dim {
			if keepDim {
				out = append(out, 1)
			}
			continue
		}
		out = append(out, d)
	}
	return out
}

func sigmoid(v float64) float64 {
	if v >= 0 {
		return 1.0 / (1.0 + math.Exp(-v))
	}
	e := math.Exp(v)
	return e / (1.0 + e)
}

func softplus(v float64) float64 {
	if v > 30 {
		return v
	}
	return math.Log1p(math.Exp(v))
}
