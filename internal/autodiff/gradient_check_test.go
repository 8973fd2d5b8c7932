package autodiff_test

import (
	"math"
	"testing"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/backend/cpu"
	"github.com/edda-ml/edda/internal/tensor"
)

// checkGradient compares the tape gradient of a scalar-valued tensor
// function against central finite differences at every input element.
func checkGradient(t *testing.T, name string, f func(x *tensor.Tensor) *tensor.Tensor, point []float64, shape tensor.Shape) {
	t.Helper()
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	tape.Clear()
	tape.StartRecording()
	x := tensor.New(tensor.FromData(append([]float64(nil), point...), shape), backend)
	y := f(x)
	if y.NumElements() != 1 {
		t.Fatalf("%s: output must be scalar, got shape %v", name, y.Shape())
	}
	seed := tensor.FromData([]float64{1}, tensor.Shape{})
	grads := tape.Backward(y.Raw(), seed, backend)
	tape.StopRecording()

	grad := grads[x.Raw()]
	if grad == nil {
		t.Fatalf("%s: no gradient for input", name)
	}

	const eps = 1e-6
	plain := cpu.New()
	for i := range point {
		bumped := append([]float64(nil), point...)
		bumped[i] += eps
		up := f(tensor.New(tensor.FromData(bumped, shape), plain)).Item()
		bumped[i] -= 2 * eps
		down := f(tensor.New(tensor.FromData(bumped, shape), plain)).Item()
		numerical := (up - down) / (2 * eps)

		if math.Abs(grad.Data()[i]-numerical) > 1e-4*(1+math.Abs(numerical)) {
			t.Errorf("%s: grad[%d] = %v, numerical %v", name, i, grad.Data()[i], numerical)
		}
	}
}

func TestGradientElementwise(t *testing.T) {
	point := []float64{0.5, -1.2, 2.0}
	shape := tensor.Shape{3}

	checkGradient(t, "square", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Mul(x).Sum()
	}, point, shape)

	checkGradient(t, "exp", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Exp().Sum()
	}, point, shape)

	checkGradient(t, "sigmoid", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Sigmoid().Sum()
	}, point, shape)

	checkGradient(t, "tanh", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Tanh().Sum()
	}, point, shape)

	checkGradient(t, "softplus", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Softplus().Sum()
	}, point, shape)

	checkGradient(t, "scale-add", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Scale(3).AddScalar(1).Mul(x).Sum()
	}, point, shape)
}

func TestGradientPositiveDomain(t *testing.T) {
	point := []float64{0.5, 1.5, 3.0}
	shape := tensor.Shape{3}

	checkGradient(t, "log", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Log().Sum()
	}, point, shape)

	checkGradient(t, "sqrt", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Sqrt().Sum()
	}, point, shape)

	checkGradient(t, "lgamma", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Lgamma().Sum()
	}, point, shape)

	checkGradient(t, "pow", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Pow(2.5).Sum()
	}, point, shape)

	checkGradient(t, "div", func(x *tensor.Tensor) *tensor.Tensor {
		num := tensor.Ones(tensor.Shape{3}, x.Backend())
		return num.Div(x).Sum()
	}, point, shape)
}

func TestGradientMatMul(t *testing.T) {
	point := []float64{1, 2, 3, 4, 5, 6}
	shape := tensor.Shape{2, 3}

	checkGradient(t, "matmul", func(x *tensor.Tensor) *tensor.Tensor {
		w := tensor.New(tensor.FromData([]float64{0.5, -1, 2, 0.1, 0.2, -0.3}, tensor.Shape{3, 2}), x.Backend())
		return x.MatMul(w).Sum()
	}, point, shape)

	checkGradient(t, "matmul-transpose", func(x *tensor.Tensor) *tensor.Tensor {
		return x.MatMul(x.Transpose()).Sum()
	}, point, shape)
}

func TestGradientReductions(t *testing.T) {
	point := []float64{1, 2, 3, 4, 5, 6}
	shape := tensor.Shape{2, 3}

	checkGradient(t, "mean", func(x *tensor.Tensor) *tensor.Tensor {
		return x.Mul(x).Mean()
	}, point, shape)

	checkGradient(t, "sumdim", func(x *tensor.Tensor) *tensor.Tensor {
		return x.SumDim(1, false).Mul(x.SumDim(1, false)).Sum()
	}, point, shape)

	checkGradient(t, "logsumexp", func(x *tensor.Tensor) *tensor.Tensor {
		return x.LogSumExp(1).Sum()
	}, point, shape)

	checkGradient(t, "logsoftmax", func(x *tensor.Tensor) *tensor.Tensor {
		w := tensor.New(tensor.FromData([]float64{1, 0, 0, 0, 1, 0}, tensor.Shape{2, 3}), x.Backend())
		return x.LogSoftmax(1).Mul(w).Sum()
	}, point, shape)
}

func TestGradientBroadcast(t *testing.T) {
	// Gradient of a broadcast operand must be summed back to its shape.
	point := []float64{0.3, -0.7}
	shape := tensor.Shape{2}

	checkGradient(t, "broadcast-add", func(x *tensor.Tensor) *tensor.Tensor {
		m := tensor.New(tensor.FromData([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}), x.Backend())
		return m.Add(x).Mul(m.Add(x)).Sum()
	}, point, shape)

	checkGradient(t, "broadcast-mul", func(x *tensor.Tensor) *tensor.Tensor {
		m := tensor.New(tensor.FromData([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}), x.Backend())
		return m.Mul(x).Sum()
	}, point, shape)
}
