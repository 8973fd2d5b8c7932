package cpu

import (
	"math"
	"testing"

	"github.com/edda-ml/edda/internal/tensor"
)

func assertClose(t *testing.T, expected, actual, tol float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > tol {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func raw(data []float64, shape tensor.Shape) *tensor.Raw {
	return tensor.FromData(data, shape)
}

func TestElementwise(t *testing.T) {
	b := New()
	a := raw([]float64{1, 2, 3}, tensor.Shape{3})
	c := raw([]float64{4, 5, 6}, tensor.Shape{3})

	sum := b.Add(a, c)
	for i, want := range []float64{5, 7, 9} {
		assertClose(t, want, sum.Data()[i], 1e-12, "Add")
	}

	prod := b.Mul(a, c)
	for i, want := range []float64{4, 10, 18} {
		assertClose(t, want, prod.Data()[i], 1e-12, "Mul")
	}

	quot := b.Div(c, a)
	for i, want := range []float64{4, 2.5, 2} {
		assertClose(t, want, quot.Data()[i], 1e-12, "Div")
	}
}

func TestBroadcastAdd(t *testing.T) {
	b := New()
	m := raw([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := raw([]float64{10, 20, 30}, tensor.Shape{3})

	out := b.Add(m, row)
	want := []float64{11, 22, 33, 14, 25, 36}
	for i := range want {
		assertClose(t, want[i], out.Data()[i], 1e-12, "broadcast Add")
	}
}

func TestBroadcastColumn(t *testing.T) {
	b := New()
	m := raw([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	col := raw([]float64{10, 20}, tensor.Shape{2, 1})

	out := b.Add(m, col)
	want := []float64{11, 12, 23, 24}
	for i := range want {
		assertClose(t, want[i], out.Data()[i], 1e-12, "column broadcast")
	}
}

func TestMatMul(t *testing.T) {
	b := New()
	a := raw([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	c := raw([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	out := b.MatMul(a, c)
	want := []float64{58, 64, 139, 154}
	for i := range want {
		assertClose(t, want[i], out.Data()[i], 1e-12, "MatMul")
	}
}

func TestTranspose(t *testing.T) {
	b := New()
	a := raw([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	out := b.Transpose(a)
	if !out.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Transpose shape = %v", out.Shape())
	}
	assertClose(t, 2, out.At(1, 0), 1e-12, "Transpose element")
}

func TestReductions(t *testing.T) {
	b := New()
	a := raw([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	assertClose(t, 21, b.Sum(a).Data()[0], 1e-12, "Sum")
	assertClose(t, 3.5, b.Mean(a).Data()[0], 1e-12, "Mean")

	rows := b.SumDim(a, 1, false)
	if !rows.Shape().Equal(tensor.Shape{2}) {
		t.Fatalf("SumDim shape = %v", rows.Shape())
	}
	assertClose(t, 6, rows.Data()[0], 1e-12, "SumDim row 0")
	assertClose(t, 15, rows.Data()[1], 1e-12, "SumDim row 1")

	kept := b.SumDim(a, 0, true)
	if !kept.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("SumDim keepDim shape = %v", kept.Shape())
	}
}

func TestLogSumExp(t *testing.T) {
	b := New()
	a := raw([]float64{1, 2, 3}, tensor.Shape{1, 3})
	out := b.LogSumExp(a, 1)

	want := math.Log(math.Exp(1) + math.Exp(2) + math.Exp(3))
	assertClose(t, want, out.Data()[0], 1e-10, "LogSumExp")

	// Large values must not overflow.
	big := raw([]float64{1000, 1001}, tensor.Shape{1, 2})
	out = b.LogSumExp(big, 1)
	assertClose(t, 1001+math.Log(1+math.Exp(-1)), out.Data()[0], 1e-9, "LogSumExp stability")
}

func TestLogSoftmax(t *testing.T) {
	b := New()
	a := raw([]float64{1, 2, 3}, tensor.Shape{1, 3})
	out := b.LogSoftmax(a, 1)

	total := 0.0
	for _, v := range out.Data() {
		total += math.Exp(v)
	}
	assertClose(t, 1, total, 1e-10, "LogSoftmax normalization")
}

func TestStableActivations(t *testing.T) {
	b := New()
	x := raw([]float64{-800, 0, 800}, tensor.Shape{3})

	sig := b.Sigmoid(x).Data()
	assertClose(t, 0, sig[0], 1e-12, "sigmoid underflow")
	assertClose(t, 0.5, sig[1], 1e-12, "sigmoid midpoint")
	assertClose(t, 1, sig[2], 1e-12, "sigmoid overflow")

	sp := b.Softplus(x).Data()
	assertClose(t, 0, sp[0], 1e-12, "softplus underflow")
	assertClose(t, math.Log(2), sp[1], 1e-12, "softplus midpoint")
	assertClose(t, 800, sp[2], 1e-9, "softplus linear regime")
}

func TestLgamma(t *testing.T) {
	b := New()
	x := raw([]float64{1, 2, 5, 0.5}, tensor.Shape{4})
	out := b.Lgamma(x).Data()

	assertClose(t, 0, out[0], 1e-12, "lgamma(1)")
	assertClose(t, 0, out[1], 1e-12, "lgamma(2)")
	assertClose(t, math.Log(24), out[2], 1e-10, "lgamma(5)")
	assertClose(t, 0.5*math.Log(math.Pi), out[3], 1e-10, "lgamma(0.5)")
}

func TestDigamma(t *testing.T) {
	// digamma(1) = -EulerGamma; digamma(x+1) = digamma(x) + 1/x.
	const eulerGamma = 0.5772156649015329
	assertClose(t, -eulerGamma, Digamma(1), 1e-8, "digamma(1)")
	assertClose(t, 1-eulerGamma, Digamma(2), 1e-8, "digamma(2)")
	assertClose(t, Digamma(3.5)+1/3.5, Digamma(4.5), 1e-8, "digamma recurrence")
}

func TestTrigamma(t *testing.T) {
	// trigamma(1) = pi^2/6.
	assertClose(t, math.Pi*math.Pi/6, Trigamma(1), 1e-8, "trigamma(1)")
	assertClose(t, Trigamma(2.5)-1/(2.5*2.5), Trigamma(3.5), 1e-8, "trigamma recurrence")
}
