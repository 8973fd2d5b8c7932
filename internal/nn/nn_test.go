package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edda-ml/edda/internal/backend/cpu"
	"github.com/edda-ml/edda/internal/tensor"
)

func TestLinearShapes(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(4, 3, backend)

	x := tensor.Randn(tensor.Shape{5, 4}, backend)
	y := layer.Forward(x)
	assert.True(t, y.Shape().Equal(tensor.Shape{5, 3}), "output shape %v", y.Shape())

	params := layer.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, 12, params[0].NumElements())
	assert.Equal(t, 3, params[1].NumElements())
}

func TestLinearZeroBias(t *testing.T) {
	backend := cpu.New()
	layer := NewLinear(3, 2, backend)
	for _, v := range layer.Parameters()[1].Tensor().Data() {
		assert.Zero(t, v)
	}
}

func TestXavierBounds(t *testing.T) {
	backend := cpu.New()
	tensor.SeedRNG(7)
	layer := NewLinear(100, 50, backend)

	bound := math.Sqrt(6.0 / (100 + 50))
	for _, v := range layer.Parameters()[0].Tensor().Data() {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
}

func TestSequentialForward(t *testing.T) {
	backend := cpu.New()
	net := NewSequential(
		NewLinear(4, 8, backend),
		NewReLU(),
		NewLinear(8, 2, backend),
	)

	x := tensor.Randn(tensor.Shape{3, 4}, backend)
	y := net.Forward(x)
	assert.True(t, y.Shape().Equal(tensor.Shape{3, 2}))
	assert.Len(t, net.Parameters(), 4)
}

func TestActivations(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{3}, backend)
	require.NoError(t, err)

	relu := NewReLU().Forward(x).Data()
	assert.InDelta(t, 0, relu[0], 1e-12)
	assert.InDelta(t, 2, relu[2], 1e-12)

	sig := NewSigmoid().Forward(x).Data()
	assert.InDelta(t, 0.5, sig[1], 1e-12)

	tanh := NewTanh().Forward(x).Data()
	assert.InDelta(t, math.Tanh(2), tanh[2], 1e-12)

	sp := NewSoftplus().Forward(x).Data()
	assert.InDelta(t, math.Log(2), sp[1], 1e-12)
}
