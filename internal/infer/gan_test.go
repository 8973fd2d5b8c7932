package infer

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/backend/cpu"
	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/tensor"
)

func newTestGAN(t *testing.T, steps int) *GAN {
	t.Helper()
	backend := autodiff.New(cpu.New())

	data := tensor.Randn(tensor.Shape{200, 2}, backend)
	generator := nn.NewSequential(
		nn.NewLinear(4, 16, backend),
		nn.NewReLU(),
		nn.NewLinear(16, 2, backend),
	)
	discriminator := nn.NewSequential(
		nn.NewLinear(2, 16, backend),
		nn.NewReLU(),
		nn.NewLinear(16, 1, backend),
	)
	noise := dist.NewNormal(
		tensor.Zeros(tensor.Shape{16, 4}, backend),
		tensor.Ones(tensor.Shape{16, 4}, backend),
	)
	return NewGAN(generator, discriminator, data, noise, backend, GANConfig{
		Steps:     steps,
		BatchSize: 16,
	})
}

func TestGANStepFiniteLosses(t *testing.T) {
	tensor.SeedRNG(42)
	g := newTestGAN(t, 10)

	for i := 0; i < 5; i++ {
		dLoss, gLoss := g.Step()
		assert.False(t, math.IsNaN(dLoss) || math.IsInf(dLoss, 0), "d loss %v", dLoss)
		assert.False(t, math.IsNaN(gLoss) || math.IsInf(gLoss, 0), "g loss %v", gLoss)
	}
}

func TestGANRunCollectsLosses(t *testing.T) {
	tensor.SeedRNG(42)
	g := newTestGAN(t, 20)

	result, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.DLosses, 20)
	assert.Len(t, result.GLosses, 20)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, g.RunID(), result.RunID)
}

func TestGANContextCancellation(t *testing.T) {
	g := newTestGAN(t, 100000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGANRejectsBadData(t *testing.T) {
	backend := autodiff.New(cpu.New())
	data := tensor.Randn(tensor.Shape{10}, backend)
	assert.Panics(t, func() {
		NewGAN(nil, nil, data, nil, backend, GANConfig{})
	})
}
