package optim

import (
	"math"
	"testing"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/backend/cpu"
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/tensor"
)

// minimizeQuadratic runs steps of the optimizer on f(x) = (x - 3)^2
// and returns the final x.
func minimizeQuadratic(t *testing.T, makeOpt func(params []*nn.Parameter) Optimizer, steps int) float64 {
	t.Helper()
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	x := nn.NewParameter("x", tensor.Zeros(tensor.Shape{1}, backend))
	opt := makeOpt([]*nn.Parameter{x})

	seed := tensor.MustRaw(tensor.Shape{})
	seed.Data()[0] = 1

	for i := 0; i < steps; i++ {
		tape.Clear()
		tape.StartRecording()
		diff := x.Tensor().AddScalar(-3)
		loss := diff.Mul(diff).Sum()
		grads := tape.Backward(loss.Raw(), seed, backend)
		tape.StopRecording()
		opt.Step(grads)
	}
	return x.Tensor().Data()[0]
}

func TestSGDConverges(t *testing.T) {
	got := minimizeQuadratic(t, func(p []*nn.Parameter) Optimizer {
		return NewSGD(p, SGDConfig{LR: 0.1})
	}, 100)
	if math.Abs(got-3) > 1e-3 {
		t.Errorf("SGD converged to %v, want 3", got)
	}
}

func TestSGDMomentumConverges(t *testing.T) {
	got := minimizeQuadratic(t, func(p []*nn.Parameter) Optimizer {
		return NewSGD(p, SGDConfig{LR: 0.05, Momentum: 0.9})
	}, 200)
	if math.Abs(got-3) > 1e-3 {
		t.Errorf("SGD+momentum converged to %v, want 3", got)
	}
}

func TestAdamConverges(t *testing.T) {
	got := minimizeQuadratic(t, func(p []*nn.Parameter) Optimizer {
		return NewAdam(p, AdamConfig{LR: 0.1})
	}, 500)
	if math.Abs(got-3) > 1e-2 {
		t.Errorf("Adam converged to %v, want 3", got)
	}
}

func TestRMSPropConverges(t *testing.T) {
	got := minimizeQuadratic(t, func(p []*nn.Parameter) Optimizer {
		return NewRMSProp(p, RMSPropConfig{LR: 0.05})
	}, 500)
	if math.Abs(got-3) > 1e-2 {
		t.Errorf("RMSProp converged to %v, want 3", got)
	}
}

func TestLearningRateAccessors(t *testing.T) {
	backend := cpu.New()
	x := nn.NewParameter("x", tensor.Zeros(tensor.Shape{1}, backend))
	opt := NewSGD([]*nn.Parameter{x}, SGDConfig{})

	if got := opt.GetLR(); got != 0.01 {
		t.Errorf("default LR = %v, want 0.01", got)
	}
	opt.SetLR(0.5)
	if got := opt.GetLR(); got != 0.5 {
		t.Errorf("after SetLR, LR = %v", got)
	}
}

func TestMissingGradientIsNoop(t *testing.T) {
	backend := cpu.New()
	x := nn.NewParameter("x", tensor.Ones(tensor.Shape{2}, backend))
	opt := NewAdam([]*nn.Parameter{x}, AdamConfig{})

	opt.Step(map[*tensor.Raw]*tensor.Raw{})
	for _, v := range x.Tensor().Data() {
		if v != 1 {
			t.Errorf("parameter changed without gradient: %v", v)
		}
	}
}
