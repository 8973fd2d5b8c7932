// Package infer implements inference algorithms over traced models.
//
// Variational algorithms (KLqp, MAP) optimize variational parameters with
// gradients from the autodiff tape; sampling algorithms (HMC, SGLD,
// MetropolisHastings) walk the latent space and return a Chain; GAN runs
// adversarial training of a generator network against a discriminator.
//
// All algorithms take a context for cancellation, log progress through
// zap (Nop by default), and tag each run with a UUID so interleaved runs
// stay distinguishable in logs.
package infer

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/rv"
	"github.com/edda-ml/edda/internal/tensor"
)

// Result holds the outcome of an optimization-based inference run.
type Result struct {
	RunID  string
	Losses []float64
}

// FinalLoss returns the last recorded loss.
func (r *Result) FinalLoss() float64 {
	if len(r.Losses) == 0 {
		return 0
	}
	return r.Losses[len(r.Losses)-1]
}

// newRunID returns a fresh run identifier.
func newRunID() string { return uuid.NewString() }

// orNop substitutes a no-op logger for nil.
func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// seedOnes returns the scalar gradient seed for a backward pass.
func seedOnes() *tensor.Raw {
	seed := tensor.MustRaw(tensor.Shape{})
	seed.Data()[0] = 1
	return seed
}

// latentSampler is the shared machinery of the MCMC-style algorithms:
// it discovers the model's latent sites, evaluates the log-joint at a
// flat position, and differentiates it through the tape.
type latentSampler struct {
	model   rv.Model
	backend *autodiff.Backend
	names   []string
	shapes  map[string]tensor.Shape
}

func newLatentSampler(model rv.Model, backend *autodiff.Backend) *latentSampler {
	// Discover latents with a throwaway prior run, tape off.
	wasRecording := backend.Tape().IsRecording()
	backend.Tape().StopRecording()
	tr := rv.Run(model, backend)
	if wasRecording {
		backend.Tape().StartRecording()
	}

	s := &latentSampler{
		model:   model,
		backend: backend,
		names:   tr.LatentNames(),
		shapes:  make(map[string]tensor.Shape),
	}
	for _, name := range s.names {
		s.shapes[name] = tr.Value(name).Shape().Clone()
	}
	return s
}

// initPositions draws a starting point from the prior.
func (s *latentSampler) initPositions() map[string][]float64 {
	wasRecording := s.backend.Tape().IsRecording()
	s.backend.Tape().StopRecording()
	tr := rv.Run(s.model, s.backend)
	if wasRecording {
		s.backend.Tape().StartRecording()
	}

	pos := make(map[string][]float64)
	for _, name := range s.names {
		pos[name] = append([]float64(nil), tr.Value(name).Data()...)
	}
	return pos
}

// bind materializes a flat position as trace substitution values. The
// returned raw map keys gradient lookups after a backward pass.
func (s *latentSampler) bind(pos map[string][]float64) (map[string]*tensor.Tensor, map[string]*tensor.Raw) {
	values := make(map[string]*tensor.Tensor, len(s.names))
	raws := make(map[string]*tensor.Raw, len(s.names))
	for _, name := range s.names {
		data := append([]float64(nil), pos[name]...)
		t := tensor.New(tensor.FromData(data, s.shapes[name]), s.backend)
		values[name] = t
		raws[name] = t.Raw()
	}
	return values, raws
}

// logJoint evaluates the log-joint at a position, without gradients.
func (s *latentSampler) logJoint(pos map[string][]float64) float64 {
	wasRecording := s.backend.Tape().IsRecording()
	s.backend.Tape().StopRecording()
	values, _ := s.bind(pos)
	tr := rv.Run(s.model, s.backend, rv.WithValues(values))
	if wasRecording {
		s.backend.Tape().StartRecording()
	}
	return tr.LogJoint().Item()
}

// logJointAndGrad evaluates the log-joint and its gradient with respect
// to every latent at the given position.
func (s *latentSampler) logJointAndGrad(pos map[string][]float64) (float64, map[string][]float64) {
	tape := s.backend.Tape()
	tape.Clear()
	tape.StartRecording()
	defer func() {
		tape.StopRecording()
		tape.Clear()
	}()

	values, raws := s.bind(pos)
	tr := rv.Run(s.model, s.backend, rv.WithValues(values))
	lj := tr.LogJoint()
	grads := tape.Backward(lj.Raw(), seedOnes(), s.backend)

	out := make(map[string][]float64, len(s.names))
	for _, name := range s.names {
		if g, ok := grads[raws[name]]; ok {
			out[name] = g.Data()
		} else {
			out[name] = make([]float64, len(pos[name]))
		}
	}
	return lj.Item(), out
}

// snapshot copies a position into per-site tensors for chain storage.
func (s *latentSampler) snapshot(pos map[string][]float64) map[string]*tensor.Tensor {
	out := make(map[string]*tensor.Tensor, len(s.names))
	for _, name := range s.names {
		data := append([]float64(nil), pos[name]...)
		out[name] = tensor.New(tensor.FromData(data, s.shapes[name]), s.backend)
	}
	return out
}

// clonePositions deep-copies a flat position.
func clonePositions(pos map[string][]float64) map[string][]float64 {
	out := make(map[string][]float64, len(pos))
	for name, v := range pos {
		out[name] = append([]float64(nil), v...)
	}
	return out
}
