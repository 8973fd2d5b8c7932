package autodiff

import (
	"github.com/edda-ml/edda/internal/autodiff/ops"
	"github.com/edda-ml/edda/internal/tensor"
)

// Tape records operations during the forward pass and computes gradients
// during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewTape()
//	tape.StartRecording()
//	// ... build the loss ...
//	grads := tape.Backward(loss.Raw(), seed, backend)
type Tape struct {
	operations []ops.Operation // recorded operations, in execution order
	recording  bool
}

// NewTape creates a new gradient tape.
func NewTape() *Tape {
	return &Tape{
		operations: make([]ops.Operation, 0, 64),
	}
}

// StartRecording enables operation recording.
func (t *Tape) StartRecording() { t.recording = true }

// StopRecording disables operation recording.
func (t *Tape) StopRecording() { t.recording = false }

// IsRecording reports whether the tape is currently recording.
func (t *Tape) IsRecording() bool { return t.recording }

// Record appends an operation if the tape is recording.
func (t *Tape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Len returns the number of recorded operations.
func (t *Tape) Len() int { return len(t.operations) }

// Clear drops all recorded operations. Recording state is preserved.
func (t *Tape) Clear() {
	t.operations = t.operations[:0]
}

// Backward computes gradients with respect to every tensor reachable from
// root by walking the tape in reverse.
//
// seed is the gradient of the loss with respect to root, typically a
// scalar one. Gradients are accumulated when the same tensor feeds several
// operations. Returns a map from input Raw identity to its gradient.
func (t *Tape) Backward(root, seed *tensor.Raw, backend tensor.Backend) map[*tensor.Raw]*tensor.Raw {
	grads := make(map[*tensor.Raw]*tensor.Raw)
	if len(t.operations) == 0 {
		return grads
	}

	// Gradient ops must not grow the tape while it is being walked.
	wasRecording := t.recording
	t.recording = false
	defer func() { t.recording = wasRecording }()

	// Align the seed with the root's shape so unbroadcasting in the op
	// backward passes sees consistent ranks.
	if !seed.Shape().Equal(root.Shape()) && seed.NumElements() == root.NumElements() {
		aligned := tensor.MustRaw(root.Shape())
		copy(aligned.Data(), seed.Data())
		seed = aligned
	}
	grads[root] = seed

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outGrad, ok := grads[op.Output()]
		if !ok {
			continue // no gradient flows through this operation
		}
		inputGrads := op.Backward(outGrad, backend)
		inputs := op.Inputs()
		for j, in := range inputs {
			g := inputGrads[j]
			if g == nil {
				continue
			}
			if existing, ok := grads[in]; ok {
				grads[in] = backend.Add(existing, g)
			} else {
				grads[in] = g
			}
		}
	}
	return grads
}
