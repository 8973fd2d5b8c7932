package nn

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W^T + b
// where:
//   - x is the input tensor with shape [batch, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//
// Weights use Xavier/Glorot initialization; biases start at zero.
//
// Example:
//
//	backend := autodiff.New(cpu.New())
//	layer := nn.NewLinear(2, 64, backend)
//	output := layer.Forward(input) // [batch, 64]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [out_features]
	backend     tensor.Backend
}

// NewLinear creates a new Linear layer.
func NewLinear(inFeatures, outFeatures int, backend tensor.Backend) *Linear {
	weight := NewParameter("weight",
		Xavier(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, backend))
	bias := NewParameter("bias", tensor.Zeros(tensor.Shape{outFeatures}, backend))
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
		backend:     backend,
	}
}

// Forward computes y = x @ W^T + b.
//
// Input shape: [batch, in_features]. Output shape: [batch, out_features].
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	inputShape := input.Shape()
	if len(inputShape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2-D input [batch, features], got shape %v", inputShape))
	}
	if inputShape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, inputShape[1]))
	}

	// [batch, in] @ [in, out] = [batch, out]
	output := input.MatMul(l.weight.Tensor().Transpose())

	// Bias broadcasts from [1, out] across the batch.
	return output.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns the trainable parameters of this layer.
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter { return l.weight }

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter { return l.bias }

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int { return l.inFeatures }

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int { return l.outFeatures }
