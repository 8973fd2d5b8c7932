package nn

import (
	"math"

	"github.com/edda-ml/edda/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Draws from U(-bound, bound) with bound = sqrt(6 / (fan_in + fan_out)),
// which keeps activation variance stable across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	t := tensor.Zeros(shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = (tensor.RandUniform()*2.0 - 1.0) * bound
	}
	return t
}
