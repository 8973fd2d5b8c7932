package ops

import (
	"fmt"

	"github.com/edda-ml/edda/internal/tensor"
)

// unbroadcast reduces a gradient computed at the broadcast output shape
// back down to the shape of one input: extra leading dimensions are summed
// away, and dimensions the input held as 1 are summed with keepDim.
func unbroadcast(grad *tensor.Raw, target tensor.Shape, backend tensor.Backend) *tensor.Raw {
	g := grad
	if g.Shape().Equal(target) {
		return g
	}
	for len(g.Shape()) > len(target) {
		g = backend.SumDim(g, 0, false)
	}
	for i, dim := range target {
		if dim == 1 && g.Shape()[i] != 1 {
			g = backend.SumDim(g, i, true)
		}
	}
	if !g.Shape().Equal(target) {
		panic(fmt.Sprintf("unbroadcast: cannot reduce %v to %v", grad.Shape(), target))
	}
	return g
}

// fullLike returns a tensor of the given shape filled with value.
func fullLike(shape tensor.Shape, value float64) *tensor.Raw {
	out := tensor.MustRaw(shape)
	data := out.Data()
	for i := range data {
		data[i] = value
	}
	return out
}

// splitDim decomposes a shape around dim into (outer, size, inner) extents.
func splitDim(shape tensor.Shape, dim int) (outer, size, inner int) {
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, shape[dim], inner
}
