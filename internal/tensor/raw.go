package tensor

import "fmt"

// Raw is the low-level dense tensor: a contiguous row-major float64 buffer
// with a shape. All backend kernels operate on Raw values.
//
// Edda is float64-only. Log-density accumulation, ELBO estimates, and HMC
// energy differences are all sums of many small terms; float32 rounding is
// enough to flip Metropolis accept decisions on well-conditioned targets.
type Raw struct {
	shape   Shape
	strides []int
	data    []float64
}

// NewRaw creates a zero-initialized raw tensor with the given shape.
func NewRaw(shape Shape) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	s := shape.Clone()
	return &Raw{
		shape:   s,
		strides: ComputeStrides(s),
		data:    make([]float64, s.NumElements()),
	}, nil
}

// MustRaw is NewRaw for shapes already known to be valid.
func MustRaw(shape Shape) *Raw {
	r, err := NewRaw(shape)
	if err != nil {
		panic(err)
	}
	return r
}

// FromData creates a raw tensor that takes ownership of data.
// Panics if the element count does not match the shape.
func FromData(data []float64, shape Shape) *Raw {
	if shape.NumElements() != len(data) {
		panic(fmt.Sprintf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data)))
	}
	s := shape.Clone()
	return &Raw{shape: s, strides: ComputeStrides(s), data: data}
}

// Shape returns the tensor's shape.
func (r *Raw) Shape() Shape { return r.shape }

// Strides returns the row-major strides.
func (r *Raw) Strides() []int { return r.strides }

// NumElements returns the total number of elements.
func (r *Raw) NumElements() int { return len(r.data) }

// Data returns the underlying buffer. Modifications are visible to the
// tensor; this is how optimizers update parameters in place.
func (r *Raw) Data() []float64 { return r.data }

// Clone returns a deep copy.
func (r *Raw) Clone() *Raw {
	data := make([]float64, len(r.data))
	copy(data, r.data)
	return FromData(data, r.shape)
}

// At returns the element at the given indices.
func (r *Raw) At(indices ...int) float64 {
	return r.data[r.offset(indices)]
}

// Set writes the element at the given indices.
func (r *Raw) Set(value float64, indices ...int) {
	r.data[r.offset(indices)] = value
}

func (r *Raw) offset(indices []int) int {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.strides[i]
	}
	return offset
}

// String returns a short description of the raw tensor.
func (r *Raw) String() string {
	return fmt.Sprintf("Raw%v (%d elements)", r.shape, len(r.data))
}
