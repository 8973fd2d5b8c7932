package tensor

import "fmt"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
func Zeros(shape Shape, b Backend) *Tensor {
	raw, err := NewRaw(shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return New(raw, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return Full(shape, 1.0, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, 3.14, backend)
func Full(shape Shape, value float64, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Scalar creates a 0-D tensor holding a single value.
func Scalar(value float64, b Backend) *Tensor {
	return Full(Shape{}, value, b)
}

// Randn creates a tensor with draws from the standard normal distribution.
// Uses the package RNG; call SeedRNG for reproducible runs.
//
// Example:
//
//	eps := tensor.Randn(Shape{32, 2}, backend)
func Randn(shape Shape, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = RandNormal()
	}
	return t
}

// Rand creates a tensor with draws from the uniform distribution U(0, 1).
func Rand(shape Shape, b Backend) *Tensor {
	t := Zeros(shape, b)
	data := t.Data()
	for i := range data {
		data[i] = RandUniform()
	}
	return t
}

// Arange creates a 1-D tensor with values start, start+1, ..., end-1.
func Arange(start, end float64, b Backend) *Tensor {
	if end <= start {
		panic(fmt.Sprintf("Arange: end %v must be greater than start %v", end, start))
	}
	n := int(end - start)
	t := Zeros(Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = start + float64(i)
	}
	return t
}

// Eye creates an n-by-n identity matrix.
func Eye(n int, b Backend) *Tensor {
	t := Zeros(Shape{n, n}, b)
	for i := 0; i < n; i++ {
		t.Set(1.0, i, i)
	}
	return t
}

// OneHot creates a [len(indices), depth] tensor with a single 1 per row.
// Used for Categorical values.
func OneHot(indices []int, depth int, b Backend) *Tensor {
	t := Zeros(Shape{len(indices), depth}, b)
	for i, idx := range indices {
		if idx < 0 || idx >= depth {
			panic(fmt.Sprintf("OneHot: index %d out of range for depth %d", idx, depth))
		}
		t.Set(1.0, i, idx)
	}
	return t
}
