package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Float64 is a dense row-major float64 container.
type Float64 struct {
	shape []int
	data  []float64
}

// NewFloat64 builds a container from data interpreted with the given
// shape. The data slice is copied.
func NewFloat64(shape []int, data []float64) (*Float64, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if len(data) != shapeSize(shape) {
		return nil, fmt.Errorf("%w: %d elements for shape %v (want %d)",
			ErrShapeMismatch, len(data), shape, shapeSize(shape))
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Float64{shape: cloneShape(shape), data: d}, nil
}

// ZerosFloat64 builds a zero-filled container of the given shape.
func ZerosFloat64(shape ...int) *Float64 {
	return &Float64{shape: cloneShape(shape), data: make([]float64, shapeSize(shape))}
}

// FullFloat64 builds a container of the given shape with every element
// set to fill.
func FullFloat64(fill float64, shape ...int) *Float64 {
	a := ZerosFloat64(shape...)
	for i := range a.data {
		a.data[i] = fill
	}
	return a
}

// Shape returns a copy of the dimension lengths.
func (a *Float64) Shape() []int { return cloneShape(a.shape) }

// Dims returns the number of dimensions.
func (a *Float64) Dims() int { return len(a.shape) }

// Len returns the total element count.
func (a *Float64) Len() int { return len(a.data) }

// At returns the element at the given multi-dimensional index.
func (a *Float64) At(idx ...int) (float64, error) {
	off, err := offset(a.shape, idx)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// MustAt is At for known-good indices; it panics on bounds errors and is
// intended for tests and tight loops over already-validated shapes.
func (a *Float64) MustAt(idx ...int) float64 {
	v, err := a.At(idx...)
	if err != nil {
		panic(err)
	}
	return v
}

// Data returns a copy of the backing slice in row-major order.
func (a *Float64) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)
	return out
}

// Clone returns an independent copy.
func (a *Float64) Clone() *Float64 {
	return &Float64{shape: cloneShape(a.shape), data: a.Data()}
}

// Equal reports element-wise equality with identical shapes.
func (a *Float64) Equal(b *Float64) bool {
	return shapeEqual(a.shape, b.shape) && floats.Equal(a.data, b.data)
}

// Map returns a new container with fn applied to every element.
func (a *Float64) Map(fn func(float64) float64) *Float64 {
	out := a.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}
	return out
}

// Slice returns a new container restricted to [start, start+size) along
// dimension dim.
func (a *Float64) Slice(dim, start, size int) (*Float64, error) {
	outer, inner, err := sliceBounds(a.shape, dim, start, size)
	if err != nil {
		return nil, err
	}
	shape := cloneShape(a.shape)
	shape[dim] = size
	out := &Float64{shape: shape, data: make([]float64, outer*size*inner)}
	dimLen := a.shape[dim]
	for o := 0; o < outer; o++ {
		src := a.data[(o*dimLen+start)*inner : (o*dimLen+start+size)*inner]
		copy(out.data[o*size*inner:], src)
	}
	return out, nil
}

// SliceDim implements Array.
func (a *Float64) SliceDim(dim, start, size int) (Array, error) {
	return a.Slice(dim, start, size)
}

// StackFloat64 stacks same-shape containers along a new trailing
// dimension, so n inputs of shape S yield shape S+[n].
func StackFloat64(parts ...*Float64) (*Float64, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: stack of zero arrays", ErrShapeMismatch)
	}
	base := parts[0].shape
	for i, p := range parts[1:] {
		if !shapeEqual(base, p.shape) {
			return nil, fmt.Errorf("%w: stack input %d has shape %v, want %v",
				ErrShapeMismatch, i+1, p.shape, base)
		}
	}
	n := len(parts)
	shape := append(cloneShape(base), n)
	out := &Float64{shape: shape, data: make([]float64, shapeSize(base)*n)}
	for i := 0; i < shapeSize(base); i++ {
		for p := 0; p < n; p++ {
			out.data[i*n+p] = parts[p].data[i]
		}
	}
	return out, nil
}
