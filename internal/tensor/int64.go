package tensor

import "fmt"

// Int64 is a dense row-major int64 container, used for categorical codes
// and identifiers.
type Int64 struct {
	shape []int
	data  []int64
}

// NewInt64 builds a container from data interpreted with the given shape.
// The data slice is copied.
func NewInt64(shape []int, data []int64) (*Int64, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if len(data) != shapeSize(shape) {
		return nil, fmt.Errorf("%w: %d elements for shape %v (want %d)",
			ErrShapeMismatch, len(data), shape, shapeSize(shape))
	}
	d := make([]int64, len(data))
	copy(d, data)
	return &Int64{shape: cloneShape(shape), data: d}, nil
}

// ZerosInt64 builds a zero-filled container of the given shape.
func ZerosInt64(shape ...int) *Int64 {
	return &Int64{shape: cloneShape(shape), data: make([]int64, shapeSize(shape))}
}

// FullInt64 builds a container of the given shape with every element set
// to fill.
func FullInt64(fill int64, shape ...int) *Int64 {
	a := ZerosInt64(shape...)
	for i := range a.data {
		a.data[i] = fill
	}
	return a
}

// Shape returns a copy of the dimension lengths.
func (a *Int64) Shape() []int { return cloneShape(a.shape) }

// Dims returns the number of dimensions.
func (a *Int64) Dims() int { return len(a.shape) }

// Len returns the total element count.
func (a *Int64) Len() int { return len(a.data) }

// At returns the element at the given multi-dimensional index.
func (a *Int64) At(idx ...int) (int64, error) {
	off, err := offset(a.shape, idx)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// MustAt is At for known-good indices; it panics on bounds errors.
func (a *Int64) MustAt(idx ...int) int64 {
	v, err := a.At(idx...)
	if err != nil {
		panic(err)
	}
	return v
}

// Data returns a copy of the backing slice in row-major order.
func (a *Int64) Data() []int64 {
	out := make([]int64, len(a.data))
	copy(out, a.data)
	return out
}

// Clone returns an independent copy.
func (a *Int64) Clone() *Int64 {
	return &Int64{shape: cloneShape(a.shape), data: a.Data()}
}

// Equal reports element-wise equality with identical shapes.
func (a *Int64) Equal(b *Int64) bool {
	if !shapeEqual(a.shape, b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Slice returns a new container restricted to [start, start+size) along
// dimension dim.
func (a *Int64) Slice(dim, start, size int) (*Int64, error) {
	outer, inner, err := sliceBounds(a.shape, dim, start, size)
	if err != nil {
		return nil, err
	}
	shape := cloneShape(a.shape)
	shape[dim] = size
	out := &Int64{shape: shape, data: make([]int64, outer*size*inner)}
	dimLen := a.shape[dim]
	for o := 0; o < outer; o++ {
		src := a.data[(o*dimLen+start)*inner : (o*dimLen+start+size)*inner]
		copy(out.data[o*size*inner:], src)
	}
	return out, nil
}

// SliceDim implements Array.
func (a *Int64) SliceDim(dim, start, size int) (Array, error) {
	return a.Slice(dim, start, size)
}
