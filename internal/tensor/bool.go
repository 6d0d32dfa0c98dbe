package tensor

import "fmt"

// Bool is a dense row-major boolean container, used for validity masks.
type Bool struct {
	shape []int
	data  []bool
}

// NewBool builds a container from data interpreted with the given shape.
// The data slice is copied.
func NewBool(shape []int, data []bool) (*Bool, error) {
	if err := validateShape(shape); err != nil {
		return nil, err
	}
	if len(data) != shapeSize(shape) {
		return nil, fmt.Errorf("%w: %d elements for shape %v (want %d)",
			ErrShapeMismatch, len(data), shape, shapeSize(shape))
	}
	d := make([]bool, len(data))
	copy(d, data)
	return &Bool{shape: cloneShape(shape), data: d}, nil
}

// ZerosBool builds an all-false container of the given shape.
func ZerosBool(shape ...int) *Bool {
	return &Bool{shape: cloneShape(shape), data: make([]bool, shapeSize(shape))}
}

// FullBool builds a container of the given shape with every element set
// to fill.
func FullBool(fill bool, shape ...int) *Bool {
	a := ZerosBool(shape...)
	for i := range a.data {
		a.data[i] = fill
	}
	return a
}

// Shape returns a copy of the dimension lengths.
func (a *Bool) Shape() []int { return cloneShape(a.shape) }

// Dims returns the number of dimensions.
func (a *Bool) Dims() int { return len(a.shape) }

// Len returns the total element count.
func (a *Bool) Len() int { return len(a.data) }

// At returns the element at the given multi-dimensional index.
func (a *Bool) At(idx ...int) (bool, error) {
	off, err := offset(a.shape, idx)
	if err != nil {
		return false, err
	}
	return a.data[off], nil
}

// MustAt is At for known-good indices; it panics on bounds errors.
func (a *Bool) MustAt(idx ...int) bool {
	v, err := a.At(idx...)
	if err != nil {
		panic(err)
	}
	return v
}

// Data returns a copy of the backing slice in row-major order.
func (a *Bool) Data() []bool {
	out := make([]bool, len(a.data))
	copy(out, a.data)
	return out
}

// Clone returns an independent copy.
func (a *Bool) Clone() *Bool {
	return &Bool{shape: cloneShape(a.shape), data: a.Data()}
}

// Equal reports element-wise equality with identical shapes.
func (a *Bool) Equal(b *Bool) bool {
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

// CountTrue returns the number of true elements.
func (a *Bool) CountTrue() int {
	n := 0
	for _, v := range a.data {
		if v {
			n++
		}
	}
	return n
}

// Slice returns a new container restricted to [start, start+size) along
// dimension dim.
func (a *Bool) Slice(dim, start, size int) (*Bool, error) {
	outer, inner, err := sliceBounds(a.shape, dim, start, size)
	if err != nil {
		return nil, err
	}
	shape := cloneShape(a.shape)
	shape[dim] = size
	out := &Bool{shape: shape, data: make([]bool, outer*size*inner)}
	dimLen := a.shape[dim]
	for o := 0; o < outer; o++ {
		src := a.data[(o*dimLen+start)*inner : (o*dimLen+start+size)*inner]
		copy(out.data[o*size*inner:], src)
	}
	return out, nil
}

// SliceDim implements Array.
func (a *Bool) SliceDim(dim, start, size int) (Array, error) {
	return a.Slice(dim, start, size)
}
