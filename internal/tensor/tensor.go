package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors for shape and bounds failures. Callers match with
// errors.Is; wrapped messages carry the offending values.
var (
	// ErrShapeMismatch indicates data length or peer shapes that do not
	// agree with the requested shape.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")
	// ErrOutOfRange indicates an index, dimension or slice window outside
	// the container's bounds.
	ErrOutOfRange = errors.New("tensor: out of range")
)

// Array is the interface shared by all element types. It is the value a
// field-map function receives and returns; concrete containers are
// *Float64, *Bool and *Int64.
type Array interface {
	// Shape returns a copy of the dimension lengths.
	Shape() []int
	// Dims returns the number of dimensions.
	Dims() int
	// Len returns the total element count.
	Len() int
	// SliceDim returns a new container restricted to
	// [start, start+size) along dimension dim.
	SliceDim(dim, start, size int) (Array, error)
}

// shapeSize returns the element count implied by shape.
func shapeSize(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}

func validateShape(shape []int) error {
	for _, d := range shape {
		if d < 0 {
			return fmt.Errorf("%w: negative dimension in shape %v", ErrShapeMismatch, shape)
		}
	}
	return nil
}

// offset computes the flat row-major offset for idx within shape.
func offset(shape, idx []int) (int, error) {
	if len(idx) != len(shape) {
		return 0, fmt.Errorf("%w: got %d indices for %d dimensions", ErrOutOfRange, len(idx), len(shape))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= shape[k] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (length %d)", ErrOutOfRange, i, k, shape[k])
		}
		off = off*shape[k] + i
	}
	return off, nil
}

// sliceBounds validates a slice window along dim and returns the outer
// repeat count and the per-step inner element count.
func sliceBounds(shape []int, dim, start, size int) (outer, inner int, err error) {
	if dim < 0 || dim >= len(shape) {
		return 0, 0, fmt.Errorf("%w: dimension %d out of range for shape %v", ErrOutOfRange, dim, shape)
	}
	if size < 0 {
		return 0, 0, fmt.Errorf("%w: negative slice size %d", ErrOutOfRange, size)
	}
	if start < 0 || start+size > shape[dim] {
		return 0, 0, fmt.Errorf("%w: slice [%d:%d) outside dimension %d (length %d)",
			ErrOutOfRange, start, start+size, dim, shape[dim])
	}
	outer = 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	inner = 1
	for _, d := range shape[dim+1:] {
		inner *= d
	}
	return outer, inner, nil
}
