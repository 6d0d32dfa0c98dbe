package scenario

import (
	"fmt"

	"github.com/banshee-data/scenario.report/internal/tensor"
)

// ObjectMetadata holds static per-object descriptors with shape
// (numObjects,). A well-formed scenario has exactly one IsSDC entry set:
// the self-driven (ego) object.
type ObjectMetadata struct {
	ObjectTypes *tensor.Int64
	IDs         *tensor.Int64
	IsSDC       *tensor.Bool
	IsModeled   *tensor.Bool
}

// NewObjectMetadata builds the record after checking that every field is
// one-dimensional with a common object count.
func NewObjectMetadata(objectTypes, ids *tensor.Int64, isSDC, isModeled *tensor.Bool) (*ObjectMetadata, error) {
	m := &ObjectMetadata{ObjectTypes: objectTypes, IDs: ids, IsSDC: isSDC, IsModeled: isModeled}
	want := objectTypes.Shape()
	if len(want) != 1 {
		return nil, fmt.Errorf("%w: metadata fields must be (objects,), got %v",
			tensor.ErrShapeMismatch, want)
	}
	for name, a := range map[string]tensor.Array{"ids": ids, "is_sdc": isSDC, "is_modeled": isModeled} {
		if !shapesMatch(want, a.Shape()) {
			return nil, fmt.Errorf("%w: metadata field %s has shape %v, want %v",
				tensor.ErrShapeMismatch, name, a.Shape(), want)
		}
	}
	return m, nil
}

// NumObjects returns the length of the object dimension.
func (m *ObjectMetadata) NumObjects() int { return m.ObjectTypes.Shape()[0] }

// SDCIndex returns the index of the self-driven object, or -1 if no entry
// is flagged.
func (m *ObjectMetadata) SDCIndex() int {
	for i, v := range m.IsSDC.Data() {
		if v {
			return i
		}
	}
	return -1
}

// MapArrays applies fn to every field and returns a new record.
func (m *ObjectMetadata) MapArrays(fn ArrayFunc) (*ObjectMetadata, error) {
	var out ObjectMetadata
	var err error
	if out.ObjectTypes, err = mapInt(fn, m.ObjectTypes, "object_types"); err != nil {
		return nil, err
	}
	if out.IDs, err = mapInt(fn, m.IDs, "ids"); err != nil {
		return nil, err
	}
	if out.IsSDC, err = mapBool(fn, m.IsSDC, "is_sdc"); err != nil {
		return nil, err
	}
	if out.IsModeled, err = mapBool(fn, m.IsModeled, "is_modeled"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SliceAxis restricts the object axis to [start, start+size). Metadata
// carries no time axis.
func (m *ObjectMetadata) SliceAxis(axis Axis, start, size int) (*ObjectMetadata, error) {
	if axis != AxisObjects {
		return nil, fmt.Errorf("object metadata: %w: %q", ErrAxisNotPresent, axis)
	}
	return m.MapArrays(func(a tensor.Array) (tensor.Array, error) {
		return a.SliceDim(0, start, size)
	})
}

// ObjectMetadataOverrides names replacement fields for With; nil fields
// keep the original arrays.
type ObjectMetadataOverrides struct {
	ObjectTypes *tensor.Int64
	IDs         *tensor.Int64
	IsSDC       *tensor.Bool
	IsModeled   *tensor.Bool
}

// With returns a copy with the non-nil override fields replaced wholesale.
func (m *ObjectMetadata) With(o ObjectMetadataOverrides) *ObjectMetadata {
	out := *m
	if o.ObjectTypes != nil {
		out.ObjectTypes = o.ObjectTypes
	}
	if o.IDs != nil {
		out.IDs = o.IDs
	}
	if o.IsSDC != nil {
		out.IsSDC = o.IsSDC
	}
	if o.IsModeled != nil {
		out.IsModeled = o.IsModeled
	}
	return &out
}

// Equal reports field-wise value equality.
func (m *ObjectMetadata) Equal(o *ObjectMetadata) bool {
	return m.ObjectTypes.Equal(o.ObjectTypes) && m.IDs.Equal(o.IDs) &&
		m.IsSDC.Equal(o.IsSDC) && m.IsModeled.Equal(o.IsModeled)
}
