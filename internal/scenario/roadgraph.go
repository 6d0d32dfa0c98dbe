package scenario

import (
	"fmt"

	"github.com/banshee-data/scenario.report/internal/tensor"
)

// RoadgraphPoints holds static per-point road geometry with shape
// (numPoints,). Points sharing an ID form one contiguous lane or edge
// segment; the ID changes at intersections and map boundaries. Valid
// masks padding entries.
type RoadgraphPoints struct {
	X     *tensor.Float64
	Y     *tensor.Float64
	Z     *tensor.Float64
	DirX  *tensor.Float64
	DirY  *tensor.Float64
	Types *tensor.Int64
	IDs   *tensor.Int64
	Valid *tensor.Bool
}

// NewRoadgraphPoints builds the record after checking that every field is
// one-dimensional with a common point count.
func NewRoadgraphPoints(x, y, z, dirX, dirY *tensor.Float64, types, ids *tensor.Int64, valid *tensor.Bool) (*RoadgraphPoints, error) {
	r := &RoadgraphPoints{X: x, Y: y, Z: z, DirX: dirX, DirY: dirY, Types: types, IDs: ids, Valid: valid}
	want := x.Shape()
	if len(want) != 1 {
		return nil, fmt.Errorf("%w: roadgraph fields must be (points,), got %v",
			tensor.ErrShapeMismatch, want)
	}
	for name, a := range map[string]tensor.Array{
		"y": y, "z": z, "dir_x": dirX, "dir_y": dirY, "types": types, "ids": ids, "valid": valid,
	} {
		if !shapesMatch(want, a.Shape()) {
			return nil, fmt.Errorf("%w: roadgraph field %s has shape %v, want %v",
				tensor.ErrShapeMismatch, name, a.Shape(), want)
		}
	}
	return r, nil
}

// NumPoints returns the length of the point dimension.
func (r *RoadgraphPoints) NumPoints() int { return r.X.Shape()[0] }

// MapArrays applies fn to every field and returns a new record.
func (r *RoadgraphPoints) MapArrays(fn ArrayFunc) (*RoadgraphPoints, error) {
	var out RoadgraphPoints
	var err error
	if out.X, err = mapFloat(fn, r.X, "x"); err != nil {
		return nil, err
	}
	if out.Y, err = mapFloat(fn, r.Y, "y"); err != nil {
		return nil, err
	}
	if out.Z, err = mapFloat(fn, r.Z, "z"); err != nil {
		return nil, err
	}
	if out.DirX, err = mapFloat(fn, r.DirX, "dir_x"); err != nil {
		return nil, err
	}
	if out.DirY, err = mapFloat(fn, r.DirY, "dir_y"); err != nil {
		return nil, err
	}
	if out.Types, err = mapInt(fn, r.Types, "types"); err != nil {
		return nil, err
	}
	if out.IDs, err = mapInt(fn, r.IDs, "ids"); err != nil {
		return nil, err
	}
	if out.Valid, err = mapBool(fn, r.Valid, "valid"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SliceAxis restricts the point axis to [start, start+size). Roadgraph
// points carry no time or object axis.
func (r *RoadgraphPoints) SliceAxis(axis Axis, start, size int) (*RoadgraphPoints, error) {
	if axis != AxisPoints {
		return nil, fmt.Errorf("roadgraph: %w: %q", ErrAxisNotPresent, axis)
	}
	return r.MapArrays(func(a tensor.Array) (tensor.Array, error) {
		return a.SliceDim(0, start, size)
	})
}

// RoadgraphPointsOverrides names replacement fields for With; nil fields
// keep the original arrays.
type RoadgraphPointsOverrides struct {
	X     *tensor.Float64
	Y     *tensor.Float64
	Z     *tensor.Float64
	DirX  *tensor.Float64
	DirY  *tensor.Float64
	Types *tensor.Int64
	IDs   *tensor.Int64
	Valid *tensor.Bool
}

// With returns a copy with the non-nil override fields replaced wholesale.
func (r *RoadgraphPoints) With(o RoadgraphPointsOverrides) *RoadgraphPoints {
	out := *r
	if o.X != nil {
		out.X = o.X
	}
	if o.Y != nil {
		out.Y = o.Y
	}
	if o.Z != nil {
		out.Z = o.Z
	}
	if o.DirX != nil {
		out.DirX = o.DirX
	}
	if o.DirY != nil {
		out.DirY = o.DirY
	}
	if o.Types != nil {
		out.Types = o.Types
	}
	if o.IDs != nil {
		out.IDs = o.IDs
	}
	if o.Valid != nil {
		out.Valid = o.Valid
	}
	return &out
}

// Equal reports field-wise value equality.
func (r *RoadgraphPoints) Equal(o *RoadgraphPoints) bool {
	return r.X.Equal(o.X) && r.Y.Equal(o.Y) && r.Z.Equal(o.Z) &&
		r.DirX.Equal(o.DirX) && r.DirY.Equal(o.DirY) &&
		r.Types.Equal(o.Types) && r.IDs.Equal(o.IDs) && r.Valid.Equal(o.Valid)
}
