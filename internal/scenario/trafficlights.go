package scenario

import (
	"fmt"

	"github.com/banshee-data/scenario.report/internal/tensor"
)

// TrafficLights holds per-light, per-timestep signal state. X, Y, Z,
// State and Valid have shape (numLights, numTimesteps); LaneIDs has shape
// (numLights,) and cross-references RoadgraphPoints.IDs for the lane each
// light controls.
type TrafficLights struct {
	X       *tensor.Float64
	Y       *tensor.Float64
	Z       *tensor.Float64
	State   *tensor.Int64
	LaneIDs *tensor.Int64
	Valid   *tensor.Bool
}

// NewTrafficLights builds the record after checking the per-timestep
// fields share a (lights, timesteps) shape and LaneIDs matches the light
// count.
func NewTrafficLights(x, y, z *tensor.Float64, state, laneIDs *tensor.Int64, valid *tensor.Bool) (*TrafficLights, error) {
	l := &TrafficLights{X: x, Y: y, Z: z, State: state, LaneIDs: laneIDs, Valid: valid}
	want := x.Shape()
	if len(want) != 2 {
		return nil, fmt.Errorf("%w: traffic light fields must be (lights, timesteps), got %v",
			tensor.ErrShapeMismatch, want)
	}
	for name, a := range map[string]tensor.Array{"y": y, "z": z, "state": state, "valid": valid} {
		if !shapesMatch(want, a.Shape()) {
			return nil, fmt.Errorf("%w: traffic light field %s has shape %v, want %v",
				tensor.ErrShapeMismatch, name, a.Shape(), want)
		}
	}
	if !shapesMatch(laneIDs.Shape(), []int{want[0]}) {
		return nil, fmt.Errorf("%w: lane_ids has shape %v, want [%d]",
			tensor.ErrShapeMismatch, laneIDs.Shape(), want[0])
	}
	return l, nil
}

// NumLights returns the length of the light dimension.
func (l *TrafficLights) NumLights() int { return l.X.Shape()[0] }

// NumTimesteps returns the length of the time dimension.
func (l *TrafficLights) NumTimesteps() int { return l.X.Shape()[1] }

// MapArrays applies fn to every field and returns a new record.
func (l *TrafficLights) MapArrays(fn ArrayFunc) (*TrafficLights, error) {
	var out TrafficLights
	var err error
	if out.X, err = mapFloat(fn, l.X, "x"); err != nil {
		return nil, err
	}
	if out.Y, err = mapFloat(fn, l.Y, "y"); err != nil {
		return nil, err
	}
	if out.Z, err = mapFloat(fn, l.Z, "z"); err != nil {
		return nil, err
	}
	if out.State, err = mapInt(fn, l.State, "state"); err != nil {
		return nil, err
	}
	if out.LaneIDs, err = mapInt(fn, l.LaneIDs, "lane_ids"); err != nil {
		return nil, err
	}
	if out.Valid, err = mapBool(fn, l.Valid, "valid"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SliceAxis restricts the light or time axis to [start, start+size).
// LaneIDs carries no time axis and is passed through unchanged on time
// slices.
func (l *TrafficLights) SliceAxis(axis Axis, start, size int) (*TrafficLights, error) {
	switch axis {
	case AxisLights:
		return l.MapArrays(func(a tensor.Array) (tensor.Array, error) {
			return a.SliceDim(0, start, size)
		})
	case AxisTime:
		return l.MapArrays(func(a tensor.Array) (tensor.Array, error) {
			if a.Dims() < 2 {
				// lane_ids: no time dimension.
				return a, nil
			}
			return a.SliceDim(1, start, size)
		})
	default:
		return nil, fmt.Errorf("traffic lights: %w: %q", ErrAxisNotPresent, axis)
	}
}

// TrafficLightsOverrides names replacement fields for With; nil fields
// keep the original arrays.
type TrafficLightsOverrides struct {
	X       *tensor.Float64
	Y       *tensor.Float64
	Z       *tensor.Float64
	State   *tensor.Int64
	LaneIDs *tensor.Int64
	Valid   *tensor.Bool
}

// With returns a copy with the non-nil override fields replaced wholesale.
func (l *TrafficLights) With(o TrafficLightsOverrides) *TrafficLights {
	out := *l
	if o.X != nil {
		out.X = o.X
	}
	if o.Y != nil {
		out.Y = o.Y
	}
	if o.Z != nil {
		out.Z = o.Z
	}
	if o.State != nil {
		out.State = o.State
	}
	if o.LaneIDs != nil {
		out.LaneIDs = o.LaneIDs
	}
	if o.Valid != nil {
		out.Valid = o.Valid
	}
	return &out
}

// Equal reports field-wise value equality.
func (l *TrafficLights) Equal(o *TrafficLights) bool {
	return l.X.Equal(o.X) && l.Y.Equal(o.Y) && l.Z.Equal(o.Z) &&
		l.State.Equal(o.State) && l.LaneIDs.Equal(o.LaneIDs) && l.Valid.Equal(o.Valid)
}
