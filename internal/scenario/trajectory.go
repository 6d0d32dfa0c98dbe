package scenario

import (
	"fmt"

	"github.com/banshee-data/scenario.report/internal/tensor"
)

// Trajectory holds logged or simulated poses for a batch of objects over
// a time window. Every field has shape (numObjects, numTimesteps);
// entries with Valid false carry InvalidSentinel in the position fields.
type Trajectory struct {
	X     *tensor.Float64
	Y     *tensor.Float64
	Z     *tensor.Float64
	VelX  *tensor.Float64
	VelY  *tensor.Float64
	Yaw   *tensor.Float64
	Valid *tensor.Bool
}

// NewTrajectory builds a trajectory after checking that every field is
// two-dimensional with a common (objects, timesteps) shape.
func NewTrajectory(x, y, z, velX, velY, yaw *tensor.Float64, valid *tensor.Bool) (*Trajectory, error) {
	t := &Trajectory{X: x, Y: y, Z: z, VelX: velX, VelY: velY, Yaw: yaw, Valid: valid}
	if err := t.checkShapes(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trajectory) checkShapes() error {
	want := t.X.Shape()
	if len(want) != 2 {
		return fmt.Errorf("%w: trajectory fields must be (objects, timesteps), got %v",
			tensor.ErrShapeMismatch, want)
	}
	for name, a := range map[string]tensor.Array{
		"y": t.Y, "z": t.Z, "vel_x": t.VelX, "vel_y": t.VelY, "yaw": t.Yaw, "valid": t.Valid,
	} {
		if !shapesMatch(want, a.Shape()) {
			return fmt.Errorf("%w: trajectory field %s has shape %v, want %v",
				tensor.ErrShapeMismatch, name, a.Shape(), want)
		}
	}
	return nil
}

func shapesMatch(a, b []int) bool {
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

// NumObjects returns the length of the object dimension.
func (t *Trajectory) NumObjects() int { return t.X.Shape()[0] }

// NumTimesteps returns the length of the time dimension.
func (t *Trajectory) NumTimesteps() int { return t.X.Shape()[1] }

// XYZ stacks the position fields into one (objects, timesteps, 3) array.
func (t *Trajectory) XYZ() (*tensor.Float64, error) {
	return tensor.StackFloat64(t.X, t.Y, t.Z)
}

// VelXY stacks the velocity fields into one (objects, timesteps, 2) array.
func (t *Trajectory) VelXY() (*tensor.Float64, error) {
	return tensor.StackFloat64(t.VelX, t.VelY)
}

// MapArrays applies fn to every field and returns a new trajectory. No
// cross-field shape check is performed; fn may change field shapes and
// the caller owns invariant preservation.
func (t *Trajectory) MapArrays(fn ArrayFunc) (*Trajectory, error) {
	var out Trajectory
	var err error
	if out.X, err = mapFloat(fn, t.X, "x"); err != nil {
		return nil, err
	}
	if out.Y, err = mapFloat(fn, t.Y, "y"); err != nil {
		return nil, err
	}
	if out.Z, err = mapFloat(fn, t.Z, "z"); err != nil {
		return nil, err
	}
	if out.VelX, err = mapFloat(fn, t.VelX, "vel_x"); err != nil {
		return nil, err
	}
	if out.VelY, err = mapFloat(fn, t.VelY, "vel_y"); err != nil {
		return nil, err
	}
	if out.Yaw, err = mapFloat(fn, t.Yaw, "yaw"); err != nil {
		return nil, err
	}
	if out.Valid, err = mapBool(fn, t.Valid, "valid"); err != nil {
		return nil, err
	}
	return &out, nil
}

// SliceAxis restricts the object or time axis to [start, start+size).
func (t *Trajectory) SliceAxis(axis Axis, start, size int) (*Trajectory, error) {
	var dim int
	switch axis {
	case AxisObjects:
		dim = 0
	case AxisTime:
		dim = 1
	default:
		return nil, fmt.Errorf("trajectory: %w: %q", ErrAxisNotPresent, axis)
	}
	return t.MapArrays(func(a tensor.Array) (tensor.Array, error) {
		return a.SliceDim(dim, start, size)
	})
}

// TrajectoryOverrides names replacement fields for With; nil fields keep
// the original arrays.
type TrajectoryOverrides struct {
	X     *tensor.Float64
	Y     *tensor.Float64
	Z     *tensor.Float64
	VelX  *tensor.Float64
	VelY  *tensor.Float64
	Yaw   *tensor.Float64
	Valid *tensor.Bool
}

// With returns a copy of the trajectory with the non-nil override fields
// replaced wholesale. Sibling fields are untouched; shape consistency of
// the replacements is the caller's responsibility.
func (t *Trajectory) With(o TrajectoryOverrides) *Trajectory {
	out := *t
	if o.X != nil {
		out.X = o.X
	}
	if o.Y != nil {
		out.Y = o.Y
	}
	if o.Z != nil {
		out.Z = o.Z
	}
	if o.VelX != nil {
		out.VelX = o.VelX
	}
	if o.VelY != nil {
		out.VelY = o.VelY
	}
	if o.Yaw != nil {
		out.Yaw = o.Yaw
	}
	if o.Valid != nil {
		out.Valid = o.Valid
	}
	return &out
}

// Equal reports field-wise value equality.
func (t *Trajectory) Equal(o *Trajectory) bool {
	return t.X.Equal(o.X) && t.Y.Equal(o.Y) && t.Z.Equal(o.Z) &&
		t.VelX.Equal(o.VelX) && t.VelY.Equal(o.VelY) &&
		t.Yaw.Equal(o.Yaw) && t.Valid.Equal(o.Valid)
}
