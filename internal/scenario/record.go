package scenario

import (
	"errors"
	"fmt"

	"github.com/banshee-data/scenario.report/internal/tensor"
)

// Axis names a sliceable dimension of the record model. Each record type
// maps the named axis onto its own dimension order; slicing a record along
// an axis it does not carry fails with ErrAxisNotPresent.
type Axis string

const (
	// AxisObjects is the per-object dimension of Trajectory and
	// ObjectMetadata.
	AxisObjects Axis = "objects"
	// AxisTime is the per-timestep dimension of Trajectory and
	// TrafficLights.
	AxisTime Axis = "time"
	// AxisPoints is the per-point dimension of RoadgraphPoints.
	AxisPoints Axis = "points"
	// AxisLights is the per-light dimension of TrafficLights.
	AxisLights Axis = "lights"
)

var (
	// ErrAxisNotPresent indicates a slice along an axis the record does
	// not carry.
	ErrAxisNotPresent = errors.New("scenario: axis not present on record")
	// ErrKindChanged indicates a field-map function that returned an
	// array of a different element kind than it was given.
	ErrKindChanged = errors.New("scenario: map function changed array element kind")
)

// ArrayFunc is a pure transformation applied to every leaf array of a
// record by MapArrays. It may change shape but not element kind.
type ArrayFunc func(tensor.Array) (tensor.Array, error)

// Record is implemented by every record type (and the Scenario aggregate)
// over its own concrete type, so the package-level helpers dispatch
// statically with no reflection.
type Record[R any] interface {
	// MapArrays applies fn to every leaf array field, recursing into
	// sub-records, and returns a new record. The receiver is unchanged.
	MapArrays(fn ArrayFunc) (R, error)
	// SliceAxis restricts the named axis to [start, start+size) on every
	// field carrying it and returns a new record.
	SliceAxis(axis Axis, start, size int) (R, error)
}

// MapArrays applies fn across all leaf arrays of any record type.
func MapArrays[R Record[R]](r R, fn ArrayFunc) (R, error) {
	return r.MapArrays(fn)
}

// SliceAxis slices any record type along a named axis.
func SliceAxis[R Record[R]](r R, axis Axis, start, size int) (R, error) {
	return r.SliceAxis(axis, start, size)
}

// Identity is the no-op ArrayFunc; MapArrays with Identity returns a
// record value-equal to its input.
func Identity(a tensor.Array) (tensor.Array, error) { return a, nil }

// mapFloat applies fn to a float array field and re-asserts the kind.
func mapFloat(fn ArrayFunc, a *tensor.Float64, field string) (*tensor.Float64, error) {
	res, err := fn(a)
	if err != nil {
		return nil, fmt.Errorf("map field %s: %w", field, err)
	}
	out, ok := res.(*tensor.Float64)
	if !ok {
		return nil, fmt.Errorf("field %s: %w", field, ErrKindChanged)
	}
	return out, nil
}

func mapBool(fn ArrayFunc, a *tensor.Bool, field string) (*tensor.Bool, error) {
	res, err := fn(a)
	if err != nil {
		return nil, fmt.Errorf("map field %s: %w", field, err)
	}
	out, ok := res.(*tensor.Bool)
	if !ok {
		return nil, fmt.Errorf("field %s: %w", field, ErrKindChanged)
	}
	return out, nil
}

func mapInt(fn ArrayFunc, a *tensor.Int64, field string) (*tensor.Int64, error) {
	res, err := fn(a)
	if err != nil {
		return nil, fmt.Errorf("map field %s: %w", field, err)
	}
	out, ok := res.(*tensor.Int64)
	if !ok {
		return nil, fmt.Errorf("field %s: %w", field, ErrKindChanged)
	}
	return out, nil
}
