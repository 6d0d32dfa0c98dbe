package scenario

import (
	"fmt"
)

// Scenario is the aggregate root composing one logged driving scene: the
// object trajectories, static road geometry, traffic-light states and
// object metadata, plus the number of logged timesteps remaining after
// the current one. Scenarios are produced by the dataset iterator and are
// never mutated; transformations yield new scenarios with sub-records
// replaced.
type Scenario struct {
	ID                 string
	LogTrajectory      *Trajectory
	RoadgraphPoints    *RoadgraphPoints
	LogTrafficLight    *TrafficLights
	ObjectMetadata     *ObjectMetadata
	RemainingTimesteps int
}

// NumObjects returns the object count shared by trajectory and metadata.
func (s *Scenario) NumObjects() int { return s.LogTrajectory.NumObjects() }

// NumTimesteps returns the logged time-window length.
func (s *Scenario) NumTimesteps() int { return s.LogTrajectory.NumTimesteps() }

// MapArrays applies fn to every leaf array of every sub-record and
// returns a new scenario. RemainingTimesteps and ID carry over unchanged.
func (s *Scenario) MapArrays(fn ArrayFunc) (*Scenario, error) {
	traj, err := s.LogTrajectory.MapArrays(fn)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory: %w", err)
	}
	rg, err := s.RoadgraphPoints.MapArrays(fn)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points: %w", err)
	}
	tl, err := s.LogTrafficLight.MapArrays(fn)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light: %w", err)
	}
	md, err := s.ObjectMetadata.MapArrays(fn)
	if err != nil {
		return nil, fmt.Errorf("object_metadata: %w", err)
	}
	return s.With(ScenarioOverrides{
		LogTrajectory:   traj,
		RoadgraphPoints: rg,
		LogTrafficLight: tl,
		ObjectMetadata:  md,
	}), nil
}

// SliceAxis slices the named axis on every sub-record carrying it;
// sub-records without the axis pass through unchanged. Slicing the time
// axis recomputes RemainingTimesteps against the end of the new window.
func (s *Scenario) SliceAxis(axis Axis, start, size int) (*Scenario, error) {
	o := ScenarioOverrides{}
	switch axis {
	case AxisTime:
		traj, err := s.LogTrajectory.SliceAxis(axis, start, size)
		if err != nil {
			return nil, fmt.Errorf("log_trajectory: %w", err)
		}
		tl, err := s.LogTrafficLight.SliceAxis(axis, start, size)
		if err != nil {
			return nil, fmt.Errorf("log_traffic_light: %w", err)
		}
		o.LogTrajectory = traj
		o.LogTrafficLight = tl
		remaining := s.NumTimesteps() - (start + size)
		o.RemainingTimesteps = &remaining
	case AxisObjects:
		traj, err := s.LogTrajectory.SliceAxis(axis, start, size)
		if err != nil {
			return nil, fmt.Errorf("log_trajectory: %w", err)
		}
		md, err := s.ObjectMetadata.SliceAxis(axis, start, size)
		if err != nil {
			return nil, fmt.Errorf("object_metadata: %w", err)
		}
		o.LogTrajectory = traj
		o.ObjectMetadata = md
	case AxisPoints:
		rg, err := s.RoadgraphPoints.SliceAxis(axis, start, size)
		if err != nil {
			return nil, fmt.Errorf("roadgraph_points: %w", err)
		}
		o.RoadgraphPoints = rg
	case AxisLights:
		tl, err := s.LogTrafficLight.SliceAxis(axis, start, size)
		if err != nil {
			return nil, fmt.Errorf("log_traffic_light: %w", err)
		}
		o.LogTrafficLight = tl
	default:
		return nil, fmt.Errorf("scenario: %w: %q", ErrAxisNotPresent, axis)
	}
	return s.With(o), nil
}

// ScenarioOverrides names replacement sub-records for With; nil fields
// keep the originals.
type ScenarioOverrides struct {
	ID                 *string
	LogTrajectory      *Trajectory
	RoadgraphPoints    *RoadgraphPoints
	LogTrafficLight    *TrafficLights
	ObjectMetadata     *ObjectMetadata
	RemainingTimesteps *int
}

// With returns a copy of the scenario with the non-nil override
// sub-records replaced wholesale.
func (s *Scenario) With(o ScenarioOverrides) *Scenario {
	out := *s
	if o.ID != nil {
		out.ID = *o.ID
	}
	if o.LogTrajectory != nil {
		out.LogTrajectory = o.LogTrajectory
	}
	if o.RoadgraphPoints != nil {
		out.RoadgraphPoints = o.RoadgraphPoints
	}
	if o.LogTrafficLight != nil {
		out.LogTrafficLight = o.LogTrafficLight
	}
	if o.ObjectMetadata != nil {
		out.ObjectMetadata = o.ObjectMetadata
	}
	if o.RemainingTimesteps != nil {
		out.RemainingTimesteps = *o.RemainingTimesteps
	}
	return &out
}

// Equal reports value equality across all sub-records and counters.
func (s *Scenario) Equal(o *Scenario) bool {
	return s.ID == o.ID &&
		s.RemainingTimesteps == o.RemainingTimesteps &&
		s.LogTrajectory.Equal(o.LogTrajectory) &&
		s.RoadgraphPoints.Equal(o.RoadgraphPoints) &&
		s.LogTrafficLight.Equal(o.LogTrafficLight) &&
		s.ObjectMetadata.Equal(o.ObjectMetadata)
}
