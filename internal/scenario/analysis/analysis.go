// Package analysis derives summary quantities from scenario records:
// per-object speed profiles, scene extents, object-type censuses and the
// lane/traffic-light cross-reference. All functions are pure reads over
// immutable records.
package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/tensor"
)

// SpeedProfile returns the per-timestep speed magnitude (m/s) of one
// object, computed from VelX/VelY. Timesteps with Valid false are NaN.
func SpeedProfile(t *scenario.Trajectory, objectIdx int) ([]float64, error) {
	if objectIdx < 0 || objectIdx >= t.NumObjects() {
		return nil, fmt.Errorf("%w: object %d of %d", tensor.ErrOutOfRange, objectIdx, t.NumObjects())
	}
	steps := t.NumTimesteps()
	out := make([]float64, steps)
	for ts := 0; ts < steps; ts++ {
		if !t.Valid.MustAt(objectIdx, ts) {
			out[ts] = math.NaN()
			continue
		}
		out[ts] = math.Hypot(t.VelX.MustAt(objectIdx, ts), t.VelY.MustAt(objectIdx, ts))
	}
	return out, nil
}

// SpeedSummary aggregates a speed profile over its valid timesteps.
type SpeedSummary struct {
	MeanMPS    float64
	MaxMPS     float64
	ValidSteps int
}

// SummarizeSpeed computes mean and max speed over the non-NaN entries of
// a profile. An all-invalid profile yields a zero summary.
func SummarizeSpeed(profile []float64) SpeedSummary {
	valid := make([]float64, 0, len(profile))
	for _, v := range profile {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return SpeedSummary{}
	}
	return SpeedSummary{
		MeanMPS:    stat.Mean(valid, nil),
		MaxMPS:     floats.Max(valid),
		ValidSteps: len(valid),
	}
}

// Extent is an axis-aligned bounding box over the valid geometry of a
// scenario.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Empty reports whether the extent covers no valid entries.
func (e Extent) Empty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// SceneExtent computes the bounding box over valid trajectory positions
// and valid roadgraph points. Invalid (sentinel-carrying) entries are
// excluded via the validity masks, never by value.
func SceneExtent(s *scenario.Scenario) Extent {
	e := Extent{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	traj := s.LogTrajectory
	for o := 0; o < traj.NumObjects(); o++ {
		for ts := 0; ts < traj.NumTimesteps(); ts++ {
			if !traj.Valid.MustAt(o, ts) {
				continue
			}
			e.include(traj.X.MustAt(o, ts), traj.Y.MustAt(o, ts))
		}
	}
	rg := s.RoadgraphPoints
	for p := 0; p < rg.NumPoints(); p++ {
		if !rg.Valid.MustAt(p) {
			continue
		}
		e.include(rg.X.MustAt(p), rg.Y.MustAt(p))
	}
	return e
}

func (e *Extent) include(x, y float64) {
	e.MinX = math.Min(e.MinX, x)
	e.MaxX = math.Max(e.MaxX, x)
	e.MinY = math.Min(e.MinY, y)
	e.MaxY = math.Max(e.MaxY, y)
}

// Census summarises the static object population of a scenario.
type Census struct {
	Total    int
	ByType   map[scenario.ObjectType]int
	Modeled  int
	SDCIndex int
	SDCID    int64
}

// TakeCensus counts objects per type and locates the ego object.
func TakeCensus(md *scenario.ObjectMetadata) Census {
	c := Census{
		Total:    md.NumObjects(),
		ByType:   make(map[scenario.ObjectType]int),
		SDCIndex: md.SDCIndex(),
		SDCID:    -1,
	}
	types := md.ObjectTypes.Data()
	for _, code := range types {
		c.ByType[scenario.ObjectType(code)]++
	}
	for _, v := range md.IsModeled.Data() {
		if v {
			c.Modeled++
		}
	}
	if c.SDCIndex >= 0 {
		c.SDCID = md.IDs.MustAt(c.SDCIndex)
	}
	return c
}

// LaneLightIndex maps each controlled lane id to the traffic-light
// indices that reference it, via the TrafficLights.LaneIDs to
// RoadgraphPoints.IDs cross-reference.
func LaneLightIndex(s *scenario.Scenario) map[int64][]int {
	known := make(map[int64]bool)
	for _, id := range s.RoadgraphPoints.IDs.Data() {
		known[id] = true
	}
	out := make(map[int64][]int)
	for i, laneID := range s.LogTrafficLight.LaneIDs.Data() {
		if !known[laneID] {
			continue
		}
		out[laneID] = append(out[laneID], i)
	}
	return out
}
