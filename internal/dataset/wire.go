// Package dataset reads and writes the NDJSON scenario interchange
// format: one JSON document per line, one scenario per document, gzip
// compression when the filename ends in .gz.
//
// The on-disk layout belongs to this package alone; record consumers see
// only validated scenario values.
package dataset

import (
	"fmt"

	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/tensor"
)

// scenarioJSON is the wire form of a scenario. Array fields are flat
// row-major slices; shapes are carried explicitly so decode can rebuild
// the containers without inference.
type scenarioJSON struct {
	ID                 string             `json:"id"`
	LogTrajectory      trajectoryJSON     `json:"log_trajectory"`
	RoadgraphPoints    roadgraphJSON      `json:"roadgraph_points"`
	LogTrafficLight    trafficLightsJSON  `json:"log_traffic_light"`
	ObjectMetadata     objectMetadataJSON `json:"object_metadata"`
	RemainingTimesteps int                `json:"remaining_timesteps"`
}

type trajectoryJSON struct {
	NumObjects   int       `json:"num_objects"`
	NumTimesteps int       `json:"num_timesteps"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Z            []float64 `json:"z"`
	VelX         []float64 `json:"vel_x"`
	VelY         []float64 `json:"vel_y"`
	Yaw          []float64 `json:"yaw"`
	Valid        []bool    `json:"valid"`
}

type roadgraphJSON struct {
	NumPoints int       `json:"num_points"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Z         []float64 `json:"z"`
	DirX      []float64 `json:"dir_x"`
	DirY      []float64 `json:"dir_y"`
	Types     []int64   `json:"types"`
	IDs       []int64   `json:"ids"`
	Valid     []bool    `json:"valid"`
}

type trafficLightsJSON struct {
	NumLights    int       `json:"num_lights"`
	NumTimesteps int       `json:"num_timesteps"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Z            []float64 `json:"z"`
	State        []int64   `json:"state"`
	LaneIDs      []int64   `json:"lane_ids"`
	Valid        []bool    `json:"valid"`
}

type objectMetadataJSON struct {
	NumObjects  int     `json:"num_objects"`
	ObjectTypes []int64 `json:"object_types"`
	IDs         []int64 `json:"ids"`
	IsSDC       []bool  `json:"is_sdc"`
	IsModeled   []bool  `json:"is_modeled"`
}

func encodeScenario(s *scenario.Scenario) scenarioJSON {
	traj := s.LogTrajectory
	rg := s.RoadgraphPoints
	tl := s.LogTrafficLight
	md := s.ObjectMetadata
	return scenarioJSON{
		ID: s.ID,
		LogTrajectory: trajectoryJSON{
			NumObjects:   traj.NumObjects(),
			NumTimesteps: traj.NumTimesteps(),
			X:            traj.X.Data(),
			Y:            traj.Y.Data(),
			Z:            traj.Z.Data(),
			VelX:         traj.VelX.Data(),
			VelY:         traj.VelY.Data(),
			Yaw:          traj.Yaw.Data(),
			Valid:        traj.Valid.Data(),
		},
		RoadgraphPoints: roadgraphJSON{
			NumPoints: rg.NumPoints(),
			X:         rg.X.Data(),
			Y:         rg.Y.Data(),
			Z:         rg.Z.Data(),
			DirX:      rg.DirX.Data(),
			DirY:      rg.DirY.Data(),
			Types:     rg.Types.Data(),
			IDs:       rg.IDs.Data(),
			Valid:     rg.Valid.Data(),
		},
		LogTrafficLight: trafficLightsJSON{
			NumLights:    tl.NumLights(),
			NumTimesteps: tl.NumTimesteps(),
			X:            tl.X.Data(),
			Y:            tl.Y.Data(),
			Z:            tl.Z.Data(),
			State:        tl.State.Data(),
			LaneIDs:      tl.LaneIDs.Data(),
			Valid:        tl.Valid.Data(),
		},
		ObjectMetadata: objectMetadataJSON{
			NumObjects:  md.NumObjects(),
			ObjectTypes: md.ObjectTypes.Data(),
			IDs:         md.IDs.Data(),
			IsSDC:       md.IsSDC.Data(),
			IsModeled:   md.IsModeled.Data(),
		},
		RemainingTimesteps: s.RemainingTimesteps,
	}
}

func decodeScenario(w scenarioJSON) (*scenario.Scenario, error) {
	ot := []int{w.LogTrajectory.NumObjects, w.LogTrajectory.NumTimesteps}
	x, err := tensor.NewFloat64(ot, w.LogTrajectory.X)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory.x: %w", err)
	}
	y, err := tensor.NewFloat64(ot, w.LogTrajectory.Y)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory.y: %w", err)
	}
	z, err := tensor.NewFloat64(ot, w.LogTrajectory.Z)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory.z: %w", err)
	}
	velX, err := tensor.NewFloat64(ot, w.LogTrajectory.VelX)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory.vel_x: %w", err)
	}
	velY, err := tensor.NewFloat64(ot, w.LogTrajectory.VelY)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory.vel_y: %w", err)
	}
	yaw, err := tensor.NewFloat64(ot, w.LogTrajectory.Yaw)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory.yaw: %w", err)
	}
	tvalid, err := tensor.NewBool(ot, w.LogTrajectory.Valid)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory.valid: %w", err)
	}
	traj, err := scenario.NewTrajectory(x, y, z, velX, velY, yaw, tvalid)
	if err != nil {
		return nil, fmt.Errorf("log_trajectory: %w", err)
	}

	p := []int{w.RoadgraphPoints.NumPoints}
	rgx, err := tensor.NewFloat64(p, w.RoadgraphPoints.X)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.x: %w", err)
	}
	rgy, err := tensor.NewFloat64(p, w.RoadgraphPoints.Y)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.y: %w", err)
	}
	rgz, err := tensor.NewFloat64(p, w.RoadgraphPoints.Z)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.z: %w", err)
	}
	dirX, err := tensor.NewFloat64(p, w.RoadgraphPoints.DirX)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.dir_x: %w", err)
	}
	dirY, err := tensor.NewFloat64(p, w.RoadgraphPoints.DirY)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.dir_y: %w", err)
	}
	rgTypes, err := tensor.NewInt64(p, w.RoadgraphPoints.Types)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.types: %w", err)
	}
	rgIDs, err := tensor.NewInt64(p, w.RoadgraphPoints.IDs)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.ids: %w", err)
	}
	rgValid, err := tensor.NewBool(p, w.RoadgraphPoints.Valid)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points.valid: %w", err)
	}
	rg, err := scenario.NewRoadgraphPoints(rgx, rgy, rgz, dirX, dirY, rgTypes, rgIDs, rgValid)
	if err != nil {
		return nil, fmt.Errorf("roadgraph_points: %w", err)
	}

	lt := []int{w.LogTrafficLight.NumLights, w.LogTrafficLight.NumTimesteps}
	tlx, err := tensor.NewFloat64(lt, w.LogTrafficLight.X)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light.x: %w", err)
	}
	tly, err := tensor.NewFloat64(lt, w.LogTrafficLight.Y)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light.y: %w", err)
	}
	tlz, err := tensor.NewFloat64(lt, w.LogTrafficLight.Z)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light.z: %w", err)
	}
	state, err := tensor.NewInt64(lt, w.LogTrafficLight.State)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light.state: %w", err)
	}
	laneIDs, err := tensor.NewInt64([]int{w.LogTrafficLight.NumLights}, w.LogTrafficLight.LaneIDs)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light.lane_ids: %w", err)
	}
	tlValid, err := tensor.NewBool(lt, w.LogTrafficLight.Valid)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light.valid: %w", err)
	}
	lights, err := scenario.NewTrafficLights(tlx, tly, tlz, state, laneIDs, tlValid)
	if err != nil {
		return nil, fmt.Errorf("log_traffic_light: %w", err)
	}

	o := []int{w.ObjectMetadata.NumObjects}
	objTypes, err := tensor.NewInt64(o, w.ObjectMetadata.ObjectTypes)
	if err != nil {
		return nil, fmt.Errorf("object_metadata.object_types: %w", err)
	}
	ids, err := tensor.NewInt64(o, w.ObjectMetadata.IDs)
	if err != nil {
		return nil, fmt.Errorf("object_metadata.ids: %w", err)
	}
	isSDC, err := tensor.NewBool(o, w.ObjectMetadata.IsSDC)
	if err != nil {
		return nil, fmt.Errorf("object_metadata.is_sdc: %w", err)
	}
	isModeled, err := tensor.NewBool(o, w.ObjectMetadata.IsModeled)
	if err != nil {
		return nil, fmt.Errorf("object_metadata.is_modeled: %w", err)
	}
	md, err := scenario.NewObjectMetadata(objTypes, ids, isSDC, isModeled)
	if err != nil {
		return nil, fmt.Errorf("object_metadata: %w", err)
	}

	return &scenario.Scenario{
		ID:                 w.ID,
		LogTrajectory:      traj,
		RoadgraphPoints:    rg,
		LogTrafficLight:    lights,
		ObjectMetadata:     md,
		RemainingTimesteps: w.RemainingTimesteps,
	}, nil
}
