package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/tensor"
)

// SyntheticConfig sizes a generated scenario.
type SyntheticConfig struct {
	NumObjects    int
	NumTimesteps  int
	NumRoadPoints int
	NumLights     int
	Dt            float64 // seconds per timestep; zero means 0.1
}

// Synthetic generates a well-formed random scenario: objects move in
// straight lines at constant speed from random origins, the roadgraph is
// a grid of lane centerlines, lights cycle stop/caution/go. Object 0 is
// the SDC. Useful for fixtures and demos; not a physics model.
func Synthetic(id string, cfg SyntheticConfig, rnd *rand.Rand) (*scenario.Scenario, error) {
	if cfg.NumObjects < 1 || cfg.NumTimesteps < 1 || cfg.NumRoadPoints < 2 || cfg.NumLights < 1 {
		return nil, fmt.Errorf("synthetic scenario %s: sizes must be positive (got %+v)", id, cfg)
	}
	dt := cfg.Dt
	if dt == 0 {
		dt = 0.1
	}

	ot := []int{cfg.NumObjects, cfg.NumTimesteps}
	n := cfg.NumObjects * cfg.NumTimesteps
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	velX := make([]float64, n)
	velY := make([]float64, n)
	yaw := make([]float64, n)
	valid := make([]bool, n)
	for o := 0; o < cfg.NumObjects; o++ {
		ox := rnd.Float64()*200 - 100
		oy := rnd.Float64()*200 - 100
		heading := rnd.Float64() * 2 * math.Pi
		speed := 2 + rnd.Float64()*13
		// Some objects enter the scene late: their first timesteps are
		// padding with the sentinel in position fields.
		firstSeen := 0
		if o > 0 && cfg.NumTimesteps >= 2 && rnd.Float64() < 0.3 {
			firstSeen = rnd.Intn(cfg.NumTimesteps / 2)
		}
		for ts := 0; ts < cfg.NumTimesteps; ts++ {
			i := o*cfg.NumTimesteps + ts
			if ts < firstSeen {
				x[i] = scenario.InvalidSentinel
				y[i] = scenario.InvalidSentinel
				z[i] = scenario.InvalidSentinel
				continue
			}
			elapsed := float64(ts-firstSeen) * dt
			valid[i] = true
			x[i] = ox + speed*math.Cos(heading)*elapsed
			y[i] = oy + speed*math.Sin(heading)*elapsed
			z[i] = 0
			velX[i] = speed * math.Cos(heading)
			velY[i] = speed * math.Sin(heading)
			yaw[i] = heading
		}
	}
	mkF := func(shape []int, data []float64, field string) *tensor.Float64 {
		a, err := tensor.NewFloat64(shape, data)
		if err != nil {
			panic(fmt.Sprintf("synthetic %s: %v", field, err))
		}
		return a
	}
	tvalid, err := tensor.NewBool(ot, valid)
	if err != nil {
		return nil, err
	}
	traj, err := scenario.NewTrajectory(
		mkF(ot, x, "x"), mkF(ot, y, "y"), mkF(ot, z, "z"),
		mkF(ot, velX, "vel_x"), mkF(ot, velY, "vel_y"), mkF(ot, yaw, "yaw"), tvalid)
	if err != nil {
		return nil, err
	}

	p := []int{cfg.NumRoadPoints}
	rx := make([]float64, cfg.NumRoadPoints)
	ry := make([]float64, cfg.NumRoadPoints)
	rz := make([]float64, cfg.NumRoadPoints)
	dirX := make([]float64, cfg.NumRoadPoints)
	dirY := make([]float64, cfg.NumRoadPoints)
	types := make([]int64, cfg.NumRoadPoints)
	ids := make([]int64, cfg.NumRoadPoints)
	rvalid := make([]bool, cfg.NumRoadPoints)
	lanes := cfg.NumRoadPoints/50 + 1
	perLane := cfg.NumRoadPoints / lanes
	for i := 0; i < cfg.NumRoadPoints; i++ {
		lane := i / perLane
		if lane >= lanes {
			lane = lanes - 1
		}
		rx[i] = float64(i%perLane)*2 - 100
		ry[i] = float64(lane)*4 - 50
		dirX[i] = 1
		types[i] = int64(scenario.RoadTypeLaneCenterSurface)
		ids[i] = 100 + int64(lane)
		rvalid[i] = true
	}
	rgTypes, err := tensor.NewInt64(p, types)
	if err != nil {
		return nil, err
	}
	rgIDs, err := tensor.NewInt64(p, ids)
	if err != nil {
		return nil, err
	}
	rgValid, err := tensor.NewBool(p, rvalid)
	if err != nil {
		return nil, err
	}
	rg, err := scenario.NewRoadgraphPoints(
		mkF(p, rx, "rg.x"), mkF(p, ry, "rg.y"), mkF(p, rz, "rg.z"),
		mkF(p, dirX, "rg.dir_x"), mkF(p, dirY, "rg.dir_y"), rgTypes, rgIDs, rgValid)
	if err != nil {
		return nil, err
	}

	lt := []int{cfg.NumLights, cfg.NumTimesteps}
	ln := cfg.NumLights * cfg.NumTimesteps
	lx := make([]float64, ln)
	ly := make([]float64, ln)
	lz := make([]float64, ln)
	state := make([]int64, ln)
	lvalid := make([]bool, ln)
	laneIDs := make([]int64, cfg.NumLights)
	cycle := []scenario.LightState{scenario.LightStateStop, scenario.LightStateCaution, scenario.LightStateGo}
	for l := 0; l < cfg.NumLights; l++ {
		laneIDs[l] = 100 + int64(l%lanes)
		phase := rnd.Intn(len(cycle))
		for ts := 0; ts < cfg.NumTimesteps; ts++ {
			i := l*cfg.NumTimesteps + ts
			lx[i] = rnd.Float64()*100 - 50
			ly[i] = rnd.Float64()*100 - 50
			lz[i] = 5
			state[i] = int64(cycle[(phase+ts/30)%len(cycle)])
			lvalid[i] = true
		}
	}
	st, err := tensor.NewInt64(lt, state)
	if err != nil {
		return nil, err
	}
	lids, err := tensor.NewInt64([]int{cfg.NumLights}, laneIDs)
	if err != nil {
		return nil, err
	}
	lv, err := tensor.NewBool(lt, lvalid)
	if err != nil {
		return nil, err
	}
	lights, err := scenario.NewTrafficLights(mkF(lt, lx, "tl.x"), mkF(lt, ly, "tl.y"), mkF(lt, lz, "tl.z"), st, lids, lv)
	if err != nil {
		return nil, err
	}

	o := []int{cfg.NumObjects}
	objTypes := make([]int64, cfg.NumObjects)
	objIDs := make([]int64, cfg.NumObjects)
	isSDC := make([]bool, cfg.NumObjects)
	isModeled := make([]bool, cfg.NumObjects)
	for i := 0; i < cfg.NumObjects; i++ {
		objIDs[i] = int64(1000 + i)
		switch r := rnd.Float64(); {
		case r < 0.7:
			objTypes[i] = int64(scenario.ObjectTypeVehicle)
		case r < 0.85:
			objTypes[i] = int64(scenario.ObjectTypePedestrian)
		case r < 0.95:
			objTypes[i] = int64(scenario.ObjectTypeCyclist)
		default:
			objTypes[i] = int64(scenario.ObjectTypeOther)
		}
		isModeled[i] = rnd.Float64() < 0.25
	}
	objTypes[0] = int64(scenario.ObjectTypeVehicle)
	isSDC[0] = true
	isModeled[0] = true
	ott, err := tensor.NewInt64(o, objTypes)
	if err != nil {
		return nil, err
	}
	oii, err := tensor.NewInt64(o, objIDs)
	if err != nil {
		return nil, err
	}
	sdc, err := tensor.NewBool(o, isSDC)
	if err != nil {
		return nil, err
	}
	mod, err := tensor.NewBool(o, isModeled)
	if err != nil {
		return nil, err
	}
	md, err := scenario.NewObjectMetadata(ott, oii, sdc, mod)
	if err != nil {
		return nil, err
	}

	return &scenario.Scenario{
		ID:                 id,
		LogTrajectory:      traj,
		RoadgraphPoints:    rg,
		LogTrafficLight:    lights,
		ObjectMetadata:     md,
		RemainingTimesteps: 0,
	}, nil
}
