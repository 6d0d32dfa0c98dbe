// Package testutil provides shared test fixtures and helpers.
//
// This package centralises the construction of well-formed scenario
// fixtures so individual test files do not repeat the field-by-field
// record assembly.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/tensor"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertShape fails the test if the array's shape differs from want.
func AssertShape(t *testing.T, a tensor.Array, want ...int) {
	t.Helper()
	got := a.Shape()
	if len(got) != len(want) {
		t.Fatalf("shape = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("shape = %v, want %v", got, want)
		}
	}
}

// NewTrajectory builds a deterministic trajectory of the given size.
// Object o moves along a straight line at a per-object speed; position,
// velocity and yaw are simple closed forms over (o, ts) so tests can
// predict any element. The final timestep of every odd object is marked
// invalid and carries the sentinel in position fields.
func NewTrajectory(t *testing.T, numObjects, numTimesteps int) *scenario.Trajectory {
	t.Helper()
	ot := []int{numObjects, numTimesteps}
	n := numObjects * numTimesteps
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	velX := make([]float64, n)
	velY := make([]float64, n)
	yaw := make([]float64, n)
	valid := make([]bool, n)
	for o := 0; o < numObjects; o++ {
		speed := 1.0 + float64(o)*0.5
		for ts := 0; ts < numTimesteps; ts++ {
			i := o*numTimesteps + ts
			valid[i] = true
			if o%2 == 1 && ts == numTimesteps-1 {
				valid[i] = false
				x[i] = scenario.InvalidSentinel
				y[i] = scenario.InvalidSentinel
				z[i] = scenario.InvalidSentinel
				continue
			}
			x[i] = float64(o)*10 + speed*float64(ts)
			y[i] = float64(o) * 4
			z[i] = 0.5
			velX[i] = speed
			velY[i] = 0
			yaw[i] = math.Pi / 2
		}
	}
	mk := func(data []float64) *tensor.Float64 {
		a, err := tensor.NewFloat64(ot, data)
		AssertNoError(t, err)
		return a
	}
	vm, err := tensor.NewBool(ot, valid)
	AssertNoError(t, err)
	traj, err := scenario.NewTrajectory(mk(x), mk(y), mk(z), mk(velX), mk(velY), mk(yaw), vm)
	AssertNoError(t, err)
	return traj
}

// NewRoadgraph builds a straight two-lane roadgraph with numPoints
// samples split evenly between lane ids 100 and 101.
func NewRoadgraph(t *testing.T, numPoints int) *scenario.RoadgraphPoints {
	t.Helper()
	p := []int{numPoints}
	x := make([]float64, numPoints)
	y := make([]float64, numPoints)
	z := make([]float64, numPoints)
	dirX := make([]float64, numPoints)
	dirY := make([]float64, numPoints)
	types := make([]int64, numPoints)
	ids := make([]int64, numPoints)
	valid := make([]bool, numPoints)
	for i := 0; i < numPoints; i++ {
		x[i] = float64(i)
		y[i] = 0
		dirX[i] = 1
		types[i] = int64(scenario.RoadTypeLaneCenterSurface)
		ids[i] = 100
		if i >= numPoints/2 {
			y[i] = 4
			ids[i] = 101
		}
		valid[i] = true
	}
	mkF := func(data []float64) *tensor.Float64 {
		a, err := tensor.NewFloat64(p, data)
		AssertNoError(t, err)
		return a
	}
	mkI := func(data []int64) *tensor.Int64 {
		a, err := tensor.NewInt64(p, data)
		AssertNoError(t, err)
		return a
	}
	vm, err := tensor.NewBool(p, valid)
	AssertNoError(t, err)
	rg, err := scenario.NewRoadgraphPoints(mkF(x), mkF(y), mkF(z), mkF(dirX), mkF(dirY), mkI(types), mkI(ids), vm)
	AssertNoError(t, err)
	return rg
}

// NewTrafficLights builds numLights lights cycling stop/caution/go over
// numTimesteps, controlling lane ids 100, 101, ... in order.
func NewTrafficLights(t *testing.T, numLights, numTimesteps int) *scenario.TrafficLights {
	t.Helper()
	lt := []int{numLights, numTimesteps}
	n := numLights * numTimesteps
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	state := make([]int64, n)
	valid := make([]bool, n)
	laneIDs := make([]int64, numLights)
	cycle := []scenario.LightState{scenario.LightStateStop, scenario.LightStateCaution, scenario.LightStateGo}
	for l := 0; l < numLights; l++ {
		laneIDs[l] = 100 + int64(l)
		for ts := 0; ts < numTimesteps; ts++ {
			i := l*numTimesteps + ts
			x[i] = 50
			y[i] = float64(l) * 4
			z[i] = 5
			state[i] = int64(cycle[(l+ts/10)%len(cycle)])
			valid[i] = true
		}
	}
	mkF := func(data []float64, shape []int) *tensor.Float64 {
		a, err := tensor.NewFloat64(shape, data)
		AssertNoError(t, err)
		return a
	}
	st, err := tensor.NewInt64(lt, state)
	AssertNoError(t, err)
	lanes, err := tensor.NewInt64([]int{numLights}, laneIDs)
	AssertNoError(t, err)
	vm, err := tensor.NewBool(lt, valid)
	AssertNoError(t, err)
	lights, err := scenario.NewTrafficLights(mkF(x, lt), mkF(y, lt), mkF(z, lt), st, lanes, vm)
	AssertNoError(t, err)
	return lights
}

// NewObjectMetadata builds metadata for numObjects objects: object 0 is
// the SDC vehicle, even objects are vehicles, odd objects alternate
// pedestrian and cyclist; every third object is modeled.
func NewObjectMetadata(t *testing.T, numObjects int) *scenario.ObjectMetadata {
	t.Helper()
	o := []int{numObjects}
	types := make([]int64, numObjects)
	ids := make([]int64, numObjects)
	isSDC := make([]bool, numObjects)
	isModeled := make([]bool, numObjects)
	for i := 0; i < numObjects; i++ {
		ids[i] = int64(1000 + i)
		switch {
		case i%2 == 0:
			types[i] = int64(scenario.ObjectTypeVehicle)
		case i%4 == 1:
			types[i] = int64(scenario.ObjectTypePedestrian)
		default:
			types[i] = int64(scenario.ObjectTypeCyclist)
		}
		isModeled[i] = i%3 == 0
	}
	isSDC[0] = true
	tt, err := tensor.NewInt64(o, types)
	AssertNoError(t, err)
	ii, err := tensor.NewInt64(o, ids)
	AssertNoError(t, err)
	sdc, err := tensor.NewBool(o, isSDC)
	AssertNoError(t, err)
	mod, err := tensor.NewBool(o, isModeled)
	AssertNoError(t, err)
	md, err := scenario.NewObjectMetadata(tt, ii, sdc, mod)
	AssertNoError(t, err)
	return md
}

// NewScenario builds a complete well-formed scenario fixture.
func NewScenario(t *testing.T, numObjects, numTimesteps int) *scenario.Scenario {
	t.Helper()
	s := &scenario.Scenario{
		ID:                 fmt.Sprintf("fixture-%dx%d", numObjects, numTimesteps),
		LogTrajectory:      NewTrajectory(t, numObjects, numTimesteps),
		RoadgraphPoints:    NewRoadgraph(t, 40),
		LogTrafficLight:    NewTrafficLights(t, 2, numTimesteps),
		ObjectMetadata:     NewObjectMetadata(t, numObjects),
		RemainingTimesteps: 0,
	}
	if result := scenario.Validate(s); !result.Valid {
		t.Fatalf("fixture scenario invalid: %v", result.Issues)
	}
	return s
}
