package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/scenario/analysis"
	"github.com/banshee-data/scenario.report/internal/tensor"
	"github.com/banshee-data/scenario.report/internal/testutil"
)

func TestSpeedProfile(t *testing.T) {
	t.Parallel()
	traj := testutil.NewTrajectory(t, 4, 10)

	t.Run("constant speed object", func(t *testing.T) {
		t.Parallel()
		// fixture object 0 drives at 1 m/s along x
		profile, err := analysis.SpeedProfile(traj, 0)
		require.NoError(t, err)
		require.Len(t, profile, 10)
		for ts, v := range profile {
			assert.InDelta(t, 1.0, v, 1e-9, "timestep %d", ts)
		}
	})

	t.Run("invalid steps are NaN", func(t *testing.T) {
		t.Parallel()
		// fixture marks the last timestep of odd objects invalid
		profile, err := analysis.SpeedProfile(traj, 1)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(profile[0]))
		assert.True(t, math.IsNaN(profile[9]))
	})

	t.Run("object out of range", func(t *testing.T) {
		t.Parallel()
		_, err := analysis.SpeedProfile(traj, 4)
		assert.ErrorIs(t, err, tensor.ErrOutOfRange)
	})
}

func TestSummarizeSpeed(t *testing.T) {
	t.Parallel()

	sum := analysis.SummarizeSpeed([]float64{1, 3, math.NaN(), 5})
	assert.InDelta(t, 3.0, sum.MeanMPS, 1e-9)
	assert.InDelta(t, 5.0, sum.MaxMPS, 1e-9)
	assert.Equal(t, 3, sum.ValidSteps)

	empty := analysis.SummarizeSpeed([]float64{math.NaN(), math.NaN()})
	assert.Zero(t, empty.MeanMPS)
	assert.Zero(t, empty.MaxMPS)
	assert.Zero(t, empty.ValidSteps)
}

func TestSceneExtentExcludesInvalid(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 4, 10)

	extent := analysis.SceneExtent(s)
	assert.False(t, extent.Empty())
	// the sentinel value sits at -1; valid fixture geometry never
	// reaches below the roadgraph/trajectory minimum of 0
	assert.GreaterOrEqual(t, extent.MinX, 0.0)
	assert.GreaterOrEqual(t, extent.MinY, 0.0)
}

func TestTakeCensus(t *testing.T) {
	t.Parallel()
	md := testutil.NewObjectMetadata(t, 8)

	census := analysis.TakeCensus(md)
	assert.Equal(t, 8, census.Total)
	assert.Equal(t, 0, census.SDCIndex)
	assert.Equal(t, int64(1000), census.SDCID)

	// every object is counted exactly once
	counted := 0
	for _, n := range census.ByType {
		counted += n
	}
	assert.Equal(t, 8, counted)
	// fixture: even indices are vehicles
	assert.Equal(t, 4, census.ByType[scenario.ObjectTypeVehicle])
}

func TestLaneLightIndex(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 4, 10)

	// fixture lights control lanes 100 and 101, both present in the
	// fixture roadgraph
	lanes := analysis.LaneLightIndex(s)
	require.Len(t, lanes, 2)
	assert.Equal(t, []int{0}, lanes[100])
	assert.Equal(t, []int{1}, lanes[101])
}
