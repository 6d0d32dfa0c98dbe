package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/tensor"
	"github.com/banshee-data/scenario.report/internal/testutil"
)

func TestScenarioSliceTime(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 8, 20)

	sliced, err := s.SliceAxis(scenario.AxisTime, 5, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{8, 3}, sliced.LogTrajectory.X.Shape())
	assert.Equal(t, 3, sliced.LogTrafficLight.NumTimesteps())
	// records without the time axis pass through unchanged
	assert.True(t, sliced.RoadgraphPoints.Equal(s.RoadgraphPoints))
	assert.True(t, sliced.ObjectMetadata.Equal(s.ObjectMetadata))
	// 20 logged steps, window ends at 8, so 12 remain
	assert.Equal(t, 12, sliced.RemainingTimesteps)

	// the source aggregate is untouched
	assert.Equal(t, 20, s.NumTimesteps())
	assert.Equal(t, 0, s.RemainingTimesteps)
}

func TestScenarioSliceObjects(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 8, 20)

	sliced, err := s.SliceAxis(scenario.AxisObjects, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, sliced.NumObjects())
	assert.Equal(t, 4, sliced.ObjectMetadata.NumObjects())
	assert.True(t, sliced.LogTrafficLight.Equal(s.LogTrafficLight))
	assert.True(t, sliced.RoadgraphPoints.Equal(s.RoadgraphPoints))
	assert.Equal(t, s.RemainingTimesteps, sliced.RemainingTimesteps)
}

func TestScenarioSliceErrors(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 8, 20)

	_, err := s.SliceAxis(scenario.AxisTime, 18, 5)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)

	_, err = s.SliceAxis(scenario.Axis("frames"), 0, 1)
	assert.ErrorIs(t, err, scenario.ErrAxisNotPresent)
}

func TestScenarioMapArraysIdentity(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 8, 20)

	mapped, err := s.MapArrays(scenario.Identity)
	require.NoError(t, err)
	assert.True(t, s.Equal(mapped))
}

func TestScenarioWith(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 8, 20)

	newYaw := tensor.FullFloat64(0.5, 8, 20)
	replaced := s.With(scenario.ScenarioOverrides{
		LogTrajectory: s.LogTrajectory.With(scenario.TrajectoryOverrides{Yaw: newYaw}),
	})

	assert.True(t, replaced.LogTrajectory.Yaw.Equal(newYaw))
	assert.True(t, replaced.LogTrajectory.X.Equal(s.LogTrajectory.X))
	assert.True(t, replaced.RoadgraphPoints.Equal(s.RoadgraphPoints))
	assert.True(t, replaced.LogTrafficLight.Equal(s.LogTrafficLight))
	assert.True(t, replaced.ObjectMetadata.Equal(s.ObjectMetadata))
	assert.Equal(t, s.ID, replaced.ID)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("well-formed fixture", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewScenario(t, 8, 20)
		result := scenario.Validate(s)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Issues)
	})

	t.Run("no sdc", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewScenario(t, 8, 20)
		bad := s.With(scenario.ScenarioOverrides{
			ObjectMetadata: s.ObjectMetadata.With(scenario.ObjectMetadataOverrides{
				IsSDC: tensor.ZerosBool(8),
			}),
		})
		result := scenario.Validate(bad)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Issues, "no object flagged is_sdc")
	})

	t.Run("two sdc flags", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewScenario(t, 8, 20)
		flags := make([]bool, 8)
		flags[0], flags[3] = true, true
		isSDC, err := tensor.NewBool([]int{8}, flags)
		require.NoError(t, err)
		bad := s.With(scenario.ScenarioOverrides{
			ObjectMetadata: s.ObjectMetadata.With(scenario.ObjectMetadataOverrides{IsSDC: isSDC}),
		})
		result := scenario.Validate(bad)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Issues, "2 objects flagged is_sdc, want 1")
	})

	t.Run("object count mismatch", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewScenario(t, 8, 20)
		bad := s.With(scenario.ScenarioOverrides{
			ObjectMetadata: testutil.NewObjectMetadata(t, 5),
		})
		result := scenario.Validate(bad)
		assert.False(t, result.Valid)
	})

	t.Run("negative remaining timesteps", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewScenario(t, 8, 20)
		neg := -1
		bad := s.With(scenario.ScenarioOverrides{RemainingTimesteps: &neg})
		result := scenario.Validate(bad)
		assert.False(t, result.Valid)
	})
}
