package dataset_test

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/scenario.report/internal/dataset"
	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	s1 := testutil.NewScenario(t, 8, 20)
	s2 := testutil.NewScenario(t, 4, 10)

	var buf bytes.Buffer
	w := dataset.NewWriter(&buf)
	require.NoError(t, w.Write(s1))
	require.NoError(t, w.Write(s2))
	require.NoError(t, w.Close())

	it := dataset.NewIterator(&buf)
	got1, err := it.Next()
	require.NoError(t, err)
	got2, err := it.Next()
	require.NoError(t, err)
	_, err = it.Next()
	assert.Equal(t, io.EOF, err)

	assert.True(t, s1.Equal(got1))
	assert.True(t, s2.Equal(got2))
}

func TestRoundTripFiles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"scenarios.ndjson", "scenarios.ndjson.gz"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), name)
			s := testutil.NewScenario(t, 4, 10)

			w, err := dataset.Create(path)
			require.NoError(t, err)
			require.NoError(t, w.Write(s))
			require.NoError(t, w.Close())

			it, err := dataset.Open(path)
			require.NoError(t, err)
			defer it.Close()

			got, err := it.Next()
			require.NoError(t, err)
			assert.True(t, s.Equal(got))

			_, err = it.Next()
			assert.Equal(t, io.EOF, err)
		})
	}
}

func TestIteratorSkipsBlankLines(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 4, 10)

	var buf bytes.Buffer
	w := dataset.NewWriter(&buf)
	require.NoError(t, w.Write(s))
	payload := "\n\n" + buf.String() + "\n"

	it := dataset.NewIterator(strings.NewReader(payload))
	got, err := it.Next()
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
}

func TestIteratorErrors(t *testing.T) {
	t.Parallel()

	t.Run("malformed json carries line number", func(t *testing.T) {
		t.Parallel()
		it := dataset.NewIterator(strings.NewReader("{not json\n"))
		_, err := it.Next()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("shape mismatch carries line number", func(t *testing.T) {
		t.Parallel()
		// x declares 2x2 but carries 3 values
		doc := `{"id":"bad","log_trajectory":{"num_objects":2,"num_timesteps":2,"x":[1,2,3],"y":[1,2,3,4],"z":[1,2,3,4],"vel_x":[1,2,3,4],"vel_y":[1,2,3,4],"yaw":[1,2,3,4],"valid":[true,true,true,true]},"roadgraph_points":{"num_points":0,"x":[],"y":[],"z":[],"dir_x":[],"dir_y":[],"types":[],"ids":[],"valid":[]},"log_traffic_light":{"num_lights":0,"num_timesteps":2,"x":[],"y":[],"z":[],"state":[],"lane_ids":[],"valid":[]},"object_metadata":{"num_objects":2,"object_types":[1,1],"ids":[1,2],"is_sdc":[true,false],"is_modeled":[false,false]},"remaining_timesteps":0}`
		it := dataset.NewIterator(strings.NewReader(doc + "\n"))
		_, err := it.Next()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
		assert.Contains(t, err.Error(), "log_trajectory.x")
	})

	t.Run("invalid scenario rejected", func(t *testing.T) {
		t.Parallel()
		s := testutil.NewScenario(t, 4, 10)
		// metadata for 5 objects against a 4-object trajectory
		bad := s.With(scenario.ScenarioOverrides{
			ObjectMetadata: testutil.NewObjectMetadata(t, 5),
		})
		var buf bytes.Buffer
		w := dataset.NewWriter(&buf)
		require.NoError(t, w.Write(bad))

		it := dataset.NewIterator(&buf)
		_, err := it.Next()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid scenario")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := dataset.Open(filepath.Join(t.TempDir(), "absent.ndjson"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestReadAll(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w := dataset.NewWriter(&buf)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Write(testutil.NewScenario(t, 4, 10)))
	}

	all, err := dataset.ReadAll(dataset.NewIterator(&buf))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSynthetic(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(7))
	cfg := dataset.SyntheticConfig{NumObjects: 16, NumTimesteps: 40, NumRoadPoints: 120, NumLights: 3}

	s, err := dataset.Synthetic("synthetic-test", cfg, rnd)
	require.NoError(t, err)

	result := scenario.Validate(s)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
	assert.Equal(t, 16, s.NumObjects())
	assert.Equal(t, 40, s.NumTimesteps())
	assert.Equal(t, 120, s.RoadgraphPoints.NumPoints())
	assert.Equal(t, 3, s.LogTrafficLight.NumLights())

	t.Run("bad config rejected", func(t *testing.T) {
		t.Parallel()
		_, err := dataset.Synthetic("x", dataset.SyntheticConfig{}, rand.New(rand.NewSource(1)))
		assert.Error(t, err)
	})

	t.Run("single timestep", func(t *testing.T) {
		t.Parallel()
		one := dataset.SyntheticConfig{NumObjects: 32, NumTimesteps: 1, NumRoadPoints: 60, NumLights: 2}
		s, err := dataset.Synthetic("one-step", one, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, 1, s.NumTimesteps())
		// no room for late entries, so every object is valid from the start
		assert.Equal(t, 32, s.LogTrajectory.Valid.CountTrue())
	})
}
