package monitor_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/scenario.report/internal/dataset"
	"github.com/banshee-data/scenario.report/internal/monitor"
	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/tensor"
	"github.com/banshee-data/scenario.report/internal/testutil"
)

func TestScenarioPlotterRender(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 8, 20)
	path := filepath.Join(t.TempDir(), "scenario.png")

	sp := &monitor.ScenarioPlotter{}
	require.NoError(t, sp.Render(s, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// PNG magic bytes
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestScenarioPlotterRenderUnknownTypeCodes(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 4, 10)

	// type codes are data; a file may carry values outside the known enum,
	// including negative ones
	codes, err := tensor.NewInt64([]int{4}, []int64{-1, 99, 1, 2})
	require.NoError(t, err)
	odd := s.With(scenario.ScenarioOverrides{
		ObjectMetadata: s.ObjectMetadata.With(scenario.ObjectMetadataOverrides{ObjectTypes: codes}),
	})

	path := filepath.Join(t.TempDir(), "odd-codes.png")
	sp := &monitor.ScenarioPlotter{}
	require.NoError(t, sp.Render(odd, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderScenarioHTML(t *testing.T) {
	t.Parallel()
	s := testutil.NewScenario(t, 8, 20)

	var buf bytes.Buffer
	require.NoError(t, monitor.RenderScenarioHTML(s, 0, &buf))
	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "roadgraph")
	assert.Contains(t, html, "sdc")
}

func TestRenderScenarioHTMLDownsamples(t *testing.T) {
	t.Parallel()
	cfg := dataset.SyntheticConfig{NumObjects: 4, NumTimesteps: 10, NumRoadPoints: 2000, NumLights: 2}
	s, err := dataset.Synthetic("downsample-test", cfg, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	var full, sparse bytes.Buffer
	require.NoError(t, monitor.RenderScenarioHTML(s, 5000, &full))
	require.NoError(t, monitor.RenderScenarioHTML(s, 200, &sparse))
	assert.Less(t, sparse.Len(), full.Len())
}
