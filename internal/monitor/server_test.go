package monitor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/scenario.report/internal/dataset"
	"github.com/banshee-data/scenario.report/internal/monitor"
	"github.com/banshee-data/scenario.report/internal/scenariodb"
	"github.com/banshee-data/scenario.report/internal/testutil"
)

// newTestServer backs a WebServer with a fresh catalogue holding one
// ingested fixture scenario, returning its summary for lookups.
func newTestServer(t *testing.T) (*monitor.WebServer, *scenariodb.Summary) {
	t.Helper()
	dir := t.TempDir()

	s := testutil.NewScenario(t, 4, 10)
	datasetPath := filepath.Join(dir, "scenarios.ndjson")
	w, err := dataset.Create(datasetPath)
	require.NoError(t, err)
	require.NoError(t, w.Write(s))
	require.NoError(t, w.Close())

	db, err := scenariodb.Open(filepath.Join(dir, "catalogue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := scenariodb.NewScenarioStore(db)
	sum := scenariodb.Summarize(s, datasetPath)
	require.NoError(t, store.Insert(sum))

	return monitor.NewWebServer(store), sum
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	ws, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	ws.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListScenarios(t *testing.T) {
	t.Parallel()
	ws, sum := newTestServer(t)

	rec := httptest.NewRecorder()
	ws.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenarios", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []*scenariodb.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, sum.ScenarioUUID, got[0].ScenarioUUID)
	assert.Equal(t, sum.ScenarioID, got[0].ScenarioID)
}

func TestGetScenario(t *testing.T) {
	t.Parallel()
	ws, sum := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		ws.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenarios/"+sum.ScenarioUUID, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var got scenariodb.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, sum.NumObjects, got.NumObjects)
		assert.Equal(t, sum.SourceFile, got.SourceFile)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		ws.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenarios/no-such-uuid", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "not found")
	})
}

func TestChart(t *testing.T) {
	t.Parallel()
	ws, sum := newTestServer(t)

	t.Run("renders html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		ws.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenarios/"+sum.ScenarioUUID+"/chart", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "echarts")
	})

	t.Run("missing scenario", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		ws.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenarios/no-such-uuid/chart", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()
	_, sum := newTestServer(t)

	s, err := monitor.LoadScenario(sum.SourceFile, sum.ScenarioID)
	require.NoError(t, err)
	assert.Equal(t, sum.ScenarioID, s.ID)

	_, err = monitor.LoadScenario(sum.SourceFile, "absent-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
