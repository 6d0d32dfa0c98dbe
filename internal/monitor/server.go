package monitor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/banshee-data/scenario.report/internal/dataset"
	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/scenariodb"
)

// WebServer serves the scenario catalogue and per-scenario charts.
type WebServer struct {
	store *scenariodb.ScenarioStore
	mux   *http.ServeMux

	// DefaultChartPoints is the roadgraph downsampling bound used when a
	// chart request has no max_points param; zero means 8000.
	DefaultChartPoints int
}

// NewWebServer builds the server over an open catalogue store.
func NewWebServer(store *scenariodb.ScenarioStore) *WebServer {
	ws := &WebServer{store: store, mux: http.NewServeMux()}
	ws.mux.HandleFunc("GET /healthz", ws.handleHealth)
	ws.mux.HandleFunc("GET /api/scenarios", ws.handleList)
	ws.mux.HandleFunc("GET /api/scenarios/{uuid}", ws.handleGet)
	ws.mux.HandleFunc("GET /api/scenarios/{uuid}/chart", ws.handleChart)
	return ws
}

// ServeHTTP implements http.Handler.
func (ws *WebServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws.mux.ServeHTTP(w, r)
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	ws.writeJSON(w, map[string]string{"status": "ok"})
}

func (ws *WebServer) handleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := ws.store.List()
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("list scenarios: %v", err))
		return
	}
	if summaries == nil {
		summaries = []*scenariodb.Summary{}
	}
	ws.writeJSON(w, summaries)
}

func (ws *WebServer) handleGet(w http.ResponseWriter, r *http.Request) {
	sum, err := ws.store.Get(r.PathValue("uuid"))
	if errors.Is(err, scenariodb.ErrNotFound) {
		ws.writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	ws.writeJSON(w, sum)
}

// handleChart loads the scenario from its source dataset file and
// renders the interactive chart. Query params:
//   - max_points (optional; default 8000) to reduce payload size
func (ws *WebServer) handleChart(w http.ResponseWriter, r *http.Request) {
	sum, err := ws.store.Get(r.PathValue("uuid"))
	if errors.Is(err, scenariodb.ErrNotFound) {
		ws.writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	maxPoints := ws.DefaultChartPoints
	if maxPoints == 0 {
		maxPoints = 8000
	}
	if mp := r.URL.Query().Get("max_points"); mp != "" {
		if v, err := strconv.Atoi(mp); err == nil && v > 100 && v <= 50000 {
			maxPoints = v
		}
	}

	s, err := LoadScenario(sum.SourceFile, sum.ScenarioID)
	if err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("load scenario: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RenderScenarioHTML(s, maxPoints, w); err != nil {
		log.Printf("[monitor] render chart for %s: %v", sum.ScenarioUUID, err)
	}
}

// LoadScenario scans a dataset file for the scenario with the given id.
func LoadScenario(path, scenarioID string) (*scenario.Scenario, error) {
	it, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	for {
		s, err := it.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("scenario %q not found in %s", scenarioID, path)
		}
		if err != nil {
			return nil, err
		}
		if s.ID == scenarioID {
			return s, nil
		}
	}
}

func (ws *WebServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[monitor] write response: %v", err)
	}
}

func (ws *WebServer) writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
