package scenariodb

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/scenario/analysis"
)

// ErrNotFound indicates a catalogue row that does not exist.
var ErrNotFound = errors.New("scenariodb: scenario not found")

// Summary is one catalogue row describing an ingested scenario.
type Summary struct {
	ScenarioUUID       string  `json:"scenario_uuid"`
	ScenarioID         string  `json:"scenario_id"`
	SourceFile         string  `json:"source_file"`
	NumObjects         int     `json:"num_objects"`
	NumTimesteps       int     `json:"num_timesteps"`
	NumRoadgraphPoints int     `json:"num_roadgraph_points"`
	NumTrafficLights   int     `json:"num_traffic_lights"`
	SDCObjectID        int64   `json:"sdc_object_id"`
	ModeledObjects     int     `json:"modeled_objects"`
	MinX               float64 `json:"min_x"`
	MaxX               float64 `json:"max_x"`
	MinY               float64 `json:"min_y"`
	MaxY               float64 `json:"max_y"`
	IngestedAt         int64   `json:"ingested_at"`
}

// Summarize derives the catalogue row for a scenario read from
// sourceFile.
func Summarize(s *scenario.Scenario, sourceFile string) *Summary {
	census := analysis.TakeCensus(s.ObjectMetadata)
	extent := analysis.SceneExtent(s)
	return &Summary{
		ScenarioID:         s.ID,
		SourceFile:         sourceFile,
		NumObjects:         s.NumObjects(),
		NumTimesteps:       s.NumTimesteps(),
		NumRoadgraphPoints: s.RoadgraphPoints.NumPoints(),
		NumTrafficLights:   s.LogTrafficLight.NumLights(),
		SDCObjectID:        census.SDCID,
		ModeledObjects:     census.Modeled,
		MinX:               extent.MinX,
		MaxX:               extent.MaxX,
		MinY:               extent.MinY,
		MaxY:               extent.MaxY,
	}
}

// ScenarioStore provides persistence for scenario summaries.
type ScenarioStore struct {
	db *sql.DB
}

// NewScenarioStore creates a store over an open catalogue database.
func NewScenarioStore(db *DB) *ScenarioStore {
	return &ScenarioStore{db: db.DB}
}

// Insert persists a summary. If ScenarioUUID is empty a UUID is
// generated; if IngestedAt is zero the current time is recorded.
func (s *ScenarioStore) Insert(sum *Summary) error {
	if sum.ScenarioUUID == "" {
		sum.ScenarioUUID = uuid.New().String()
	}
	if sum.IngestedAt == 0 {
		sum.IngestedAt = time.Now().UnixNano()
	}
	return retryOnBusy(func() error {
		_, err := s.db.Exec(`
			INSERT INTO scenarios (
				scenario_uuid, scenario_id, source_file,
				num_objects, num_timesteps, num_roadgraph_points, num_traffic_lights,
				sdc_object_id, modeled_objects,
				min_x, max_x, min_y, max_y, ingested_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sum.ScenarioUUID, sum.ScenarioID, sum.SourceFile,
			sum.NumObjects, sum.NumTimesteps, sum.NumRoadgraphPoints, sum.NumTrafficLights,
			sum.SDCObjectID, sum.ModeledObjects,
			sum.MinX, sum.MaxX, sum.MinY, sum.MaxY, sum.IngestedAt,
		)
		return err
	})
}

const summaryColumns = `scenario_uuid, scenario_id, source_file,
	num_objects, num_timesteps, num_roadgraph_points, num_traffic_lights,
	sdc_object_id, modeled_objects, min_x, max_x, min_y, max_y, ingested_at`

// Get returns one summary by its catalogue UUID.
func (s *ScenarioStore) Get(scenarioUUID string) (*Summary, error) {
	row := s.db.QueryRow(`SELECT `+summaryColumns+` FROM scenarios WHERE scenario_uuid = ?`, scenarioUUID)
	sum, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, scenarioUUID)
	}
	return sum, err
}

// List returns all summaries ordered by ingest time descending.
func (s *ScenarioStore) List() ([]*Summary, error) {
	rows, err := s.db.Query(`SELECT ` + summaryColumns + ` FROM scenarios ORDER BY ingested_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query scenarios: %w", err)
	}
	defer rows.Close()

	var out []*Summary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// ListBySource returns summaries for one dataset file.
func (s *ScenarioStore) ListBySource(sourceFile string) ([]*Summary, error) {
	rows, err := s.db.Query(`SELECT `+summaryColumns+` FROM scenarios WHERE source_file = ? ORDER BY ingested_at DESC`, sourceFile)
	if err != nil {
		return nil, fmt.Errorf("query scenarios by source: %w", err)
	}
	defer rows.Close()

	var out []*Summary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes one summary by its catalogue UUID.
func (s *ScenarioStore) Delete(scenarioUUID string) error {
	return retryOnBusy(func() error {
		res, err := s.db.Exec(`DELETE FROM scenarios WHERE scenario_uuid = ?`, scenarioUUID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, scenarioUUID)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (*Summary, error) {
	var sum Summary
	err := row.Scan(
		&sum.ScenarioUUID, &sum.ScenarioID, &sum.SourceFile,
		&sum.NumObjects, &sum.NumTimesteps, &sum.NumRoadgraphPoints, &sum.NumTrafficLights,
		&sum.SDCObjectID, &sum.ModeledObjects,
		&sum.MinX, &sum.MaxX, &sum.MinY, &sum.MaxY, &sum.IngestedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
