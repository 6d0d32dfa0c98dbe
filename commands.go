package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/banshee-data/scenario.report/internal/config"
	"github.com/banshee-data/scenario.report/internal/dataset"
	"github.com/banshee-data/scenario.report/internal/monitor"
	"github.com/banshee-data/scenario.report/internal/scenario"
	"github.com/banshee-data/scenario.report/internal/scenario/analysis"
	"github.com/banshee-data/scenario.report/internal/scenariodb"
	"github.com/banshee-data/scenario.report/internal/units"
)

const defaultCatalogue = "scenario_catalogue.db"

// runIngest reads every scenario from a dataset file and records its
// summary in the catalogue.
func runIngest(args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	dbPath := fs.String("db", defaultCatalogue, "catalogue database path")
	input := fs.String("input", "", "dataset file (.ndjson or .ndjson.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("-input is required")
	}

	db, err := scenariodb.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	store := scenariodb.NewScenarioStore(db)

	it, err := dataset.Open(*input)
	if err != nil {
		return err
	}
	defer it.Close()

	count := 0
	for {
		s, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		sum := scenariodb.Summarize(s, *input)
		if err := store.Insert(sum); err != nil {
			return fmt.Errorf("insert scenario %s: %w", s.ID, err)
		}
		count++
		log.Printf("[ingest] %s: %d objects, %d timesteps, %d roadgraph points",
			s.ID, sum.NumObjects, sum.NumTimesteps, sum.NumRoadgraphPoints)
	}
	log.Printf("[ingest] catalogued %d scenarios from %s", count, *input)
	return nil
}

// runDescribe prints the record shapes and derived summaries for one
// scenario, the quick-look flow for a freshly downloaded dataset.
func runDescribe(args []string) error {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	input := fs.String("input", "", "dataset file")
	index := fs.Int("index", 0, "scenario index within the file")
	unit := fs.String("units", units.MPS, "speed units: "+units.ValidUnitsString())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("-input is required")
	}
	if !units.IsValid(*unit) {
		return fmt.Errorf("invalid units %q, want one of: %s", *unit, units.ValidUnitsString())
	}

	s, err := loadScenarioByIndex(*input, *index)
	if err != nil {
		return err
	}

	traj := s.LogTrajectory
	xyz, err := traj.XYZ()
	if err != nil {
		return err
	}
	velXY, err := traj.VelXY()
	if err != nil {
		return err
	}

	fmt.Printf("scenario %s\n", s.ID)
	fmt.Printf("  log_trajectory:      x/y/z/yaw %v, xyz %v, vel_xy %v, valid %v\n",
		traj.X.Shape(), xyz.Shape(), velXY.Shape(), traj.Valid.Shape())
	fmt.Printf("  roadgraph_points:    %v\n", s.RoadgraphPoints.X.Shape())
	fmt.Printf("  log_traffic_light:   %v (lane_ids %v)\n",
		s.LogTrafficLight.X.Shape(), s.LogTrafficLight.LaneIDs.Shape())
	fmt.Printf("  object_metadata:     %v\n", s.ObjectMetadata.ObjectTypes.Shape())
	fmt.Printf("  remaining_timesteps: %d\n", s.RemainingTimesteps)

	census := analysis.TakeCensus(s.ObjectMetadata)
	fmt.Printf("  objects: %d total, %d modeled, sdc index %d (id %d)\n",
		census.Total, census.Modeled, census.SDCIndex, census.SDCID)
	for _, objType := range []scenario.ObjectType{
		scenario.ObjectTypeVehicle, scenario.ObjectTypePedestrian,
		scenario.ObjectTypeCyclist, scenario.ObjectTypeOther, scenario.ObjectTypeUnset,
	} {
		if n := census.ByType[objType]; n > 0 {
			fmt.Printf("    %-12s %d\n", objType, n)
		}
	}

	if census.SDCIndex >= 0 {
		profile, err := analysis.SpeedProfile(traj, census.SDCIndex)
		if err != nil {
			return err
		}
		sum := analysis.SummarizeSpeed(profile)
		fmt.Printf("  sdc speed: mean %.2f %s, max %.2f %s over %d valid steps\n",
			units.ConvertSpeed(sum.MeanMPS, *unit), units.Label(*unit),
			units.ConvertSpeed(sum.MaxMPS, *unit), units.Label(*unit),
			sum.ValidSteps)
	}

	extent := analysis.SceneExtent(s)
	fmt.Printf("  extent: x [%.1f, %.1f] y [%.1f, %.1f]\n", extent.MinX, extent.MaxX, extent.MinY, extent.MaxY)

	if lanes := analysis.LaneLightIndex(s); len(lanes) > 0 {
		fmt.Printf("  controlled lanes: %d\n", len(lanes))
	}
	return nil
}

// runSlice writes a new dataset with every scenario sliced along an axis.
func runSlice(args []string) error {
	fs := flag.NewFlagSet("slice", flag.ExitOnError)
	input := fs.String("input", "", "dataset file")
	output := fs.String("output", "", "output dataset file")
	axisName := fs.String("axis", string(scenario.AxisTime), "axis: time, objects, points or lights")
	start := fs.Int("start", 0, "slice start index")
	size := fs.Int("size", 1, "slice size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" || *output == "" {
		return fmt.Errorf("-input and -output are required")
	}
	axis := scenario.Axis(strings.ToLower(*axisName))

	it, err := dataset.Open(*input)
	if err != nil {
		return err
	}
	defer it.Close()
	w, err := dataset.Create(*output)
	if err != nil {
		return err
	}
	defer w.Close()

	count := 0
	for {
		s, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		sliced, err := s.SliceAxis(axis, *start, *size)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", s.ID, err)
		}
		if err := w.Write(sliced); err != nil {
			return err
		}
		count++
	}
	log.Printf("[slice] wrote %d scenarios sliced %s[%d:%d) to %s", count, axis, *start, *start+*size, *output)
	return nil
}

// runPlot renders one scenario; the output format follows the file
// extension (.png via gonum/plot, .html via go-echarts).
func runPlot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	input := fs.String("input", "", "dataset file")
	index := fs.Int("index", 0, "scenario index within the file")
	out := fs.String("out", "scenario.png", "output file (.png or .html)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("-input is required")
	}

	s, err := loadScenarioByIndex(*input, *index)
	if err != nil {
		return err
	}

	switch {
	case strings.HasSuffix(*out, ".html"):
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := monitor.RenderScenarioHTML(s, 0, f); err != nil {
			return err
		}
	case strings.HasSuffix(*out, ".png"):
		sp := &monitor.ScenarioPlotter{}
		if err := sp.Render(s, *out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output extension for %q (want .png or .html)", *out)
	}
	log.Printf("[plot] wrote %s for scenario %s", *out, s.ID)
	return nil
}

// runServe exposes the catalogue and charts over HTTP until interrupted.
// Options come from the optional JSON config file; flags win.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "", "optional JSON config file")
	dbPath := fs.String("db", "", "catalogue database path (default "+defaultCatalogue+")")
	listen := fs.String("listen", "", "listen address (default :8080)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.EmptyServeConfig()
	if *cfgPath != "" {
		var err error
		cfg, err = config.LoadServeConfig(*cfgPath)
		if err != nil {
			return err
		}
		log.Printf("[serve] loaded config from %s", *cfgPath)
	}
	if *dbPath == "" {
		*dbPath = cfg.GetCataloguePath()
	}
	if *listen == "" {
		*listen = cfg.GetListenAddr()
	}

	db, err := scenariodb.Open(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ws := monitor.NewWebServer(scenariodb.NewScenarioStore(db))
	ws.DefaultChartPoints = cfg.GetMaxChartPoints()
	srv := &http.Server{
		Addr:    *listen,
		Handler: ws,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[serve] listening on %s", *listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Print("[serve] shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// loadScenarioByIndex returns the index-th scenario of a dataset file.
func loadScenarioByIndex(path string, index int) (*scenario.Scenario, error) {
	if index < 0 {
		return nil, fmt.Errorf("negative scenario index %d", index)
	}
	it, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	for i := 0; ; i++ {
		s, err := it.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("scenario index %d out of range (%d scenarios in %s)", index, i, path)
		}
		if err != nil {
			return nil, err
		}
		if i == index {
			return s, nil
		}
	}
}
