package monitor

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/scenario.report/internal/scenario"
)

// RenderScenarioHTML renders an interactive scatter chart of the
// scenario to w: roadgraph points as one series, valid trajectory
// positions as one series per object type, the SDC as its own series.
// maxRoadPoints bounds the roadgraph payload; larger roadgraphs are
// downsampled by stride.
func RenderScenarioHTML(s *scenario.Scenario, maxRoadPoints int, w io.Writer) error {
	if maxRoadPoints <= 0 {
		maxRoadPoints = 8000
	}

	rg := s.RoadgraphPoints
	stride := 1
	if rg.NumPoints() > maxRoadPoints {
		stride = int(math.Ceil(float64(rg.NumPoints()) / float64(maxRoadPoints)))
	}
	roadData := make([]opts.ScatterData, 0, rg.NumPoints()/stride+1)
	maxAbs := 1.0
	for i := 0; i < rg.NumPoints(); i += stride {
		if !rg.Valid.MustAt(i) {
			continue
		}
		x, y := rg.X.MustAt(i), rg.Y.MustAt(i)
		if math.Abs(x) > maxAbs {
			maxAbs = math.Abs(x)
		}
		if math.Abs(y) > maxAbs {
			maxAbs = math.Abs(y)
		}
		roadData = append(roadData, opts.ScatterData{Value: []interface{}{x, y}})
	}

	traj := s.LogTrajectory
	md := s.ObjectMetadata
	sdcIdx := md.SDCIndex()
	byType := make(map[scenario.ObjectType][]opts.ScatterData)
	var sdcData []opts.ScatterData
	for o := 0; o < traj.NumObjects(); o++ {
		for ts := 0; ts < traj.NumTimesteps(); ts++ {
			if !traj.Valid.MustAt(o, ts) {
				continue
			}
			x, y := traj.X.MustAt(o, ts), traj.Y.MustAt(o, ts)
			if math.Abs(x) > maxAbs {
				maxAbs = math.Abs(x)
			}
			if math.Abs(y) > maxAbs {
				maxAbs = math.Abs(y)
			}
			point := opts.ScatterData{Value: []interface{}{x, y}}
			if o == sdcIdx {
				sdcData = append(sdcData, point)
				continue
			}
			objType := scenario.ObjectType(md.ObjectTypes.MustAt(o))
			byType[objType] = append(byType[objType], point)
		}
	}

	pad := maxAbs * 1.05

	chart := charts.NewScatter()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("Scenario %s", s.ID),
			Theme:     "dark",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Scenario %s", s.ID),
			Subtitle: fmt.Sprintf("objects=%d timesteps=%d roadgraph=%d stride=%d", s.NumObjects(), s.NumTimesteps(), rg.NumPoints(), stride),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	chart.AddSeries("roadgraph", roadData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	for _, objType := range []scenario.ObjectType{
		scenario.ObjectTypeVehicle, scenario.ObjectTypePedestrian,
		scenario.ObjectTypeCyclist, scenario.ObjectTypeOther, scenario.ObjectTypeUnset,
	} {
		if data := byType[objType]; len(data) > 0 {
			chart.AddSeries(objType.String(), data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
		}
	}
	if len(sdcData) > 0 {
		chart.AddSeries("sdc", sdcData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}

	if err := chart.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
