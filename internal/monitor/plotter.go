// Package monitor renders scenarios for inspection: static PNG scatter
// plots via gonum/plot, interactive HTML charts via go-echarts, and the
// HTTP server exposing both over the scenario catalogue.
package monitor

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/scenario.report/internal/scenario"
)

// palette assigns a fixed colour per object type; index by ObjectType
// modulo length.
var palette = []color.RGBA{
	{R: 0x88, G: 0x88, B: 0x88, A: 0xff}, // unset
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // vehicle
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // pedestrian
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // cyclist
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // other
}

var sdcColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}

// ScenarioPlotter renders PNG scatter plots of a scenario: roadgraph
// points in grey, one trajectory line per object over its valid
// timesteps, the self-driven object highlighted.
type ScenarioPlotter struct {
	// GlyphRadius is the roadgraph point size; zero means a 1pt default.
	GlyphRadius vg.Length
}

// Render writes a PNG of the scenario to path. The plot is square with
// equal-scale axes so geometry keeps its aspect ratio.
func (sp *ScenarioPlotter) Render(s *scenario.Scenario, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("scenario %s (%d objects, %d timesteps)", s.ID, s.NumObjects(), s.NumTimesteps())
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	radius := sp.GlyphRadius
	if radius == 0 {
		radius = vg.Points(1)
	}

	rg := s.RoadgraphPoints
	roadXYs := make(plotter.XYs, 0, rg.NumPoints())
	for i := 0; i < rg.NumPoints(); i++ {
		if !rg.Valid.MustAt(i) {
			continue
		}
		roadXYs = append(roadXYs, plotter.XY{X: rg.X.MustAt(i), Y: rg.Y.MustAt(i)})
	}
	if len(roadXYs) > 0 {
		road, err := plotter.NewScatter(roadXYs)
		if err != nil {
			return fmt.Errorf("roadgraph scatter: %w", err)
		}
		road.GlyphStyle.Radius = radius
		road.GlyphStyle.Color = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
		p.Add(road)
	}

	traj := s.LogTrajectory
	md := s.ObjectMetadata
	sdcIdx := md.SDCIndex()
	for o := 0; o < traj.NumObjects(); o++ {
		xys := make(plotter.XYs, 0, traj.NumTimesteps())
		for ts := 0; ts < traj.NumTimesteps(); ts++ {
			if !traj.Valid.MustAt(o, ts) {
				continue
			}
			xys = append(xys, plotter.XY{X: traj.X.MustAt(o, ts), Y: traj.Y.MustAt(o, ts)})
		}
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("object %d line: %w", o, err)
		}
		// Go's % preserves sign; keep the index non-negative for codes
		// outside the known range.
		idx := int(md.ObjectTypes.MustAt(o)) % len(palette)
		if idx < 0 {
			idx += len(palette)
		}
		line.Color = palette[idx]
		if o == sdcIdx {
			line.Color = sdcColor
			line.Width = vg.Points(2)
		}
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
