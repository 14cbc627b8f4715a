package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"agri_planner/pkg/core/cashflow"
)

// WriteCashFlowChart renders the 12-month projection as a PNG: monthly
// net as bars, cumulative balance as a line, harvest months as markers.
func WriteCashFlowChart(path string, proj cashflow.Projection) error {
	p := plot.New()
	p.Title.Text = "12-Month Cash Flow Projection"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "₹"

	net := make(plotter.Values, len(proj.Rows))
	cumulative := make(plotter.XYs, len(proj.Rows))
	var harvestPoints plotter.XYs
	labels := make([]string, len(proj.Rows))

	// Bars occupy nominal positions 0..11; keep the line and markers on
	// the same axis.
	for i, row := range proj.Rows {
		net[i] = row.Net
		cumulative[i].X = float64(i)
		cumulative[i].Y = row.Cumulative
		labels[i] = row.MonthName[:3]
		if row.Harvest {
			harvestPoints = append(harvestPoints, plotter.XY{X: float64(i), Y: row.Income})
		}
	}

	bars, err := plotter.NewBarChart(net, vg.Points(14))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(bars)

	line, err := plotter.NewLine(cumulative)
	if err != nil {
		return fmt.Errorf("failed to build cumulative line: %w", err)
	}
	line.Color = color.RGBA{R: 34, G: 139, B: 34, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Cumulative", line)

	if len(harvestPoints) > 0 {
		scatter, err := plotter.NewScatter(harvestPoints)
		if err != nil {
			return fmt.Errorf("failed to build harvest markers: %w", err)
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 218, G: 165, B: 32, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(5)
		p.Add(scatter)
		p.Legend.Add("Harvest", scatter)
	}

	p.NominalX(labels...)
	p.Add(plotter.NewGrid())

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	return nil
}
