package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
)

// temporalFigure is the 2x2 temporal analysis: yearly trend, decade bars,
// top-5 country trends, and the cumulative count.
func temporalFigure(table *dataset.Table, result analysis.Result) ([][]*plot.Plot, error) {
	yearly, err := yearlyTrendPanel(result.Temporal)
	if err != nil {
		return nil, err
	}
	decades, err := decadePanel(result.Temporal)
	if err != nil {
		return nil, err
	}
	countries, err := countryTrendPanel(table, result)
	if err != nil {
		return nil, err
	}
	cumulative, err := cumulativePanel(result.Temporal)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{yearly, decades}, {countries, cumulative}}, nil
}

func yearlyTrendPanel(result analysis.TemporalResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Nuclear Explosions Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Explosions"

	xys := make(plotter.XYs, 0, len(result.Yearly))
	for _, yc := range result.Yearly {
		xys = append(xys, plotter.XY{X: float64(yc.Year), Y: float64(yc.Count)})
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	line.Width = vg.Points(2)
	points.Color = line.Color
	points.Radius = vg.Points(2)

	p.Add(line, points, plotter.NewGrid())
	return p, nil
}

func decadePanel(result analysis.TemporalResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Nuclear Explosions by Decade"
	p.X.Label.Text = "Decade"
	p.Y.Label.Text = "Number of Explosions"

	values := make(plotter.Values, 0, len(result.Decades))
	labels := make([]string, 0, len(result.Decades))
	for _, dc := range result.Decades {
		values = append(values, float64(dc.Count))
		labels = append(labels, fmt.Sprintf("%d", dc.Decade))
	}

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 255, G: 127, B: 80, A: 255} // coral
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)
	return p, nil
}

func countryTrendPanel(table *dataset.Table, result analysis.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Top 5 Countries: Yearly Trends"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Number of Explosions"

	for i, country := range topKeys(result.Country.Counts, 5) {
		line, points, err := plotter.NewLinePoints(yearlySeries(table, country))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Color = plotutil.Color(i)
		points.Radius = vg.Points(1.5)
		p.Add(line, points)
		p.Legend.Add(country, line)
	}

	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p, nil
}

func cumulativePanel(result analysis.TemporalResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Cumulative Nuclear Explosions"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Cumulative Explosions"

	xys := make(plotter.XYs, 0, len(result.Yearly))
	running := 0
	for _, yc := range result.Yearly {
		running += yc.Count
		xys = append(xys, plotter.XY{X: float64(yc.Year), Y: float64(running)})
	}

	area, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	area.FillColor = color.RGBA{R: 135, G: 206, B: 235, A: 180} // skyblue
	area.Color = color.RGBA{R: 0, G: 0, B: 128, A: 255}         // navy
	area.Width = vg.Points(2)

	p.Add(area, plotter.NewGrid())
	return p, nil
}
