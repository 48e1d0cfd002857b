package chart

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
)

// yieldFigure is the 2x2 yield analysis: the yield histogram, per-country
// box plots, yield over time, and the category bars. The first three panels
// work in log10 space; zero and negative yields have no logarithm and are
// excluded there.
func yieldFigure(table *dataset.Table, result analysis.Result) ([][]*plot.Plot, error) {
	hist, err := yieldHistPanel(table)
	if err != nil {
		return nil, err
	}
	boxes, err := yieldBoxPanel(table, result)
	if err != nil {
		return nil, err
	}
	scatter, err := yieldOverTimePanel(table)
	if err != nil {
		return nil, err
	}
	categories, err := categoryPanel(result.Yield)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{hist, boxes}, {scatter, categories}}, nil
}

func yieldHistPanel(table *dataset.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Explosion Yields"
	p.X.Label.Text = "log10 Yield (kilotons)"
	p.Y.Label.Text = "Frequency"

	vals := logYields(table, "")
	if len(vals) == 0 {
		return p, nil
	}

	hist, err := plotter.NewHist(vals, 50)
	if err != nil {
		return nil, err
	}
	hist.FillColor = color.RGBA{R: 255, G: 165, B: 0, A: 200} // orange

	p.Add(hist)
	return p, nil
}

func yieldBoxPanel(table *dataset.Table, result analysis.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Yield Distribution by Top 5 Countries"
	p.Y.Label.Text = "log10 Yield (kilotons)"

	countries := topKeys(result.Country.Counts, 5)
	for i, country := range countries {
		vals := logYields(table, country)
		if len(vals) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), vals)
		if err != nil {
			return nil, err
		}
		p.Add(box)
	}

	p.NominalX(countries...)
	return p, nil
}

func yieldOverTimePanel(table *dataset.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Yield Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "log10 Yield (kilotons)"

	var xys plotter.XYs
	yearSums := make(map[int]float64)
	yearCounts := make(map[int]int)
	for _, e := range table.Events {
		if math.IsNaN(e.AverageYield) || e.AverageYield <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(e.Year), Y: math.Log10(e.AverageYield)})
		yearSums[e.Year] += e.AverageYield
		yearCounts[e.Year]++
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = color.NRGBA{R: 31, G: 119, B: 180, A: 90}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(scatter, plotter.NewGrid())

	// Yearly mean overlay, in the same log space.
	years := make([]int, 0, len(yearSums))
	for y := range yearSums {
		years = append(years, y)
	}
	sort.Ints(years)
	meanXYs := make(plotter.XYs, 0, len(years))
	for _, y := range years {
		mean := yearSums[y] / float64(yearCounts[y])
		meanXYs = append(meanXYs, plotter.XY{X: float64(y), Y: math.Log10(mean)})
	}
	meanLine, err := plotter.NewLine(meanXYs)
	if err != nil {
		return nil, err
	}
	meanLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	meanLine.Width = vg.Points(2)
	p.Add(meanLine)
	p.Legend.Add("Average", meanLine)
	p.Legend.Top = true

	return p, nil
}

func categoryPanel(result analysis.YieldResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Explosions by Yield Category"
	p.Y.Label.Text = "Number of Explosions"

	// Green through red, matching the category severity order.
	colors := []color.RGBA{
		{R: 44, G: 160, B: 44, A: 255},
		{R: 255, G: 221, B: 0, A: 255},
		{R: 255, G: 165, B: 0, A: 255},
		{R: 214, G: 39, B: 40, A: 255},
	}

	labels := make([]string, 0, len(result.Categories))
	for i, cat := range result.Categories {
		bars, err := plotter.NewBarChart(plotter.Values{float64(cat.Count)}, vg.Points(34))
		if err != nil {
			return nil, err
		}
		bars.Color = colors[i%len(colors)]
		bars.LineStyle.Width = 0
		bars.XMin = float64(i)
		p.Add(bars)
		labels = append(labels, cat.Key)
	}

	p.NominalX(labels...)
	return p, nil
}
