package chart

import (
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
)

// geographicFigure is the 1x2 geographic analysis: test site coordinates
// for the top five countries and the most active test regions.
func geographicFigure(table *dataset.Table, result analysis.Result) ([][]*plot.Plot, error) {
	sites, err := siteScatterPanel(table, result)
	if err != nil {
		return nil, err
	}
	regions, err := regionPanel(table)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{sites, regions}}, nil
}

func siteScatterPanel(table *dataset.Table, result analysis.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Nuclear Test Site Locations"
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	for i, country := range topKeys(result.Country.Counts, 5) {
		var xys plotter.XYs
		for _, e := range table.Events {
			if e.Country != country {
				continue
			}
			if math.IsNaN(e.Longitude) || math.IsNaN(e.Latitude) {
				continue
			}
			xys = append(xys, plotter.XY{X: e.Longitude, Y: e.Latitude})
		}
		if len(xys) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)
		p.Legend.Add(country, scatter)
	}

	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p, nil
}

func regionPanel(table *dataset.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Top 15 Test Regions"
	p.X.Label.Text = "Number of Tests"

	counts := regionCounts(table, 15)
	counts = reverseCounts(counts)

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = c.Key
	}

	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(4)
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)
	return p, nil
}

func regionCounts(table *dataset.Table, n int) []analysis.CountItem {
	counts := make(map[string]int)
	for _, e := range table.Events {
		if e.Region == "" {
			continue
		}
		counts[e.Region]++
	}
	items := make([]analysis.CountItem, 0, len(counts))
	for k, v := range counts {
		items = append(items, analysis.CountItem{Key: k, Count: v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Key < items[j].Key
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
