package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
)

// countryPurposeFigure is the 2x2 country and purpose analysis: top-10
// country bars, purpose and type pies, and the country-by-purpose heatmap.
func countryPurposeFigure(table *dataset.Table, result analysis.Result) ([][]*plot.Plot, error) {
	countries, err := topCountriesPanel(result.Country)
	if err != nil {
		return nil, err
	}
	heat, err := countryPurposePanel(table, result)
	if err != nil {
		return nil, err
	}
	purposes := piePanel("Distribution by Purpose", result.PurposeType.Purposes)
	types := piePanel("Distribution by Explosion Type", result.PurposeType.Types)

	return [][]*plot.Plot{{countries, purposes}, {types, heat}}, nil
}

func topCountriesPanel(result analysis.CountryResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Top 10 Countries by Number of Explosions"
	p.X.Label.Text = "Number of Explosions"

	top := reverseCounts(result.Counts[:min(10, len(result.Counts))])
	values := make(plotter.Values, 0, len(top))
	labels := make([]string, 0, len(top))
	for _, c := range top {
		values = append(values, float64(c.Count))
		labels = append(labels, c.Key)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255} // steelblue
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalY(labels...)
	return p, nil
}

// countGrid adapts a country-by-purpose crosstab to plotter.GridXYZ.
// Row r is a country, column c a purpose; Z is the record count.
type countGrid struct {
	cols []string
	rows []string
	z    [][]float64 // [row][col]
}

func (g countGrid) Dims() (c, r int)   { return len(g.cols), len(g.rows) }
func (g countGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g countGrid) X(c int) float64    { return float64(c) }
func (g countGrid) Y(r int) float64    { return float64(r) }

func countryPurposePanel(table *dataset.Table, result analysis.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Country vs Purpose Heatmap"
	p.X.Label.Text = "Purpose"
	p.Y.Label.Text = "Country"

	grid := crosstab(table, topKeys(result.Country.Counts, 8), topKeys(result.PurposeType.Purposes, len(result.PurposeType.Purposes)))

	heat := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	p.Add(heat)

	// Annotate each cell with its count.
	var xys plotter.XYs
	var texts []string
	for r := range grid.rows {
		for c := range grid.cols {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			texts = append(texts, fmt.Sprintf("%.0f", grid.z[r][c]))
		}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.NominalX(grid.cols...)
	p.NominalY(grid.rows...)
	return p, nil
}

// crosstab counts events per (country, purpose) pair for the given key sets.
func crosstab(table *dataset.Table, countries, purposes []string) countGrid {
	countryIdx := make(map[string]int, len(countries))
	for i, c := range countries {
		countryIdx[c] = i
	}
	purposeIdx := make(map[string]int, len(purposes))
	for i, p := range purposes {
		purposeIdx[p] = i
	}

	z := make([][]float64, len(countries))
	for i := range z {
		z[i] = make([]float64, len(purposes))
	}
	for _, e := range table.Events {
		r, okR := countryIdx[e.Country]
		c, okC := purposeIdx[e.Purpose]
		if okR && okC {
			z[r][c]++
		}
	}
	return countGrid{cols: purposes, rows: countries, z: z}
}
