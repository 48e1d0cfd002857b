package chart

import (
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
)

// topKeys returns the first n keys of a count list.
func topKeys(counts []analysis.CountItem, n int) []string {
	if len(counts) < n {
		n = len(counts)
	}
	keys := make([]string, 0, n)
	for _, c := range counts[:n] {
		keys = append(keys, c.Key)
	}
	return keys
}

// yearlySeries builds the per-year count series of one country, ascending
// by year.
func yearlySeries(table *dataset.Table, country string) plotter.XYs {
	counts := make(map[int]int)
	for _, e := range table.Events {
		if e.Country == country {
			counts[e.Year]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	xys := make(plotter.XYs, 0, len(years))
	for _, y := range years {
		xys = append(xys, plotter.XY{X: float64(y), Y: float64(counts[y])})
	}
	return xys
}

// logYields returns log10 of the positive average yields of the given
// country, or of all events when country is empty. Zero and negative yields
// have no logarithm and are excluded.
func logYields(table *dataset.Table, country string) plotter.Values {
	var vals plotter.Values
	for _, e := range table.Events {
		if country != "" && e.Country != country {
			continue
		}
		if !math.IsNaN(e.AverageYield) && e.AverageYield > 0 {
			vals = append(vals, math.Log10(e.AverageYield))
		}
	}
	return vals
}

// reverseCounts returns a reversed copy so horizontal bar charts show the
// largest entry at the top.
func reverseCounts(counts []analysis.CountItem) []analysis.CountItem {
	out := make([]analysis.CountItem, len(counts))
	for i, c := range counts {
		out[len(counts)-1-i] = c
	}
	return out
}
