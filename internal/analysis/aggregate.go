package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
)

// Analyze runs all four aggregations over the table.
func Analyze(t *dataset.Table) Result {
	return Result{
		Country:     ByCountry(t),
		Temporal:    ByYear(t),
		PurposeType: ByPurposeAndType(t),
		Yield:       YieldSummary(t),
	}
}

// ByCountry counts records per country (descending by count) and aggregates
// sum/mean/max of average yield per country (descending by sum). Records with
// an empty country are dropped from both results.
func ByCountry(t *dataset.Table) CountryResult {
	counts := countBy(t, func(e domain.TestEvent) string { return e.Country })

	type acc struct {
		sum   float64
		max   float64
		n     int
		known bool
	}
	byCountry := make(map[string]*acc)
	var order []string
	for _, e := range t.Events {
		if e.Country == "" {
			continue
		}
		a, ok := byCountry[e.Country]
		if !ok {
			a = &acc{}
			byCountry[e.Country] = a
			order = append(order, e.Country)
		}
		if math.IsNaN(e.AverageYield) {
			continue
		}
		a.sum += e.AverageYield
		a.n++
		if !a.known || e.AverageYield > a.max {
			a.max = e.AverageYield
			a.known = true
		}
	}

	yields := make([]CountryYield, 0, len(order))
	for _, country := range order {
		a := byCountry[country]
		cy := CountryYield{Country: country, Sum: a.sum}
		if a.n > 0 {
			cy.Mean = a.sum / float64(a.n)
			cy.Max = a.max
		} else {
			// No known yields at all: the sum of nothing is 0, but a mean
			// or max of nothing is unknown, not 0 kt.
			cy.Mean = math.NaN()
			cy.Max = math.NaN()
		}
		yields = append(yields, cy)
	}
	sort.SliceStable(yields, func(i, j int) bool { return yields[i].Sum > yields[j].Sum })

	return CountryResult{Counts: counts, Yields: yields}
}

// ByYear counts records per year (ascending) and per decade (ascending), and
// picks the peak year. Ties on the peak go to the earliest year.
func ByYear(t *dataset.Table) TemporalResult {
	yearCounts := make(map[int]int)
	decadeCounts := make(map[int]int)
	for _, e := range t.Events {
		yearCounts[e.Year]++
		decadeCounts[e.Decade]++
	}

	yearly := make([]YearCount, 0, len(yearCounts))
	for year, n := range yearCounts {
		yearly = append(yearly, YearCount{Year: year, Count: n})
	}
	sort.Slice(yearly, func(i, j int) bool { return yearly[i].Year < yearly[j].Year })

	decades := make([]DecadeCount, 0, len(decadeCounts))
	for decade, n := range decadeCounts {
		decades = append(decades, DecadeCount{Decade: decade, Count: n})
	}
	sort.Slice(decades, func(i, j int) bool { return decades[i].Decade < decades[j].Decade })

	result := TemporalResult{Yearly: yearly, Decades: decades}
	for _, yc := range yearly {
		if yc.Count > result.PeakCount {
			result.PeakYear = yc.Year
			result.PeakCount = yc.Count
		}
	}
	return result
}

// ByPurposeAndType counts records per distinct purpose and type value,
// each descending by count. Empty values are dropped.
func ByPurposeAndType(t *dataset.Table) PurposeTypeResult {
	return PurposeTypeResult{
		Purposes: countBy(t, func(e domain.TestEvent) string { return e.Purpose }),
		Types:    countBy(t, func(e domain.TestEvent) string { return e.Type }),
	}
}

// YieldSummary computes the overall yield statistics, the ten largest tests,
// and the per-category counts in fixed category order.
func YieldSummary(t *dataset.Table) YieldResult {
	var yields []float64
	for _, e := range t.Events {
		if !math.IsNaN(e.AverageYield) {
			yields = append(yields, e.AverageYield)
		}
	}

	var stats YieldStats
	if len(yields) > 0 {
		sorted := append([]float64(nil), yields...)
		sort.Float64s(sorted)
		stats = YieldStats{
			Mean:   stat.Mean(sorted, nil),
			Median: dataset.Quantile(0.5, sorted),
			Max:    sorted[len(sorted)-1],
			Min:    sorted[0],
			Std:    stat.StdDev(sorted, nil),
		}
	}

	return YieldResult{
		Stats:      stats,
		Top:        topByYield(t, 10),
		Categories: categoryCounts(t),
	}
}

// topByYield returns the n records with the largest average yield, descending,
// ties broken by original row order. NaN yields are excluded.
func topByYield(t *dataset.Table, n int) []TopYieldEntry {
	entries := make([]TopYieldEntry, 0, len(t.Events))
	for _, e := range t.Events {
		if math.IsNaN(e.AverageYield) {
			continue
		}
		entries = append(entries, TopYieldEntry{
			Name:         e.Name,
			Country:      e.Country,
			Year:         e.Year,
			AverageYield: e.AverageYield,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AverageYield > entries[j].AverageYield
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// categoryCounts counts categorized records in the fixed category order.
// Uncategorized events (no positive yield) are excluded.
func categoryCounts(t *dataset.Table) []CountItem {
	byCategory := make(map[string]int, len(domain.YieldCategories))
	for _, e := range t.Events {
		if e.YieldCategory != "" {
			byCategory[e.YieldCategory]++
		}
	}

	items := make([]CountItem, 0, len(domain.YieldCategories))
	for _, cat := range domain.YieldCategories {
		items = append(items, CountItem{Key: cat, Count: byCategory[cat]})
	}
	return items
}

// countBy groups records by a string key and returns counts descending by
// count, ties broken by first occurrence in row order. Empty keys are dropped.
func countBy(t *dataset.Table, key func(domain.TestEvent) string) []CountItem {
	counts := make(map[string]int)
	var order []string
	for _, e := range t.Events {
		k := key(e)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	items := make([]CountItem, 0, len(order))
	for _, k := range order {
		items = append(items, CountItem{Key: k, Count: counts[k]})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	return items
}
