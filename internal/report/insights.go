// Package report turns aggregate results into the human-readable console
// report: section banners, grouped tables, and the fixed twelve-item
// insight list.
package report

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
)

// BuildInsights produces the ordered key-findings list. The content and order
// are fixed: twelve numbered sentences derived from the aggregates.
func BuildInsights(table *dataset.Table, result analysis.Result) []string {
	minYear, maxYear := table.YearRange()
	total := table.Len()

	var coldWar, postColdWar, combat int
	for _, e := range table.Events {
		if domain.InColdWarWindow(e.Year) {
			coldWar++
		}
		if e.Year > domain.ColdWarEnd {
			postColdWar++
		}
		if e.Purpose == "Combat" {
			combat++
		}
	}

	coldWarPct := 0.0
	if total > 0 {
		coldWarPct = float64(coldWar) / float64(total) * 100
	}

	insights := []string{
		fmt.Sprintf("1. Total nuclear explosions recorded: %d", total),
		fmt.Sprintf("2. Time period: %d to %d (%d years)", minYear, maxYear, maxYear-minYear),
		fmt.Sprintf("3. Number of countries conducting tests: %d", len(result.Country.Counts)),
		fmt.Sprintf("4. Top 3 countries: %s", topCountries(result.Country.Counts, 3)),
		fmt.Sprintf("5. Peak year of testing: %d with %d explosions", result.Temporal.PeakYear, result.Temporal.PeakCount),
		fmt.Sprintf("6. Cold War era tests (1947-1991): %d (%.1f%% of all tests)", coldWar, coldWarPct),
		fmt.Sprintf("7. Post-Cold War tests (1992+): %d", postColdWar),
		fmt.Sprintf("8. Average yield: %.2f kilotons", result.Yield.Stats.Mean),
		fmt.Sprintf("9. Largest explosion: %.2f kilotons (%s)", result.Yield.Stats.Max, largestName(result.Yield.Top)),
		fmt.Sprintf("10. Most common purpose: %s", mostCommon(result.PurposeType.Purposes)),
		fmt.Sprintf("11. Most common type: %s", mostCommon(result.PurposeType.Types)),
		fmt.Sprintf("12. Combat usage: %d explosions (Hiroshima and Nagasaki)", combat),
	}
	return insights
}

func topCountries(counts []analysis.CountItem, n int) string {
	if len(counts) < n {
		n = len(counts)
	}
	parts := make([]string, 0, n)
	for _, c := range counts[:n] {
		parts = append(parts, fmt.Sprintf("%s (%d)", c.Key, c.Count))
	}
	return strings.Join(parts, ", ")
}

// largestName returns the name of the highest-yield test. The top list is
// already descending with ties in row order, so the first entry is the first
// match.
func largestName(top []analysis.TopYieldEntry) string {
	if len(top) == 0 {
		return "unknown"
	}
	return top[0].Name
}

func mostCommon(counts []analysis.CountItem) string {
	if len(counts) == 0 {
		return "unknown (0 tests)"
	}
	return fmt.Sprintf("%s (%d tests)", counts[0].Key, counts[0].Count)
}
