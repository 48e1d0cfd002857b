package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/nuclear-test-analysis/internal/analysis"
)

const lineWidth = 80

// Console writes the sectioned analysis report to a single output stream.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Writer exposes the underlying stream for components that print directly
// into the report (the loader overview, the renderer save confirmations).
func (c *Console) Writer() io.Writer { return c.w }

// Banner prints a full-width section header.
func (c *Console) Banner(title string) {
	rule := strings.Repeat("=", lineWidth)
	fmt.Fprintf(c.w, "\n%s\n%s\n%s\n", rule, title, rule)
}

// Println writes one plain line into the report.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.w, args...)
}

// WriteCountrySection prints the per-country counts and yield aggregates.
func (c *Console) WriteCountrySection(result analysis.CountryResult) {
	fmt.Fprintln(c.w, "\nNuclear explosions by country:")
	for _, item := range result.Counts {
		fmt.Fprintf(c.w, "%-24s %6d\n", item.Key, item.Count)
	}
	fmt.Fprintf(c.w, "\nTotal countries with nuclear explosions: %d\n", len(result.Counts))

	fmt.Fprintln(c.w, "\nTotal yield by country (kilotons):")
	fmt.Fprintf(c.w, "%-24s %14s %14s %14s\n", "", "sum", "mean", "max")
	for _, y := range result.Yields {
		fmt.Fprintf(c.w, "%-24s %14.2f %14.2f %14.2f\n", y.Country, y.Sum, y.Mean, y.Max)
	}
}

// WriteTemporalSection prints yearly counts (first and last ten years),
// the peak year, and decade counts.
func (c *Console) WriteTemporalSection(result analysis.TemporalResult) {
	fmt.Fprintln(c.w, "\nExplosions per year (first 10 years and last 10 years):")
	fmt.Fprintln(c.w, "First 10 years:")
	for _, yc := range head(result.Yearly, 10) {
		fmt.Fprintf(c.w, "%d %6d\n", yc.Year, yc.Count)
	}
	fmt.Fprintln(c.w, "\nLast 10 years:")
	for _, yc := range tail(result.Yearly, 10) {
		fmt.Fprintf(c.w, "%d %6d\n", yc.Year, yc.Count)
	}

	fmt.Fprintf(c.w, "\nPeak year: %d with %d explosions\n", result.PeakYear, result.PeakCount)

	fmt.Fprintln(c.w, "\nExplosions by decade:")
	for _, dc := range result.Decades {
		fmt.Fprintf(c.w, "%d %6d\n", dc.Decade, dc.Count)
	}
}

// WritePurposeTypeSection prints counts per purpose and per type.
func (c *Console) WritePurposeTypeSection(result analysis.PurposeTypeResult) {
	fmt.Fprintln(c.w, "\nExplosions by purpose:")
	for _, item := range result.Purposes {
		fmt.Fprintf(c.w, "%-24s %6d\n", item.Key, item.Count)
	}

	fmt.Fprintln(c.w, "\nExplosions by type:")
	for _, item := range result.Types {
		fmt.Fprintf(c.w, "%-24s %6d\n", item.Key, item.Count)
	}
}

// WriteYieldSection prints the yield statistics, the ten largest tests, and
// the category counts.
func (c *Console) WriteYieldSection(result analysis.YieldResult) {
	fmt.Fprintln(c.w, "\nYield statistics (kilotons):")
	fmt.Fprintf(c.w, "Mean yield: %.2f\n", result.Stats.Mean)
	fmt.Fprintf(c.w, "Median yield: %.2f\n", result.Stats.Median)
	fmt.Fprintf(c.w, "Maximum yield: %.2f\n", result.Stats.Max)
	fmt.Fprintf(c.w, "Minimum yield: %.2f\n", result.Stats.Min)
	fmt.Fprintf(c.w, "Standard deviation: %.2f\n", result.Stats.Std)

	fmt.Fprintln(c.w, "\nTop 10 largest nuclear explosions:")
	fmt.Fprintf(c.w, "%-16s %-16s %6s %14s\n", "Name", "Country", "Year", "Average Yield")
	for _, e := range result.Top {
		fmt.Fprintf(c.w, "%-16s %-16s %6d %14.2f\n", e.Name, e.Country, e.Year, e.AverageYield)
	}

	fmt.Fprintln(c.w, "\nExplosions by yield category:")
	for _, item := range result.Categories {
		fmt.Fprintf(c.w, "%-24s %6d\n", item.Key, item.Count)
	}
}

// WriteInsights prints the ordered key-findings list.
func (c *Console) WriteInsights(insights []string) {
	for _, insight := range insights {
		fmt.Fprintln(c.w, insight)
	}
}

func head(items []analysis.YearCount, n int) []analysis.YearCount {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

func tail(items []analysis.YearCount, n int) []analysis.YearCount {
	if len(items) < n {
		n = len(items)
	}
	return items[len(items)-n:]
}
