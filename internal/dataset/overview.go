package dataset

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// describeRow holds the descriptive statistics of one numeric column.
type describeRow struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// WriteOverview prints the initial exploration of the table: shape, column
// types, missing values, and descriptive statistics for every numeric column.
func (t *Table) WriteOverview(w io.Writer) {
	rule := strings.Repeat("-", 80)
	minYear, maxYear := t.YearRange()

	fmt.Fprintln(w, "\n1. DATASET OVERVIEW")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total number of nuclear explosions: %d\n", t.Len())
	fmt.Fprintf(w, "Time period: %d - %d\n", minYear, maxYear)
	fmt.Fprintf(w, "\nDataset shape: (%d, %d)\n", t.Len(), len(Columns))
	fmt.Fprintf(w, "Columns: %d\n", len(Columns))
	if t.RowsSkipped > 0 {
		fmt.Fprintf(w, "Rows skipped (unparseable year): %d\n", t.RowsSkipped)
	}

	fmt.Fprintln(w, "\n2. COLUMN INFORMATION")
	fmt.Fprintln(w, rule)
	for _, col := range Columns {
		fmt.Fprintf(w, "%-34s %s\n", col.Name, col.Kind)
	}

	fmt.Fprintln(w, "\n3. MISSING VALUES")
	fmt.Fprintln(w, rule)
	t.writeMissing(w)

	fmt.Fprintln(w, "\n4. BASIC STATISTICS")
	fmt.Fprintln(w, rule)
	t.writeDescribe(w)
}

func (t *Table) writeMissing(w io.Writer) {
	names := make([]string, 0, len(t.Missing))
	for name, n := range t.Missing {
		if n > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "No missing values found!")
		return
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%-34s %d\n", name, t.Missing[name])
	}
}

func (t *Table) writeDescribe(w io.Writer) {
	fmt.Fprintf(w, "%-34s %8s %12s %12s %12s %12s %12s %12s %12s\n",
		"", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, col := range Columns {
		if col.Kind == KindString {
			continue
		}
		row := describe(col.Name, t.NumericColumn(col.Name))
		fmt.Fprintf(w, "%-34s %8d %12.2f %12.2f %12.2f %12.2f %12.2f %12.2f %12.2f\n",
			row.Column, row.Count, row.Mean, row.Std, row.Min, row.Q25, row.Median, row.Q75, row.Max)
	}
}

// describe computes count, mean, sample standard deviation, extrema, and
// quartiles of the non-missing values of one column.
func describe(name string, values []float64) describeRow {
	row := describeRow{Column: name, Count: len(values)}
	if len(values) == 0 {
		return row
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	row.Mean = stat.Mean(sorted, nil)
	row.Std = stat.StdDev(sorted, nil)
	row.Min = floats.Min(sorted)
	row.Max = floats.Max(sorted)
	row.Q25 = Quantile(0.25, sorted)
	row.Median = Quantile(0.5, sorted)
	row.Q75 = Quantile(0.75, sorted)
	return row
}

// Quantile returns the p-quantile of sorted values, linearly interpolating
// between the two nearest order statistics. An even-count median is the
// midpoint of the two middle values. gonum's stat.Quantile only offers
// sample-element cumulants, which would report the lower middle value.
func Quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(i)
	return sorted[i]*(1-frac) + sorted[i+1]*frac
}
