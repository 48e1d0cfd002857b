// Package analysis computes the grouped aggregates of the nuclear test table:
// per-country, per-year/decade, per-purpose/type, and yield statistics.
// Every operation is a pure, single-pass read of the table.
package analysis

// CountItem is one grouping key with its record count.
type CountItem struct {
	Key   string
	Count int
}

// YearCount is the record count of one year.
type YearCount struct {
	Year  int
	Count int
}

// DecadeCount is the record count of one decade bucket.
type DecadeCount struct {
	Decade int
	Count  int
}

// CountryYield aggregates average yield per country.
type CountryYield struct {
	Country string
	Sum     float64
	Mean    float64
	Max     float64
}

// CountryResult holds the country-wise analysis: counts descending by count
// and yield aggregates descending by total yield.
type CountryResult struct {
	Counts []CountItem
	Yields []CountryYield
}

// TemporalResult holds yearly counts (ascending by year), decade counts
// (ascending by decade), and the peak year.
type TemporalResult struct {
	Yearly    []YearCount
	Decades   []DecadeCount
	PeakYear  int
	PeakCount int
}

// PurposeTypeResult holds counts per purpose and per type, each descending
// by count.
type PurposeTypeResult struct {
	Purposes []CountItem
	Types    []CountItem
}

// YieldStats are the descriptive statistics of average yield across all
// records with a known yield. Std uses the sample (N-1) denominator.
type YieldStats struct {
	Mean   float64
	Median float64
	Max    float64
	Min    float64
	Std    float64
}

// TopYieldEntry is one of the largest tests, projected for the report.
type TopYieldEntry struct {
	Name         string
	Country      string
	Year         int
	AverageYield float64
}

// YieldResult holds the yield analysis: overall statistics, the ten largest
// tests descending by yield, and category counts in the fixed Low → Very High
// order.
type YieldResult struct {
	Stats      YieldStats
	Top        []TopYieldEntry
	Categories []CountItem
}

// Result bundles the four analyses for downstream consumers.
type Result struct {
	Country     CountryResult
	Temporal    TemporalResult
	PurposeType PurposeTypeResult
	Yield       YieldResult
}
