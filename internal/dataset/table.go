package dataset

import (
	"math"

	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
)

// Column kinds, reported in the dataset overview.
const (
	KindInt    = "int"
	KindFloat  = "float64"
	KindString = "string"
)

// Column describes one expected dataset column.
type Column struct {
	Name string
	Kind string
}

// Columns is the full expected schema, in dataset order. Header names keep
// the published file's spelling.
var Columns = []Column{
	{Name: "Date.Year", Kind: KindInt},
	{Name: "Location.Country", Kind: KindString},
	{Name: "Location.Region", Kind: KindString},
	{Name: "Location.Cordinates.Latitude", Kind: KindFloat},
	{Name: "Location.Cordinates.Longitude", Kind: KindFloat},
	{Name: "Data.Purpose", Kind: KindString},
	{Name: "Data.Type", Kind: KindString},
	{Name: "Data.Yeild.Lower", Kind: KindFloat},
	{Name: "Data.Yeild.Upper", Kind: KindFloat},
	{Name: "Data.Name", Kind: KindString},
}

// Table is the in-memory dataset: one enriched event per source row, plus
// load-time bookkeeping. It is created once, read by every downstream
// component, and never mutated after load.
type Table struct {
	Events      []domain.TestEvent
	Missing     map[string]int // per-column missing value counts
	RowsSkipped int            // rows dropped because the year failed to parse
}

// Len returns the number of events in the table.
func (t *Table) Len() int { return len(t.Events) }

// YearRange returns the minimum and maximum test year. Zeroes on an empty table.
func (t *Table) YearRange() (minYear, maxYear int) {
	if len(t.Events) == 0 {
		return 0, 0
	}
	minYear, maxYear = t.Events[0].Year, t.Events[0].Year
	for _, e := range t.Events[1:] {
		if e.Year < minYear {
			minYear = e.Year
		}
		if e.Year > maxYear {
			maxYear = e.Year
		}
	}
	return minYear, maxYear
}

// NumericColumn returns the non-NaN values of a numeric column, in row order.
// Unknown column names yield nil.
func (t *Table) NumericColumn(name string) []float64 {
	var out []float64
	for _, e := range t.Events {
		v, ok := numericField(e, name)
		if !ok {
			return nil
		}
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func numericField(e domain.TestEvent, name string) (float64, bool) {
	switch name {
	case "Date.Year":
		return float64(e.Year), true
	case "Location.Cordinates.Latitude":
		return e.Latitude, true
	case "Location.Cordinates.Longitude":
		return e.Longitude, true
	case "Data.Yeild.Lower":
		return e.YieldLower, true
	case "Data.Yeild.Upper":
		return e.YieldUpper, true
	default:
		return 0, false
	}
}
