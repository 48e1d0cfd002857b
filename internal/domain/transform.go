package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseRawRecord converts a raw CSV row into a TestEvent. The year must be a
// valid integer; everything else degrades to NaN or the empty string, with
// the missing-value bookkeeping left to the loader.
func ParseRawRecord(rec RawCSVRecord) (TestEvent, error) {
	year, err := strconv.Atoi(strings.TrimSpace(rec.Year))
	if err != nil {
		return TestEvent{}, fmt.Errorf("parse year %q: %w", rec.Year, err)
	}

	return TestEvent{
		Year:       year,
		Country:    strings.TrimSpace(rec.Country),
		Region:     strings.TrimSpace(rec.Region),
		Latitude:   parseFloatOrNaN(rec.Latitude),
		Longitude:  parseFloatOrNaN(rec.Longitude),
		Purpose:    strings.TrimSpace(rec.Purpose),
		Type:       strings.TrimSpace(rec.Type),
		YieldLower: parseFloatOrNaN(rec.YieldLower),
		YieldUpper: parseFloatOrNaN(rec.YieldUpper),
		Name:       strings.TrimSpace(rec.Name),
	}, nil
}

// Enrich attaches the derived fields to an event. Idempotent: enriching an
// already enriched event recomputes the same values.
func Enrich(e TestEvent) TestEvent {
	e.AverageYield = AverageYield(e.YieldLower, e.YieldUpper)
	e.Decade = DecadeOf(e.Year)
	e.YieldCategory = ClassifyYield(e.AverageYield)
	return e
}

// AverageYield is the midpoint of the kiloton yield bounds. NaN propagates.
func AverageYield(lower, upper float64) float64 {
	return (lower + upper) / 2
}

// DecadeOf returns the ten-year bucket of a year: 1974 → 1970, 1980 → 1980.
func DecadeOf(year int) int {
	return (year / 10) * 10
}

// ClassifyYield assigns the yield category for an average yield in kilotons.
// Bins are left-closed/right-open with an open lower bound at zero; NaN and
// non-positive yields get no category and return the empty string.
func ClassifyYield(averageYield float64) string {
	switch {
	case math.IsNaN(averageYield) || averageYield <= 0:
		return ""
	case averageYield < 20:
		return CategoryLow
	case averageYield < 150:
		return CategoryMedium
	case averageYield < 1000:
		return CategoryHigh
	default:
		return CategoryVeryHigh
	}
}

// parseFloatOrNaN parses a string as float64, returning NaN when the value
// is blank or malformed so missingness survives into the table.
func parseFloatOrNaN(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
