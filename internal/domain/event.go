package domain

// RawCSVRecord represents one row of the source dataset, every field still a
// raw string as read from the CSV. Column comments carry the dataset's
// original header spelling ("Yeild", "Cordinates").
type RawCSVRecord struct {
	Year       string // Date.Year
	Country    string // Location.Country
	Region     string // Location.Region
	Latitude   string // Location.Cordinates.Latitude
	Longitude  string // Location.Cordinates.Longitude
	Purpose    string // Data.Purpose
	Type       string // Data.Type
	YieldLower string // Data.Yeild.Lower
	YieldUpper string // Data.Yeild.Upper
	Name       string // Data.Name
}

// TestEvent is the domain-rich representation of one nuclear test after
// parsing. Numeric fields that were blank or unparseable are NaN.
type TestEvent struct {
	Year       int
	Country    string
	Region     string
	Latitude   float64
	Longitude  float64
	Purpose    string
	Type       string
	YieldLower float64
	YieldUpper float64
	Name       string

	// Derived fields, attached once by Enrich.
	AverageYield  float64
	Decade        int
	YieldCategory string
}

// Yield category labels. An uncategorized event carries the empty string.
const (
	CategoryLow      = "Low (<20kt)"
	CategoryMedium   = "Medium (20-150kt)"
	CategoryHigh     = "High (150-1000kt)"
	CategoryVeryHigh = "Very High (>1000kt)"
)

// YieldCategories is the fixed category order used everywhere categories
// are reported.
var YieldCategories = []string{
	CategoryLow,
	CategoryMedium,
	CategoryHigh,
	CategoryVeryHigh,
}

// Cold War window bounds, inclusive both ends.
const (
	ColdWarStart = 1947
	ColdWarEnd   = 1991
)

// InColdWarWindow reports whether a test year falls in the 1947-1991 window.
func InColdWarWindow(year int) bool {
	return year >= ColdWarStart && year <= ColdWarEnd
}
