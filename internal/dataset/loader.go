// Package dataset loads the nuclear explosions CSV into an in-memory table
// and prints the dataset overview (shape, column types, missing values,
// descriptive statistics).
package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
)

// Loader reads the dataset from a delimited file. The zero value is not
// usable; construct with NewLoader.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the full dataset into memory and enriches every event with its
// derived fields. It fails with *DataLoadError when the file is missing or
// malformed and *MissingColumnError when a required column is absent.
func (l *Loader) Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &DataLoadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &DataLoadError{Path: path, Err: fmt.Errorf("empty file")}
	}

	colIdx, err := indexColumns(rows[0])
	if err != nil {
		return nil, err
	}

	table := &Table{Missing: make(map[string]int, len(Columns))}
	for _, row := range rows[1:] {
		rec := rawRecord(row, colIdx)
		event, err := domain.ParseRawRecord(rec)
		if err != nil {
			table.RowsSkipped++
			continue
		}
		countMissing(table.Missing, event)
		table.Events = append(table.Events, domain.Enrich(event))
	}

	l.logger.Info("dataset loaded",
		"path", path,
		"rows", table.Len(),
		"rows_skipped", table.RowsSkipped,
	)
	return table, nil
}

// indexColumns maps the expected schema onto header positions and fails on
// the first absent column.
func indexColumns(header []string) (map[string]int, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(h)] = i
	}

	idx := make(map[string]int, len(Columns))
	for _, col := range Columns {
		i, ok := byName[col.Name]
		if !ok {
			return nil, &MissingColumnError{Column: col.Name}
		}
		idx[col.Name] = i
	}
	return idx, nil
}

func rawRecord(row []string, colIdx map[string]int) domain.RawCSVRecord {
	get := func(name string) string {
		i := colIdx[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	return domain.RawCSVRecord{
		Year:       get("Date.Year"),
		Country:    get("Location.Country"),
		Region:     get("Location.Region"),
		Latitude:   get("Location.Cordinates.Latitude"),
		Longitude:  get("Location.Cordinates.Longitude"),
		Purpose:    get("Data.Purpose"),
		Type:       get("Data.Type"),
		YieldLower: get("Data.Yeild.Lower"),
		YieldUpper: get("Data.Yeild.Upper"),
		Name:       get("Data.Name"),
	}
}

// countMissing increments per-column missing counters: NaN for numeric
// columns, the empty string for categorical ones.
func countMissing(missing map[string]int, e domain.TestEvent) {
	numeric := map[string]float64{
		"Location.Cordinates.Latitude":  e.Latitude,
		"Location.Cordinates.Longitude": e.Longitude,
		"Data.Yeild.Lower":              e.YieldLower,
		"Data.Yeild.Upper":              e.YieldUpper,
	}
	for name, v := range numeric {
		if math.IsNaN(v) {
			missing[name]++
		}
	}

	categorical := map[string]string{
		"Location.Country": e.Country,
		"Location.Region":  e.Region,
		"Data.Purpose":     e.Purpose,
		"Data.Type":        e.Type,
		"Data.Name":        e.Name,
	}
	for name, v := range categorical {
		if v == "" {
			missing[name]++
		}
	}
}
