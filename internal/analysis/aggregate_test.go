package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/nuclear-test-analysis/internal/dataset"
	"github.com/couchcryptid/nuclear-test-analysis/internal/domain"
)

func event(year int, country string, yield float64) domain.TestEvent {
	return domain.Enrich(domain.TestEvent{
		Year:       year,
		Country:    country,
		YieldLower: yield,
		YieldUpper: yield,
	})
}

func tableOf(events ...domain.TestEvent) *dataset.Table {
	return &dataset.Table{Events: events, Missing: map[string]int{}}
}

func TestByCountry(t *testing.T) {
	table := tableOf(
		event(1960, "A", 10),
		event(1961, "B", 100),
		event(1962, "A", 30),
		event(1963, "A", 20),
	)

	result := ByCountry(table)

	t.Run("counts descending", func(t *testing.T) {
		require.Len(t, result.Counts, 2)
		assert.Equal(t, CountItem{Key: "A", Count: 3}, result.Counts[0])
		assert.Equal(t, CountItem{Key: "B", Count: 1}, result.Counts[1])
	})

	t.Run("yields sorted by sum descending", func(t *testing.T) {
		require.Len(t, result.Yields, 2)
		assert.Equal(t, "B", result.Yields[0].Country)
		assert.Equal(t, 100.0, result.Yields[0].Sum)
		assert.Equal(t, "A", result.Yields[1].Country)
		assert.Equal(t, 60.0, result.Yields[1].Sum)
		assert.Equal(t, 20.0, result.Yields[1].Mean)
		assert.Equal(t, 30.0, result.Yields[1].Max)
	})

	t.Run("count sum equals total", func(t *testing.T) {
		total := 0
		for _, c := range result.Counts {
			total += c.Count
		}
		assert.Equal(t, table.Len(), total)
	})

	t.Run("empty country dropped", func(t *testing.T) {
		withBlank := tableOf(event(1960, "A", 1), event(1961, "", 1))
		r := ByCountry(withBlank)
		require.Len(t, r.Counts, 1)
		assert.Equal(t, "A", r.Counts[0].Key)
	})

	t.Run("NaN yields excluded from aggregates", func(t *testing.T) {
		e := domain.Enrich(domain.TestEvent{Year: 1960, Country: "A", YieldLower: math.NaN(), YieldUpper: math.NaN()})
		r := ByCountry(tableOf(e, event(1961, "A", 10)))
		require.Len(t, r.Yields, 1)
		assert.Equal(t, 10.0, r.Yields[0].Sum)
		assert.Equal(t, 10.0, r.Yields[0].Mean)
		assert.Equal(t, 2, r.Counts[0].Count)
	})

	t.Run("country with only NaN yields reports NaN mean and max", func(t *testing.T) {
		e := domain.Enrich(domain.TestEvent{Year: 1960, Country: "A", YieldLower: math.NaN(), YieldUpper: math.NaN()})
		r := ByCountry(tableOf(e))
		require.Len(t, r.Yields, 1)
		assert.Equal(t, 0.0, r.Yields[0].Sum)
		assert.True(t, math.IsNaN(r.Yields[0].Mean))
		assert.True(t, math.IsNaN(r.Yields[0].Max))
	})
}

func TestByYear(t *testing.T) {
	// End-to-end scenario from the analysis contract: years {1960, 1960, 1970}.
	table := tableOf(
		event(1970, "B", 1),
		event(1960, "A", 1),
		event(1960, "A", 1),
	)

	result := ByYear(table)

	assert.Equal(t, []YearCount{{1960, 2}, {1970, 1}}, result.Yearly)
	assert.Equal(t, []DecadeCount{{1960, 2}, {1970, 1}}, result.Decades)
	assert.Equal(t, 1960, result.PeakYear)
	assert.Equal(t, 2, result.PeakCount)

	t.Run("decade sum equals total", func(t *testing.T) {
		total := 0
		for _, d := range result.Decades {
			total += d.Count
		}
		assert.Equal(t, table.Len(), total)
	})

	t.Run("peak tie goes to earliest year", func(t *testing.T) {
		tied := tableOf(event(1970, "A", 1), event(1960, "A", 1))
		r := ByYear(tied)
		assert.Equal(t, 1960, r.PeakYear)
		assert.Equal(t, 1, r.PeakCount)
	})
}

func TestByPurposeAndType(t *testing.T) {
	table := tableOf(
		domain.Enrich(domain.TestEvent{Year: 1960, Purpose: "Wr", Type: "Shaft"}),
		domain.Enrich(domain.TestEvent{Year: 1961, Purpose: "Wr", Type: "Atmosph"}),
		domain.Enrich(domain.TestEvent{Year: 1962, Purpose: "Pne", Type: "Shaft"}),
		domain.Enrich(domain.TestEvent{Year: 1963, Purpose: "", Type: ""}),
	)

	result := ByPurposeAndType(table)

	assert.Equal(t, []CountItem{{"Wr", 2}, {"Pne", 1}}, result.Purposes)
	assert.Equal(t, []CountItem{{"Shaft", 2}, {"Atmosph", 1}}, result.Types)
}

func TestYieldSummary(t *testing.T) {
	t.Run("statistics", func(t *testing.T) {
		table := tableOf(
			event(1960, "A", 1),
			event(1961, "A", 2),
			event(1962, "A", 3),
			event(1963, "A", 4),
		)

		result := YieldSummary(table)

		assert.InDelta(t, 2.5, result.Stats.Mean, 1e-9)
		assert.InDelta(t, 2.5, result.Stats.Median, 1e-9, "even count interpolates the two middle values")
		assert.Equal(t, 4.0, result.Stats.Max)
		assert.Equal(t, 1.0, result.Stats.Min)
		assert.InDelta(t, 1.29099, result.Stats.Std, 1e-4) // sample, N-1
	})

	t.Run("odd count median is the middle value", func(t *testing.T) {
		table := tableOf(
			event(1960, "A", 1),
			event(1961, "A", 2),
			event(1962, "A", 10),
		)
		result := YieldSummary(table)
		assert.InDelta(t, 2.0, result.Stats.Median, 1e-9)
	})

	t.Run("top ten ordering", func(t *testing.T) {
		events := make([]domain.TestEvent, 0, 12)
		for i := 1; i <= 12; i++ {
			e := domain.Enrich(domain.TestEvent{
				Year:       1950 + i,
				Country:    "A",
				Name:       "T",
				YieldLower: float64(i),
				YieldUpper: float64(i),
			})
			events = append(events, e)
		}
		result := YieldSummary(tableOf(events...))

		require.Len(t, result.Top, 10)
		assert.Equal(t, 12.0, result.Top[0].AverageYield)
		assert.Equal(t, 3.0, result.Top[9].AverageYield)
		for i := 1; i < len(result.Top); i++ {
			assert.GreaterOrEqual(t, result.Top[i-1].AverageYield, result.Top[i].AverageYield)
		}
	})

	t.Run("top ties keep row order", func(t *testing.T) {
		table := tableOf(
			domain.Enrich(domain.TestEvent{Year: 1960, Name: "First", YieldLower: 5, YieldUpper: 5}),
			domain.Enrich(domain.TestEvent{Year: 1961, Name: "Second", YieldLower: 5, YieldUpper: 5}),
		)
		result := YieldSummary(table)
		assert.Equal(t, "First", result.Top[0].Name)
		assert.Equal(t, "Second", result.Top[1].Name)
	})

	t.Run("categories in fixed order", func(t *testing.T) {
		table := tableOf(
			event(1960, "A", 5),    // Low
			event(1961, "A", 20),   // Medium boundary
			event(1962, "A", 150),  // High boundary
			event(1963, "A", 5000), // Very High
			event(1964, "A", 0),    // uncategorized
		)
		result := YieldSummary(table)

		require.Len(t, result.Categories, 4)
		assert.Equal(t, CountItem{domain.CategoryLow, 1}, result.Categories[0])
		assert.Equal(t, CountItem{domain.CategoryMedium, 1}, result.Categories[1])
		assert.Equal(t, CountItem{domain.CategoryHigh, 1}, result.Categories[2])
		assert.Equal(t, CountItem{domain.CategoryVeryHigh, 1}, result.Categories[3])

		categorized := 0
		for _, c := range result.Categories {
			categorized += c.Count
		}
		assert.Equal(t, 4, categorized, "zero-yield record excluded from the partition")
	})
}

func TestAnalyze(t *testing.T) {
	table := tableOf(event(1960, "A", 10), event(1960, "A", 20), event(1970, "B", 30))

	result := Analyze(table)

	assert.Equal(t, []CountItem{{"A", 2}, {"B", 1}}, result.Country.Counts)
	assert.Equal(t, 1960, result.Temporal.PeakYear)
	assert.Len(t, result.Yield.Categories, 4)
}
